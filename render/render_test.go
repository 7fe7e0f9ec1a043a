package render_test

import (
	"testing"
	"time"

	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/render"
	"github.com/ratel-online/hotseat/uno/session"
	"github.com/ratel-online/hotseat/uno/ui/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWelcome(t *testing.T) {
	console := mocks.NewMockConsole(gomock.NewController(t))
	console.EXPECT().Display("Hi ann, Welcome to hotseat online! ").Return(nil)
	require.NoError(t, render.Welcome(console, "ann"))
}

func TestSessionList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		console := mocks.NewMockConsole(gomock.NewController(t))
		console.EXPECT().Display("No other games running.").Return(nil)
		require.NoError(t, render.SessionList(console, nil, time.Now()))
	})

	t.Run("table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		console := mocks.NewMockConsole(ctrl)
		s := session.New(config.Game{}, console, session.WithName("kitchen"))
		now := s.CreatedAt.Add(90 * time.Second)

		var table string
		console.EXPECT().Display(gomock.Any()).DoAndReturn(func(message string) error {
			table = message
			return nil
		})
		require.NoError(t, render.SessionList(console, []*session.Session{s}, now))
		require.Contains(t, table, "Terminal")
		require.Contains(t, table, s.ID)
		require.Contains(t, table, "kitchen")
		require.Contains(t, table, "1m30s")
	})
}
