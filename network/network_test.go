package network_test

import (
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/model"
	corenet "github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/network"
	"github.com/stretchr/testify/require"
)

func botsOnly() *config.Config {
	return &config.Config{
		Game: config.Game{
			Players:     2,
			Bots:        2,
			BotStrategy: "good",
			HandSize:    7,
			Variant:     "compact",
			Seed:        3,
		},
	}
}

// readAll collects everything the server writes until it hangs up.
func readAll(client *corenet.Conn) string {
	var received strings.Builder
	for {
		packet, err := client.Read()
		if err != nil {
			return received.String()
		}
		received.WriteString(packet.String())
	}
}

func login(t *testing.T, client *corenet.Conn, id int64) {
	t.Helper()
	err := client.Write(protocol.Packet{Body: json.Marshal(model.AuthInfo{ID: id, Name: "tester"})})
	require.NoError(t, err)
}

func TestTcp(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	go func() {
		_ = network.NewTcpServer(listener.Addr().String(), botsOnly()).ServeListener(listener)
	}()

	t.Run("streams_a_session", func(t *testing.T) {
		conn, err := net.Dial("tcp", listener.Addr().String())
		require.NoError(t, err)
		require.NoError(t, conn.SetDeadline(time.Now().Add(10*time.Second)))
		client := corenet.Wrapper(protocol.NewTcpReadWriteCloser(conn))

		login(t, client, 1)
		received := readAll(client)
		require.Contains(t, received, "WELCOME")
		require.Contains(t, received, "First card is")
		require.Contains(t, received, "wins!")
	})

	t.Run("refuses_anonymous_terminals", func(t *testing.T) {
		conn, err := net.Dial("tcp", listener.Addr().String())
		require.NoError(t, err)
		require.NoError(t, conn.SetDeadline(time.Now().Add(10*time.Second)))
		client := corenet.Wrapper(protocol.NewTcpReadWriteCloser(conn))

		login(t, client, 0)
		require.NotContains(t, readAll(client), "WELCOME")
	})
}

func TestWebsocket(t *testing.T) {
	server := httptest.NewServer(network.NewWebsocketServer("", botsOnly()).Handler())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	client := corenet.Wrapper(protocol.NewWebsocketReadWriteCloser(conn))

	login(t, client, 2)
	require.Contains(t, readAll(client), "wins!")
}
