package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ratel-online/hotseat/uno/session"
	"github.com/ratel-online/hotseat/uno/ui"
)

func Welcome(console ui.Console, name string) error {
	return console.Display(fmt.Sprintf("Hi %s, Welcome to hotseat online! ", name))
}

// SessionList shows the sessions other terminals are playing right now.
func SessionList(console ui.Console, sessions []*session.Session, now time.Time) error {
	if len(sessions) == 0 {
		return console.Display("No other games running.")
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-38s%-16s%-10s\n", "ID", "Terminal", "Running"))
	for _, s := range sessions {
		running := now.Sub(s.CreatedAt).Truncate(time.Second)
		buf.WriteString(fmt.Sprintf("%-38s%-16s%-10s\n", s.ID, s.Name, running))
	}
	return console.Display(buf.String())
}
