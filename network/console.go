package network

import (
	"strings"
	"time"

	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/ui"
)

// connConsole is a ui.Console on top of a client connection. Prompts are
// framed by IsStart and IsStop so the client knows when to read a line.
type connConsole struct {
	conn    *network.Conn
	data    chan *protocol.Packet
	timeout time.Duration
}

func newConnConsole(conn *network.Conn, timeout time.Duration) *connConsole {
	return &connConsole{
		conn:    conn,
		data:    make(chan *protocol.Packet, 8),
		timeout: timeout,
	}
}

// Listening forwards packets until the connection fails.
func (c *connConsole) Listening() error {
	defer close(c.data)
	for {
		pack, err := c.conn.Read()
		if err != nil {
			return err
		}
		c.data <- pack
	}
}

func (c *connConsole) RequestText(prompt string) (string, error) {
	if prompt != "" {
		if err := c.Display(prompt); err != nil {
			return "", err
		}
	}
	if err := c.writeString(consts.IsStart); err != nil {
		return "", err
	}
	defer func() { _ = c.writeString(consts.IsStop) }()

	packet, err := c.askForPacket()
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(packet.String())
	if strings.ToLower(text) == "exit" {
		return "", ui.ErrCancelled
	}
	return text, nil
}

func (c *connConsole) Display(message string) error {
	return c.writeString(message + "\n")
}

func (c *connConsole) writeString(data string) error {
	return c.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (c *connConsole) askForPacket() (*protocol.Packet, error) {
	var packet *protocol.Packet
	if c.timeout > 0 {
		select {
		case packet = <-c.data:
		case <-time.After(c.timeout):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-c.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	return packet, nil
}
