package network

import (
	"errors"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/hotseat/config"
)

type Tcp struct {
	addr   string
	config *config.Config
}

func NewTcpServer(addr string, cfg *config.Config) Tcp {
	return Tcp{addr: addr, config: cfg}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	return t.ServeListener(listener)
}

// ServeListener accepts connections until listener is closed.
func (t Tcp) ServeListener(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := handle(protocol.NewTcpReadWriteCloser(conn), t.config)
			if err != nil {
				log.Error(err)
			}
		})
	}
}
