package main

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/network"
)

type ServeCmd struct {
	Transport string `kong:"enum='tcp,ws,both',default='tcp',help='Transport to accept terminals on'"`
	TcpAddr   string `kong:"help='TCP address, overrides the config'"`
	WsAddr    string `kong:"help='Websocket address, overrides the config'"`
}

func (c *ServeCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}
	if c.TcpAddr != "" {
		cfg.Server.TcpAddr = c.TcpAddr
	}
	if c.WsAddr != "" {
		cfg.Server.WsAddr = c.WsAddr
	}

	switch c.Transport {
	case "ws":
		return network.NewWebsocketServer(cfg.Server.WsAddr, cfg).Serve()
	case "both":
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.Server.WsAddr, cfg).Serve())
		})
	}
	return network.NewTcpServer(cfg.Server.TcpAddr, cfg).Serve()
}
