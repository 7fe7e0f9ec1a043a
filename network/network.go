package network

import (
	"context"
	"errors"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/render"
	"github.com/ratel-online/hotseat/uno/session"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle runs one hot-seat session for a remote terminal. Everybody at that
// terminal shares the connection the way local players share a console.
func handle(rwc protocol.ReadWriteCloser, cfg *config.Config) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new terminal connected! ")
	authInfo, err := loginAuth(c)
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}

	console := newConnConsole(c, cfg.Server.InputTimeout)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	async.Async(func() {
		defer cancel()
		if err := console.Listening(); err != nil {
			log.Infof("terminal %s disconnected: %v\n", authInfo.Name, err)
		}
	})

	if err := render.Welcome(console, authInfo.Name); err != nil {
		return err
	}
	if err := render.SessionList(console, session.Running(), time.Now()); err != nil {
		return err
	}

	s := session.New(cfg.Game, console, session.WithName(authInfo.Name))
	session.Register(s)
	defer session.Unregister(s.ID)
	log.Infof("session %s opened for %d:%s\n", s.ID, authInfo.ID, authInfo.Name)

	err = s.Run(ctx)
	if errors.Is(err, session.ErrAborted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// 登陆验签
func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		if authInfo.ID == 0 {
			return nil, consts.ErrorsAuthFail
		}
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
