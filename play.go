package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/uno/session"
	"github.com/ratel-online/hotseat/uno/ui"
)

type PlayCmd struct {
	Players     *int   `kong:"help='Number of players (2-4), asked for when omitted'"`
	Bots        *int   `kong:"help='How many of the players are computer opponents'"`
	Variant     string `kong:"help='Deck variant: compact (96 cards) or standard (108 cards)'"`
	ActionRules bool   `kong:"help='Apply skip, reverse and draw penalties'"`
	Seed        *int64 `kong:"help='Deterministic shuffle seed (optional)'"`
	SkipHandoff bool   `kong:"help='Do not hide hands between human turns'"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}
	c.apply(&cfg.Game)
	if err := cfg.Game.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.New(cfg.Game, ui.NewTerminal(os.Stdin, color.Output))
	err = s.Run(ctx)
	if errors.Is(err, session.ErrAborted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *PlayCmd) apply(game *config.Game) {
	if c.Players != nil {
		game.Players = *c.Players
	}
	if c.Bots != nil {
		game.Bots = *c.Bots
	}
	if c.Variant != "" {
		game.Variant = c.Variant
	}
	if c.Seed != nil {
		game.Seed = *c.Seed
	}
	game.ActionRules = game.ActionRules || c.ActionRules
	game.SkipHandoff = game.SkipHandoff || c.SkipHandoff
}
