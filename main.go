package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/ratel-online/core/util/async"
)

// version is set by ldflags during build
var version = "dev"

type Globals struct {
	Config string `kong:"short='c',type='path',help='YAML config file, HOTSEAT_* environment variables override it'"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play a hot-seat game on this terminal"`
	Serve   ServeCmd         `cmd:"" help:"Serve hot-seat games to remote terminals"`
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hotseat"),
		kong.Description("Uno-like card game for 2-4 players sharing one terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
