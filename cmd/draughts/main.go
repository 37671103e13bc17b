package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/cmd/internal/bookimport"
	"github.com/draughtsbot/findmove/cmd/internal/client"
	"github.com/draughtsbot/findmove/cmd/internal/move"
	"github.com/draughtsbot/findmove/cmd/internal/referee"
	"github.com/draughtsbot/findmove/cmd/internal/render"
	"github.com/draughtsbot/findmove/cmd/internal/serve"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&move.Command{}, "")
	subcommands.Register(&render.Command{}, "")
	subcommands.Register(&referee.Command{}, "")

	subcommands.Register(&bookimport.Command{}, "book")

	subcommands.Register(&serve.Command{}, "rpc")
	subcommands.Register(&client.Command{}, "rpc")

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := subcommands.Execute(ctx)
	stop()
	os.Exit(int(status))
}
