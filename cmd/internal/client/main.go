package client

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/cmd/internal/move"
	"github.com/draughtsbot/findmove/rpc"
)

type Command struct {
	addr    string
	timeout time.Duration
}

func (*Command) Name() string     { return "client" }
func (*Command) Synopsis() string { return "Ask a running server for moves" }
func (*Command) Usage() string {
	return `client [options] < POSITION

Like move, but the selector runs in a remote serve process.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.addr, "addr", "localhost:55431", "server address")
	flags.DurationVar(&c.timeout, "timeout", 10*time.Second, "request timeout")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, err := rpc.Dial(c.addr)
	if err != nil {
		log.Printf("dial %s: %v", c.addr, err)
		return subcommands.ExitFailure
	}
	defer cl.Close()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := move.Run(ctx, os.Stdin, os.Stdout, os.Stderr, cl); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
