package move

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/ai"
	"github.com/draughtsbot/findmove/cmd/internal/opt"
	"github.com/draughtsbot/findmove/notation"
	"github.com/draughtsbot/findmove/session"
)

type Command struct {
	batch bool
	opt   opt.Selector
}

func (*Command) Name() string     { return "move" }
func (*Command) Synopsis() string { return "Read a position on stdin and print moves" }
func (*Command) Usage() string {
	return `move [options] < POSITION

Read a player color line and ten board lines from stdin, ask the
configured selector for moves and print them as a single RC,RC; line.
If no moves are found a message goes to stderr and the exit status is 0.

With -batch, positions are read until end of input, separated by blank
lines, and each gets one answer line (empty when there are no moves).
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.batch, "batch", false, "answer every position on stdin, one line each")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.Resolve(flag)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	sel, release, err := cfg.Build(ctx)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer release()

	if c.batch {
		e := session.NewEngine(os.Stdin, os.Stdout, os.Stderr, sel)
		e.Debug = cfg.Debug
		err = e.Run(ctx)
	} else {
		err = Run(ctx, os.Stdin, os.Stdout, os.Stderr, sel)
	}
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Run is one full turn: parse in, select, write moves to out or the
// no-moves message to diag.
func Run(ctx context.Context, in io.Reader, out, diag io.Writer, sel ai.MoveSelector) error {
	color, b, err := notation.ParseInput(in)
	if err != nil {
		return err
	}
	ms, err := sel.FindMoves(ctx, b, color)
	if err != nil {
		return err
	}
	return notation.WriteMoves(out, diag, ms)
}
