package render

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/cli"
	"github.com/draughtsbot/findmove/notation"
	"github.com/draughtsbot/findmove/referee"
)

type Command struct {
	unicode bool
	moves   string
}

func (*Command) Name() string     { return "render" }
func (*Command) Synopsis() string { return "Pretty-print a position" }
func (*Command) Usage() string {
	return `render [options] [FILE]

Print the position read from FILE (or stdin) as a grid, optionally
after applying a move line.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.unicode, "unicode", false, "draw pieces with unicode glyphs")
	flags.StringVar(&c.moves, "moves", "", "apply this move line first")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("open %s: %v", flag.Arg(0), err)
		}
		defer f.Close()
		in = f
	}
	color, b, err := notation.ParseInput(in)
	if err != nil {
		log.Printf("parse: %v", err)
		return subcommands.ExitFailure
	}
	if c.moves != "" {
		ms, err := notation.ParseMoves(c.moves)
		if err != nil {
			log.Printf("-moves: %v", err)
			return subcommands.ExitUsageError
		}
		if b, err = referee.Play(b, ms); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	g := &cli.DefaultGlyphs
	if c.unicode {
		g = &cli.UnicodeGlyphs
	}
	cli.RenderBoard(g, os.Stdout, color, b)
	return subcommands.ExitSuccess
}
