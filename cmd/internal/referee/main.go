package referee

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
	"github.com/draughtsbot/findmove/referee"
)

type Command struct {
	position string
	color    string
	timeout  time.Duration
	apply    bool
	debug    int
}

func (*Command) Name() string     { return "referee" }
func (*Command) Synopsis() string { return "Run a player program on a position" }
func (*Command) Usage() string {
	return `referee [options] -- PROGRAM [ARGS...]

Feed a position to PROGRAM on stdin, read its moves from stdout and
report them. With -apply, print the resulting position instead.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.position, "position", "", "position file (default: opening position)")
	flags.StringVar(&c.color, "color", "W", "color to play when using the opening position")
	flags.DurationVar(&c.timeout, "timeout", 10*time.Second, "time limit for the player")
	flags.BoolVar(&c.apply, "apply", false, "print the position after the player's moves")
	flags.IntVar(&c.debug, "debug", 1, "debug level")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}

	color, b, err := c.load()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	r := &referee.Runner{
		Command: flag.Args(),
		Timeout: c.timeout,
		Stderr:  os.Stderr,
		Debug:   c.debug,
	}
	res, err := r.Run(ctx, color, b)
	if err != nil {
		log.Printf("player: %v", err)
		return subcommands.ExitFailure
	}
	if len(res.Moves) == 0 {
		log.Printf("[%s] player returned no moves", res.ID)
		return subcommands.ExitSuccess
	}
	if !c.apply {
		fmt.Println(notation.FormatMoves(res.Moves))
		return subcommands.ExitSuccess
	}
	next, err := referee.Play(b, res.Moves)
	if err != nil {
		log.Printf("[%s] %v", res.ID, err)
		return subcommands.ExitFailure
	}
	fmt.Print(notation.FormatInput(color.Flip(), next))
	return subcommands.ExitSuccess
}

func (c *Command) load() (draughts.Color, *draughts.Board, error) {
	if c.position == "" {
		if len(c.color) != 1 {
			return draughts.NoColor, nil, fmt.Errorf("bad color: %q", c.color)
		}
		return draughts.Color(c.color[0]), draughts.NewBoard(), nil
	}
	f, err := os.Open(c.position)
	if err != nil {
		return draughts.NoColor, nil, err
	}
	defer f.Close()
	color, b, err := notation.ParseInput(f)
	if err != nil {
		return draughts.NoColor, nil, fmt.Errorf("%s: %w", c.position, err)
	}
	return color, b, nil
}
