package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/draughtsbot/findmove/ai"
	"github.com/draughtsbot/findmove/cmd/internal/move"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program; it returns the exit status. Having no moves
// is a success.
func run(ctx context.Context, args []string, in io.Reader, out, diag io.Writer) int {
	flags := flag.NewFlagSet("findmove", flag.ContinueOnError)
	flags.SetOutput(diag)
	selector := flags.String("selector", "empty", "move selector to use")
	debug := flags.Int("debug", 0, "debug level")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	logger := log.New(diag, "", 0)

	sel, err := ai.Lookup(*selector)
	if err != nil {
		logger.Println(err)
		return 2
	}
	err = move.Run(ctx, in, out, diag, &ai.Bounded{Inner: sel, Debug: *debug})
	if err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}
