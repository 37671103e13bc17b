package bookimport

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/book"
)

type Command struct{}

func (*Command) Name() string     { return "book-import" }
func (*Command) Synopsis() string { return "Load positions and answers into a move book" }
func (*Command) Usage() string {
	return `book-import BOOK.db [FILE...]

Each FILE (or stdin) holds records separated by blank lines: a color
line, ten board lines and a move line.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() < 1 {
		log.Println("Must supply a book database")
		return subcommands.ExitUsageError
	}

	repo, err := book.Open(flag.Arg(0))
	if err != nil {
		log.Fatal("open: ", err)
	}
	defer repo.Close()

	files := flag.Args()[1:]
	if len(files) == 0 {
		n, err := repo.Import(ctx, os.Stdin)
		if err != nil {
			log.Printf("stdin: %v", err)
			return subcommands.ExitFailure
		}
		log.Printf("imported %d positions", n)
		return subcommands.ExitSuccess
	}
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("open %s: %v", path, err)
			return subcommands.ExitFailure
		}
		n, err := repo.Import(ctx, f)
		f.Close()
		if err != nil {
			log.Printf("%s: %v", path, err)
			return subcommands.ExitFailure
		}
		log.Printf("%s: imported %d positions", path, n)
	}
	return subcommands.ExitSuccess
}
