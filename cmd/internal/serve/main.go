package serve

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/google/subcommands"

	"github.com/draughtsbot/findmove/cmd/internal/opt"
	"github.com/draughtsbot/findmove/rpc"
)

type Command struct {
	port     int
	maxConns int
	opt      opt.Selector
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve FindMoves via GRPC" }
func (*Command) Usage() string {
	return `serve [options]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	flags.IntVar(&c.maxConns, "max-conns", 64, "maximum concurrent connections (0 for no limit)")
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
		log.Fatalf("build selector: %v", err)
	}
	defer release()

	log.Printf("Listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := rpc.NewServer(sel, cfg.Debug)
	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := rpc.Serve(grpcServer, lis, c.maxConns); err != nil {
		log.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
