package opt

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/draughtsbot/findmove/ai"
	"github.com/draughtsbot/findmove/book"
	"github.com/draughtsbot/findmove/cache"
)

// Config is the file/env layer under the command line flags. Values set
// on the command line win.
type Config struct {
	Selector string        `yaml:"selector" env:"DRAUGHTS_SELECTOR" env-default:"empty"`
	Book     string        `yaml:"book" env:"DRAUGHTS_BOOK"`
	Redis    string        `yaml:"redis" env:"DRAUGHTS_REDIS"`
	CacheTTL time.Duration `yaml:"cache-ttl" env:"DRAUGHTS_CACHE_TTL" env-default:"1h"`
	Debug    int           `yaml:"debug" env:"DRAUGHTS_DEBUG" env-default:"0"`
}

func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

type Selector struct {
	ConfigPath string
	flags      Config
}

func (o *Selector) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.ConfigPath, "config", "", "YAML config file")
	flags.StringVar(&o.flags.Selector, "selector", "empty", fmt.Sprintf("fallback selector %v", ai.Names()))
	flags.StringVar(&o.flags.Book, "book", "", "sqlite move book to consult first")
	flags.StringVar(&o.flags.Redis, "redis", "", "redis address for caching answers")
	flags.DurationVar(&o.flags.CacheTTL, "cache-ttl", time.Hour, "lifetime of cached answers")
	flags.IntVar(&o.flags.Debug, "debug", 0, "debug level")
}

// Resolve merges the config file or environment with the flags that were
// explicitly set on fs.
func (o *Selector) Resolve(fs *flag.FlagSet) (*Config, error) {
	cfg, err := Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "selector":
			cfg.Selector = o.flags.Selector
		case "book":
			cfg.Book = o.flags.Book
		case "redis":
			cfg.Redis = o.flags.Redis
		case "cache-ttl":
			cfg.CacheTTL = o.flags.CacheTTL
		case "debug":
			cfg.Debug = o.flags.Debug
		}
	})
	return cfg, nil
}

// Build assembles the selector stack: book, then the named fallback,
// optionally memoized in redis, with off-board moves filtered out. The
// returned func releases whatever Build opened.
func (c *Config) Build(ctx context.Context) (ai.MoveSelector, func(), error) {
	var closers []func()
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	base, err := ai.Lookup(c.Selector)
	if err != nil {
		return nil, nil, err
	}
	sel := base
	if c.Book != "" {
		repo, err := book.Open(c.Book)
		if err != nil {
			return nil, nil, fmt.Errorf("open book %s: %w", c.Book, err)
		}
		closers = append(closers, repo.Close)
		sel = ai.Chain{&book.Selector{Repo: repo}, base}
	}
	if c.Redis != "" {
		client, err := cache.NewClient(ctx, c.Redis)
		if err != nil {
			release()
			return nil, nil, err
		}
		closers = append(closers, func() { client.Close() })
		sel = &cache.Selector{Client: client, Inner: sel, TTL: c.CacheTTL}
	}
	if c.Debug > 1 {
		log.Printf("selector: base=%s book=%q redis=%q", c.Selector, c.Book, c.Redis)
	}
	return &ai.Bounded{Inner: sel, Debug: c.Debug}, release, nil
}
