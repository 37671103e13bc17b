package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/draughtsbot/findmove/ai"
	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
)

const keyPrefix = "draughts:moves:"

// Selector memoizes an inner selector's answers in redis. Redis failures
// are logged and the inner selector is consulted directly.
type Selector struct {
	Client *redis.Client
	Inner  ai.MoveSelector
	TTL    time.Duration
}

func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return conn, nil
}

func cacheKey(color draughts.Color, b *draughts.Board) string {
	return keyPrefix + notation.Key(color, b)
}

func (s *Selector) FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error) {
	key := cacheKey(color, b)
	line, err := s.Client.Get(ctx, key).Result()
	switch {
	case err == nil:
		ms, perr := notation.ParseMoves(line)
		if perr == nil {
			return ms, nil
		}
		log.Printf("cache: discarding %s: %v", key, perr)
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("cache: get %s: %v", key, err)
	}

	ms, err := s.Inner.FindMoves(ctx, b, color)
	if err != nil {
		return nil, err
	}
	if err := s.Client.Set(ctx, key, notation.FormatMoves(ms), s.TTL).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
	return ms, nil
}
