package ai

import (
	"context"

	"github.com/draughtsbot/findmove/draughts"
)

// MoveSelector proposes moves for color on b. An empty result means the
// selector has nothing to offer; it is not an error.
type MoveSelector interface {
	FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error)
}

type SelectorFunc func(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error)

func (f SelectorFunc) FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error) {
	return f(ctx, b, color)
}
