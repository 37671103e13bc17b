package book

import (
	"context"
	"errors"

	"github.com/draughtsbot/findmove/draughts"
)

// Selector answers from the book and reports no moves for unknown
// positions.
type Selector struct {
	Repo *Repository
}

func (s *Selector) FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error) {
	ms, err := s.Repo.Get(ctx, color, b)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return ms, err
}
