package ai

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/draughtsbot/findmove/draughts"
)

type emptySelector struct{}

func (emptySelector) FindMoves(context.Context, *draughts.Board, draughts.Color) ([]draughts.Move, error) {
	return nil, nil
}

// Empty never proposes a move.
var Empty MoveSelector = emptySelector{}

type FixedSelector struct {
	Moves []draughts.Move
}

func (f *FixedSelector) FindMoves(context.Context, *draughts.Board, draughts.Color) ([]draughts.Move, error) {
	out := make([]draughts.Move, len(f.Moves))
	copy(out, f.Moves)
	return out, nil
}

// NewFixed returns a selector that always answers with moves, or with
// the single move 61,50 when none are given.
func NewFixed(moves ...draughts.Move) *FixedSelector {
	if len(moves) == 0 {
		moves = []draughts.Move{{
			From: draughts.Position{Row: 6, Col: 1},
			To:   draughts.Position{Row: 5, Col: 0},
		}}
	}
	return &FixedSelector{Moves: moves}
}

// Bounded drops any move with an endpoint off the board.
type Bounded struct {
	Inner MoveSelector
	Debug int
}

func (s *Bounded) FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error) {
	ms, err := s.Inner.FindMoves(ctx, b, color)
	if err != nil {
		return nil, err
	}
	out := make([]draughts.Move, 0, len(ms))
	for _, m := range ms {
		if !m.Valid() {
			if s.Debug > 0 {
				log.Printf("dropping out-of-range move %+v", m)
			}
			continue
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Chain asks each selector in turn and returns the first non-empty
// answer. Errors abort the chain.
type Chain []MoveSelector

func (c Chain) FindMoves(ctx context.Context, b *draughts.Board, color draughts.Color) ([]draughts.Move, error) {
	for _, s := range c {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ms, err := s.FindMoves(ctx, b, color)
		if err != nil {
			return nil, err
		}
		if len(ms) > 0 {
			return ms, nil
		}
	}
	return nil, nil
}

var builtin = map[string]func() MoveSelector{
	"empty": func() MoveSelector { return Empty },
	"fixed": func() MoveSelector { return NewFixed() },
}

// Lookup resolves a built-in selector by name.
func Lookup(name string) (MoveSelector, error) {
	mk, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown selector %q (have %v)", name, Names())
	}
	return mk(), nil
}

func Names() []string {
	var out []string
	for k := range builtin {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
