package ai

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	ms, err := Empty.FindMoves(context.Background(), draughts.NewBoard(), draughts.White)
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestFixed(t *testing.T) {
	f := NewFixed()
	ms, err := f.FindMoves(context.Background(), draughts.NewBoard(), draughts.Black)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, draughts.Position{Row: 6, Col: 1}, ms[0].From)
	assert.Equal(t, draughts.Position{Row: 5, Col: 0}, ms[0].To)

	ms[0].From.Row = 3
	again, _ := f.FindMoves(context.Background(), nil, draughts.White)
	assert.Equal(t, int8(6), again[0].From.Row)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}
	_, err := Lookup("minimax")
	assert.Error(t, err)
}

func randomMove(r *rand.Rand) draughts.Move {
	c := func() int8 { return int8(r.Intn(14) - 2) }
	return draughts.Move{
		From: draughts.Position{Row: c(), Col: c()},
		To:   draughts.Position{Row: c(), Col: c()},
	}
}

func TestSelectorsStayOnBoard(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	ctx := context.Background()
	for i := 0; i < 200; i++ {
		var raw []draughts.Move
		for j := r.Intn(6); j > 0; j-- {
			raw = append(raw, randomMove(r))
		}
		selectors := []MoveSelector{
			Empty,
			NewFixed(),
			&Bounded{Inner: NewFixed(raw...)},
		}
		for _, s := range selectors {
			ms, err := s.FindMoves(ctx, draughts.NewBoard(), draughts.White)
			require.NoError(t, err)
			for _, m := range ms {
				assert.True(t, m.Valid(), "%T returned %+v", s, m)
			}
		}
	}
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	want := NewFixed()
	var calls int
	counting := SelectorFunc(func(context.Context, *draughts.Board, draughts.Color) ([]draughts.Move, error) {
		calls++
		return nil, nil
	})

	ms, err := Chain{Empty, counting, want, counting}.FindMoves(ctx, nil, draughts.White)
	require.NoError(t, err)
	assert.Equal(t, want.Moves, ms)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	failing := SelectorFunc(func(context.Context, *draughts.Board, draughts.Color) ([]draughts.Move, error) {
		return nil, boom
	})
	_, err = Chain{failing, want}.FindMoves(ctx, nil, draughts.White)
	assert.Equal(t, boom, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Chain{want}.FindMoves(cancelled, nil, draughts.White)
	assert.Equal(t, context.Canceled, err)
}
