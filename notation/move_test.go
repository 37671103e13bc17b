package notation

import (
	"bytes"
	"testing"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mv(r1, c1, r2, c2 int8) draughts.Move {
	return draughts.Move{
		From: draughts.Position{Row: r1, Col: c1},
		To:   draughts.Position{Row: r2, Col: c2},
	}
}

func TestFormatMoves(t *testing.T) {
	assert.Equal(t, "61,50;", FormatMove(mv(6, 1, 5, 0)))
	assert.Equal(t, "61,50;23,14;", FormatMoves([]draughts.Move{mv(6, 1, 5, 0), mv(2, 3, 1, 4)}))
	assert.Equal(t, "", FormatMoves(nil))
}

func TestWriteMoves(t *testing.T) {
	cases := []struct {
		moves []draughts.Move
		out   string
		diag  string
	}{
		{nil, "", NoMovesMessage + "\n"},
		{[]draughts.Move{mv(6, 1, 5, 0)}, "61,50;\n", ""},
		{[]draughts.Move{mv(6, 1, 5, 0), mv(2, 3, 1, 4)}, "61,50;23,14;\n", ""},
	}
	for _, tc := range cases {
		var out, diag bytes.Buffer
		require.NoError(t, WriteMoves(&out, &diag, tc.moves))
		assert.Equal(t, tc.out, out.String())
		assert.Equal(t, tc.diag, diag.String())
	}
}

func TestParseMoves(t *testing.T) {
	cases := []struct {
		in  string
		out []draughts.Move
	}{
		{"", nil},
		{"\n", nil},
		{"61,50;\n", []draughts.Move{mv(6, 1, 5, 0)}},
		{"61,50;23,14;", []draughts.Move{mv(6, 1, 5, 0), mv(2, 3, 1, 4)}},
		{"61,50;\n23,14;\n", []draughts.Move{mv(6, 1, 5, 0), mv(2, 3, 1, 4)}},
	}
	for _, tc := range cases {
		got, err := ParseMoves(tc.in)
		require.NoError(t, err, "ParseMoves(%q)", tc.in)
		assert.Equal(t, tc.out, got, "ParseMoves(%q)", tc.in)
	}
}

func TestParseMovesErrors(t *testing.T) {
	cases := []struct {
		in    string
		index int
		token string
	}{
		{"61,50", 0, "61,50"},
		{"61,50;2x,14;", 1, "2x,14"},
		{"61,50;;", 1, ""},
		{"6,50;", 0, "6,50"},
	}
	for _, tc := range cases {
		_, err := ParseMoves(tc.in)
		require.Error(t, err, tc.in)
		me, ok := err.(*MoveError)
		require.True(t, ok, "%T", err)
		assert.Equal(t, tc.index, me.Index, tc.in)
		assert.Equal(t, tc.token, me.Token, tc.in)
	}
}

func TestMovesRoundTrip(t *testing.T) {
	var ms []draughts.Move
	for i := int8(0); i < draughts.Size; i++ {
		ms = append(ms, mv(i, 9-i, (i+3)%10, i))
	}
	got, err := ParseMoves(FormatMoves(ms))
	require.NoError(t, err)
	assert.Equal(t, ms, got)
}
