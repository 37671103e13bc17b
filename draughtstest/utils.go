package draughtstest

import (
	"strings"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
)

const EmptyRow = ",,,,,,,,,"

// Input builds program input from a color and the given rows; missing
// rows are filled with EmptyRow.
func Input(color string, rows ...string) string {
	var out strings.Builder
	out.WriteString(color)
	out.WriteByte('\n')
	for r := 0; r < draughts.Size; r++ {
		if r < len(rows) {
			out.WriteString(rows[r])
		} else {
			out.WriteString(EmptyRow)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// Board places the given pieces, keyed by "RC" coordinates, on an empty
// board.
func Board(pieces map[string]string) *draughts.Board {
	var b draughts.Board
	for at, code := range pieces {
		p := draughts.Position{Row: int8(at[0] - '0'), Col: int8(at[1] - '0')}
		if err := b.Set(p, draughts.Occupied(draughts.Piece{
			Kind:  draughts.Kind(code[0]),
			Color: draughts.Color(code[1]),
		})); err != nil {
			panic(err)
		}
	}
	return &b
}

func Moves(s string) []draughts.Move {
	ms, err := notation.ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return ms
}

func Move(s string) draughts.Move {
	ms := Moves(s)
	if len(ms) != 1 {
		panic("expected exactly one move: " + s)
	}
	return ms[0]
}
