package draughts

import "fmt"

type Color byte
type Kind byte

const (
	White   Color = 'W'
	Black   Color = 'B'
	NoColor Color = 0

	Man  Kind = 'M'
	King Kind = 'K'
)

// Piece is a single token on the board. Both fields are raw bytes from the
// wire format; the conventional values are the constants above.
type Piece struct {
	Kind  Kind
	Color Color
}

func MakePiece(color Color, kind Kind) Piece {
	return Piece{Kind: kind, Color: color}
}

// String returns the two-character piece code, kind first.
func (p Piece) String() string {
	return string([]byte{byte(p.Kind), byte(p.Color)})
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		return fmt.Sprintf("color %q", byte(c))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return c
	}
}

// Cell is either empty or holds exactly one piece.
type Cell struct {
	piece    Piece
	occupied bool
}

var Empty Cell

func Occupied(p Piece) Cell {
	return Cell{piece: p, occupied: true}
}

func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

func (c Cell) String() string {
	if !c.occupied {
		return ""
	}
	return c.piece.String()
}
