package draughts

import "errors"

const Size = 10

type Position struct {
	Row, Col int8
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

type Move struct {
	From, To Position
}

func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// Board is row-major: Cells[row][col].
type Board struct {
	Cells [Size][Size]Cell
}

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrEmptySource = errors.New("no piece on source cell")
	ErrOccupied    = errors.New("destination is occupied")
)

// NewBoard returns the opening layout: men on every cell with an even
// row+col, black on the first three rows and white on the last three.
func NewBoard() *Board {
	var b Board
	fill := func(row int, color Color) {
		for col := 0; col < Size; col++ {
			if (row+col)%2 == 0 {
				b.Cells[row][col] = Occupied(MakePiece(color, Man))
			}
		}
	}
	for r := 0; r < 3; r++ {
		fill(r, Black)
		fill(Size-1-r, White)
	}
	return &b
}

func (b *Board) At(p Position) Cell {
	if !p.Valid() {
		return Empty
	}
	return b.Cells[p.Row][p.Col]
}

func (b *Board) Set(p Position, c Cell) error {
	if !p.Valid() {
		return ErrOutOfBounds
	}
	b.Cells[p.Row][p.Col] = c
	return nil
}

func (b *Board) Count(color Color) int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if pc, ok := b.Cells[r][c].Piece(); ok && pc.Color == color {
				n++
			}
		}
	}
	return n
}

func (b *Board) Equal(rhs *Board) bool {
	return b.Cells == rhs.Cells
}

func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Apply relocates the piece at m.From to m.To. It checks occupancy and
// bounds only; captures and promotion are not modelled.
func (b *Board) Apply(m Move) error {
	if !m.Valid() {
		return ErrOutOfBounds
	}
	src := b.At(m.From)
	if src.IsEmpty() {
		return ErrEmptySource
	}
	if m.From != m.To && !b.At(m.To).IsEmpty() {
		return ErrOccupied
	}
	b.Cells[m.From.Row][m.From.Col] = Empty
	b.Cells[m.To.Row][m.To.Col] = src
	return nil
}
