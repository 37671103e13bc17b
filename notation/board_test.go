package notation

import (
	"errors"
	"strings"
	"testing"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyRow = ",,,,,,,,,"

func input(color string, rows ...string) string {
	var lines []string
	lines = append(lines, color)
	for r := 0; r < draughts.Size; r++ {
		if r < len(rows) {
			lines = append(lines, rows[r])
		} else {
			lines = append(lines, emptyRow)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestParseInputEmpty(t *testing.T) {
	color, b, err := ParseInput(strings.NewReader(input("W")))
	require.NoError(t, err)
	assert.Equal(t, draughts.White, color)
	for r := range b.Cells {
		for c := range b.Cells[r] {
			assert.True(t, b.Cells[r][c].IsEmpty(), "%d,%d", r, c)
		}
	}
}

func TestParseInputPiece(t *testing.T) {
	in := input("B", emptyRow, emptyRow, emptyRow, ",,,,MW,,,,,")
	color, b, err := ParseInput(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, draughts.Black, color)
	for r := range b.Cells {
		for c := range b.Cells[r] {
			pc, ok := b.Cells[r][c].Piece()
			if r == 3 && c == 4 {
				require.True(t, ok)
				assert.Equal(t, draughts.Kind('M'), pc.Kind)
				assert.Equal(t, draughts.Color('W'), pc.Color)
			} else {
				assert.False(t, ok, "%d,%d", r, c)
			}
		}
	}
}

func TestParseInputColorLine(t *testing.T) {
	in := "White player\r\n" + strings.Join(strings.Split(input("x"), "\n")[1:], "\r\n")
	color, _, err := ParseInput(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, draughts.White, color)
}

func TestParseInputSkipsBlankLines(t *testing.T) {
	in := "\n  \r\n" + input("B", ",MW,,,,,,,,")
	color, b, err := ParseInput(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, draughts.Black, color)
	p, ok := b.At(draughts.Position{Row: 0, Col: 1}).Piece()
	require.True(t, ok)
	assert.Equal(t, draughts.Piece{Kind: draughts.Man, Color: draughts.White}, p)

	_, _, err = ParseInput(strings.NewReader("W\n\n" + emptyRow + "\n"))
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, MalformedLine, fe.Kind, "blank lines after the color are board lines")
}

func TestParseInputErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		kind  ErrorKind
		is    error
		line  int
		field int
	}{
		{"no input", "", MissingColor, ErrMissingColor, 1, 0},
		{"blank color", "  \n", MissingColor, ErrMissingColor, 2, 0},
		{"short line", input("W", emptyRow, ",,,"), MalformedLine, ErrMalformedLine, 3, 0},
		{"long line", input("W", emptyRow+","), MalformedLine, ErrMalformedLine, 2, 0},
		{"short piece", input("W", "M,,,,,,,,,"), MalformedPieceCode, ErrMalformedPieceCode, 2, 1},
		{"long piece", input("W", emptyRow, emptyRow, ",,MWX,,,,,,,"), MalformedPieceCode, ErrMalformedPieceCode, 4, 3},
		{"oversized line", input("W", strings.Repeat("MW,", 25000)), MalformedLine, ErrMalformedLine, 2, 0},
		{"oversized after blanks", "\n\n" + input("W", emptyRow, strings.Repeat(",", 70000)), MalformedLine, ErrMalformedLine, 5, 0},
		{"truncated", "W\n" + emptyRow + "\n" + emptyRow + "\n", TruncatedInput, ErrTruncatedInput, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, b, err := ParseInput(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Nil(t, b)

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "err=%v", err)
			assert.Equal(t, tc.kind, fe.Kind)
			assert.Equal(t, tc.line, fe.Line)
			assert.Equal(t, tc.field, fe.Field)
			assert.True(t, errors.Is(err, tc.is))
		})
	}
}

func TestParseInputIgnoresTrailing(t *testing.T) {
	in := input("W") + "garbage\n"
	_, _, err := ParseInput(strings.NewReader(in))
	assert.NoError(t, err)
}

func TestFormatInputRoundTrip(t *testing.T) {
	b := draughts.NewBoard()
	require.NoError(t, b.Set(draughts.Position{Row: 4, Col: 4}, draughts.Occupied(draughts.MakePiece(draughts.White, draughts.King))))

	text := FormatInput(draughts.Black, b)
	color, got, err := ParseInput(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, draughts.Black, color)
	assert.True(t, b.Equal(got))

	rows := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, rows, 11)
	assert.Equal(t, "B", rows[0])
	assert.Equal(t, "MB,,MB,,MB,,MB,,MB,", rows[1])
	assert.Equal(t, ",,,,KW,,,,,", rows[5])

	again, err := ParseBoard(FormatBoard(got))
	require.NoError(t, err)
	assert.True(t, b.Equal(again))
}

func TestParseBoardTruncated(t *testing.T) {
	_, err := ParseBoard(emptyRow + "\n" + emptyRow)
	assert.True(t, errors.Is(err, ErrTruncatedInput))
}

func TestKey(t *testing.T) {
	b := draughts.NewBoard()
	assert.NotEqual(t, Key(draughts.White, b), Key(draughts.Black, b))
	assert.Equal(t, Key(draughts.White, b), Key(draughts.White, b.Clone()))
	assert.Len(t, Key(draughts.White, b), 40)
}
