package notation

import (
	"bufio"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/draughtsbot/findmove/draughts"
)

// ParseInput reads the player color followed by draughts.Size board
// lines of draughts.Size comma-separated fields each. Blank lines before
// the color are skipped. Anything after the last board line is left
// unread or ignored.
func ParseInput(r io.Reader) (draughts.Color, *draughts.Board, error) {
	scan := bufio.NewScanner(r)
	line := 0
	first := ""
	for first == "" {
		line++
		if !scan.Scan() {
			if err := scan.Err(); err != nil {
				return draughts.NoColor, nil, scanError(err, line)
			}
			return draughts.NoColor, nil, &FormatError{Kind: MissingColor, Line: line}
		}
		first = strings.TrimSpace(scan.Text())
	}
	color := draughts.Color(first[0])

	var b draughts.Board
	for r := 0; r < draughts.Size; r++ {
		line++
		if !scan.Scan() {
			if err := scan.Err(); err != nil {
				return draughts.NoColor, nil, scanError(err, line)
			}
			return draughts.NoColor, nil, &FormatError{
				Kind: TruncatedInput,
				Line: line,
				Text: fmt.Sprintf("got %d of %d board lines", r, draughts.Size),
			}
		}
		row, err := parseRow(strings.TrimRight(scan.Text(), "\r"), line)
		if err != nil {
			return draughts.NoColor, nil, err
		}
		b.Cells[r] = row
	}
	return color, &b, nil
}

// scanError reports an over-long line as MalformedLine; other reader
// errors pass through.
func scanError(err error, line int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &FormatError{Kind: MalformedLine, Line: line, Text: "line too long"}
	}
	return err
}

// ParseBoard parses board lines only, without the leading color line.
func ParseBoard(s string) (*draughts.Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) < draughts.Size {
		return nil, &FormatError{
			Kind: TruncatedInput,
			Line: len(lines) + 1,
			Text: fmt.Sprintf("got %d of %d board lines", len(lines), draughts.Size),
		}
	}
	var b draughts.Board
	for r := 0; r < draughts.Size; r++ {
		row, err := parseRow(strings.TrimRight(lines[r], "\r"), r+1)
		if err != nil {
			return nil, err
		}
		b.Cells[r] = row
	}
	return &b, nil
}

func parseRow(text string, line int) ([draughts.Size]draughts.Cell, error) {
	var row [draughts.Size]draughts.Cell
	bits := strings.Split(text, ",")
	if len(bits) != draughts.Size {
		return row, &FormatError{
			Kind: MalformedLine,
			Line: line,
			Text: fmt.Sprintf("%d fields, want %d", len(bits), draughts.Size),
		}
	}
	for c, bit := range bits {
		switch len(bit) {
		case 0:
			row[c] = draughts.Empty
		case 2:
			row[c] = draughts.Occupied(draughts.Piece{
				Kind:  draughts.Kind(bit[0]),
				Color: draughts.Color(bit[1]),
			})
		default:
			return row, &FormatError{
				Kind:  MalformedPieceCode,
				Line:  line,
				Field: c + 1,
				Text:  bit,
			}
		}
	}
	return row, nil
}

// FormatBoard renders the board lines accepted by ParseBoard, one row per
// line, each terminated by a newline.
func FormatBoard(b *draughts.Board) string {
	var out strings.Builder
	for r := range b.Cells {
		for c, cell := range b.Cells[r] {
			if c > 0 {
				out.WriteByte(',')
			}
			out.WriteString(cell.String())
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// FormatInput renders the full program input: color line then board.
func FormatInput(color draughts.Color, b *draughts.Board) string {
	return string([]byte{byte(color), '\n'}) + FormatBoard(b)
}

// Key identifies a position by the sha1 of its program input.
func Key(color draughts.Color, b *draughts.Board) string {
	sum := sha1.Sum([]byte(FormatInput(color, b)))
	return hex.EncodeToString(sum[:])
}
