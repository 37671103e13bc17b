package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/draughtsbot/findmove/draughts"
)

type Glyphs struct {
	Empty string
	// Pieces maps a two-character piece code to its glyph. Codes not
	// listed render as themselves.
	Pieces map[string]string
}

var DefaultGlyphs = Glyphs{Empty: "."}

var UnicodeGlyphs = Glyphs{
	Empty: "·",
	Pieces: map[string]string{
		"MW": "⛀",
		"KW": "⛁",
		"MB": "⛂",
		"KB": "⛃",
	},
}

func (g *Glyphs) glyph(c draughts.Cell) string {
	p, ok := c.Piece()
	if !ok {
		return g.Empty
	}
	if s, ok := g.Pieces[p.String()]; ok {
		return s
	}
	return p.String()
}

func RenderBoard(g *Glyphs, out io.Writer, color draughts.Color, b *draughts.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	if color != draughts.NoColor {
		fmt.Fprintf(out, "[%s to play]\n", color)
	}
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	fmt.Fprintf(w, "\t")
	for c := 0; c < draughts.Size; c++ {
		fmt.Fprintf(w, "%d\t", c)
	}
	fmt.Fprintf(w, "\n")
	for r := range b.Cells {
		fmt.Fprintf(w, "%d\t", r)
		for _, cell := range b.Cells[r] {
			fmt.Fprintf(w, "%s\t", g.glyph(cell))
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
}
