package notation

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/draughtsbot/findmove/draughts"
)

const NoMovesMessage = "No moves were returned."

var moveRE = regexp.MustCompile(`^([0-9])([0-9]),([0-9])([0-9])$`)

// FormatMove renders a move as "RC,RC;". Positions are not checked, so an
// out-of-range coordinate prints as its decimal value.
func FormatMove(m draughts.Move) string {
	return fmt.Sprintf("%d%d,%d%d;", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

func FormatMoves(ms []draughts.Move) string {
	var out strings.Builder
	for _, m := range ms {
		out.WriteString(FormatMove(m))
	}
	return out.String()
}

// ParseMoves parses a move line. Whitespace anywhere in the input is
// ignored, so one move per line parses the same as a single line.
func ParseMoves(s string) ([]draughts.Move, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, nil
	}
	toks := strings.Split(s, ";")
	if last := toks[len(toks)-1]; last != "" {
		return nil, &MoveError{Index: len(toks) - 1, Token: last}
	}
	toks = toks[:len(toks)-1]
	out := make([]draughts.Move, 0, len(toks))
	for i, tok := range toks {
		groups := moveRE.FindStringSubmatch(tok)
		if groups == nil {
			return nil, &MoveError{Index: i, Token: tok}
		}
		out = append(out, draughts.Move{
			From: draughts.Position{Row: int8(groups[1][0] - '0'), Col: int8(groups[2][0] - '0')},
			To:   draughts.Position{Row: int8(groups[3][0] - '0'), Col: int8(groups[4][0] - '0')},
		})
	}
	return out, nil
}

// WriteMoves prints the move line to out. With no moves it writes
// NoMovesMessage to diag instead and leaves out untouched; that is not
// an error.
func WriteMoves(out, diag io.Writer, ms []draughts.Move) error {
	if len(ms) == 0 {
		_, err := fmt.Fprintln(diag, NoMovesMessage)
		return err
	}
	_, err := io.WriteString(out, FormatMoves(ms)+"\n")
	return err
}
