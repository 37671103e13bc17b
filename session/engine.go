package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/draughtsbot/findmove/ai"
	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
)

// Engine answers a stream of positions. Positions are separated by any
// number of blank lines; each answer is one line on out, empty when the
// selector found nothing, in which case the no-moves message also goes to
// diag.
type Engine struct {
	Selector ai.MoveSelector
	Debug    int

	in   *bufio.Reader
	out  io.Writer
	diag io.Writer
}

func NewEngine(in io.Reader, out, diag io.Writer, sel ai.MoveSelector) *Engine {
	return &Engine{
		Selector: sel,
		in:       bufio.NewReader(in),
		out:      out,
		diag:     diag,
	}
}

// Run returns nil at end of input and the first parse or selector error
// otherwise.
func (e *Engine) Run(ctx context.Context) error {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := e.next()
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		n++
		color, b, err := notation.ParseInput(strings.NewReader(strings.Join(record, "\n")))
		if err != nil {
			return fmt.Errorf("position %d: %w", n, err)
		}
		ms, err := e.Selector.FindMoves(ctx, b, color)
		if err != nil {
			return fmt.Errorf("position %d: %w", n, err)
		}
		if e.Debug > 0 {
			log.Printf("position %d: %d moves", n, len(ms))
		}
		if len(ms) == 0 {
			if _, err := fmt.Fprintln(e.diag, notation.NoMovesMessage); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(e.out, notation.FormatMoves(ms)); err != nil {
			return err
		}
	}
}

// next reads the lines of one position, or nil at a clean end of input.
// A position cut short by end of input is handed to the parser so the
// error names what was missing.
func (e *Engine) next() ([]string, error) {
	var lines []string
	for len(lines) < draughts.Size+1 {
		line, err := e.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if err == io.EOF && line == "" {
			break
		}
		if len(lines) > 0 || strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return lines, nil
}
