package notation

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	MissingColor ErrorKind = iota + 1
	MalformedLine
	MalformedPieceCode
	TruncatedInput
)

var (
	ErrMissingColor       = errors.New("missing player color")
	ErrMalformedLine      = errors.New("malformed board line")
	ErrMalformedPieceCode = errors.New("malformed piece code")
	ErrTruncatedInput     = errors.New("truncated input")
)

func (k ErrorKind) err() error {
	switch k {
	case MissingColor:
		return ErrMissingColor
	case MalformedLine:
		return ErrMalformedLine
	case MalformedPieceCode:
		return ErrMalformedPieceCode
	case TruncatedInput:
		return ErrTruncatedInput
	}
	return nil
}

func (k ErrorKind) String() string {
	if e := k.err(); e != nil {
		return e.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// FormatError reports where board input stopped making sense. Line is
// 1-based over the whole input, so the first board row is line 2. Field
// is 1-based and zero when the error concerns the whole line.
type FormatError struct {
	Kind  ErrorKind
	Line  int
	Field int
	Text  string
}

func (e *FormatError) Error() string {
	switch {
	case e.Field > 0:
		return fmt.Sprintf("line %d field %d: %s: %q", e.Line, e.Field, e.Kind, e.Text)
	case e.Text != "":
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Kind, e.Text)
	default:
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Kind.err()
}

// MoveError is returned when a move line cannot be parsed.
type MoveError struct {
	Index int
	Token string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d: bad move %q", e.Index+1, e.Token)
}
