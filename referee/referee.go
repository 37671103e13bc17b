package referee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
)

var ErrTimeout = errors.New("player timed out")

// waitDelay bounds how long Run waits for the player's output to close
// once the player has been killed.
const waitDelay = time.Second

// ExitError is returned when the player program exits unsuccessfully.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("player exited with status %d", e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Runner feeds a position to an external player program and reads back
// its moves.
type Runner struct {
	Command []string
	Timeout time.Duration
	Debug   int

	// Stderr, if set, receives a copy of the player's stderr as it runs.
	Stderr io.Writer
}

type Result struct {
	ID         string
	Moves      []draughts.Move
	Diagnostic string
	Elapsed    time.Duration
}

func (r *Runner) Run(ctx context.Context, color draughts.Color, b *draughts.Board) (*Result, error) {
	if len(r.Command) == 0 {
		return nil, errors.New("no player command")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	res := &Result{ID: uuid.NewString()}
	cmd := exec.CommandContext(ctx, r.Command[0], r.Command[1:]...)
	cmd.Stdin = strings.NewReader(notation.FormatInput(color, b))
	// Pipe writers rather than files, so exec does the copying and
	// WaitDelay can close the pipes if something outlives the kill.
	stdout, outW := io.Pipe()
	stderr, errW := io.Pipe()
	cmd.Stdout = outW
	cmd.Stderr = errW
	cmd.WaitDelay = waitDelay
	killGroup(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", r.Command[0], err)
	}
	if r.Debug > 0 {
		log.Printf("[%s] started %s", res.ID, strings.Join(r.Command, " "))
	}

	var out, diag bytes.Buffer
	var diagW io.Writer = &diag
	if r.Stderr != nil {
		diagW = io.MultiWriter(&diag, r.Stderr)
	}
	var grp errgroup.Group
	grp.Go(func() error {
		_, err := io.Copy(&out, stdout)
		return err
	})
	grp.Go(func() error {
		_, err := io.Copy(diagW, stderr)
		return err
	})
	waitErr := cmd.Wait()
	outW.Close()
	errW.Close()
	copyErr := grp.Wait()
	res.Elapsed = time.Since(start)
	res.Diagnostic = strings.TrimSpace(diag.String())

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("[%s] after %s: %w", res.ID, res.Elapsed, ErrTimeout)
	}
	if waitErr != nil {
		var ee *exec.ExitError
		if errors.As(waitErr, &ee) {
			return nil, &ExitError{Code: ee.ExitCode(), Stderr: res.Diagnostic}
		}
		return nil, waitErr
	}
	if copyErr != nil {
		return nil, copyErr
	}

	ms, err := notation.ParseMoves(out.String())
	if err != nil {
		return nil, err
	}
	res.Moves = ms
	if r.Debug > 0 {
		log.Printf("[%s] %d moves in %s", res.ID, len(res.Moves), res.Elapsed)
	}
	return res, nil
}

// Play applies ms in order to a copy of b. Moves are only checked for
// bounds and occupancy.
func Play(b *draughts.Board, ms []draughts.Move) (*draughts.Board, error) {
	out := b.Clone()
	for i, m := range ms {
		if err := out.Apply(m); err != nil {
			return nil, fmt.Errorf("move %d %s: %w", i+1, notation.FormatMove(m), err)
		}
	}
	return out, nil
}
