package book

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/draughtsbot/findmove/draughts"
	"github.com/draughtsbot/findmove/notation"
)

var ErrNotFound = errors.New("position not in book")

// Repository is a sqlite-backed table of known positions and the moves
// to answer them with.
type Repository struct {
	db *sqlx.DB

	lookup *sqlx.Stmt
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createPositionTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create positions table: %w", err)
	}
	repo := &Repository{db: db}
	repo.lookup, err = db.Preparex(selectStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func row(color draughts.Color, b *draughts.Board, ms []draughts.Move) *positionRow {
	return &positionRow{
		Key:   notation.Key(color, b),
		Color: string([]byte{byte(color)}),
		Board: notation.FormatBoard(b),
		Moves: notation.FormatMoves(ms),
	}
}

func (r *Repository) Put(ctx context.Context, color draughts.Color, b *draughts.Board, ms []draughts.Move) error {
	_, err := r.db.NamedExecContext(ctx, upsertStmt, row(color, b, ms))
	return err
}

func (r *Repository) Get(ctx context.Context, color draughts.Color, b *draughts.Board) ([]draughts.Move, error) {
	var pos positionRow
	err := r.lookup.GetContext(ctx, &pos, notation.Key(color, b))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ms, err := notation.ParseMoves(pos.Moves)
	if err != nil {
		return nil, fmt.Errorf("book entry %s: %w", pos.Key, err)
	}
	return ms, nil
}

func (r *Repository) Len(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, countStmt)
	return n, err
}

// Import reads records separated by blank lines. Each record is a
// program input (color line plus board) followed by one move line. All
// records go in a single transaction.
func (r *Repository) Import(ctx context.Context, in io.Reader) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	n := 0
	flush := func(lines []string) error {
		if len(lines) == 0 {
			return nil
		}
		if len(lines) != draughts.Size+2 {
			return fmt.Errorf("record %d: %d lines, want %d", n+1, len(lines), draughts.Size+2)
		}
		color, b, err := notation.ParseInput(strings.NewReader(strings.Join(lines[:draughts.Size+1], "\n")))
		if err != nil {
			return fmt.Errorf("record %d: %w", n+1, err)
		}
		ms, err := notation.ParseMoves(lines[draughts.Size+1])
		if err != nil {
			return fmt.Errorf("record %d: %w", n+1, err)
		}
		if _, err := tx.NamedExecContext(ctx, upsertStmt, row(color, b, ms)); err != nil {
			return fmt.Errorf("record %d: %w", n+1, err)
		}
		n++
		return nil
	}

	scan := bufio.NewScanner(in)
	var lines []string
	for scan.Scan() {
		line := strings.TrimRight(scan.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if err := flush(lines); err != nil {
				return 0, err
			}
			lines = nil
			continue
		}
		lines = append(lines, line)
	}
	if err := scan.Err(); err != nil {
		return 0, err
	}
	if err := flush(lines); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repository) Close() {
	if r.lookup != nil {
		r.lookup.Close()
	}
	r.db.Close()
}
