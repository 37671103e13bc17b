package book

const createPositionTable = `
CREATE TABLE IF NOT EXISTS positions (
  hash string primary key,
  color string not null,
  board string not null,
  moves string not null
)`

const upsertStmt = `
INSERT OR REPLACE INTO positions (hash, color, board, moves)
VALUES (:hash, :color, :board, :moves)
`

const selectStmt = `
SELECT hash, color, board, moves FROM positions WHERE hash = ?
`

const countStmt = `SELECT count(*) FROM positions`

type positionRow struct {
	Key   string `db:"hash"`
	Color string `db:"color"`
	Board string `db:"board"`
	Moves string `db:"moves"`
}
