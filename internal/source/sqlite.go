package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"blocksort-cli/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads blocks from a database with a table shaped like
//
//	CREATE TABLE blocks (block_id, label TEXT, position INTEGER);
//
// The database is only read; reordering never writes back.
type SQLiteSource struct {
	Path string
}

func (s *SQLiteSource) String() string { return "sqlite:" + s.Path }

func (s *SQLiteSource) Load(ctx context.Context) ([]model.Block, error) {
	// sql.Open would create a missing file.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA query_only=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path, err)
		}
	}

	rows, err := db.QueryContext(ctx, `SELECT block_id, COALESCE(label, '') FROM blocks ORDER BY position, rowid`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	defer rows.Close()

	var out []model.Block
	for rows.Next() {
		var (
			id    any
			label string
		)
		if err := rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path, err)
		}
		bid := idString(id)
		if bid == "" {
			continue
		}
		out = append(out, model.Block{ID: bid, Label: label})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return out, nil
}
