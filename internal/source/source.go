// Package source loads the initial block list from wherever the user points
// blocksort: a local JSON/YAML file, an HTTP endpoint, a SQLite database, or
// the built-in demo list.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"blocksort-cli/internal/model"
)

// ErrUnknownSource is returned by Open for specs it cannot resolve.
var ErrUnknownSource = errors.New("unknown source")

// Source supplies the block list once at startup. An empty result is valid.
type Source interface {
	Load(ctx context.Context) ([]model.Block, error)
	String() string
}

// Open resolves a source spec:
//
//	"" or "demo"          built-in sample list
//	http(s)://...         HTTP endpoint returning the upstream JSON envelope
//	sqlite:<path>         SQLite database with a blocks table
//	<path>.db|.sqlite     same, inferred from the extension
//	<path>                JSON (comments allowed) or YAML file
func Open(spec string) (Source, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "" || spec == "demo":
		return Demo(), nil
	case strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://"):
		return &HTTPSource{URL: spec}, nil
	case strings.HasPrefix(spec, "sqlite:"):
		path := strings.TrimPrefix(spec, "sqlite:")
		if path == "" {
			return nil, fmt.Errorf("%w: %q (missing sqlite path)", ErrUnknownSource, spec)
		}
		return &SQLiteSource{Path: path}, nil
	}

	switch strings.ToLower(filepath.Ext(spec)) {
	case ".db", ".sqlite", ".sqlite3":
		return &SQLiteSource{Path: spec}, nil
	case ".json", ".jsonc", ".yaml", ".yml", "":
		return &FileSource{Path: spec}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, spec)
	}
}

type staticSource struct {
	name   string
	blocks []model.Block
}

func (s staticSource) Load(ctx context.Context) ([]model.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Block(nil), s.blocks...), nil
}

func (s staticSource) String() string { return s.name }

// Static returns a source that always yields blocks.
func Static(blocks ...model.Block) Source {
	return staticSource{name: "static", blocks: blocks}
}

// Demo returns the built-in sample list.
func Demo() Source {
	return staticSource{name: "demo", blocks: []model.Block{
		{ID: "1", Label: "Go"},
		{ID: "2", Label: "TypeScript"},
		{ID: "3", Label: "Rust"},
		{ID: "4", Label: "Python"},
		{ID: "5", Label: "SQL"},
		{ID: "6", Label: "Shell"},
	}}
}
