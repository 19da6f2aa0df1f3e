package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"blocksort-cli/internal/model"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileSource reads blocks from a JSON or YAML file. JSON files may contain
// comments and trailing commas.
type FileSource struct {
	Path string
}

func (s *FileSource) String() string { return s.Path }

func (s *FileSource) Load(ctx context.Context) ([]model.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(s.Path, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	blocks, err := blocksFrom(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return blocks, nil
}

func decodeDocument(path string, b []byte) (any, error) {
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, nil
	}
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(b), &doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
