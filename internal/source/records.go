package source

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"blocksort-cli/internal/model"
)

// envelopeKeys name the fields that may wrap the record list. The upstream
// API answers with [{"programming": [...]}].
var envelopeKeys = []string{"programming", "blocks", "items"}

// blocksFrom converts a decoded JSON/YAML document into blocks. It accepts a
// bare record list, an object holding one under an envelope key, or a list
// whose first element is such an object.
func blocksFrom(doc any) ([]model.Block, error) {
	records, err := recordList(doc)
	if err != nil {
		return nil, err
	}
	out := make([]model.Block, 0, len(records))
	for i, r := range records {
		b, err := toBlock(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func recordList(doc any) ([]any, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		if len(v) > 0 {
			if inner, ok := envelope(v[0]); ok {
				return inner, nil
			}
		}
		return v, nil
	case map[string]any:
		if inner, ok := envelope(v); ok {
			return inner, nil
		}
		return nil, fmt.Errorf("object has none of the fields %s", strings.Join(envelopeKeys, ", "))
	default:
		return nil, fmt.Errorf("unexpected document type %T", doc)
	}
}

func envelope(v any) ([]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, k := range envelopeKeys {
		if inner, ok := m[k].([]any); ok {
			return inner, true
		}
	}
	return nil, false
}

func toBlock(v any) (model.Block, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return model.Block{}, fmt.Errorf("expected an object, got %T", v)
	}
	id := idString(first(m, "blockId", "id"))
	if id == "" {
		return model.Block{}, fmt.Errorf("missing blockId")
	}
	label, _ := first(m, "language", "label", "name").(string)
	return model.Block{ID: id, Label: label}, nil
}

func first(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// idString renders identifiers that arrive as numbers or strings.
func idString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
