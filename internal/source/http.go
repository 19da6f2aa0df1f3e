package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blocksort-cli/internal/model"
)

const maxResponseBytes = 8 << 20

// HTTPSource fetches blocks with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) String() string { return s.URL }

func (s *HTTPSource) Load(ctx context.Context) ([]model.Block, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", s.URL, resp.Status)
	}
	var doc any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("GET %s: decode: %w", s.URL, err)
	}
	blocks, err := blocksFrom(doc)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", s.URL, err)
	}
	return blocks, nil
}
