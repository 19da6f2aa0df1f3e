package tui

import (
	"time"

	"blocksort-cli/internal/model"
	"blocksort-cli/internal/source"

	"github.com/charmbracelet/log"
)

const (
	// blockHeight is the row count of one bordered block. The hit test only
	// accepts strictly interior points, so blocks need at least one inner row.
	blockHeight = 3

	headerHeight      = 2
	marginX           = 1
	defaultBlockWidth = 40
	minBlockWidth     = 8
)

// Options configures the TUI.
type Options struct {
	Source source.Source

	// Cooldown is the drag hit-test window and the glide duration.
	Cooldown time.Duration

	// Border is rounded, normal or ascii.
	Border string
	// Gap is the number of blank rows between blocks.
	Gap int
	// Width caps block width. Zero fits the terminal.
	Width int

	Logger *log.Logger
}

type blocksLoadedMsg struct {
	blocks []model.Block
	err    error
}

type animTickMsg struct{}
