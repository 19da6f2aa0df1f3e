package tui

import (
	"context"
	"io"

	"blocksort-cli/internal/source"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type appModel struct {
	ctx    context.Context
	src    source.Source
	opts   Options
	logger *log.Logger
	border lipgloss.Border

	width  int
	height int

	loading bool
	loaded  bool
	// status is the last load error, shown in the footer.
	status string

	keys keyMap
	help help.Model

	board *board
}

func newAppModel(ctx context.Context, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	src := opts.Source
	if src == nil {
		src = source.Demo()
	}
	return appModel{
		ctx:     ctx,
		src:     src,
		opts:    opts,
		logger:  logger,
		border:  borderNamed(opts.Border),
		loading: true,
		keys:    defaultKeyMap(),
		help:    help.New(),
		board:   newBoard(opts.Cooldown, logger.WithPrefix("dnd")),
	}
}

func (m appModel) Init() tea.Cmd { return m.load() }

func (m appModel) load() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		blocks, err := src.Load(ctx)
		return blocksLoadedMsg{blocks: blocks, err: err}
	}
}

// frame computes where blocks go for the current terminal size.
func (m appModel) frame() frame {
	w := defaultBlockWidth
	if m.width > 0 {
		w = m.width - 2*marginX
	}
	if m.opts.Width > 0 && w > m.opts.Width {
		w = m.opts.Width
	}
	if w < minBlockWidth {
		w = minBlockWidth
	}
	gap := m.opts.Gap
	if gap < 0 {
		gap = 0
	}
	return frame{x: marginX, y: headerHeight, width: w, gap: gap}
}
