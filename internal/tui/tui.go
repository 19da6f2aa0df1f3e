// Package tui is the terminal host for the reorder engine: it lays blocks out
// as bordered boxes, feeds mouse events to the engine and animates the result.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	applyColorProfile()
	m := newAppModel(ctx, opts)
	_, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	).Run()
	m.board.sorter.Close()
	return err
}
