package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the delay used for NextFrame callbacks and animation ticks.
const frameInterval = 16 * time.Millisecond

// deferredMsg carries a scheduled callback back into Update.
type deferredMsg struct{ fn func() }

// loopScheduler implements dnd.Scheduler on top of the bubbletea event loop.
// Callbacks are queued as commands and run when their message arrives, so the
// engine is only ever touched from Update.
type loopScheduler struct {
	pending []tea.Cmd

	// tick builds the command for one deferred callback. Tests replace it.
	tick func(d time.Duration, fn func()) tea.Cmd
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{tick: tickDeferred}
}

func tickDeferred(d time.Duration, fn func()) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return deferredMsg{fn: fn} })
}

func (s *loopScheduler) After(d time.Duration, fn func()) {
	if cmd := s.tick(d, fn); cmd != nil {
		s.pending = append(s.pending, cmd)
	}
}

func (s *loopScheduler) NextFrame(fn func()) { s.After(frameInterval, fn) }

// flush hands queued callbacks to the runtime.
func (s *loopScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
