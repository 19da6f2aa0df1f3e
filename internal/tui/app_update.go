package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.board.dirty = true

	case blocksLoadedMsg:
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			m.status = msg.err.Error()
			m.logger.Error("load blocks", "source", m.src.String(), "err", msg.err)
			m.board.setBlocks(nil)
			break
		}
		m.status = ""
		m.logger.Info("loaded blocks", "source", m.src.String(), "count", len(msg.blocks))
		m.board.setBlocks(msg.blocks)

	case deferredMsg:
		msg.fn()

	case animTickMsg:
		m.board.animating = false

	case tea.MouseMsg:
		m.board.pointer(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.board.sorter.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			if !m.loading && !m.board.sorter.Dragging() {
				m.loading = true
				cmds = append(cmds, m.load())
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	if m.board.dirty {
		m.board.layout(m.frame())
	}
	cmds = append(cmds, m.board.sched.flush(), m.board.animate())
	return m, tea.Batch(cmds...)
}
