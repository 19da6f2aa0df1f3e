package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	header := styleTitle.Render("blocksort") + "  " + styleMuted.Render(m.src.String())
	footer := m.footer()

	f := m.frame()
	width := m.width
	if width <= 0 {
		width = f.x*2 + f.width
	}
	height := m.height - headerHeight - lipgloss.Height(footer)
	if m.height <= 0 {
		height = 0
		for _, n := range m.board.nodes {
			if b := n.visualRect().Bottom() - headerHeight; b > height {
				height = b
			}
		}
	}

	c := newCanvas(width, height)
	for _, n := range m.board.paintOrder() {
		r := n.visualRect()
		c.draw(r.X, r.Y-headerHeight, m.renderBlock(n))
	}

	return header + "\n\n" + c.String() + "\n" + footer
}

func (m appModel) footer() string {
	var status string
	switch {
	case m.status != "":
		status = styleError.Render("error: " + m.status)
	case m.loading && !m.loaded:
		status = styleMuted.Render("loading…")
	case len(m.board.blocks) == 0:
		status = styleMuted.Render("no blocks")
	default:
		if n := m.board.dragged(); n != nil {
			status = styleMuted.Render(fmt.Sprintf("moving %s", n.block.Title()))
		} else {
			status = styleMuted.Render(fmt.Sprintf("%d blocks · drag to reorder", len(m.board.blocks)))
		}
	}
	return status + "\n" + m.help.View(m.keys)
}

// renderBlock draws one node as a bordered box, blockHeight rows tall.
func (m appModel) renderBlock(n *blockNode) []string {
	border, st := m.border, styleBlock
	switch {
	case n.grabbed():
		if m.border != asciiBorder {
			border = lipgloss.ThickBorder()
		}
		st = styleBlockDrag
	case n.glide.dur > 0:
		st = styleBlockGlide
	}

	inner := n.rect.Width - 2
	if inner < 0 {
		inner = 0
	}
	label := xansi.Truncate(" "+n.block.Title(), inner, "…")
	if w := xansi.StringWidth(label); w < inner {
		label += strings.Repeat(" ", inner-w)
	}
	return []string{
		st.Render(border.TopLeft + strings.Repeat(border.Top, inner) + border.TopRight),
		st.Render(border.Left) + label + st.Render(border.Right),
		st.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight),
	}
}
