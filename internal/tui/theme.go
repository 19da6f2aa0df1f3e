package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// Blocks must stay readable on light and dark backgrounds, so colors are
// adaptive and "faint" is only applied on dark terminals.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted       lipgloss.TerminalColor = ac("240", "243")
	colorAccent      lipgloss.TerminalColor = ac("27", "62")
	colorBlockBorder lipgloss.TerminalColor = ac("250", "243")
	colorDragBorder  lipgloss.TerminalColor = ac("232", "255")
	colorGlideBorder lipgloss.TerminalColor = ac("245", "248")
	colorError       lipgloss.TerminalColor = ac("160", "203")
)

var (
	styleTitle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted      = faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
	styleError      = lipgloss.NewStyle().Foreground(colorError)
	styleBlock      = lipgloss.NewStyle().Foreground(colorBlockBorder)
	styleBlockDrag  = lipgloss.NewStyle().Bold(true).Foreground(colorDragBorder)
	styleBlockGlide = lipgloss.NewStyle().Foreground(colorGlideBorder)
)

// asciiBorder is used when the terminal cannot be trusted with box drawing.
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// borderNamed maps a config border name to its runes. Unknown names fall back
// to rounded.
func borderNamed(name string) lipgloss.Border {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return lipgloss.NormalBorder()
	case "ascii":
		return asciiBorder
	default:
		return lipgloss.RoundedBorder()
	}
}

// applyColorProfile honors NO_COLOR before the program starts drawing.
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
