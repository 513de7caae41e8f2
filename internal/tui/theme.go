package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. The editor must stay readable on both light and dark
// terminal backgrounds, so colors are lipgloss.AdaptiveColor throughout
// and "faint" styling is reserved for dark backgrounds (faint on light
// terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue
	colorBusy       lipgloss.TerminalColor = ac("130", "214")
	colorErr        lipgloss.TerminalColor = ac("160", "203")
	colorBanner     lipgloss.TerminalColor = ac("94", "179")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(colorMuted)
	bannerStyle = lipgloss.NewStyle().Foreground(colorBanner)
	hiddenStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// markdownStyle maps the configured theme to a glamour standard style.
// "auto" picks from the terminal background via termenv.
func markdownStyle(configured string) string {
	switch configured {
	case "", "auto":
		if termenv.HasDarkBackground() {
			return "dark"
		}
		return "light"
	default:
		return configured
	}
}
