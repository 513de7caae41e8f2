package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"inkcell-cli/internal/model"
)

type cellDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	gutter   lipgloss.Style
	busy     lipgloss.Style
	errored  lipgloss.Style
	marker   lipgloss.Style
}

func newCellDelegate() cellDelegate {
	return cellDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
		gutter:   lipgloss.NewStyle().Foreground(colorAccent),
		busy:     lipgloss.NewStyle().Foreground(colorBusy),
		errored:  lipgloss.NewStyle().Foreground(colorErr),
		marker:   lipgloss.NewStyle().Foreground(colorBanner),
	}
}

func (d cellDelegate) Height() int                             { return 1 }
func (d cellDelegate) Spacing() int                            { return 0 }
func (d cellDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d cellDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(cellItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		fmt.Fprint(w, "")
		return
	}

	gutterStyle := d.gutter
	switch ci.status {
	case model.StatusBusy, model.StatusQueued:
		gutterStyle = d.busy
	case model.StatusError:
		gutterStyle = d.errored
	}

	src := ci.firstLine
	if ci.vis.SourceHidden {
		src = "(source hidden)"
	}
	if strings.TrimSpace(src) == "" {
		src = " "
	}

	markers := ci.markers()
	line := gutterStyle.Render(ci.gutter()) + " " + src
	if markers != "" {
		line += "  " + d.marker.Render(markers)
	}

	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	if index == m.Index() {
		fmt.Fprint(w, d.selected.Render(xansi.Strip(line)))
		return
	}
	fmt.Fprint(w, d.normal.Render(line))
}
