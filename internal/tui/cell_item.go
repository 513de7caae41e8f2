package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"inkcell-cli/internal/cellview"
	"inkcell-cli/internal/model"
)

// cellItem is a render snapshot of one cell: the delegate reads only this,
// never the live document.
type cellItem struct {
	id          model.CellID
	cellType    model.CellType
	status      model.CellStatus
	firstLine   string
	execCount   *int
	outputCount int
	vis         cellview.Visibility
	banners     []cellview.Banner
}

func (i cellItem) FilterValue() string { return i.firstLine }

func newCellItem(c *model.Cell) cellItem {
	first := c.Source
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	return cellItem{
		id:          c.ID,
		cellType:    c.CellType,
		status:      c.Status,
		firstLine:   first,
		execCount:   c.ExecutionCount,
		outputCount: len(c.Outputs),
		vis:         cellview.Resolve(c.CellType, c.Metadata, len(c.Outputs)),
		banners:     cellview.BannersFor(c.Metadata),
	}
}

// gutter is the per-cell prompt: execution counter for code cells, a type
// tag for the rest. Status overrides the counter while the kernel works.
func (i cellItem) gutter() string {
	switch i.cellType {
	case model.CellTypeMarkdown:
		return "[md ]"
	case model.CellTypeRaw:
		return "[raw]"
	}
	switch i.status {
	case model.StatusQueued:
		return "[ · ]"
	case model.StatusBusy:
		return "[ * ]"
	case model.StatusError:
		return "[ ! ]"
	}
	if i.execCount != nil {
		return "[" + pad3(strconv.Itoa(*i.execCount)) + "]"
	}
	return "[   ]"
}

func pad3(s string) string {
	for len(s) < 3 {
		s = " " + s
	}
	return s
}

// markers summarizes derived visibility and banners, rightmost on the row.
func (i cellItem) markers() string {
	var parts []string
	for _, b := range i.banners {
		switch b {
		case cellview.BannerParametrized:
			parts = append(parts, "param")
		case cellview.BannerDefaultParameters:
			parts = append(parts, "defaults")
		}
	}
	if i.vis.SourceHidden {
		parts = append(parts, "src:hidden")
	}
	if i.cellType == model.CellTypeCode && i.outputCount > 0 && i.vis.OutputHidden {
		parts = append(parts, "out:hidden")
	}
	if i.vis.OutputExpanded {
		parts = append(parts, "out:expanded")
	}
	return strings.Join(parts, " ")
}

var _ list.Item = cellItem{}
