package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkcell-cli/internal/cellview"
	"inkcell-cli/internal/focus"
	"inkcell-cli/internal/gesture"
	"inkcell-cli/internal/model"
	"inkcell-cli/internal/reorder"
	"inkcell-cli/internal/store"
)

type refreshTickMsg struct{}

type appModel struct {
	path string
	cfg  store.Config

	disp  *store.Dispatcher
	coord *focus.Coordinator

	width  int
	height int

	cells  list.Model
	editor textarea.Model

	// editing mirrors FocusedEditorID: key events go to the textarea while
	// an editor is focused, to the cell list otherwise.
	editing  bool
	editorID model.CellID

	// attached is the keyboard listener lifecycle: set when the notebook
	// view becomes active, cleared on teardown. Key events arriving while
	// detached are dropped.
	attached bool

	dirty      bool
	minibuffer string
}

func newAppModel(path string, cfg store.Config, disp *store.Dispatcher) appModel {
	m := appModel{
		path:  path,
		cfg:   cfg,
		disp:  disp,
		coord: focus.NewCoordinator(disp),
		// The view is active from construction until teardown; this is the
		// keyboard listener registration.
		attached: true,
	}

	m.cells = list.New([]list.Item{}, newCellDelegate(), 0, 0)
	m.cells.Title = "Cells"
	m.cells.SetShowHelp(false)
	m.cells.SetShowStatusBar(false)
	m.cells.SetFilteringEnabled(false)

	m.editor = textarea.New()
	m.editor.Placeholder = "…"
	m.editor.CharLimit = 0
	m.editor.ShowLineNumbers = false

	m.refreshCells()
	return m
}

func (m appModel) Init() tea.Cmd { return tickRefresh() }

func tickRefresh() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case refreshTickMsg:
		// Kernel results arrive out of band; refresh snapshots so status
		// and outputs stay current.
		m.refreshCells()
		return m, tickRefresh()

	case tea.KeyMsg:
		if !m.attached {
			return m, nil
		}
		if msg.Type == tea.KeyCtrlC {
			return m.teardown()
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	m.cells, cmd = m.cells.Update(msg)
	return m, cmd
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ev, ok := gestureEventFromKey(msg); ok {
		if res := gesture.Route(ev); res.Consumed {
			m.commitEditor()
			m.runGesture(res.Commands)
			m.syncFromDoc()
			return m, nil
		}
	}

	if msg.Type == tea.KeyEsc {
		m.commitEditor()
		_ = m.coord.UnfocusEditor()
		m.syncFromDoc()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ev, ok := gestureEventFromKey(msg); ok {
		if res := gesture.Route(ev); res.Consumed {
			m.runGesture(res.Commands)
			m.syncFromDoc()
			return m, nil
		}
		// Plain enter opens the selected cell's editor.
		if msg.Type == tea.KeyEnter && !msg.Alt {
			if id, ok := m.selectedID(); ok {
				_ = m.coord.FocusEditor(id)
				m.syncFromDoc()
			}
			return m, nil
		}
	}

	switch {
	case isMoveUp(msg):
		m.moveSelected(true)
		return m, nil
	case isMoveDown(msg):
		m.moveSelected(false)
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m.teardown()
	case "s":
		m.saveNotebook()
		return m, nil
	case "h":
		m.toggleMeta(func(meta *model.CellMetadata) {
			meta.InputHidden = toggled(meta.InputHidden)
			meta.HideInput = nil // legacy key is dropped once the user touches the toggle
		})
		return m, nil
	case "o":
		m.toggleMeta(func(meta *model.CellMetadata) {
			meta.OutputHidden = toggled(meta.OutputHidden)
		})
		return m, nil
	case "x":
		m.toggleMeta(func(meta *model.CellMetadata) {
			meta.OutputExpanded = toggled(meta.OutputExpanded)
		})
		return m, nil
	}

	var cmd tea.Cmd
	m.cells, cmd = m.cells.Update(msg)
	// Arrow navigation moved the list cursor; mirror it into cell focus.
	if id, ok := m.selectedID(); ok {
		_ = m.coord.SelectCell(id)
	}
	return m, cmd
}

// runGesture replays the router's command sequence against the store, in
// the order emitted.
func (m *appModel) runGesture(cmds []gesture.Command) {
	for _, c := range cmds {
		switch c.Kind {
		case gesture.CmdExecuteFocusedCell:
			_ = m.disp.Dispatch(store.ExecuteFocusedCell{})
		case gesture.CmdFocusNextCell:
			if err := m.disp.Dispatch(store.FocusNextCell{CreateIfMissing: c.CreateIfMissing}); err == nil {
				m.dirty = true // may have appended a cell
			}
		case gesture.CmdFocusNextCellEditor:
			_ = m.disp.Dispatch(store.FocusNextCellEditor{})
		}
	}
}

func (m *appModel) moveSelected(up bool) {
	id, ok := m.selectedID()
	if !ok {
		return
	}
	order := m.disp.Order()
	i := -1
	for j, cur := range order {
		if cur == id {
			i = j
			break
		}
	}
	var dest model.CellID
	var above bool
	switch {
	case up && i > 0:
		dest, above = order[i-1], true
	case !up && i >= 0 && i < len(order)-1:
		dest, above = order[i+1], false
	default:
		return
	}

	_, moved, err := reorder.PlanDrop(order, id, dest, above)
	if err != nil || !moved {
		return
	}
	if err := m.disp.Dispatch(store.MoveCell{ID: id, Destination: dest, Above: above}); err != nil {
		return
	}
	m.dirty = true
	m.refreshCells()
	m.selectByID(id)
}

func (m *appModel) toggleMeta(mutate func(*model.CellMetadata)) {
	id, ok := m.selectedID()
	if !ok {
		return
	}
	var meta model.CellMetadata
	found := false
	m.disp.View(func(d *store.Document) {
		if c, ok := d.Cell(id); ok {
			meta = c.Metadata
			found = true
		}
	})
	if !found {
		return
	}
	mutate(&meta)
	if err := m.disp.Dispatch(store.UpdateCellMetadata{ID: id, Metadata: meta}); err != nil {
		return
	}
	m.dirty = true
	m.refreshCells()
}

func toggled(b *bool) *bool {
	v := b == nil || !*b
	return &v
}

func (m *appModel) commitEditor() {
	if m.editorID == "" {
		return
	}
	if err := m.disp.Dispatch(store.SetCellSource{ID: m.editorID, Source: m.editor.Value()}); err == nil {
		m.dirty = true
	}
}

func (m *appModel) saveNotebook() {
	var err error
	m.disp.View(func(d *store.Document) {
		err = store.SaveNotebook(m.path, d)
	})
	if err != nil {
		m.minibuffer = "save failed: " + err.Error()
		return
	}
	m.dirty = false
	m.minibuffer = "saved " + m.path
}

func (m *appModel) selectedID() (model.CellID, bool) {
	it, ok := m.cells.SelectedItem().(cellItem)
	if !ok {
		return "", false
	}
	return it.id, true
}

func (m *appModel) selectByID(id model.CellID) {
	for i, it := range m.cells.Items() {
		if ci, ok := it.(cellItem); ok && ci.id == id {
			m.cells.Select(i)
			return
		}
	}
}

func (m *appModel) refreshCells() {
	cur, hadSel := m.selectedID()
	var items []list.Item
	m.disp.View(func(d *store.Document) {
		for _, id := range d.Order {
			items = append(items, newCellItem(d.Cells[id]))
		}
	})
	m.cells.SetItems(items)
	if hadSel {
		m.selectByID(cur)
	}
}

// syncFromDoc pulls focus state back out of the document after dispatching
// focus commands: list selection follows the focused cell, and the editor
// opens or closes to match the focused editor.
func (m *appModel) syncFromDoc() {
	m.refreshCells()

	f := m.disp.Focus()
	if f.FocusedCellID != nil {
		m.selectByID(*f.FocusedCellID)
	}

	if f.FocusedEditorID == nil {
		m.editing = false
		m.editorID = ""
		m.editor.Blur()
		return
	}

	id := *f.FocusedEditorID
	if !m.editing || m.editorID != id {
		var src string
		m.disp.View(func(d *store.Document) {
			if c, ok := d.Cell(id); ok {
				src = c.Source
			}
		})
		m.editor.SetValue(src)
		m.editor.CursorEnd()
	}
	m.editing = true
	m.editorID = id
	m.editor.Focus()
}

func (m appModel) teardown() (tea.Model, tea.Cmd) {
	// Deregister before quitting so a late key event cannot fire into a
	// torn-down view.
	m.attached = false
	if m.editing {
		m.commitEditor()
	}
	return m, tea.Quit
}

func (m *appModel) resize() {
	h := m.height - 2 // header + footer
	if h < 8 {
		h = 8
	}
	listH := h / 2
	m.cells.SetSize(m.width, listH)
	m.editor.SetWidth(m.width - 2)
	m.editor.SetHeight(h - listH - 1)
}

func (m appModel) View() string {
	dirtyMark := ""
	if m.dirty {
		dirtyMark = " *"
	}
	header := headerStyle.Render(fmt.Sprintf("inkcell  %s%s  (%d cells)", m.path, dirtyMark, len(m.cells.Items())))

	body := m.cells.View()

	var pane string
	if m.editing {
		pane = m.editor.View()
	} else {
		pane = m.previewPane()
	}

	help := "enter: edit  shift+enter: run+advance  ctrl+enter: run  shift+↑/↓: move  h/o/x: visibility  s: save  q: quit"
	footer := footerStyle.Render(help)
	if m.minibuffer != "" {
		footer = footerStyle.Render(m.minibuffer)
	}

	return strings.Join([]string{header, body, pane, footer}, "\n")
}

// previewPane renders the selected cell below the list, honoring derived
// visibility: hidden source collapses to a stub, hidden output renders
// nothing, expanded output is not clipped.
func (m appModel) previewPane() string {
	id, ok := m.selectedID()
	if !ok {
		return hiddenStyle.Render("(no cell selected)")
	}

	var cell *model.Cell
	m.disp.View(func(d *store.Document) {
		if c, ok := d.Cell(id); ok {
			copied := *c
			cell = &copied
		}
	})
	if cell == nil {
		return ""
	}

	width := m.width - 2
	if cell.CellType == model.CellTypeMarkdown {
		return renderMarkdown(cell.Source, markdownStyle(m.cfg.Theme), width)
	}

	vis := cellview.Resolve(cell.CellType, cell.Metadata, len(cell.Outputs))
	var parts []string
	for _, b := range cellview.BannersFor(cell.Metadata) {
		parts = append(parts, bannerStyle.Render("— "+string(b)+" —"))
	}
	if vis.SourceHidden {
		parts = append(parts, hiddenStyle.Render("(source hidden)"))
	} else {
		parts = append(parts, cell.Source)
	}
	if cell.CellType == model.CellTypeCode && !vis.OutputHidden {
		out := renderOutputs(cell.Outputs, vis.OutputExpanded)
		if out != "" {
			parts = append(parts, faintIfDark(lipgloss.NewStyle()).Render(out))
		}
	}
	return strings.Join(parts, "\n")
}

const collapsedOutputLines = 4

func renderOutputs(outputs []model.Output, expanded bool) string {
	var lines []string
	for _, o := range outputs {
		if s, ok := o.Data["text/plain"].(string); ok {
			lines = append(lines, strings.Split(s, "\n")...)
		} else {
			lines = append(lines, fmt.Sprintf("(output %d)", o.Index))
		}
	}
	if !expanded && len(lines) > collapsedOutputLines {
		lines = append(lines[:collapsedOutputLines], "…")
	}
	return strings.Join(lines, "\n")
}
