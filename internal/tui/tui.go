package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"inkcell-cli/internal/kernel"
	"inkcell-cli/internal/model"
	"inkcell-cli/internal/store"
)

// Run opens the notebook at path in the interactive editor and blocks
// until the user quits. A missing file starts as a fresh single-cell
// notebook (created on first save).
func Run(path string, s store.Store) error {
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}

	doc, err := store.LoadNotebook(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("open %s: %w", path, err)
		}
		doc = store.NewDocument()
		fresh := &model.Cell{ID: model.NewCellID(), CellType: model.CellTypeCode, Status: model.StatusIdle}
		fresh.Metadata.Normalize()
		doc.AppendCell(fresh)
	}

	disp := store.NewDispatcher(doc, nil)
	runner := kernel.NewEchoRunner(disp)
	disp.SetExecutor(runner)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner.Start(ctx)
	defer runner.Shutdown()

	m := newAppModel(path, cfg, disp)
	restoreUIState(ctx, s, &m)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(appModel); ok {
		persistUIState(ctx, s, fm)
		if cfg.Autosave && fm.dirty {
			disp.View(func(d *store.Document) {
				err = store.SaveNotebook(path, d)
			})
		}
	}
	return err
}

// restoreUIState reapplies the last session's focus, best effort: a stale
// cell id (edited elsewhere, cell deleted) is simply ignored.
func restoreUIState(ctx context.Context, s store.Store, m *appModel) {
	st, err := s.LoadUIState(ctx, m.path)
	if err != nil || st.FocusedCellID == "" {
		return
	}
	id := model.CellID(st.FocusedCellID)
	if err := m.coord.SelectCell(id); err != nil {
		return
	}
	if st.EditorFocused {
		_ = m.coord.FocusEditor(id)
	}
	m.syncFromDoc()
}

func persistUIState(ctx context.Context, s store.Store, m appModel) {
	st := &store.UIState{
		NotebookPath: m.path,
		ScrollIndex:  m.cells.Index(),
	}
	f := m.disp.Focus()
	if f.FocusedCellID != nil {
		st.FocusedCellID = string(*f.FocusedCellID)
	}
	st.EditorFocused = f.FocusedEditorID != nil
	_ = s.SaveUIState(ctx, st)
}
