package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const uiStateDBFileName = "ui_state.sqlite"

// UIState is small, per-notebook UI state for restoring the last session
// on relaunch. Intentionally best effort: callers tolerate missing or
// stale data (e.g. a focused cell that no longer exists).
type UIState struct {
	NotebookPath  string
	FocusedCellID string
	EditorFocused bool
	ScrollIndex   int
}

func (s Store) uiStateDBPath() string {
	return filepath.Join(s.Dir, uiStateDBFileName)
}

func (s Store) openUIStateDB(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.uiStateDBPath())
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS ui_state (
	notebook_path   TEXT PRIMARY KEY,
	focused_cell_id TEXT NOT NULL DEFAULT '',
	editor_focused  INTEGER NOT NULL DEFAULT 0,
	scroll_index    INTEGER NOT NULL DEFAULT 0,
	updated_at      TEXT NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) LoadUIState(ctx context.Context, notebookPath string) (*UIState, error) {
	st := &UIState{NotebookPath: notebookPath}
	if strings.TrimSpace(s.Dir) == "" || strings.TrimSpace(notebookPath) == "" {
		return st, nil
	}
	db, err := s.openUIStateDB(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var editorFocused int
	row := db.QueryRowContext(ctx,
		`SELECT focused_cell_id, editor_focused, scroll_index FROM ui_state WHERE notebook_path = ?`,
		notebookPath)
	if err := row.Scan(&st.FocusedCellID, &editorFocused, &st.ScrollIndex); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return st, nil
		}
		return nil, err
	}
	st.EditorFocused = editorFocused != 0
	return st, nil
}

func (s Store) SaveUIState(ctx context.Context, st *UIState) error {
	if st == nil || strings.TrimSpace(s.Dir) == "" || strings.TrimSpace(st.NotebookPath) == "" {
		return nil
	}
	db, err := s.openUIStateDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	editorFocused := 0
	if st.EditorFocused {
		editorFocused = 1
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO ui_state (notebook_path, focused_cell_id, editor_focused, scroll_index, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(notebook_path) DO UPDATE SET
	focused_cell_id = excluded.focused_cell_id,
	editor_focused  = excluded.editor_focused,
	scroll_index    = excluded.scroll_index,
	updated_at      = excluded.updated_at`,
		st.NotebookPath, st.FocusedCellID, editorFocused, st.ScrollIndex,
		time.Now().UTC().Format(time.RFC3339))
	return err
}
