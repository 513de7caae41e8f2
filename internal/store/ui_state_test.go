package store

import (
	"context"
	"testing"
)

func TestUIStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	// Unknown notebook: zero state, no error.
	st, err := s.LoadUIState(ctx, "/tmp/nb.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.FocusedCellID != "" || st.EditorFocused || st.ScrollIndex != 0 {
		t.Fatalf("expected zero state, got %+v", st)
	}

	want := &UIState{
		NotebookPath:  "/tmp/nb.json",
		FocusedCellID: "cell-42",
		EditorFocused: true,
		ScrollIndex:   7,
	}
	if err := s.SaveUIState(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Upsert on the same path.
	want.ScrollIndex = 9
	if err := s.SaveUIState(ctx, want); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := s.LoadUIState(ctx, "/tmp/nb.json")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.FocusedCellID != "cell-42" || !got.EditorFocused || got.ScrollIndex != 9 {
		t.Fatalf("reload = %+v", got)
	}

	// Other notebooks are unaffected.
	other, err := s.LoadUIState(ctx, "/tmp/other.json")
	if err != nil {
		t.Fatalf("load other: %v", err)
	}
	if other.FocusedCellID != "" {
		t.Fatalf("state leaked across notebooks: %+v", other)
	}
}

func TestUIStateBestEffortWithoutDir(t *testing.T) {
	ctx := context.Background()
	s := Store{}
	if err := s.SaveUIState(ctx, &UIState{NotebookPath: "x"}); err != nil {
		t.Fatalf("save without dir should be a no-op, got %v", err)
	}
	st, err := s.LoadUIState(ctx, "x")
	if err != nil || st == nil {
		t.Fatalf("load without dir should return zero state, got %v %v", st, err)
	}
}
