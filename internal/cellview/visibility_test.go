package cellview

import (
	"testing"

	"inkcell-cli/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveNonCodeCellsNeverHideSource(t *testing.T) {
	meta := model.CellMetadata{
		InputHidden:    boolPtr(true),
		HideInput:      boolPtr(true),
		OutputHidden:   boolPtr(true),
		OutputExpanded: boolPtr(true),
	}
	for _, ct := range []model.CellType{model.CellTypeMarkdown, model.CellTypeRaw} {
		v := Resolve(ct, meta, 3)
		if v.SourceHidden || v.OutputHidden || v.OutputExpanded {
			t.Fatalf("%s cell: all flags must be false, got %+v", ct, v)
		}
	}
}

func TestResolveSourceHidden(t *testing.T) {
	cases := []struct {
		name string
		meta model.CellMetadata
		want bool
	}{
		{"neither", model.CellMetadata{}, false},
		{"inputHidden", model.CellMetadata{InputHidden: boolPtr(true)}, true},
		{"legacy hide_input", model.CellMetadata{HideInput: boolPtr(true)}, true},
		{"both", model.CellMetadata{InputHidden: boolPtr(true), HideInput: boolPtr(true)}, true},
		{"explicit false", model.CellMetadata{InputHidden: boolPtr(false)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Resolve(model.CellTypeCode, tc.meta, 1)
			if v.SourceHidden != tc.want {
				t.Fatalf("SourceHidden=%v, want %v", v.SourceHidden, tc.want)
			}
		})
	}
}

func TestResolveOutputHiddenWhenNoOutputs(t *testing.T) {
	// Zero outputs hides the output area even when metadata says otherwise.
	v := Resolve(model.CellTypeCode, model.CellMetadata{OutputHidden: boolPtr(false)}, 0)
	if !v.OutputHidden {
		t.Fatalf("expected OutputHidden=true for zero outputs")
	}
	v = Resolve(model.CellTypeCode, model.CellMetadata{}, 2)
	if v.OutputHidden {
		t.Fatalf("expected OutputHidden=false with outputs present and no override")
	}
	v = Resolve(model.CellTypeCode, model.CellMetadata{OutputHidden: boolPtr(true)}, 2)
	if !v.OutputHidden {
		t.Fatalf("expected OutputHidden=true when collapsed by the user")
	}
}

func TestResolveOutputExpanded(t *testing.T) {
	v := Resolve(model.CellTypeCode, model.CellMetadata{OutputExpanded: boolPtr(true)}, 1)
	if !v.OutputExpanded {
		t.Fatalf("expected OutputExpanded=true")
	}
}
