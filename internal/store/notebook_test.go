package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkcell-cli/internal/model"
)

func TestNotebookRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.json")

	doc := NewDocument()
	hidden := true
	doc.AppendCell(&model.Cell{
		ID:       "cell-1",
		CellType: model.CellTypeCode,
		Source:   "print(1)",
		Metadata: model.CellMetadata{InputHidden: &hidden, Tags: []string{"parameters"}},
		Outputs:  []model.Output{{Index: 0, Data: map[string]any{"text/plain": "1"}}},
	})
	doc.AppendCell(&model.Cell{ID: "cell-2", CellType: model.CellTypeMarkdown, Source: "# hi"})

	if err := SaveNotebook(path, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadNotebook(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Order) != 2 || got.Order[0] != "cell-1" || got.Order[1] != "cell-2" {
		t.Fatalf("order = %v", got.Order)
	}
	c := got.Cells["cell-1"]
	if c.Source != "print(1)" || len(c.Outputs) != 1 {
		t.Fatalf("cell-1 = %+v", c)
	}
	if c.Metadata.InputHidden == nil || !*c.Metadata.InputHidden {
		t.Fatalf("metadata lost on round trip: %+v", c.Metadata)
	}
	if !c.Metadata.HasTag("parameters") {
		t.Fatalf("tags lost on round trip")
	}
	if c.Status != model.StatusIdle {
		t.Fatalf("runtime status must reset on load, got %s", c.Status)
	}
}

func TestLoadNotebookAssignsMissingIDs(t *testing.T) {
	doc, err := decodeNotebook([]byte(`{"cells":[{"cell_type":"code","source":"x"},{"cell_type":"raw","source":"y"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Order) != 2 {
		t.Fatalf("order = %v", doc.Order)
	}
	for _, id := range doc.Order {
		if !strings.HasPrefix(string(id), "cell-") {
			t.Fatalf("expected generated id, got %q", id)
		}
	}
	if doc.Order[0] == doc.Order[1] {
		t.Fatalf("generated ids must be unique")
	}
}

func TestLoadNotebookLegacyMetadataKeys(t *testing.T) {
	doc, err := decodeNotebook([]byte(`{"cells":[{"id":"a","cell_type":"code","source":"","metadata":{"hide_input":true,"output_hidden":true}}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := doc.Cells["a"].Metadata
	if m.HideInput == nil || !*m.HideInput {
		t.Fatalf("legacy hide_input not honored: %+v", m)
	}
	if m.OutputHidden == nil || !*m.OutputHidden {
		t.Fatalf("legacy output_hidden not honored: %+v", m)
	}
}

func TestLoadNotebookRejectsInvalid(t *testing.T) {
	if _, err := decodeNotebook([]byte(`{"cells":[{"id":"a","cell_type":"code"},{"id":"a","cell_type":"code"}]}`)); err == nil {
		t.Fatalf("duplicate ids must be rejected")
	}
	if _, err := decodeNotebook([]byte(`{"cells":[{"id":"a","cell_type":"widget"}]}`)); err == nil {
		t.Fatalf("unknown cell type must be rejected")
	}
}

func TestSaveNotebookAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nb.json")
	doc := NewDocument()
	doc.AppendCell(&model.Cell{ID: "a", CellType: model.CellTypeCode})

	if err := SaveNotebook(path, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind")
	}
}

func TestDocumentValidate(t *testing.T) {
	d := NewDocument()
	d.AppendCell(&model.Cell{ID: "a", CellType: model.CellTypeCode})
	if err := d.Validate(); err != nil {
		t.Fatalf("valid doc rejected: %v", err)
	}

	d.Order = append(d.Order, "ghost")
	if err := d.Validate(); err == nil {
		t.Fatalf("order entry without a record must fail validation")
	}

	d.Order = d.Order[:1]
	d.Cells["orphan"] = &model.Cell{ID: "orphan", CellType: model.CellTypeCode}
	if err := d.Validate(); err == nil {
		t.Fatalf("record outside the order must fail validation")
	}
}
