package store

import (
	"encoding/json"
	"fmt"
	"os"

	"inkcell-cli/internal/model"
)

// wireNotebook is the on-disk document shape. Cell ids are part of the
// format; legacy notebooks without ids get fresh ones assigned on load
// (and keep them on the next save).
type wireNotebook struct {
	Version int          `json:"version"`
	Cells   []model.Cell `json:"cells"`
}

const notebookVersion = 1

// LoadNotebook reads a notebook document from path and enforces the order
// invariant (unique ids, every order entry backed by a record).
func LoadNotebook(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeNotebook(b)
}

func decodeNotebook(b []byte) (*Document, error) {
	var wire wireNotebook
	if err := json.Unmarshal(b, &wire); err != nil {
		return nil, fmt.Errorf("parse notebook: %w", err)
	}

	doc := NewDocument()
	for i := range wire.Cells {
		c := wire.Cells[i]
		if c.ID == "" {
			c.ID = model.NewCellID()
		}
		if c.CellType == "" {
			c.CellType = model.CellTypeCode
		}
		if !c.CellType.Valid() {
			return nil, fmt.Errorf("cell %q: unknown cell type %q", c.ID, c.CellType)
		}
		if _, dup := doc.Cells[c.ID]; dup {
			return nil, fmt.Errorf("duplicate cell id %q", c.ID)
		}
		c.Status = model.StatusIdle
		c.Metadata.Normalize()
		cell := c
		doc.AppendCell(&cell)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveNotebook writes the document atomically (tmp file + rename).
// Runtime-only state (cell status, focus) is not persisted.
func SaveNotebook(path string, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	wire := wireNotebook{Version: notebookVersion, Cells: make([]model.Cell, 0, len(doc.Order))}
	for _, id := range doc.Order {
		wire.Cells = append(wire.Cells, *doc.Cells[id])
	}
	b, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
