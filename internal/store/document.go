package store

import (
	"fmt"

	"inkcell-cli/internal/model"
)

// Document is the notebook as an explicit value: the authoritative cell
// order, the cell records it references, and the current focus state.
// There is no ambient global document; everything that reads or mutates a
// notebook is handed one of these (usually via a Dispatcher).
type Document struct {
	Order []model.CellID
	Cells map[model.CellID]*model.Cell
	Focus model.FocusState
}

func NewDocument() *Document {
	return &Document{Cells: map[model.CellID]*model.Cell{}}
}

func (d *Document) Cell(id model.CellID) (*model.Cell, bool) {
	c, ok := d.Cells[id]
	return c, ok
}

func (d *Document) IndexOf(id model.CellID) int {
	for i, cur := range d.Order {
		if cur == id {
			return i
		}
	}
	return -1
}

// Successor returns the cell after id in the order, if any.
func (d *Document) Successor(id model.CellID) (model.CellID, bool) {
	i := d.IndexOf(id)
	if i < 0 || i+1 >= len(d.Order) {
		return "", false
	}
	return d.Order[i+1], true
}

// Predecessor returns the cell before id in the order, if any.
func (d *Document) Predecessor(id model.CellID) (model.CellID, bool) {
	i := d.IndexOf(id)
	if i <= 0 {
		return "", false
	}
	return d.Order[i-1], true
}

// AppendCell adds a cell to the end of the order.
func (d *Document) AppendCell(c *model.Cell) {
	if d.Cells == nil {
		d.Cells = map[model.CellID]*model.Cell{}
	}
	d.Cells[c.ID] = c
	d.Order = append(d.Order, c.ID)
}

// Validate checks the order/record correspondence invariant: every id in
// the order appears exactly once and resolves to a cell, and no cell is
// orphaned outside the order.
func (d *Document) Validate() error {
	seen := map[model.CellID]bool{}
	for _, id := range d.Order {
		if seen[id] {
			return fmt.Errorf("duplicate cell id %q in order", id)
		}
		seen[id] = true
		if _, ok := d.Cells[id]; !ok {
			return fmt.Errorf("order references unknown cell %q", id)
		}
	}
	for id := range d.Cells {
		if !seen[id] {
			return fmt.Errorf("cell %q missing from order", id)
		}
	}
	return nil
}
