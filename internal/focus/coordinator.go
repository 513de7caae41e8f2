// Package focus computes navigation targets and turns them into document
// store commands. The coordinator holds no state of its own: it reads the
// current order, decides, and emits.
package focus

import (
	"fmt"

	"inkcell-cli/internal/model"
	"inkcell-cli/internal/store"
)

// Document is the read/dispatch surface the coordinator needs.
// *store.Dispatcher satisfies it.
type Document interface {
	Order() []model.CellID
	Dispatch(cmd store.Command) error
}

type Coordinator struct {
	doc Document
}

func NewCoordinator(doc Document) *Coordinator {
	return &Coordinator{doc: doc}
}

// SelectCell focuses a cell without touching editor focus. Selecting an id
// that is not in the order is a caller error.
func (c *Coordinator) SelectCell(id model.CellID) error {
	return c.doc.Dispatch(store.FocusCell{ID: id})
}

func (c *Coordinator) FocusEditor(id model.CellID) error {
	// Cell focus first, editor focus second: consumers observing between
	// the two commands see a selected cell with no focused editor, which
	// is the documented staging order.
	if err := c.doc.Dispatch(store.FocusCell{ID: id}); err != nil {
		return err
	}
	return c.doc.Dispatch(store.FocusEditor{ID: id})
}

func (c *Coordinator) UnfocusEditor() error {
	return c.doc.Dispatch(store.UnfocusEditor{})
}

// FocusAbove moves selection and editor focus to the predecessor of id.
// On the first cell it emits nothing (no wraparound, no redundant
// reselect).
func (c *Coordinator) FocusAbove(id model.CellID) error {
	order := c.doc.Order()
	i := indexOf(order, id)
	if i < 0 {
		return fmt.Errorf("focus above: unknown cell %q", id)
	}
	if i == 0 {
		return nil
	}
	if err := c.doc.Dispatch(store.FocusPreviousCell{ID: id}); err != nil {
		return err
	}
	return c.doc.Dispatch(store.FocusPreviousCellEditor{ID: id})
}

// FocusBelow moves selection and editor focus to the successor of id. On
// the last cell it either appends a fresh cell (createIfMissing) or emits
// nothing.
func (c *Coordinator) FocusBelow(id model.CellID, createIfMissing bool) error {
	order := c.doc.Order()
	i := indexOf(order, id)
	if i < 0 {
		return fmt.Errorf("focus below: unknown cell %q", id)
	}
	if i == len(order)-1 && !createIfMissing {
		return nil
	}
	target := id
	if err := c.doc.Dispatch(store.FocusNextCell{ID: &target, CreateIfMissing: createIfMissing}); err != nil {
		return err
	}
	return c.doc.Dispatch(store.FocusNextCellEditor{ID: &target})
}

func indexOf(order []model.CellID, id model.CellID) int {
	for i, cur := range order {
		if cur == id {
			return i
		}
	}
	return -1
}
