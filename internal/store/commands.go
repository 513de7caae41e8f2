package store

import (
	"fmt"

	"inkcell-cli/internal/model"
	"inkcell-cli/internal/reorder"
)

// Command is one atomic mutation of the document. Commands are applied by
// a Dispatcher strictly in submission order; a command either applies in
// full or returns an error leaving the document untouched.
//
// Unknown cell ids are caller-contract breaches and abort the dispatch
// with an error. The only recoverable error kind is
// reorder.ErrInvalidMove from MoveCell.
type Command interface {
	apply(d *Document, x *Dispatcher) error
}

// ExecuteFocusedCell queues the focused cell for execution. Execution is
// fire-and-forget: the command marks the cell queued and hands it to the
// executor; results come back later as separate commands. With nothing
// focused this is a no-op (a dead run key must not crash the app).
type ExecuteFocusedCell struct{}

func (ExecuteFocusedCell) apply(d *Document, x *Dispatcher) error {
	if d.Focus.FocusedCellID == nil {
		return nil
	}
	id := *d.Focus.FocusedCellID
	c, ok := d.Cell(id)
	if !ok {
		return fmt.Errorf("focused cell %q not in document", id)
	}
	if c.CellType != model.CellTypeCode {
		return nil
	}
	c.Status = model.StatusQueued
	if x != nil && x.executor != nil {
		x.executor.Enqueue(id, c.Source)
	}
	return nil
}

type FocusCell struct{ ID model.CellID }

func (c FocusCell) apply(d *Document, _ *Dispatcher) error {
	if _, ok := d.Cell(c.ID); !ok {
		return fmt.Errorf("focus: unknown cell %q", c.ID)
	}
	id := c.ID
	d.Focus.FocusedCellID = &id
	return nil
}

type FocusEditor struct{ ID model.CellID }

func (c FocusEditor) apply(d *Document, _ *Dispatcher) error {
	if _, ok := d.Cell(c.ID); !ok {
		return fmt.Errorf("focus editor: unknown cell %q", c.ID)
	}
	id := c.ID
	d.Focus.FocusedEditorID = &id
	return nil
}

// UnfocusEditor clears editor focus unconditionally, regardless of which
// cell currently owns it.
type UnfocusEditor struct{}

func (UnfocusEditor) apply(d *Document, _ *Dispatcher) error {
	d.Focus.FocusedEditorID = nil
	return nil
}

// FocusNextCell moves cell focus to the successor of ID (nil ID means the
// currently focused cell). Advancing past the last cell appends a fresh
// empty code cell when CreateIfMissing is set, otherwise it is a no-op.
//
// Only cell focus changes here; editor focus is advanced by a separate
// FocusNextCellEditor command. The brief window where the old editor is
// still marked focused is intentional staging, not a bug.
type FocusNextCell struct {
	ID              *model.CellID
	CreateIfMissing bool
}

func (c FocusNextCell) apply(d *Document, _ *Dispatcher) error {
	base, err := resolveBase(d, c.ID, "focus next cell")
	if err != nil {
		return err
	}
	next, ok := d.Successor(base)
	if !ok {
		if !c.CreateIfMissing {
			return nil
		}
		fresh := &model.Cell{
			ID:       model.NewCellID(),
			CellType: model.CellTypeCode,
			Status:   model.StatusIdle,
		}
		fresh.Metadata.Normalize()
		d.AppendCell(fresh)
		next = fresh.ID
	}
	d.Focus.FocusedCellID = &next
	return nil
}

type FocusPreviousCell struct{ ID model.CellID }

func (c FocusPreviousCell) apply(d *Document, _ *Dispatcher) error {
	if _, ok := d.Cell(c.ID); !ok {
		return fmt.Errorf("focus previous cell: unknown cell %q", c.ID)
	}
	prev, ok := d.Predecessor(c.ID)
	if !ok {
		return nil
	}
	d.Focus.FocusedCellID = &prev
	return nil
}

// FocusNextCellEditor focuses the editor of the successor of ID. A nil ID
// targets the currently focused cell itself: in the run-and-advance
// sequence, cell focus has already moved by the time this applies, so the
// pair lands both focus fields on the same cell.
type FocusNextCellEditor struct{ ID *model.CellID }

func (c FocusNextCellEditor) apply(d *Document, _ *Dispatcher) error {
	var target model.CellID
	if c.ID == nil {
		if d.Focus.FocusedCellID == nil {
			return fmt.Errorf("focus next cell editor: no focused cell")
		}
		target = *d.Focus.FocusedCellID
	} else {
		if _, ok := d.Cell(*c.ID); !ok {
			return fmt.Errorf("focus next cell editor: unknown cell %q", *c.ID)
		}
		next, ok := d.Successor(*c.ID)
		if !ok {
			return nil
		}
		target = next
	}
	d.Focus.FocusedEditorID = &target
	return nil
}

type FocusPreviousCellEditor struct{ ID model.CellID }

func (c FocusPreviousCellEditor) apply(d *Document, _ *Dispatcher) error {
	if _, ok := d.Cell(c.ID); !ok {
		return fmt.Errorf("focus previous cell editor: unknown cell %q", c.ID)
	}
	prev, ok := d.Predecessor(c.ID)
	if !ok {
		return nil
	}
	d.Focus.FocusedEditorID = &prev
	return nil
}

// MoveCell reorders the cell sequence. Malformed moves surface
// reorder.ErrInvalidMove to the caller; the document is unchanged.
type MoveCell struct {
	ID          model.CellID
	Destination model.CellID
	Above       bool
}

func (c MoveCell) apply(d *Document, _ *Dispatcher) error {
	next, err := reorder.MoveCell(d.Order, c.ID, c.Destination, c.Above)
	if err != nil {
		return err
	}
	d.Order = next
	return nil
}

// UpdateOutputMetadata replaces the metadata of one output by index. The
// output payload itself is opaque and never touched.
type UpdateOutputMetadata struct {
	ID       model.CellID
	Index    int
	Metadata map[string]any
}

func (c UpdateOutputMetadata) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("update output metadata: unknown cell %q", c.ID)
	}
	if c.Index < 0 || c.Index >= len(cell.Outputs) {
		return fmt.Errorf("update output metadata: cell %q has no output %d", c.ID, c.Index)
	}
	cell.Outputs[c.Index].Metadata = c.Metadata
	return nil
}

// SetCellSource replaces a cell's source text (editor commit).
type SetCellSource struct {
	ID     model.CellID
	Source string
}

func (c SetCellSource) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("set source: unknown cell %q", c.ID)
	}
	cell.Source = c.Source
	return nil
}

// UpdateCellMetadata replaces a cell's typed metadata (visibility toggles,
// tag edits). Derived display state is recomputed from it on the next read.
type UpdateCellMetadata struct {
	ID       model.CellID
	Metadata model.CellMetadata
}

func (c UpdateCellMetadata) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("update metadata: unknown cell %q", c.ID)
	}
	meta := c.Metadata
	meta.Normalize()
	cell.Metadata = meta
	return nil
}

// Kernel feedback commands. These originate from the executor, not the UI.

type SetCellStatus struct {
	ID     model.CellID
	Status model.CellStatus
}

func (c SetCellStatus) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("set status: unknown cell %q", c.ID)
	}
	cell.Status = c.Status
	return nil
}

type ClearOutputs struct{ ID model.CellID }

func (c ClearOutputs) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("clear outputs: unknown cell %q", c.ID)
	}
	cell.Outputs = nil
	return nil
}

type AppendOutput struct {
	ID     model.CellID
	Output model.Output
}

func (c AppendOutput) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("append output: unknown cell %q", c.ID)
	}
	out := c.Output
	out.Index = len(cell.Outputs)
	cell.Outputs = append(cell.Outputs, out)
	return nil
}

type SetExecutionCount struct {
	ID    model.CellID
	Count int
}

func (c SetExecutionCount) apply(d *Document, _ *Dispatcher) error {
	cell, ok := d.Cell(c.ID)
	if !ok {
		return fmt.Errorf("set execution count: unknown cell %q", c.ID)
	}
	n := c.Count
	cell.ExecutionCount = &n
	return nil
}

func resolveBase(d *Document, id *model.CellID, op string) (model.CellID, error) {
	if id != nil {
		if _, ok := d.Cell(*id); !ok {
			return "", fmt.Errorf("%s: unknown cell %q", op, *id)
		}
		return *id, nil
	}
	if d.Focus.FocusedCellID == nil {
		return "", fmt.Errorf("%s: no focused cell", op)
	}
	return *d.Focus.FocusedCellID, nil
}
