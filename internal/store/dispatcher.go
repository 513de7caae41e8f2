package store

import (
	"sync"

	"inkcell-cli/internal/model"
)

// Executor receives execute requests from ExecuteFocusedCell. Enqueue must
// not block: actual execution happens elsewhere and reports back through
// the kernel feedback commands (SetCellStatus, AppendOutput, ...).
type Executor interface {
	Enqueue(id model.CellID, source string)
}

// Dispatcher serializes command application against one document. Exactly
// one dispatch is in flight at a time and commands apply atomically in
// submission order, so command handlers never need their own locking.
type Dispatcher struct {
	mu       sync.Mutex
	doc      *Document
	executor Executor
}

func NewDispatcher(doc *Document, executor Executor) *Dispatcher {
	if doc == nil {
		doc = NewDocument()
	}
	return &Dispatcher{doc: doc, executor: executor}
}

// SetExecutor wires the execution pipeline after construction (the runner
// itself needs the dispatcher to report results back).
func (x *Dispatcher) SetExecutor(e Executor) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.executor = e
}

func (x *Dispatcher) Dispatch(cmd Command) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return cmd.apply(x.doc, x)
}

// View runs fn with read access to the document under the dispatch lock.
// fn must not retain the document or dispatch from inside.
func (x *Dispatcher) View(fn func(d *Document)) {
	x.mu.Lock()
	defer x.mu.Unlock()
	fn(x.doc)
}

// Order returns a copy of the current cell order.
func (x *Dispatcher) Order() []model.CellID {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]model.CellID{}, x.doc.Order...)
}

// Focus returns the current focus state.
func (x *Dispatcher) Focus() model.FocusState {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.doc.Focus
}
