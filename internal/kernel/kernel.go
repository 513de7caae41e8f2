// Package kernel runs code cells and streams results back into the
// document store. Execution is fire-and-forget from the editor's point of
// view: Enqueue returns immediately and the runner reports progress through
// ordinary store commands (status transitions, outputs, execution count).
package kernel

import (
	"context"
	"sync"

	"inkcell-cli/internal/model"
	"inkcell-cli/internal/store"
)

// Dispatcher is the slice of the store the runner needs to report results.
type Dispatcher interface {
	Dispatch(cmd store.Command) error
}

type job struct {
	id     model.CellID
	source string
}

// EchoRunner is the built-in stand-in kernel: it does not evaluate
// anything, it just walks each cell through queued -> busy -> idle,
// replaces its outputs with a single echo of the source, and bumps the
// execution counter. It exists so the coordination core has a live
// execution pipeline to drive.
type EchoRunner struct {
	disp Dispatcher

	mu      sync.Mutex
	count   int
	started bool

	jobs   chan job
	cancel context.CancelFunc
	done   chan struct{}
}

func NewEchoRunner(disp Dispatcher) *EchoRunner {
	return &EchoRunner{
		disp: disp,
		jobs: make(chan job, 64),
	}
}

// Start launches the worker. The runner stops when ctx is cancelled or
// Shutdown is called.
func (r *EchoRunner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop(ctx)
}

// Shutdown stops the worker and waits for the in-flight cell to finish
// reporting. Queued but unstarted cells are left in their queued state.
func (r *EchoRunner) Shutdown() {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Enqueue satisfies store.Executor. It never blocks: if the queue is full
// the cell is flagged with an error status instead. Enqueue is called from
// inside a dispatch, so the error report goes out on a fresh goroutine.
func (r *EchoRunner) Enqueue(id model.CellID, source string) {
	select {
	case r.jobs <- job{id: id, source: source}:
	default:
		go func() {
			_ = r.disp.Dispatch(store.SetCellStatus{ID: id, Status: model.StatusError})
		}()
	}
}

func (r *EchoRunner) loop(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-r.jobs:
			r.run(j)
		}
	}
}

func (r *EchoRunner) run(j job) {
	r.mu.Lock()
	r.count++
	n := r.count
	r.mu.Unlock()

	steps := []store.Command{
		store.SetCellStatus{ID: j.id, Status: model.StatusBusy},
		store.ClearOutputs{ID: j.id},
		store.AppendOutput{ID: j.id, Output: model.Output{
			Data: map[string]any{"text/plain": j.source},
		}},
		store.SetExecutionCount{ID: j.id, Count: n},
		store.SetCellStatus{ID: j.id, Status: model.StatusIdle},
	}
	for _, cmd := range steps {
		if err := r.disp.Dispatch(cmd); err != nil {
			// The cell may have been removed while queued; nothing to report to.
			return
		}
	}
}
