package kernel

import (
	"context"
	"testing"
	"time"

	"inkcell-cli/internal/model"
	"inkcell-cli/internal/store"
)

// waitForRun waits until the cell has executed (count set) and settled
// back to idle. Polling on the count avoids racing the idle->queued
// transition of a freshly enqueued cell.
func waitForRun(t *testing.T, x *store.Dispatcher, id model.CellID) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		done := false
		x.View(func(d *store.Document) {
			c := d.Cells[id]
			done = c.ExecutionCount != nil && c.Status == model.StatusIdle
		})
		if done {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("cell %q never finished executing", id)
}

func TestEchoRunnerExecutesCell(t *testing.T) {
	d := store.NewDocument()
	d.AppendCell(&model.Cell{ID: "a", CellType: model.CellTypeCode, Source: "1+1", Status: model.StatusIdle})

	x := store.NewDispatcher(d, nil)
	r := NewEchoRunner(x)
	r.Start(context.Background())
	defer r.Shutdown()

	r.Enqueue("a", "1+1")
	waitForRun(t, x, "a")

	x.View(func(d *store.Document) {
		c := d.Cells["a"]
		if len(c.Outputs) != 1 {
			t.Fatalf("outputs = %+v", c.Outputs)
		}
		if c.Outputs[0].Data["text/plain"] != "1+1" {
			t.Fatalf("echo output = %v", c.Outputs[0].Data)
		}
		if c.ExecutionCount == nil || *c.ExecutionCount != 1 {
			t.Fatalf("execution count = %v", c.ExecutionCount)
		}
	})
}

func TestEchoRunnerCountsAcrossCells(t *testing.T) {
	d := store.NewDocument()
	d.AppendCell(&model.Cell{ID: "a", CellType: model.CellTypeCode, Status: model.StatusIdle})
	d.AppendCell(&model.Cell{ID: "b", CellType: model.CellTypeCode, Status: model.StatusIdle})

	x := store.NewDispatcher(d, nil)
	r := NewEchoRunner(x)
	r.Start(context.Background())
	defer r.Shutdown()

	r.Enqueue("a", "x")
	r.Enqueue("b", "y")
	waitForRun(t, x, "a")
	waitForRun(t, x, "b")

	x.View(func(d *store.Document) {
		if *d.Cells["a"].ExecutionCount != 1 || *d.Cells["b"].ExecutionCount != 2 {
			t.Fatalf("counts = %v %v", d.Cells["a"].ExecutionCount, d.Cells["b"].ExecutionCount)
		}
	})
}

func TestEchoRunnerAsExecutor(t *testing.T) {
	// Wire the runner as the dispatcher's executor and drive it through the
	// ExecuteFocusedCell command, the way the gesture path does.
	d := store.NewDocument()
	d.AppendCell(&model.Cell{ID: "a", CellType: model.CellTypeCode, Source: "go", Status: model.StatusIdle})

	x := store.NewDispatcher(d, nil)
	r := NewEchoRunner(x)
	x.SetExecutor(r)

	r.Start(context.Background())
	defer r.Shutdown()

	if err := x.Dispatch(store.FocusCell{ID: "a"}); err != nil {
		t.Fatalf("focus: %v", err)
	}
	if err := x.Dispatch(store.ExecuteFocusedCell{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	waitForRun(t, x, "a")

	x.View(func(d *store.Document) {
		if len(d.Cells["a"].Outputs) != 1 {
			t.Fatalf("expected one echo output, got %+v", d.Cells["a"].Outputs)
		}
	})
}
