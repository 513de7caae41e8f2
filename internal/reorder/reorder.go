// Package reorder implements structural moves over the notebook cell order.
// It is the logical core behind both the explicit "move cell" commands and
// drag-and-drop; pointer tracking and drop-zone visuals live elsewhere.
package reorder

import (
	"errors"

	"inkcell-cli/internal/model"
)

// ErrInvalidMove is the one recoverable failure in this package: the caller
// asked to move a cell onto itself, or referenced an id that is not in the
// order. Drop handlers ignore it; programmatic callers surface it.
var ErrInvalidMove = errors.New("invalid move")

// MoveCell removes id from order and reinserts it immediately before
// destination (above=true) or immediately after it (above=false).
//
// The input slice is never mutated; the result is a fresh permutation of
// the same ids. Postcondition: the moved cell's neighbor on the requested
// side is exactly the destination.
func MoveCell(order []model.CellID, id, destination model.CellID, above bool) ([]model.CellID, error) {
	if id == destination {
		return nil, ErrInvalidMove
	}
	if indexOf(order, id) < 0 || indexOf(order, destination) < 0 {
		return nil, ErrInvalidMove
	}

	rest := make([]model.CellID, 0, len(order)-1)
	for _, cur := range order {
		if cur != id {
			rest = append(rest, cur)
		}
	}

	at := indexOf(rest, destination)
	if !above {
		at++
	}

	out := make([]model.CellID, 0, len(order))
	out = append(out, rest[:at]...)
	out = append(out, id)
	out = append(out, rest[at:]...)
	return out, nil
}

// PlanDrop validates a drag-and-drop gesture. A drop that would leave the
// order unchanged (source already adjacent to the destination on the
// requested side) is a successful no-op, reported via moved=false, so the
// caller can skip a redundant store dispatch. Malformed drops still return
// ErrInvalidMove.
func PlanDrop(order []model.CellID, id, destination model.CellID, above bool) (out []model.CellID, moved bool, err error) {
	next, err := MoveCell(order, id, destination, above)
	if err != nil {
		return nil, false, err
	}
	if equalOrder(order, next) {
		return order, false, nil
	}
	return next, true, nil
}

func indexOf(order []model.CellID, id model.CellID) int {
	for i, cur := range order {
		if cur == id {
			return i
		}
	}
	return -1
}

func equalOrder(a, b []model.CellID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
