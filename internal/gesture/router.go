// Package gesture turns raw run-cell key chords into an ordered command
// sequence. The router is stateless: every key event is classified on its
// own, and the caller replays the emitted commands against the document
// store in the exact order given.
package gesture

// Event is a raw keyboard event as seen by the notebook view.
type Event struct {
	Key     string
	Shift   bool
	Ctrl    bool
	Meta    bool
	IsMacOS bool
}

// KeyEnter is the only key the router consumes; everything else passes
// through to default editor behavior.
const KeyEnter = "enter"

type CommandKind int

const (
	// CmdExecuteFocusedCell runs the currently focused cell. It is always
	// first in an emitted sequence: the execution pipeline must resolve
	// "focused cell" before any focus-advance command changes it.
	CmdExecuteFocusedCell CommandKind = iota
	CmdFocusNextCell
	CmdFocusNextCellEditor
)

type Command struct {
	Kind CommandKind
	// CreateIfMissing applies to CmdFocusNextCell: advancing past the last
	// cell appends a fresh one instead of stopping.
	CreateIfMissing bool
}

// Result reports whether the event was consumed (the caller must suppress
// default key handling) and, if so, which commands to dispatch, in order.
type Result struct {
	Consumed bool
	Commands []Command
}

// Route classifies one key event.
//
// A chord qualifies when exactly one of shift / ctrl-like is held. On
// macOS, meta (cmd) is an alias for ctrl, but holding both cancels the
// alias so overlapping chords cannot double-trigger. Shift+Enter executes
// and advances; Ctrl+Enter executes in place.
func Route(ev Event) Result {
	if ev.Key != KeyEnter {
		return Result{}
	}

	ctrlLike := ev.Ctrl
	if ev.IsMacOS {
		ctrlLike = (ev.Meta || ev.Ctrl) && !(ev.Meta && ev.Ctrl)
	}
	qualifies := (ev.Shift || ctrlLike) && !(ev.Shift && ctrlLike)
	if !qualifies {
		return Result{}
	}

	cmds := []Command{{Kind: CmdExecuteFocusedCell}}
	if ev.Shift {
		cmds = append(cmds,
			Command{Kind: CmdFocusNextCell, CreateIfMissing: true},
			Command{Kind: CmdFocusNextCellEditor},
		)
	}
	return Result{Consumed: true, Commands: cmds}
}
