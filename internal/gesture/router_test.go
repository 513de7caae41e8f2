package gesture

import (
	"reflect"
	"testing"
)

func kinds(r Result) []CommandKind {
	var out []CommandKind
	for _, c := range r.Commands {
		out = append(out, c.Kind)
	}
	return out
}

func TestRouteIgnoresNonEnterKeys(t *testing.T) {
	for _, key := range []string{"a", "tab", "space", "up", ""} {
		r := Route(Event{Key: key, Shift: true})
		if r.Consumed || len(r.Commands) != 0 {
			t.Fatalf("key %q must pass through untouched, got %+v", key, r)
		}
	}
}

func TestRouteNonMacTruthTable(t *testing.T) {
	// On non-mac platforms meta is not an alias: qualification depends on
	// exactly one of shift/ctrl being held.
	for _, shift := range []bool{false, true} {
		for _, ctrl := range []bool{false, true} {
			for _, meta := range []bool{false, true} {
				r := Route(Event{Key: KeyEnter, Shift: shift, Ctrl: ctrl, Meta: meta})
				wantQualify := shift != ctrl
				if r.Consumed != wantQualify {
					t.Fatalf("shift=%v ctrl=%v meta=%v: consumed=%v, want %v",
						shift, ctrl, meta, r.Consumed, wantQualify)
				}
				switch {
				case !wantQualify:
					if len(r.Commands) != 0 {
						t.Fatalf("non-qualifying chord emitted %v", r.Commands)
					}
				case shift:
					want := []CommandKind{CmdExecuteFocusedCell, CmdFocusNextCell, CmdFocusNextCellEditor}
					if !reflect.DeepEqual(kinds(r), want) {
						t.Fatalf("shift chord emitted %v, want %v", kinds(r), want)
					}
					if !r.Commands[1].CreateIfMissing {
						t.Fatalf("advance past last must create a cell")
					}
				default:
					if !reflect.DeepEqual(kinds(r), []CommandKind{CmdExecuteFocusedCell}) {
						t.Fatalf("ctrl chord emitted %v, want execute only", kinds(r))
					}
				}
			}
		}
	}
}

func TestRouteMacMetaAlias(t *testing.T) {
	// Cmd+Enter behaves like Ctrl+Enter.
	r := Route(Event{Key: KeyEnter, Meta: true, IsMacOS: true})
	if !r.Consumed || !reflect.DeepEqual(kinds(r), []CommandKind{CmdExecuteFocusedCell}) {
		t.Fatalf("cmd+enter on mac should execute in place, got %+v", r)
	}

	// Holding both cmd and ctrl cancels the alias entirely.
	r = Route(Event{Key: KeyEnter, Meta: true, Ctrl: true, IsMacOS: true})
	if r.Consumed || len(r.Commands) != 0 {
		t.Fatalf("cmd+ctrl+enter on mac must not qualify, got %+v", r)
	}

	// Shift together with the alias is two modifiers, so no qualification.
	r = Route(Event{Key: KeyEnter, Shift: true, Meta: true, IsMacOS: true})
	if r.Consumed {
		t.Fatalf("shift+cmd+enter on mac must not qualify, got %+v", r)
	}

	// But shift plus the cancelled alias leaves exactly one modifier.
	r = Route(Event{Key: KeyEnter, Shift: true, Meta: true, Ctrl: true, IsMacOS: true})
	if !r.Consumed {
		t.Fatalf("shift with cancelled cmd/ctrl alias should qualify as shift")
	}
	want := []CommandKind{CmdExecuteFocusedCell, CmdFocusNextCell, CmdFocusNextCellEditor}
	if !reflect.DeepEqual(kinds(r), want) {
		t.Fatalf("emitted %v, want %v", kinds(r), want)
	}
}

func TestRouteExecuteAlwaysFirst(t *testing.T) {
	for _, ev := range []Event{
		{Key: KeyEnter, Shift: true},
		{Key: KeyEnter, Ctrl: true},
		{Key: KeyEnter, Meta: true, IsMacOS: true},
	} {
		r := Route(ev)
		if len(r.Commands) == 0 || r.Commands[0].Kind != CmdExecuteFocusedCell {
			t.Fatalf("execute must be the first command for %+v, got %v", ev, r.Commands)
		}
	}
}
