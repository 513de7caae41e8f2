package tui

import (
	"runtime"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"inkcell-cli/internal/gesture"
)

// Run-cell chords arrive in two shapes depending on the terminal: bubbletea
// decodes plain Enter, while modifier+Enter usually surfaces as an unknown
// CSI-u sequence (e.g. "13;2u" for Shift+Enter). We decode both into a
// gesture.Event and let the router decide.
//
// Fallback chords for terminals that swallow modifier+Enter entirely:
// Alt+Enter behaves like Shift+Enter, Ctrl+E like Ctrl+Enter.

func gestureEventFromKey(msg tea.KeyMsg) (gesture.Event, bool) {
	mac := runtime.GOOS == "darwin"

	switch msg.Type {
	case tea.KeyEnter:
		if msg.Alt {
			return gesture.Event{Key: gesture.KeyEnter, Shift: true, IsMacOS: mac}, true
		}
		return gesture.Event{Key: gesture.KeyEnter, IsMacOS: mac}, true
	case tea.KeyCtrlE:
		return gesture.Event{Key: gesture.KeyEnter, Ctrl: true, IsMacOS: mac}, true
	}

	if ev, ok := gestureEventFromCSI(msg.String()); ok {
		ev.IsMacOS = mac
		return ev, true
	}
	return gesture.Event{}, false
}

// gestureEventFromCSI parses bubbletea's representation of an unrecognized
// CSI sequence ("?CSI[49 51 59 50 117]?" is the byte list for "13;2u") and
// extracts Enter plus its modifier bits. Anything that is not a CSI-u
// Enter is rejected.
func gestureEventFromCSI(s string) (gesture.Event, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "?CSI[") || !strings.HasSuffix(s, "]?") {
		return gesture.Event{}, false
	}
	inner := s[len("?CSI[") : len(s)-len("]?")]
	var buf strings.Builder
	for _, tok := range strings.Fields(inner) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > 255 {
			return gesture.Event{}, false
		}
		buf.WriteByte(byte(n))
	}
	seq := buf.String()
	if !strings.HasSuffix(seq, "u") {
		return gesture.Event{}, false
	}

	parts := strings.Split(strings.TrimSuffix(seq, "u"), ";")
	if len(parts) != 2 {
		return gesture.Event{}, false
	}
	code, err := strconv.Atoi(parts[0])
	if err != nil || code != 13 { // CR: the Enter key
		return gesture.Event{}, false
	}
	mod, err := strconv.Atoi(parts[1])
	if err != nil || mod < 1 {
		return gesture.Event{}, false
	}

	// CSI-u modifier parameter is 1 + bitmask(shift=1, alt=2, ctrl=4, meta=8).
	bits := mod - 1
	return gesture.Event{
		Key:   gesture.KeyEnter,
		Shift: bits&1 != 0,
		Ctrl:  bits&4 != 0,
		Meta:  bits&8 != 0,
	}, true
}

// Cell reorder keys, with Ctrl fallbacks for terminals that do not report
// shifted arrows.
func isMoveUp(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyShiftUp || msg.Type == tea.KeyCtrlK
}

func isMoveDown(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyShiftDown || msg.Type == tea.KeyCtrlJ
}
