package hotkey

// Tracker keeps the pressed state of the left control and left shift keys.
// It is only touched from the hook thread and needs no locking.
type Tracker struct {
	ctrl  bool
	shift bool
}

// OnKeyEvent records press/release of the tracked modifiers. Other keys and
// unknown event kinds are ignored.
func (t *Tracker) OnKeyEvent(evt Event) {
	var held bool
	switch evt.Kind {
	case Press:
		held = true
	case Release:
		held = false
	default:
		return
	}

	switch evt.Key {
	case KeyLeftControl:
		t.ctrl = held
	case KeyLeftShift:
		t.shift = held
	}
}

// ChordHeld reports whether left control and left shift are both down
func (t *Tracker) ChordHeld() bool {
	return t.ctrl && t.shift
}
