package orion

import "github.com/oliverbestmann/kframe/glimpse"

const buttonCount = 3

// tracker holds held keys, repeated keys and button status of the
// current accumulation period.
type tracker struct {
	currKeys   KeySet
	repeatKeys KeySet
	buttons    [buttonCount]KeyStatus
}

func newTracker() tracker {
	return tracker{
		currKeys:   KeySet{},
		repeatKeys: KeySet{},
	}
}

func (t *tracker) onKey(key Key, pressed bool) {
	switch {
	case pressed && t.currKeys.Contains(key):
		// a press of an already held key is a repeat
		t.repeatKeys[key] = struct{}{}

	case pressed:
		t.currKeys[key] = struct{}{}

	default:
		delete(t.currKeys, key)
	}
}

// onButton records a press or release. The last event of a frame wins.
// It returns false for buttons that are not tracked.
func (t *tracker) onButton(button glimpse.MouseButton, pressed bool) bool {
	if button >= buttonCount {
		return false
	}

	if pressed {
		t.buttons[button] = JustPressed
	} else {
		t.buttons[button] = JustReleased
	}

	return true
}

// collapseButtons must run exactly once per frame boundary, after the
// button status was read into the snapshot.
func (t *tracker) collapseButtons() {
	for idx, status := range t.buttons {
		t.buttons[idx] = status.Collapse()
	}
}
