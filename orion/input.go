package orion

import (
	"maps"
	"slices"

	"github.com/oliverbestmann/kframe/glimpse"
	"github.com/oliverbestmann/kframe/glm"
	"github.com/oliverbestmann/kframe/pulse"
)

type Key = glimpse.Key
type MouseButton = glimpse.MouseButton

//go:generate go tool stringer -type=KeyStatus

// KeyStatus is the per frame status of a mouse button.
// The zero value is Released.
type KeyStatus uint8

const (
	Released KeyStatus = iota
	JustPressed
	Pressed
	JustReleased
)

// Collapse moves a transient status to its steady status.
func (s KeyStatus) Collapse() KeyStatus {
	switch s {
	case JustPressed:
		return Pressed
	case JustReleased:
		return Released
	default:
		return s
	}
}

// IsDown reports whether the button is held this frame.
func (s KeyStatus) IsDown() bool {
	return s == Pressed || s == JustPressed
}

// KeySet is a set of keys.
type KeySet map[Key]struct{}

func KeySetOf(keys ...Key) KeySet {
	set := KeySet{}
	for _, key := range keys {
		set[key] = struct{}{}
	}

	return set
}

func (s KeySet) Contains(key Key) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

func (s KeySet) Clone() KeySet {
	if s == nil {
		return KeySet{}
	}

	return maps.Clone(s)
}

// Sorted returns the keys in ascending order.
func (s KeySet) Sorted() []Key {
	return slices.Sorted(maps.Keys(s))
}

// FrameInputs is the immutable input snapshot of a single frame.
type FrameInputs struct {
	// visible region, always 1 high and aspect ratio wide
	ScreenRect pulse.Rectangle2f

	// pointer position in screen units and its change since the previous frame
	MousePos   glm.Vec2f
	MouseDelta glm.Vec2f

	PrevKeys   KeySet
	CurrKeys   KeySet
	RepeatKeys KeySet

	Lmb KeyStatus
	Rmb KeyStatus
	Mmb KeyStatus

	ScrollDelta float32

	// total time and time since the previous frame, in seconds
	T  float32
	Dt float32

	// starts at 1 for the first frame
	Frame uint32

	Seed uint32
}

func (in *FrameInputs) KeyHeld(key Key) bool {
	return in.CurrKeys.Contains(key)
}

// KeyPressed reports whether the key went down this frame.
func (in *FrameInputs) KeyPressed(key Key) bool {
	return in.CurrKeys.Contains(key) && !in.PrevKeys.Contains(key)
}

// KeyPressedOrRepeating is KeyPressed, or true if the platform delivered a
// key repeat for the held key this frame.
func (in *FrameInputs) KeyPressedOrRepeating(key Key) bool {
	return in.KeyPressed(key) || in.RepeatKeys.Contains(key)
}

// KeyReleased reports whether the key went up this frame.
func (in *FrameInputs) KeyReleased(key Key) bool {
	return !in.CurrKeys.Contains(key) && in.PrevKeys.Contains(key)
}

func (in *FrameInputs) Button(button MouseButton) KeyStatus {
	switch button {
	case glimpse.MouseButtonLeft:
		return in.Lmb
	case glimpse.MouseButtonRight:
		return in.Rmb
	case glimpse.MouseButtonMiddle:
		return in.Mmb
	default:
		return Released
	}
}

func (in *FrameInputs) Aspect() float32 {
	return in.ScreenRect.Width()
}
