package glimpse

// Event is a raw platform event. Events are produced by a Window and
// handed to an EventSink one at a time, in arrival order.
type Event interface {
	isEvent()
}

// EventSink consumes raw events. Returning an error stops the window loop
// after the current event, no further frame is started.
type EventSink func(event Event) error

type MouseButton uint32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// ScrollUnit describes the encoding of a WheelEvent delta.
type ScrollUnit uint8

const (
	ScrollLines ScrollUnit = iota
	ScrollPixels
)

// KeyEvent is a key press or release. Key is KeyUnknown if the platform key
// could not be mapped to a Key.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

type WheelEvent struct {
	Unit   ScrollUnit
	DeltaX float64
	DeltaY float64
}

// CursorMovedEvent carries the pointer position in physical pixels.
type CursorMovedEvent struct {
	X, Y float64
}

// ResizedEvent carries the new window size in pixels.
type ResizedEvent struct {
	Width, Height uint32
}

type CloseRequestedEvent struct{}

type LoopTerminatedEvent struct{}

type FocusEvent struct {
	Focused bool
}

type CharEvent struct {
	Char rune
}

func (KeyEvent) isEvent()            {}
func (MouseButtonEvent) isEvent()    {}
func (WheelEvent) isEvent()          {}
func (CursorMovedEvent) isEvent()    {}
func (ResizedEvent) isEvent()        {}
func (CloseRequestedEvent) isEvent() {}
func (LoopTerminatedEvent) isEvent() {}
func (FocusEvent) isEvent()          {}
func (CharEvent) isEvent()           {}
