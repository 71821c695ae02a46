package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/kframe/glimpse"
	"github.com/oliverbestmann/kframe/glm"
	"github.com/oliverbestmann/kframe/pulse"
)

type StateOptions struct {
	// initial resolution in physical pixels
	Width, Height uint32

	// receives resize events synchronously, may be nil
	Viewport Viewport

	// defaults to a wall clock
	Clock *Clock

	// fixed initial seed, derived from the clock if nil
	Seed *uint32
}

// State accumulates raw events between two frame boundaries. It is owned
// by the loop and only ever observed by the application through the
// FrameInputs produced by BuildAndReset.
type State struct {
	tracker

	clock    *Clock
	viewport Viewport

	xres, yres float32
	screenRect pulse.Rectangle2f

	// keys held at the previous frame boundary
	prevKeys KeySet

	// latest pointer position, updated on every motion event
	rawMousePos glm.Vec2f

	// pointer position published at the previous frame boundary
	mousePos glm.Vec2f

	scrollDelta float32

	frame uint32
	seed  uint32

	stopped bool
}

func NewState(opts StateOptions) *State {
	clock := opts.Clock
	if clock == nil {
		clock = NewClock()
	}

	var seed uint32
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = SeedFromTime(clock.Now())
	}

	width, height := max(1, opts.Width), max(1, opts.Height)

	return &State{
		tracker:    newTracker(),
		clock:      clock,
		viewport:   opts.Viewport,
		xres:       float32(width),
		yres:       float32(height),
		screenRect: screenRectOf(width, height),
		prevKeys:   KeySet{},
		seed:       seed,
	}
}

// Absorb folds a single raw event into the state. It never blocks. The only
// error it returns is ExitApp, once a close or terminate event was observed.
// Every event after that is rejected with ExitApp as well.
func (s *State) Absorb(event glimpse.Event) error {
	if s.stopped {
		return ExitApp
	}

	switch event := event.(type) {
	case glimpse.KeyEvent:
		if event.Key == glimpse.KeyUnknown {
			slog.Debug("Ignore unresolved key event")
			return nil
		}

		s.onKey(event.Key, event.Pressed)

	case glimpse.MouseButtonEvent:
		if !s.onButton(event.Button, event.Pressed) {
			slog.Debug("Ignore event for untracked mouse button", slog.Int("button", int(event.Button)))
		}

	case glimpse.WheelEvent:
		// line and pixel deltas are summed as is, their units are not normalized
		s.scrollDelta += float32(event.DeltaY)

	case glimpse.CursorMovedEvent:
		s.rawMousePos = glm.Vec2f{
			float32(event.X) / s.yres,
			float32(event.Y) / s.yres,
		}

	case glimpse.ResizedEvent:
		s.resize(event.Width, event.Height)

	case glimpse.CloseRequestedEvent, glimpse.LoopTerminatedEvent:
		slog.Info("Stop requested", slog.String("event", fmt.Sprintf("%T", event)))
		s.stopped = true
		return ExitApp

	default:
		slog.Debug("Ignore event", slog.String("event", fmt.Sprintf("%T", event)))
	}

	return nil
}

func (s *State) resize(width, height uint32) {
	if width == 0 || height == 0 {
		slog.Debug("Ignore resize to empty surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		return
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	s.xres = float32(width)
	s.yres = float32(height)
	s.screenRect = screenRectOf(width, height)

	if s.viewport != nil {
		s.viewport.SetViewport(width, height)
	}
}

// BuildAndReset ends the current accumulation period. It returns the
// snapshot of everything absorbed so far and then resets all transient
// state for the next period. All reads happen before the first reset.
func (s *State) BuildAndReset() FrameInputs {
	t, dt := s.clock.Advance()

	s.frame += 1

	prevMousePos := s.mousePos
	if s.frame == 1 {
		// there is no previous frame to move from
		prevMousePos = s.rawMousePos
	}

	s.mousePos = s.rawMousePos

	inputs := FrameInputs{
		ScreenRect:  s.screenRect,
		MousePos:    s.mousePos,
		MouseDelta:  s.mousePos.Sub(prevMousePos),
		PrevKeys:    s.prevKeys,
		CurrKeys:    s.currKeys.Clone(),
		RepeatKeys:  s.repeatKeys,
		Lmb:         s.buttons[glimpse.MouseButtonLeft],
		Rmb:         s.buttons[glimpse.MouseButtonRight],
		Mmb:         s.buttons[glimpse.MouseButtonMiddle],
		ScrollDelta: s.scrollDelta,
		T:           t,
		Dt:          dt,
		Frame:       s.frame,
		Seed:        s.seed,
	}

	// the snapshot owns its sets, the state continues with fresh ones
	s.prevKeys = s.currKeys.Clone()
	s.repeatKeys = KeySet{}

	s.seed = NextSeed(s.seed)
	s.scrollDelta = 0
	s.collapseButtons()

	return inputs
}

// Stopped reports whether a close or terminate event was absorbed.
func (s *State) Stopped() bool {
	return s.stopped
}

func (s *State) ScreenRect() pulse.Rectangle2f {
	return s.screenRect
}

func screenRectOf(width, height uint32) pulse.Rectangle2f {
	return pulse.RectangleFromXYWH(0, 0, float32(width)/float32(height), 1)
}
