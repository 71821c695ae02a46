package orion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/oliverbestmann/kframe/audio"
	"github.com/oliverbestmann/kframe/glimpse"
	"github.com/oliverbestmann/kframe/pulse"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudio struct {
	commands []audio.SoundCommand
}

func (r *recordingAudio) HandleCommand(cmd audio.SoundCommand) {
	r.commands = append(r.commands, cmd)
}

func runHeadless(t *testing.T, app Application, batches ...[]glimpse.Event) (*StatsRenderer, *recordingAudio, *glimpse.HeadlessWindow) {
	t.Helper()

	seed := uint32(1)

	window := glimpse.NewHeadlessWindow(800, 600, batches...)
	renderer := NewStatsRenderer()
	sink := &recordingAudio{}

	err := Run(context.Background(), RunOptions{
		App:      app,
		Window:   window,
		Renderer: renderer,
		Audio:    sink,
		Clock:    NewClockWithSource(steppingSource(time.Second / 64)),
		Seed:     &seed,
	})

	require.NoError(t, err)

	return renderer, sink, window
}

func TestRun_Session(t *testing.T) {
	var frames []FrameInputs

	app := ApplicationFunc(func(in *FrameInputs, out *FrameOutputs) error {
		frames = append(frames, *in)

		if in.KeyPressed(glimpse.KeyA) {
			out.PlaySound(audio.Tone(440, 0.1, 0.5))
		}

		out.Canvas.PushRect(in.ScreenRect, 0, pulse.ColorWhite)
		return nil
	})

	renderer, sink, window := runHeadless(t, app,
		[]glimpse.Event{keyDown(glimpse.KeyA)},
		[]glimpse.Event{},
		[]glimpse.Event{keyUp(glimpse.KeyA)},
	)

	require.Len(t, frames, 3)
	assert.Equal(t, 3, window.Frames())
	assert.True(t, frames[0].KeyPressed(glimpse.KeyA))
	assert.True(t, frames[2].KeyReleased(glimpse.KeyA))

	assert.Equal(t, []audio.SoundCommand{audio.Tone(440, 0.1, 0.5)}, sink.commands)

	assert.Equal(t, uint64(3), renderer.Frames)
	assert.Equal(t, 1, renderer.Last.Shapes)
	assert.InDelta(t, 1.3333, renderer.Last.Aspect, 1e-3)
	assert.Equal(t, uint32(800), renderer.Width)
}

func TestRun_CloseStopsBeforeFrame(t *testing.T) {
	var count int

	app := ApplicationFunc(func(in *FrameInputs, out *FrameOutputs) error {
		count += 1
		return nil
	})

	renderer, _, _ := runHeadless(t, app,
		[]glimpse.Event{keyDown(glimpse.KeyA)},
		[]glimpse.Event{glimpse.CloseRequestedEvent{}, keyUp(glimpse.KeyA)},
		[]glimpse.Event{},
	)

	assert.Equal(t, 1, count)
	assert.Equal(t, uint64(1), renderer.Frames)
}

func TestRun_ApplicationExit(t *testing.T) {
	app := ApplicationFunc(func(in *FrameInputs, out *FrameOutputs) error {
		if in.Frame == 2 {
			return fmt.Errorf("done: %w", ExitApp)
		}

		return nil
	})

	renderer, _, window := runHeadless(t, app, nil, nil, nil, nil)

	// the frame requesting the exit is still rendered
	assert.Equal(t, uint64(2), renderer.Frames)
	assert.Equal(t, 1, window.Frames())
}

func TestRun_ApplicationError(t *testing.T) {
	errBroken := errors.New("broken")

	app := ApplicationFunc(func(in *FrameInputs, out *FrameOutputs) error {
		return errBroken
	})

	err := Run(context.Background(), RunOptions{
		App:    app,
		Window: glimpse.NewHeadlessWindow(100, 100, nil),
	})

	assert.ErrorIs(t, err, errBroken)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, RunOptions{
		App:    ApplicationFunc(func(*FrameInputs, *FrameOutputs) error { return nil }),
		Window: glimpse.NewHeadlessWindow(100, 100, nil),
	})

	assert.NoError(t, err)
}

func TestRun_RequiresApplication(t *testing.T) {
	err := Run(context.Background(), RunOptions{Window: glimpse.NewHeadlessWindow(1, 1)})
	assert.Error(t, err)
}

func TestRun_DebugOverlay(t *testing.T) {
	var outputs []*FrameOutputs

	app := ApplicationFunc(func(in *FrameInputs, out *FrameOutputs) error {
		outputs = append(outputs, out)
		return nil
	})

	seed := uint32(1)

	err := Run(context.Background(), RunOptions{
		App: app,
		Window: glimpse.NewHeadlessWindow(800, 600,
			[]glimpse.Event{keyDown(glimpse.KeyF3)},
			[]glimpse.Event{keyUp(glimpse.KeyF3)},
		),
		Seed:         &seed,
		DebugOverlay: true,
	})

	require.NoError(t, err)
	require.Len(t, outputs, 2)

	// the overlay draws after the application, once toggled on
	assert.Equal(t, 1, outputs[0].Glyphs.Len())
	assert.Equal(t, 1, outputs[1].Glyphs.Len())
}

func TestRun_GoldenSession(t *testing.T) {
	var buf bytes.Buffer

	app := ApplicationFunc(func(in *FrameInputs, out *FrameOutputs) error {
		writeTrace(&buf, in)
		return nil
	})

	runHeadless(t, app,
		[]glimpse.Event{
			glimpse.CursorMovedEvent{X: 300, Y: 150},
			keyDown(glimpse.KeyA),
		},
		[]glimpse.Event{
			keyDown(glimpse.KeyA),
			glimpse.MouseButtonEvent{Button: glimpse.MouseButtonLeft, Pressed: true},
			glimpse.WheelEvent{Unit: glimpse.ScrollLines, DeltaY: 1},
			glimpse.WheelEvent{Unit: glimpse.ScrollPixels, DeltaY: 2.5},
		},
		[]glimpse.Event{
			glimpse.CursorMovedEvent{X: 600, Y: 300},
			keyDown(glimpse.KeySpace),
			glimpse.MouseButtonEvent{Button: glimpse.MouseButtonLeft, Pressed: false},
			keyUp(glimpse.KeyA),
		},
		[]glimpse.Event{},
		[]glimpse.Event{keyUp(glimpse.KeySpace)},
	)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	g.Assert(t, "session", buf.Bytes())
}

func writeTrace(buf *bytes.Buffer, in *FrameInputs) {
	var pressed, released []Key

	for _, key := range in.CurrKeys.Sorted() {
		if in.KeyPressed(key) {
			pressed = append(pressed, key)
		}
	}

	for _, key := range in.PrevKeys.Sorted() {
		if in.KeyReleased(key) {
			released = append(released, key)
		}
	}

	_, _ = fmt.Fprintf(buf,
		"frame=%d t=%.6f dt=%.6f aspect=%.4f mouse=%.3f,%.3f delta=%.3f,%.3f curr=%v prev=%v repeat=%v pressed=%v released=%v lmb=%v rmb=%v mmb=%v scroll=%.2f seed=%d\n",
		in.Frame, in.T, in.Dt, in.Aspect(),
		in.MousePos[0], in.MousePos[1],
		in.MouseDelta[0], in.MouseDelta[1],
		in.CurrKeys.Sorted(), in.PrevKeys.Sorted(), in.RepeatKeys.Sorted(),
		pressed, released,
		in.Lmb, in.Rmb, in.Mmb,
		in.ScrollDelta, in.Seed,
	)
}

type focusRecordingAudio struct {
	recordingAudio
	focus []bool
}

func (r *focusRecordingAudio) SetFocused(focused bool) {
	r.focus = append(r.focus, focused)
}

func TestRun_ForwardsFocusToAudio(t *testing.T) {
	sink := &focusRecordingAudio{}

	err := Run(context.Background(), RunOptions{
		App: ApplicationFunc(func(*FrameInputs, *FrameOutputs) error { return nil }),
		Window: glimpse.NewHeadlessWindow(100, 100,
			[]glimpse.Event{glimpse.FocusEvent{Focused: false}},
			[]glimpse.Event{glimpse.FocusEvent{Focused: true}},
			[]glimpse.Event{glimpse.CloseRequestedEvent{}, glimpse.FocusEvent{Focused: false}},
		),
		Audio: sink,
	})

	require.NoError(t, err)

	// events after the close request never reach the listener
	assert.Equal(t, []bool{false, true}, sink.focus)
}

func TestLoopOnce_OverlayTimingOnApplicationError(t *testing.T) {
	errBroken := errors.New("broken")

	loopState := &LoopState{
		State:    newTestState(100, 100),
		App:      ApplicationFunc(func(*FrameInputs, *FrameOutputs) error { return errBroken }),
		Renderer: NewStatsRenderer(),
		Audio:    &recordingAudio{},
		Overlay:  &DebugOverlay{},
	}

	require.ErrorIs(t, loopOnce(loopState), errBroken)

	// closes the timing of the failed frame
	loopState.Overlay.StartFrame()

	timing := loopState.Overlay.frames[0]
	assert.Equal(t, 1, loopState.Overlay.frameCount)
	assert.GreaterOrEqual(t, timing.Application, time.Duration(0))
	assert.GreaterOrEqual(t, timing.Render, time.Duration(0))
	assert.GreaterOrEqual(t, timing.Total, timing.Application+timing.Render)
}
