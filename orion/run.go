package orion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/kframe/audio"
	"github.com/oliverbestmann/kframe/glimpse"
)

type RunOptions struct {
	// application to run. This is required
	App Application

	// window delivering raw events. This is required
	Window glimpse.Window

	// defaults to a StatsRenderer
	Renderer Renderer

	// defaults to a player without output
	Audio AudioSink

	// defaults to a wall clock
	Clock *Clock

	// fixed initial seed, derived from the clock if nil
	Seed *uint32

	DebugOverlay bool
}

func (opts RunOptions) withDefaults() (RunOptions, error) {
	if opts.App == nil {
		return opts, errors.New("App must not be nil")
	}

	if opts.Window == nil {
		return opts, errors.New("Window must not be nil")
	}

	if opts.Renderer == nil {
		opts.Renderer = NewStatsRenderer()
	}

	if opts.Audio == nil {
		player, err := audio.NewPlayer(audio.NopBackend{}, nil)
		if err != nil {
			return opts, fmt.Errorf("create audio player: %w", err)
		}

		opts.Audio = player
	}

	if opts.Clock == nil {
		opts.Clock = NewClock()
	}

	return opts, nil
}

// Run drives the application until the window is closed, the application
// returns ExitApp, or ctx is cancelled. Those cases return nil. The window
// is terminated before Run returns.
func Run(ctx context.Context, opts RunOptions) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}

	defer opts.Window.Terminate()

	width, height := opts.Window.GetSize()

	state := NewState(StateOptions{
		Width:    width,
		Height:   height,
		Viewport: opts.Renderer,
		Clock:    opts.Clock,
		Seed:     opts.Seed,
	})

	opts.Renderer.SetViewport(max(1, width), max(1, height))

	loopState := &LoopState{
		State:    state,
		App:      opts.App,
		Renderer: opts.Renderer,
		Audio:    opts.Audio,
	}

	if opts.DebugOverlay {
		loopState.Overlay = &DebugOverlay{}
	}

	sink := state.Absorb
	if listener, ok := opts.Audio.(FocusListener); ok {
		sink = forwardFocus(state, listener)
	}

	err = opts.Window.Run(ctx, sink, func() error {
		return loopOnce(loopState)
	})

	switch {
	case err == nil, isExitApp(err), errors.Is(err, context.Canceled):
		slog.Info("Loop stopped", slog.Uint64("frames", loopState.Times.FrameCount))
		return nil

	default:
		return fmt.Errorf("run loop: %w", err)
	}
}

// forwardFocus notifies the listener about focus changes before the event
// reaches the state. Nothing is forwarded once the state is stopped.
func forwardFocus(state *State, listener FocusListener) glimpse.EventSink {
	return func(event glimpse.Event) error {
		if focus, ok := event.(glimpse.FocusEvent); ok && !state.Stopped() {
			listener.SetFocused(focus.Focused)
		}

		return state.Absorb(event)
	}
}

func isExitApp(err error) bool {
	return errors.Is(err, ExitApp)
}
