package orion

import (
	"fmt"
	"log/slog"
	"time"
)

type LoopState struct {
	State    *State
	App      Application
	Renderer Renderer
	Audio    AudioSink

	Times FrameTimes

	// nil if the overlay is disabled
	Overlay *DebugOverlay
}

// loopOnce runs a single frame boundary: build the inputs, run the
// application, then hand the outputs to audio and renderer.
func loopOnce(loopState *LoopState) error {
	if loopState.State.Stopped() {
		return ExitApp
	}

	overlay := loopState.Overlay
	if overlay != nil {
		overlay.StartFrame()
		defer overlay.EndFrame()
	}

	inputs := loopState.State.BuildAndReset()

	aspect := inputs.Aspect()
	outputs := NewFrameOutputs(aspect)

	if overlay != nil {
		overlay.StartApplication()
	}

	appErr := loopState.App.Frame(&inputs, outputs)

	if overlay != nil {
		overlay.StartRender()
	}

	if appErr != nil && !isExitApp(appErr) {
		return fmt.Errorf("application frame %d: %w", inputs.Frame, appErr)
	}

	if overlay != nil {
		overlay.Update(&inputs)
		overlay.Draw(outputs)
	}

	for _, cmd := range outputs.Sounds {
		loopState.Audio.HandleCommand(cmd)
	}

	if err := loopState.Renderer.Render(outputs, aspect); err != nil {
		return fmt.Errorf("render frame %d: %w", inputs.Frame, err)
	}

	dt := time.Duration(float64(inputs.Dt) * float64(time.Second))
	if loopState.Times.Observe(dt) {
		slog.Debug("Frame stats",
			slog.Uint64("frames", loopState.Times.FrameCount),
			slog.Float64("fps", loopState.Times.FPS()),
			slog.Duration("max", loopState.Times.MaxDuration),
		)
	}

	// the application asked to stop, the current frame is still presented
	return appErr
}
