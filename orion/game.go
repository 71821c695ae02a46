package orion

import (
	"github.com/oliverbestmann/kframe/audio"
)

// Application is the logic driven by the loop. Frame is called exactly
// once per frame with that frame's inputs and a fresh FrameOutputs.
// Returning ExitApp stops the loop after the current frame.
type Application interface {
	Frame(in *FrameInputs, out *FrameOutputs) error
}

type ApplicationFunc func(in *FrameInputs, out *FrameOutputs) error

func (f ApplicationFunc) Frame(in *FrameInputs, out *FrameOutputs) error {
	return f(in, out)
}

type Viewport interface {
	SetViewport(width, height uint32)
}

// Renderer draws the outputs of a frame.
type Renderer interface {
	Viewport
	Render(out *FrameOutputs, aspect float32) error
}

// FocusListener is notified when the window gains or loses focus. An
// AudioSink implementing it is notified by Run.
type FocusListener interface {
	SetFocused(focused bool)
}

// AudioSink receives the sound commands of a frame, one at a time.
type AudioSink interface {
	HandleCommand(cmd audio.SoundCommand)
}
