//go:build !js

// Package desktop implements a glimpse.Window on top of glfw.
package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/kframe/glimpse"
	"github.com/pkg/profile"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

type Options struct {
	Width  int
	Height int
	Title  string

	// write a cpu profile to the working directory until Terminate is called
	Profile bool
}

type Window struct {
	win  *glfw.Window
	prof interface{ Stop() }

	// set during Run, receives all events of the window
	sink glimpse.EventSink

	// first error returned by the sink, all events after that are dropped
	sinkErr error

	unknownKeys map[glfw.Key]bool
}

var _ glimpse.Window = (*Window)(nil)

func New(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{
		win:         window,
		unknownKeys: map[glfw.Key]bool{},
	}

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}

	w.configureInput()

	return w, nil
}

func (w *Window) GetSize() (uint32, uint32) {
	width, height := w.win.GetSize()
	return uint32(width), uint32(height)
}

func (w *Window) Terminate() {
	if w.prof != nil {
		w.prof.Stop()
	}

	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) Run(ctx context.Context, sink glimpse.EventSink, frame func() error) error {
	w.sink = sink
	defer func() { w.sink = nil }()

	for !w.win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		// callbacks are invoked synchronously from within PollEvents
		glfw.PollEvents()

		if w.sinkErr != nil {
			return w.sinkErr
		}

		if err := frame(); err != nil {
			return err
		}
	}

	w.emit(glimpse.LoopTerminatedEvent{})
	return w.sinkErr
}

func (w *Window) emit(event glimpse.Event) {
	if w.sink == nil || w.sinkErr != nil {
		return
	}

	w.sinkErr = w.sink(event)
}

func (w *Window) configureInput() {
	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		key := w.keyOf(glfwKey, scancode)

		switch action {
		case glfw.Press, glfw.Repeat:
			w.emit(glimpse.KeyEvent{Key: key, Pressed: true})

		case glfw.Release:
			w.emit(glimpse.KeyEvent{Key: key, Pressed: false})
		}
	})

	w.win.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := glimpse.MouseButton(btn)

		switch action {
		case glfw.Press:
			w.emit(glimpse.MouseButtonEvent{Button: button, Pressed: true})
		case glfw.Release:
			w.emit(glimpse.MouseButtonEvent{Button: button, Pressed: false})
		}
	})

	w.win.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		w.emit(glimpse.CursorMovedEvent{X: xpos, Y: ypos})
	})

	w.win.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		w.emit(glimpse.WheelEvent{Unit: glimpse.ScrollLines, DeltaX: xoff, DeltaY: yoff})
	})

	w.win.SetSizeCallback(func(_win *glfw.Window, width int, height int) {
		w.emit(glimpse.ResizedEvent{Width: uint32(width), Height: uint32(height)})
	})

	w.win.SetCloseCallback(func(_win *glfw.Window) {
		w.emit(glimpse.CloseRequestedEvent{})
	})

	w.win.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		w.emit(glimpse.FocusEvent{Focused: focused})
	})

	w.win.SetCharCallback(func(_win *glfw.Window, char rune) {
		w.emit(glimpse.CharEvent{Char: char})
	})
}

func (w *Window) keyOf(glfwKey glfw.Key, scancode int) glimpse.Key {
	key, ok := glfwToKey[glfwKey]
	if !ok && !w.unknownKeys[glfwKey] {
		w.unknownKeys[glfwKey] = true

		slog.Warn(
			"Unknown key code",
			slog.Int("glfwKey", int(glfwKey)),
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
		)
	}

	return key
}
