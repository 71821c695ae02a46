package glimpse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessWindow_ReplaysBatches(t *testing.T) {
	win := NewHeadlessWindow(100, 50,
		[]Event{KeyEvent{Key: KeyA, Pressed: true}, ResizedEvent{Width: 80, Height: 60}},
		nil,
	)

	var events []Event
	var eventsAtFrame []int

	err := win.Run(context.Background(),
		func(event Event) error {
			events = append(events, event)
			return nil
		},
		func() error {
			eventsAtFrame = append(eventsAtFrame, len(events))
			return nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, eventsAtFrame)
	assert.Equal(t, 2, win.Frames())
	assert.Equal(t, LoopTerminatedEvent{}, events[len(events)-1])

	width, height := win.GetSize()
	assert.Equal(t, []uint32{80, 60}, []uint32{width, height})
}

func TestHeadlessWindow_SinkErrorStopsBeforeFrame(t *testing.T) {
	errStop := errors.New("stop")

	win := NewHeadlessWindow(10, 10,
		[]Event{CloseRequestedEvent{}, KeyEvent{Key: KeyB, Pressed: true}},
		[]Event{},
	)

	var seen int
	frames := 0

	err := win.Run(context.Background(),
		func(event Event) error {
			seen += 1
			return errStop
		},
		func() error {
			frames += 1
			return nil
		},
	)

	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, seen)
	assert.Equal(t, 0, frames)
}

func TestHeadlessWindow_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	win := NewHeadlessWindow(10, 10, []Event{})
	err := win.Run(ctx, func(Event) error { return nil }, func() error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, win.Frames())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, Key(30), KeyA)
	assert.Equal(t, "Space", KeySpace.String())
	assert.Equal(t, "Key(999)", Key(999).String())
}
