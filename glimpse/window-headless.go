package glimpse

import "context"

// HeadlessWindow replays scripted batches of events without a platform
// window. Each batch is followed by one frame. Once all batches are
// replayed, a LoopTerminatedEvent is delivered.
type HeadlessWindow struct {
	width, height uint32
	batches       [][]Event
	frames        int
}

func NewHeadlessWindow(width, height uint32, batches ...[]Event) *HeadlessWindow {
	return &HeadlessWindow{
		width:   width,
		height:  height,
		batches: batches,
	}
}

func (h *HeadlessWindow) GetSize() (uint32, uint32) {
	return h.width, h.height
}

func (h *HeadlessWindow) Run(ctx context.Context, sink EventSink, frame func() error) error {
	for _, batch := range h.batches {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, event := range batch {
			if resized, ok := event.(ResizedEvent); ok {
				h.width, h.height = resized.Width, resized.Height
			}

			if err := sink(event); err != nil {
				return err
			}
		}

		if err := frame(); err != nil {
			return err
		}

		h.frames += 1
	}

	return sink(LoopTerminatedEvent{})
}

// Frames returns the number of frames that ran to completion.
func (h *HeadlessWindow) Frames() int {
	return h.frames
}

func (h *HeadlessWindow) Terminate() {
	// nothing to release
}
