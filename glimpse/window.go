package glimpse

import "context"

type Window interface {
	// GetSize returns the current size in the units of cursor and resize events.
	GetSize() (uint32, uint32)

	// Run pumps platform events into sink and calls frame once after each
	// batch of events. Run returns when ctx is done, when sink or frame
	// return an error, or when the platform loop ends.
	Run(ctx context.Context, sink EventSink, frame func() error) error

	Terminate()
}
