package orion

import (
	"time"
)

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration
}

// Observe records the duration of one frame. It returns true every 60 frames.
func (t *FrameTimes) Observe(d time.Duration) bool {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.FrameCount += 1

	return t.FrameCount%60 == 0
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}
