package audio

import "fmt"

type Sample = float32
type StereoSample [2]Sample

const DefaultSampleRate = 48000

type Waveform uint8

const (
	WaveformSine Waveform = iota
	WaveformSquare
	WaveformTriangle
	WaveformSaw
)

// SoundCommand requests a single synthesized tone. The zero Waveform is a sine.
// Commands are comparable and are used as cache keys for their samples.
type SoundCommand struct {
	// Frequency in hertz
	Frequency float32

	// Duration in seconds
	Duration float32

	// Amplitude between 0 and 1
	Amplitude float32

	Waveform Waveform
}

func (c SoundCommand) String() string {
	return fmt.Sprintf("Sound(%1.1fHz, %1.3fs, amp=%1.2f, wave=%d)",
		c.Frequency, c.Duration, c.Amplitude, c.Waveform)
}

// Tone is a shorthand for a sine SoundCommand.
func Tone(frequency, duration, amplitude float32) SoundCommand {
	return SoundCommand{
		Frequency: frequency,
		Duration:  duration,
		Amplitude: amplitude,
	}
}
