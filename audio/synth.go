package audio

import (
	"math"

	"github.com/oliverbestmann/kframe/glm"
)

const (
	maxDuration = 10.0

	// fade in and out to avoid clicks at the edges of a tone
	fadeDuration = 0.005
)

// Synthesize renders the command into stereo samples. Commands without a
// positive frequency or duration produce no samples.
func Synthesize(cmd SoundCommand, sampleRate int) []StereoSample {
	if cmd.Frequency <= 0 || cmd.Duration <= 0 || sampleRate <= 0 {
		return nil
	}

	duration := min(cmd.Duration, maxDuration)
	amplitude := min(1, max(0, cmd.Amplitude))

	count := int(duration * float32(sampleRate))
	fadeCount := max(1, min(count/2, int(fadeDuration*float32(sampleRate))))

	samples := make([]StereoSample, count)

	step := cmd.Frequency / float32(sampleRate)

	var phase float32
	for idx := range samples {
		value := waveValue(cmd.Waveform, phase) * amplitude * envelope(idx, count, fadeCount)
		samples[idx] = StereoSample{value, value}

		phase += step
		phase -= float32(math.Floor(float64(phase)))
	}

	return samples
}

// waveValue evaluates the waveform at phase in [0, 1).
func waveValue(waveform Waveform, phase float32) float32 {
	switch waveform {
	case WaveformSquare:
		if phase < 0.5 {
			return 1
		}

		return -1

	case WaveformTriangle:
		return 1 - 4*float32(math.Abs(float64(phase-0.5)))

	case WaveformSaw:
		return 2*phase - 1

	default:
		return glm.FastSin(glm.Rad(phase * 2 * math.Pi))
	}
}

func envelope(idx, count, fadeCount int) float32 {
	switch {
	case idx < fadeCount:
		return float32(idx) / float32(fadeCount)
	case idx >= count-fadeCount:
		return float32(count-idx-1) / float32(fadeCount)
	default:
		return 1
	}
}
