package audio

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Backend plays fully rendered sample buffers.
type Backend interface {
	Play(samples []StereoSample) error
	SampleRate() int
}

type PlayerOptions struct {
	// number of distinct sound commands to keep rendered samples for
	CacheSize int
}

// Player turns SoundCommands into samples and hands them to a Backend.
type Player struct {
	backend Backend
	cache   *lru.Cache[SoundCommand, []StereoSample]
}

func NewPlayer(backend Backend, opts *PlayerOptions) (*Player, error) {
	if opts == nil {
		opts = &PlayerOptions{}
	}

	cacheSize := opts.CacheSize
	if cacheSize <= 0 {
		cacheSize = 64
	}

	cache, err := lru.New[SoundCommand, []StereoSample](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create sample cache: %w", err)
	}

	return &Player{backend: backend, cache: cache}, nil
}

// HandleCommand plays a single sound command. Failures are logged and
// never reach the frame loop.
func (p *Player) HandleCommand(cmd SoundCommand) {
	samples, ok := p.cache.Get(cmd)
	if !ok {
		samples = Synthesize(cmd, p.backend.SampleRate())
		p.cache.Add(cmd, samples)
	}

	if len(samples) == 0 {
		slog.Debug("Ignore silent sound command", slog.String("command", cmd.String()))
		return
	}

	if err := p.backend.Play(samples); err != nil {
		slog.Warn("Failed to play sound",
			slog.String("command", cmd.String()),
			slog.String("error", err.Error()))
	}
}

// CachedCommands returns the number of commands with cached samples.
func (p *Player) CachedCommands() int {
	return p.cache.Len()
}

// Suspender is implemented by backends that can pause the audio device.
type Suspender interface {
	Suspend() error
	Resume() error
}

// SetFocused suspends the backend while the window is not focused and
// resumes it once focus returns. Backends without a Suspender are left alone.
func (p *Player) SetFocused(focused bool) {
	suspender, ok := p.backend.(Suspender)
	if !ok {
		return
	}

	var err error
	if focused {
		err = suspender.Resume()
	} else {
		err = suspender.Suspend()
	}

	if err != nil {
		slog.Warn("Failed to change audio state",
			slog.Bool("focused", focused),
			slog.String("error", err.Error()))
	}
}

// NopBackend drops all samples. It is used when no audio device is available.
type NopBackend struct{}

func (NopBackend) Play([]StereoSample) error {
	return nil
}

func (NopBackend) SampleRate() int {
	return DefaultSampleRate
}
