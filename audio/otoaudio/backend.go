// Package otoaudio plays synthesized samples through the system audio
// device using oto.
package otoaudio

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"github.com/ebitengine/oto/v3"
	"github.com/oliverbestmann/kframe/audio"
)

const stereoSampleSize = unsafe.Sizeof(audio.StereoSample{})

type Backend struct {
	context    *oto.Context
	sampleRate int

	playersMu sync.Mutex
	players   []*oto.Player
}

// New opens the audio device. The device might not be ready yet when New
// returns, samples played before that are queued by oto.
func New(sampleRate int) (*Backend, error) {
	if sampleRate <= 0 {
		sampleRate = audio.DefaultSampleRate
	}

	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		Format:       oto.FormatFloat32LE,
		ChannelCount: 2,
		BufferSize:   32 * time.Millisecond,
	})

	if err != nil {
		return nil, fmt.Errorf("create audio context: %w", err)
	}

	go func() {
		<-ready
		slog.Info("AudioContext is ready", slog.Int("sampleRate", sampleRate))
	}()

	return &Backend{context: context, sampleRate: sampleRate}, nil
}

func (b *Backend) SampleRate() int {
	return b.sampleRate
}

// Play starts playback of the samples and returns immediately.
// The samples must not be modified afterwards.
func (b *Backend) Play(samples []audio.StereoSample) error {
	// view the sample slice as bytes so that the player can read from it
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(samples)))
	buf := unsafe.Slice(ptr, uintptr(len(samples))*stereoSampleSize)

	p := b.context.NewPlayer(bytes.NewReader(buf))
	p.Play()

	b.playersMu.Lock()
	defer b.playersMu.Unlock()

	b.players = append(b.pruneFinished(), p)

	return nil
}

// pruneFinished closes all players that stopped playing. Must be called
// with playersMu held.
func (b *Backend) pruneFinished() []*oto.Player {
	active := b.players[:0]

	for _, p := range b.players {
		if p.IsPlaying() {
			active = append(active, p)
			continue
		}

		if err := p.Close(); err != nil {
			slog.Debug("Close audio player", slog.String("error", err.Error()))
		}
	}

	return active
}

var _ audio.Suspender = (*Backend)(nil)

func (b *Backend) Suspend() error {
	return b.context.Suspend()
}

func (b *Backend) Resume() error {
	return b.context.Resume()
}
