package orion

import (
	"log/slog"

	"github.com/oliverbestmann/kframe/pulse"
)

type FrameStats struct {
	Shapes         int
	TextCommands   int
	TextureUploads int
	TextureDraws   int
	Aspect         float32
}

// StatsRenderer is a Renderer that does not rasterize anything. It keeps
// track of the uploaded textures and records statistics about each frame.
type StatsRenderer struct {
	Width, Height uint32

	Frames uint64
	Last   FrameStats

	textures     map[int]*pulse.TextureBuffer
	missingSlots map[int]bool
}

var _ Renderer = (*StatsRenderer)(nil)

func NewStatsRenderer() *StatsRenderer {
	return &StatsRenderer{
		textures:     map[int]*pulse.TextureBuffer{},
		missingSlots: map[int]bool{},
	}
}

func (r *StatsRenderer) SetViewport(width, height uint32) {
	r.Width = width
	r.Height = height
}

func (r *StatsRenderer) Render(out *FrameOutputs, aspect float32) error {
	for _, upload := range out.SetTexture {
		if upload.Texture == nil {
			delete(r.textures, upload.Slot)
			continue
		}

		r.textures[upload.Slot] = upload.Texture
		delete(r.missingSlots, upload.Slot)
	}

	for _, draw := range out.DrawTexture {
		if _, ok := r.textures[draw.Slot]; ok || r.missingSlots[draw.Slot] {
			continue
		}

		r.missingSlots[draw.Slot] = true
		slog.Warn("Draw of empty texture slot", slog.Int("slot", draw.Slot))
	}

	r.Frames += 1

	r.Last = FrameStats{
		Shapes:         out.Canvas.Len(),
		TextCommands:   out.Glyphs.Len(),
		TextureUploads: len(out.SetTexture),
		TextureDraws:   len(out.DrawTexture),
		Aspect:         aspect,
	}

	return nil
}

// Texture returns the texture currently uploaded to the slot.
func (r *StatsRenderer) Texture(slot int) (*pulse.TextureBuffer, bool) {
	texture, ok := r.textures[slot]
	return texture, ok
}
