package orion

import (
	"github.com/oliverbestmann/kframe/audio"
	"github.com/oliverbestmann/kframe/pulse"
)

// TextureUpload replaces the texture in the given slot.
type TextureUpload struct {
	Texture *pulse.TextureBuffer
	Slot    int
}

// TextureDraw draws the texture of a slot into a screen rectangle.
type TextureDraw struct {
	Rect  pulse.Rectangle2f
	Slot  int
	Depth float32
}

// FrameOutputs collects everything the application wants to draw or play
// during one frame. A new instance is created for every frame.
type FrameOutputs struct {
	Canvas      *pulse.Canvas
	SetTexture  []TextureUpload
	DrawTexture []TextureDraw
	Glyphs      *pulse.GlyphBuffer
	Sounds      []audio.SoundCommand
}

func NewFrameOutputs(aspect float32) *FrameOutputs {
	return &FrameOutputs{
		Canvas: pulse.NewCanvas(aspect),
		Glyphs: pulse.NewGlyphBuffer(),
	}
}

func (out *FrameOutputs) UploadTexture(texture *pulse.TextureBuffer, slot int) {
	out.SetTexture = append(out.SetTexture, TextureUpload{Texture: texture, Slot: slot})
}

func (out *FrameOutputs) DrawTextureAt(rect pulse.Rectangle2f, slot int, depth float32) {
	out.DrawTexture = append(out.DrawTexture, TextureDraw{Rect: rect, Slot: slot, Depth: depth})
}

func (out *FrameOutputs) PlaySound(cmd audio.SoundCommand) {
	out.Sounds = append(out.Sounds, cmd)
}

// IsEmpty reports whether nothing was recorded.
func (out *FrameOutputs) IsEmpty() bool {
	return out.Canvas.Len() == 0 &&
		out.Glyphs.Len() == 0 &&
		len(out.SetTexture) == 0 &&
		len(out.DrawTexture) == 0 &&
		len(out.Sounds) == 0
}
