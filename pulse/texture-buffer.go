package pulse

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	_ "image/jpeg"
	_ "image/png"
)

// TextureBuffer holds tightly packed RGBA8 pixels on the CPU side, ready
// to be uploaded to a texture slot by the renderer.
type TextureBuffer struct {
	Width  uint32
	Height uint32
	Pixels []byte
}

func NewTextureBuffer(width, height uint32) *TextureBuffer {
	return &TextureBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]byte, int(width)*int(height)*4),
	}
}

func DecodeTextureBuffer(buf []byte) (*TextureBuffer, error) {
	src, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image from memory: %w", err)
	}

	return TextureBufferFromImage(src), nil
}

func TextureBufferFromImage(src image.Image) *TextureBuffer {
	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, iw, ih))

	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	return &TextureBuffer{
		Width:  uint32(iw),
		Height: uint32(ih),
		Pixels: rgba.Pix,
	}
}

// Set writes the pixel at x, y. Components are clamped to [0, 1].
func (t *TextureBuffer) Set(x, y uint32, color Color) {
	if x >= t.Width || y >= t.Height {
		return
	}

	r, g, b, a := color.Components()

	offset := (int(y)*int(t.Width) + int(x)) * 4
	t.Pixels[offset+0] = toByte(r)
	t.Pixels[offset+1] = toByte(g)
	t.Pixels[offset+2] = toByte(b)
	t.Pixels[offset+3] = toByte(a)
}

func (t *TextureBuffer) At(x, y uint32) (r, g, b, a uint8) {
	offset := (int(y)*int(t.Width) + int(x)) * 4
	px := t.Pixels[offset : offset+4]
	return px[0], px[1], px[2], px[3]
}

func toByte(value float32) uint8 {
	return uint8(min(1, max(0, value))*255 + 0.5)
}
