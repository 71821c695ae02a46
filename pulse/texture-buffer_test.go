package pulse

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextureBuffer(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	tex, err := DecodeTextureBuffer(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, uint32(2), tex.Width)
	assert.Equal(t, uint32(1), tex.Height)
	assert.Len(t, tex.Pixels, 8)

	r, g, b, a := tex.At(0, 0)
	assert.Equal(t, []uint8{255, 0, 0, 255}, []uint8{r, g, b, a})

	r, g, b, a = tex.At(1, 0)
	assert.Equal(t, []uint8{0, 0, 255, 255}, []uint8{r, g, b, a})
}

func TestDecodeTextureBuffer_Invalid(t *testing.T) {
	_, err := DecodeTextureBuffer([]byte("not an image"))
	assert.Error(t, err)
}

func TestTextureBuffer_Set(t *testing.T) {
	tex := NewTextureBuffer(2, 2)
	tex.Set(1, 1, ColorLinearRGBA(1, 0.5, 2, -1))

	r, g, b, a := tex.At(1, 1)
	assert.Equal(t, []uint8{255, 128, 255, 0}, []uint8{r, g, b, a})

	// out of bounds writes are dropped
	tex.Set(5, 5, ColorWhite)
}
