package pulse

import (
	"math"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)
var ColorTransparent = ColorLinearRGBA(0, 0, 0, 0)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
// This is the usual color format on most devices.
// Use this if you picked a color from a jpeg image.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// Components returns the color components in linear rgb space.
func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

func (c Color) Alpha() float32 {
	return c.a1 + 1
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float32) Color {
	c.a1 = alpha - 1
	return c
}

// Lerp mixes c and other, t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		r1: c.r1 + (other.r1-c.r1)*t,
		g1: c.g1 + (other.g1-c.g1)*t,
		b1: c.b1 + (other.b1-c.b1)*t,
		a1: c.a1 + (other.a1-c.a1)*t,
	}
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
