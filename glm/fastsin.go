package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Rad is an angle in radians.
type Rad float32

func DegToRad(deg float32) Rad {
	return Rad(deg * (math.Pi / 180))
}

func fastSincos(r Rad) (float32, float32) {
	return FastSin(r), FastCos(r)
}

func FastSin(r Rad) float32 {
	return f32.Sin(float32(r))
}

func FastCos(r Rad) float32 {
	return f32.Cos(float32(r))
}
