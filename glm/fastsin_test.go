package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastSinCos(t *testing.T) {
	assert.InDelta(t, 0, FastSin(0), 1e-4)
	assert.InDelta(t, 1, FastCos(0), 1e-4)

	assert.InDelta(t, 1, FastSin(DegToRad(90)), 1e-3)
	assert.InDelta(t, 0, FastCos(DegToRad(90)), 1e-3)
	assert.InDelta(t, -1, FastCos(DegToRad(180)), 1e-3)
}

func TestMat3_Rotate(t *testing.T) {
	rotated := IdentityMat3[float32]().Rotate(DegToRad(90)).Transform2(Vec2f{1, 0})

	assert.InDelta(t, 0, rotated[0], 1e-3)
	assert.InDelta(t, 1, rotated[1], 1e-3)
}
