package pulse

import (
	"testing"

	"github.com/oliverbestmann/kframe/glm"
	"github.com/stretchr/testify/assert"
)

func TestRectangle_Union(t *testing.T) {
	a := RectangleFromXYWH[float32](0, 0, 1, 1)
	b := RectangleFromXYWH[float32](2, -1, 1, 1)

	union := a.Union(b)
	assert.Equal(t, glm.Vec2f{0, -1}, union.Min)
	assert.Equal(t, glm.Vec2f{3, 1}, union.Max)

	// union is symmetric and contains both inputs
	assert.Equal(t, union, b.Union(a))
	assert.Equal(t, a, a.Union(a))
}

func TestRectangle_ContainsPoint(t *testing.T) {
	r := RectangleFromXYWH[float32](0, 0, 2, 1)

	assert.True(t, r.ContainsPoint(glm.Vec2f{1, 0.5}))
	assert.False(t, r.ContainsPoint(glm.Vec2f{3, 0.5}))
	assert.InDelta(t, 2, r.Aspect(), 1e-6)
}
