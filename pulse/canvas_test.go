package pulse

import (
	"testing"

	"github.com/oliverbestmann/kframe/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_StartsEmpty(t *testing.T) {
	c := NewCanvas(1.5)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float32(1.5), c.Aspect())
	assert.Equal(t, RectangleFromXYWH[float32](0, 0, 1.5, 1), c.Bounds())
}

func TestCanvas_RecordsInOrder(t *testing.T) {
	c := NewCanvas(1)

	c.PushRect(RectangleFromXYWH[float32](0, 0, 0.5, 0.5), 1, ColorWhite)
	c.PushLine(glm.Vec2f{0, 0}, glm.Vec2f{1, 1}, 0.01, 2, ColorBlack)
	c.PushTriangle(glm.Vec2f{0, 0}, glm.Vec2f{1, 0}, glm.Vec2f{0, 1}, 3, ColorWhite)

	shapes := c.Shapes()
	require.Len(t, shapes, 3)

	assert.Equal(t, ShapeRect, shapes[0].Kind)
	assert.Equal(t, glm.Vec2f{0.5, 0.5}, shapes[0].Points[1])

	assert.Equal(t, ShapeLine, shapes[1].Kind)
	assert.Equal(t, float32(0.01), shapes[1].Width)

	assert.Equal(t, ShapeTriangle, shapes[2].Kind)
	assert.Equal(t, float32(3), shapes[2].Depth)
}

func TestCanvas_AppliesTransform(t *testing.T) {
	c := NewCanvas(1)
	c.SetTransform(glm.TranslationMat3[float32](1, 2))

	c.PushLine(glm.Vec2f{0, 0}, glm.Vec2f{1, 1}, 1, 0, ColorWhite)

	shape := c.Shapes()[0]
	assert.Equal(t, glm.Vec2f{1, 2}, shape.Points[0])
	assert.Equal(t, glm.Vec2f{2, 3}, shape.Points[1])
}

func TestRectangle_Aspect(t *testing.T) {
	r := RectangleFromXYWH[float32](0, 0, 800.0/600.0, 1)
	assert.InDelta(t, 1.3333, r.Aspect(), 1e-3)
	assert.True(t, r.ContainsPoint(glm.Vec2f{1, 0.5}))
	assert.False(t, r.ContainsPoint(glm.Vec2f{1.4, 0.5}))
}

func TestColor_DefaultIsOpaqueWhite(t *testing.T) {
	var c Color

	r, g, b, a := c.Components()
	assert.Equal(t, []float32{1, 1, 1, 1}, []float32{r, g, b, a})
	assert.Equal(t, ColorWhite, c)
}

func TestColor_Lerp(t *testing.T) {
	mid := ColorBlack.Lerp(ColorWhite, 0.5)

	r, _, _, a := mid.Components()
	assert.InDelta(t, 0.5, r, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)
}
