package pulse

import (
	"github.com/oliverbestmann/kframe/glm"
)

type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota + 1
	ShapeTriangle
	ShapeLine
)

// Shape is one recorded canvas command. Which points are meaningful
// depends on the Kind: a rect uses Points[0] as min and Points[1] as max,
// a line uses Points[0] and Points[1], a triangle uses all three.
type Shape struct {
	Kind   ShapeKind
	Points [3]glm.Vec2f
	Width  float32
	Depth  float32
	Color  Color
}

// Canvas records draw commands in screen space, where the screen spans
// (0, 0) to (aspect, 1). The renderer consumes the commands in the order
// they were recorded, sorted by depth.
type Canvas struct {
	aspect    float32
	transform glm.Mat3f
	shapes    []Shape
}

func NewCanvas(aspect float32) *Canvas {
	return &Canvas{
		aspect:    aspect,
		transform: glm.IdentityMat3[float32](),
	}
}

func (c *Canvas) Aspect() float32 {
	return c.aspect
}

// Bounds returns the visible region of the canvas.
func (c *Canvas) Bounds() Rectangle2f {
	return RectangleFromXYWH(0, 0, c.aspect, 1)
}

// SetTransform sets the transform applied to all points pushed afterwards.
func (c *Canvas) SetTransform(tr glm.Mat3f) {
	c.transform = tr
}

func (c *Canvas) Transform() glm.Mat3f {
	return c.transform
}

func (c *Canvas) PushRect(rect Rectangle2f, depth float32, color Color) {
	c.shapes = append(c.shapes, Shape{
		Kind:   ShapeRect,
		Points: [3]glm.Vec2f{c.transform.Transform2(rect.Min), c.transform.Transform2(rect.Max)},
		Depth:  depth,
		Color:  color,
	})
}

func (c *Canvas) PushTriangle(a, b, v glm.Vec2f, depth float32, color Color) {
	tr := c.transform

	c.shapes = append(c.shapes, Shape{
		Kind:   ShapeTriangle,
		Points: [3]glm.Vec2f{tr.Transform2(a), tr.Transform2(b), tr.Transform2(v)},
		Depth:  depth,
		Color:  color,
	})
}

func (c *Canvas) PushLine(a, b glm.Vec2f, width, depth float32, color Color) {
	c.shapes = append(c.shapes, Shape{
		Kind:   ShapeLine,
		Points: [3]glm.Vec2f{c.transform.Transform2(a), c.transform.Transform2(b)},
		Width:  width,
		Depth:  depth,
		Color:  color,
	})
}

// Shapes returns the recorded shapes. The slice must not be modified.
func (c *Canvas) Shapes() []Shape {
	return c.shapes
}

func (c *Canvas) Len() int {
	return len(c.shapes)
}
