package vector

import (
	"github.com/oliverbestmann/kframe/glm"
	"github.com/oliverbestmann/kframe/pulse"
)

// default flatness in screen units, the screen is one unit high
const defaultFlatness = 1.0 / 1024

type FillPathOptions struct {
	Depth    float32
	Color    pulse.Color
	Flatness float32
}

// FillPath fills every contour of the path as a triangle fan around its
// first point. This is correct for convex contours only.
func FillPath(canvas *pulse.Canvas, path *Path, opts *FillPathOptions) {
	if opts == nil {
		opts = &FillPathOptions{}
	}

	for _, points := range path.Contours(flatnessOf(opts.Flatness)) {
		if len(points) > 1 && points[0] == points[len(points)-1] {
			points = points[:len(points)-1]
		}

		for idx := 2; idx < len(points); idx++ {
			canvas.PushTriangle(points[0], points[idx-1], points[idx], opts.Depth, opts.Color)
		}
	}
}

type StrokePathOptions struct {
	Width    float32
	Depth    float32
	Color    pulse.Color
	Flatness float32
}

// StrokePath records one line per contour segment.
func StrokePath(canvas *pulse.Canvas, path *Path, opts *StrokePathOptions) {
	if opts == nil {
		opts = &StrokePathOptions{}
	}

	width := opts.Width
	if width <= 0 {
		width = 1.0 / 256
	}

	for _, points := range path.Contours(flatnessOf(opts.Flatness)) {
		for idx := 1; idx < len(points); idx++ {
			canvas.PushLine(points[idx-1], points[idx], width, opts.Depth, opts.Color)
		}
	}
}

// Circle appends a closed circle approximated by four cubic curves.
func (p *Path) Circle(center glm.Vec2f, radius float32) {
	// control point distance for a quarter circle
	const k = 0.5522847498

	cx, cy := center.XY()
	r := radius
	d := radius * k

	p.MoveTo(glm.Vec2f{cx + r, cy})
	p.CubicCurveTo(glm.Vec2f{cx + r, cy + d}, glm.Vec2f{cx + d, cy + r}, glm.Vec2f{cx, cy + r})
	p.CubicCurveTo(glm.Vec2f{cx - d, cy + r}, glm.Vec2f{cx - r, cy + d}, glm.Vec2f{cx - r, cy})
	p.CubicCurveTo(glm.Vec2f{cx - r, cy - d}, glm.Vec2f{cx - d, cy - r}, glm.Vec2f{cx, cy - r})
	p.CubicCurveTo(glm.Vec2f{cx + d, cy - r}, glm.Vec2f{cx + r, cy - d}, glm.Vec2f{cx + r, cy})
	p.Close()
}

func flatnessOf(value float32) float32 {
	if value <= 0 {
		return defaultFlatness
	}

	return value
}
