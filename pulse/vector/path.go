package vector

import (
	"github.com/oliverbestmann/kframe/glm"
)

type operationType uint32

const (
	opMove       operationType = 1
	opLine       operationType = 2
	opQuadCurve  operationType = 3
	opCubicCurve operationType = 4
	opClose      operationType = 5
)

type pathOp struct {
	Type    operationType
	End     glm.Vec2f
	Control [2]glm.Vec2f
}

// Path is a sequence of sub paths, each started by MoveTo.
type Path struct {
	ops []pathOp
}

func (p *Path) MoveTo(pos glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type: opMove,
		End:  pos,
	})
}

func (p *Path) LineTo(pos glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type: opLine,
		End:  pos,
	})
}

func (p *Path) Close() {
	p.ops = append(p.ops, pathOp{
		Type: opClose,
	})
}

func (p *Path) QuadCurveTo(control, end glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type:    opQuadCurve,
		End:     end,
		Control: [2]glm.Vec2f{control},
	})
}

func (p *Path) CubicCurveTo(control1, control2, end glm.Vec2f) {
	p.ops = append(p.ops, pathOp{
		Type:    opCubicCurve,
		End:     end,
		Control: [2]glm.Vec2f{control1, control2},
	})
}

func (p *Path) IsEmpty() bool {
	return len(p.ops) == 0
}

// Contours flattens the path into one polyline per sub path. Curves are
// subdivided until they deviate less than flatness from a straight line.
func (p *Path) Contours(flatness float32) [][]glm.Vec2f {
	var contours [][]glm.Vec2f
	var points []glm.Vec2f

	var curr, start glm.Vec2f

	flush := func() {
		if cleaned := dedupe(points); len(cleaned) > 1 {
			contours = append(contours, cleaned)
		}

		points = nil
	}

	for _, op := range p.ops {
		switch op.Type {
		case opMove:
			flush()
			start = op.End
			points = append(points, op.End)

		case opLine:
			if len(points) == 0 {
				points = append(points, curr)
			}

			points = append(points, op.End)

		case opQuadCurve:
			adaptiveQuadCurve(curr, op.Control[0], op.End, flatness, &points)

		case opCubicCurve:
			adaptiveCubicCurve(curr, op.Control[0], op.Control[1], op.End, flatness, &points)

		case opClose:
			if len(points) > 0 {
				points = append(points, start)
			}

			op.End = start
		}

		curr = op.End
	}

	flush()

	return contours
}

func dedupe(points []glm.Vec2f) []glm.Vec2f {
	if len(points) == 0 {
		return nil
	}

	pointsClean := points[:1]

	prev := points[0]
	for _, point := range points[1:] {
		if prev == point {
			continue
		}

		pointsClean = append(pointsClean, point)
		prev = point
	}

	return pointsClean
}

func adaptiveQuadCurve(p0, p1, p2 glm.Vec2f, flatness float32, out *[]glm.Vec2f) {
	if pointLineDistance(p1, p0, p2) <= flatness {
		*out = append(*out, p0, p2)
		return
	}

	q0 := mid(p0, p1)
	q1 := mid(p1, p2)
	m := mid(q0, q1)

	adaptiveQuadCurve(p0, q0, m, flatness, out)
	adaptiveQuadCurve(m, q1, p2, flatness, out)
}

func adaptiveCubicCurve(p0, p1, p2, p3 glm.Vec2f, flatness float32, out *[]glm.Vec2f) {
	d1 := pointLineDistance(p1, p0, p3)
	d2 := pointLineDistance(p2, p0, p3)

	if d1 <= flatness && d2 <= flatness {
		*out = append(*out, p0, p3)
		return
	}

	q0 := mid(p0, p1)
	q1 := mid(p1, p2)
	q2 := mid(p2, p3)

	r0 := mid(q0, q1)
	r1 := mid(q1, q2)

	s := mid(r0, r1)

	adaptiveCubicCurve(p0, q0, r0, s, flatness, out)
	adaptiveCubicCurve(s, r1, q2, p3, flatness, out)
}

func mid(a, b glm.Vec2f) glm.Vec2f {
	return glm.Vec2f{(a[0] + b[0]) * 0.5, (a[1] + b[1]) * 0.5}
}

func pointLineDistance(p, a, b glm.Vec2f) float32 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		// degenerate line, fall back to point distance
		return ap.Length()
	}

	// project AP onto AB
	t := ap.Dot(ab) / lenSq
	closest := a.Add(ab.MulScalar(t))

	return p.Sub(closest).Length()
}
