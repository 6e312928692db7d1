package synth

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// lineEdge is a straight edge between two endpoints.
type lineEdge struct {
	p0, p1 v3.Vec
}

func (e *lineEdge) Kind() geomkernel.EdgeKind { return geomkernel.LinearEdge }

func (e *lineEdge) Endpoints() (float64, float64) { return 0, 1 }

func (e *lineEdge) PointAt(t float64) v3.Vec {
	return geomkernel.Add(e.p0, geomkernel.Scale(geomkernel.Sub(e.p1, e.p0), t))
}

func (e *lineEdge) TangentAt(t float64) (v3.Vec, bool) {
	return geomkernel.Normalize(geomkernel.Sub(e.p1, e.p0))
}

func (e *lineEdge) CircleParams() geomkernel.CircleParams { return geomkernel.CircleParams{} }

func (e *lineEdge) MidParam() float64 { return 0.5 }

// circleEdge is a circular or circular-arc edge parameterized by angle
// about center in the plane spanned by (e1, e2), with axis = e1 × e2.
type circleEdge struct {
	center       v3.Vec
	axis         v3.Vec
	e1, e2       v3.Vec
	radius       float64
	tStart, tEnd float64
}

func (e *circleEdge) Kind() geomkernel.EdgeKind { return geomkernel.CircularEdge }

func (e *circleEdge) Endpoints() (float64, float64) { return e.tStart, e.tEnd }

func (e *circleEdge) PointAt(t float64) v3.Vec {
	c, s := math.Cos(t), math.Sin(t)
	offset := geomkernel.Add(geomkernel.Scale(e.e1, c), geomkernel.Scale(e.e2, s))
	return geomkernel.Add(e.center, geomkernel.Scale(offset, e.radius))
}

func (e *circleEdge) TangentAt(t float64) (v3.Vec, bool) {
	c, s := math.Cos(t), math.Sin(t)
	dir := geomkernel.Sub(geomkernel.Scale(e.e2, c), geomkernel.Scale(e.e1, s))
	return geomkernel.Normalize(dir)
}

func (e *circleEdge) CircleParams() geomkernel.CircleParams {
	return geomkernel.CircleParams{
		Center:     e.center,
		Axis:       e.axis,
		Radius:     e.radius,
		RangeStart: e.tStart,
		RangeEnd:   e.tEnd,
	}
}

func (e *circleEdge) MidParam() float64 { return (e.tStart + e.tEnd) / 2 }
