package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// side identifies one of the four boundary sides of a face's rectangular
// parameter domain.
type side int

const (
	sideUMin side = iota
	sideUMax
	sideVMin
	sideVMax
)

const windingStep = 1e-6

// canonicalTangent returns the unit direction a face's own boundary loop
// travels along side s when that loop is wound counterclockwise as seen
// from the face's true outward normal (NormalAt, already
// orientation-corrected). (u, v) is any point on that side.
//
// Two faces sharing a manifold edge always traverse it in opposite
// directions in their own CCW loops; fixing the shared edge's tangent
// to one face's canonical direction (see orientedLineEdge /
// orientedCircleEdge) is what makes dihedralAngle's single shared
// tangent produce the physically correct convex/concave sign.
func canonicalTangent(face geomkernel.Face, s side, u, v float64) v3.Vec {
	dU := geomkernel.Scale(geomkernel.Sub(face.PointAt(u+windingStep, v), face.PointAt(u-windingStep, v)), 1/(2*windingStep))
	dV := geomkernel.Scale(geomkernel.Sub(face.PointAt(u, v+windingStep), face.PointAt(u, v-windingStep)), 1/(2*windingStep))

	var raw v3.Vec
	switch s {
	case sideUMin:
		raw = geomkernel.Scale(dV, -1)
	case sideUMax:
		raw = dV
	case sideVMin:
		raw = dU
	case sideVMax:
		raw = geomkernel.Scale(dU, -1)
	}

	natural := geomkernel.Cross(dU, dV)
	if n, ok := face.NormalAt(u, v); ok && geomkernel.Dot(natural, n) < 0 {
		raw = geomkernel.Scale(raw, -1)
	}

	unit, ok := geomkernel.Normalize(raw)
	if !ok {
		return raw
	}
	return unit
}

// canonicalTangentAtPoint projects a world-space point onto face and
// evaluates canonicalTangent there.
func canonicalTangentAtPoint(face geomkernel.Face, s side, worldPoint v3.Vec) v3.Vec {
	u, v, ok := face.Project(worldPoint)
	if !ok {
		u, v = 0, 0
	}
	return canonicalTangent(face, s, u, v)
}

// orientedLineEdge builds a straight edge between p0 and p1, oriented so
// its direction matches faceB's canonical winding direction on side s.
// faceB must be the second face passed to builder.addEdge for this
// edge, per dihedralAngle's shared-tangent convention.
func orientedLineEdge(p0, p1 v3.Vec, faceB geomkernel.Face, s side) *lineEdge {
	mid := geomkernel.Scale(geomkernel.Add(p0, p1), 0.5)
	want := canonicalTangentAtPoint(faceB, s, mid)
	raw, ok := geomkernel.Normalize(geomkernel.Sub(p1, p0))
	if ok && geomkernel.Dot(want, raw) < 0 {
		p0, p1 = p1, p0
	}
	return &lineEdge{p0: p0, p1: p1}
}

// orientedCircleEdge builds a circular edge around center in the plane
// spanned by (e1, e2) (axis = e1 × e2), covering angular range
// [tStart, tEnd] measured from e1 toward e2, then re-oriented (by
// negating the range and flipping the in-plane basis handedness) so its
// direction at the midpoint matches faceB's canonical winding direction
// on side s.
func orientedCircleEdge(center v3.Vec, e1, e2 v3.Vec, radius, tStart, tEnd float64, faceB geomkernel.Face, s side) *circleEdge {
	axis, _ := geomkernel.Normalize(geomkernel.Cross(e1, e2))
	e := &circleEdge{center: center, axis: axis, e1: e1, e2: e2, radius: radius, tStart: tStart, tEnd: tEnd}

	mid := e.PointAt(e.MidParam())
	want := canonicalTangentAtPoint(faceB, s, mid)
	got, ok := e.TangentAt(e.MidParam())
	if ok && geomkernel.Dot(want, got) < 0 {
		e.e2 = geomkernel.Scale(e2, -1)
		e.axis = geomkernel.Scale(axis, -1)
		e.tStart, e.tEnd = -tStart, -tEnd
	}
	return e
}
