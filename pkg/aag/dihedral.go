package aag

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// dihedralAngle computes the signed dihedral angle across a shared edge.
// It samples a point A on the edge near its midpoint, computes the edge
// tangent t, and for each of the two faces forms the in-face tangent
// y_i = normalize(n_i × t). The raw signed rotation from y_1 to y_2
// about t is then folded to its supplement, so that tangent-continuous
// faces measure ±180° (smooth), a square outside corner measures −90°
// (convex), and a square inside corner measures +90° (concave). If any
// of tangent, projection, or normal is degenerate, the arc is still
// produced with θ = 0 and degenerate = true.
//
// This is the only place signed angles are computed; every other
// component consumes θ verbatim.
func dihedralAngle(edge geomkernel.Edge, faceA, faceB geomkernel.Face) (thetaDeg float64, degenerate bool) {
	t, ok := edge.TangentAt(edge.MidParam())
	if !ok {
		return 0, true
	}
	a := edge.PointAt(edge.MidParam())

	y1, ok1 := inFaceTangent(faceA, a, t)
	y2, ok2 := inFaceTangent(faceB, a, t)
	if !ok1 || !ok2 {
		return 0, true
	}

	theta := 180 - geomkernel.SignedAngle(y1, y2, t)
	if theta > 180 {
		theta -= 360
	}
	return theta, false
}

// inFaceTangent computes y_i = normalize(n_i × t) for a face at the
// projection of point a, where n_i is the face's orientation-corrected
// outward normal.
func inFaceTangent(face geomkernel.Face, a, t v3.Vec) (v3.Vec, bool) {
	u, v, ok := face.Project(a)
	if !ok {
		return v3.Vec{}, false
	}
	n, ok := face.NormalAt(u, v)
	if !ok {
		return v3.Vec{}, false
	}
	y := geomkernel.Cross(n, t)
	return geomkernel.Normalize(y)
}
