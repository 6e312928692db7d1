package synth

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// cylFace is a bounded cylindrical face: an angular range [uMin, uMax]
// about axis.Dir and a height range [vMin, vMax] along it. reversed
// means the face's outward normal points toward the axis rather than
// away from it, the shape of a hole or bore wall rather than a shaft.
type cylFace struct {
	axis          geomkernel.Axis
	radius        float64
	e1, e2        v3.Vec // orthonormal basis perpendicular to axis.Dir
	uMin, uMax    float64
	vMin, vMax    float64
	reversed      bool
	boundingEdges []geomkernel.EdgeID
}

func (f *cylFace) radial(theta float64) v3.Vec {
	c, s := math.Cos(theta), math.Sin(theta)
	return geomkernel.Add(geomkernel.Scale(f.e1, c), geomkernel.Scale(f.e2, s))
}

func (f *cylFace) SurfaceKind() geomkernel.SurfaceKind { return geomkernel.Cylinder }

func (f *cylFace) PlaneParams() geomkernel.PlaneParams { return geomkernel.PlaneParams{} }
func (f *cylFace) CylinderParams() geomkernel.CylinderParams {
	return geomkernel.CylinderParams{Axis: f.axis, Radius: f.radius}
}
func (f *cylFace) ConeParams() geomkernel.ConeParams     { return geomkernel.ConeParams{} }
func (f *cylFace) SphereParams() geomkernel.SphereParams { return geomkernel.SphereParams{} }
func (f *cylFace) TorusParams() geomkernel.TorusParams   { return geomkernel.TorusParams{} }

func (f *cylFace) ParamBounds() (float64, float64, float64, float64) {
	return f.uMin, f.uMax, f.vMin, f.vMax
}

func (f *cylFace) NormalAt(u, v float64) (v3.Vec, bool) {
	n := f.radial(u)
	if f.reversed {
		n = geomkernel.Scale(n, -1)
	}
	return n, true
}

func (f *cylFace) PointAt(u, v float64) v3.Vec {
	center := geomkernel.Add(f.axis.Loc, geomkernel.Scale(f.axis.Dir, v))
	return geomkernel.Add(center, geomkernel.Scale(f.radial(u), f.radius))
}

func (f *cylFace) Centroid() v3.Vec {
	return f.PointAt((f.uMin+f.uMax)/2, (f.vMin+f.vMax)/2)
}

func (f *cylFace) Area() float64 {
	return f.radius * (f.uMax - f.uMin) * (f.vMax - f.vMin)
}

func (f *cylFace) Orientation() geomkernel.Orientation {
	if f.reversed {
		return geomkernel.Reversed
	}
	return geomkernel.Forward
}

func (f *cylFace) BoundingEdges() []geomkernel.EdgeID {
	return f.boundingEdges
}

func (f *cylFace) BoundingBox() (v3.Vec, v3.Vec) {
	const samples = 8
	var pts []v3.Vec
	for i := 0; i <= samples; i++ {
		theta := f.uMin + (f.uMax-f.uMin)*float64(i)/float64(samples)
		pts = append(pts, f.PointAt(theta, f.vMin), f.PointAt(theta, f.vMax))
	}
	return boundingBoxOf(pts)
}

func (f *cylFace) Triangulate(deflection float64) ([]v3.Vec, []int) {
	return triangulateGrid(f.uMin, f.uMax, f.vMin, f.vMax, deflection, f.PointAt)
}

func (f *cylFace) Project(p v3.Vec) (float64, float64, bool) {
	w := geomkernel.Sub(p, f.axis.Loc)
	h := geomkernel.Dot(w, f.axis.Dir)
	radial := geomkernel.Sub(w, geomkernel.Scale(f.axis.Dir, h))
	length := geomkernel.Length(radial)
	if length < 1e-12 {
		return 0, 0, false
	}
	unit, _ := geomkernel.Normalize(radial)
	theta := math.Atan2(geomkernel.Dot(unit, f.e2), geomkernel.Dot(unit, f.e1))
	return theta, h, true
}

// perpendicularBasis returns two unit vectors orthogonal to dir and to
// each other, completing a right-handed frame with dir.
func perpendicularBasis(dir v3.Vec) (v3.Vec, v3.Vec) {
	ref := v3.Vec{X: 0, Y: 0, Z: 1}
	if math.Abs(dir.Z) > 0.9 {
		ref = v3.Vec{X: 1, Y: 0, Z: 0}
	}
	e1, _ := geomkernel.Normalize(geomkernel.Cross(ref, dir))
	e2 := geomkernel.Cross(dir, e1)
	return e1, e2
}
