package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// planeFace is a bounded rectangular planar face parameterized by an
// origin corner and an orthonormal in-plane basis (u, v). The outward
// normal is u × v, negated when reversed is set.
type planeFace struct {
	origin        v3.Vec
	u, v          v3.Vec
	uMin, uMax    float64
	vMin, vMax    float64
	reversed      bool
	boundingEdges []geomkernel.EdgeID

	// cutoutArea is subtracted from the rectangular area to approximate
	// faces with an inner hole boundary (bore rims, pocket mouths). The
	// synth kernel does not model trimmed parameter domains; Project and
	// PointAt stay valid everywhere, only Area and Centroid are
	// approximated.
	cutoutArea float64
}

func (f *planeFace) normal() v3.Vec {
	n, _ := geomkernel.Normalize(geomkernel.Cross(f.u, f.v))
	if f.reversed {
		n = geomkernel.Scale(n, -1)
	}
	return n
}

func (f *planeFace) SurfaceKind() geomkernel.SurfaceKind { return geomkernel.Plane }

func (f *planeFace) PlaneParams() geomkernel.PlaneParams {
	return geomkernel.PlaneParams{Point: f.origin, Normal: f.normal()}
}

func (f *planeFace) CylinderParams() geomkernel.CylinderParams { return geomkernel.CylinderParams{} }
func (f *planeFace) ConeParams() geomkernel.ConeParams         { return geomkernel.ConeParams{} }
func (f *planeFace) SphereParams() geomkernel.SphereParams     { return geomkernel.SphereParams{} }
func (f *planeFace) TorusParams() geomkernel.TorusParams       { return geomkernel.TorusParams{} }

func (f *planeFace) ParamBounds() (float64, float64, float64, float64) {
	return f.uMin, f.uMax, f.vMin, f.vMax
}

func (f *planeFace) NormalAt(u, v float64) (v3.Vec, bool) {
	return f.normal(), true
}

func (f *planeFace) PointAt(u, v float64) v3.Vec {
	p := geomkernel.Add(f.origin, geomkernel.Scale(f.u, u))
	return geomkernel.Add(p, geomkernel.Scale(f.v, v))
}

func (f *planeFace) Centroid() v3.Vec {
	return f.PointAt((f.uMin+f.uMax)/2, (f.vMin+f.vMax)/2)
}

func (f *planeFace) Area() float64 {
	a := (f.uMax-f.uMin)*(f.vMax-f.vMin) - f.cutoutArea
	if a < 0 {
		return 0
	}
	return a
}

func (f *planeFace) Orientation() geomkernel.Orientation {
	if f.reversed {
		return geomkernel.Reversed
	}
	return geomkernel.Forward
}

func (f *planeFace) BoundingEdges() []geomkernel.EdgeID {
	return f.boundingEdges
}

func (f *planeFace) BoundingBox() (v3.Vec, v3.Vec) {
	corners := []v3.Vec{
		f.PointAt(f.uMin, f.vMin),
		f.PointAt(f.uMin, f.vMax),
		f.PointAt(f.uMax, f.vMin),
		f.PointAt(f.uMax, f.vMax),
	}
	return boundingBoxOf(corners)
}

func (f *planeFace) Triangulate(deflection float64) ([]v3.Vec, []int) {
	return triangulateGrid(f.uMin, f.uMax, f.vMin, f.vMax, deflection, f.PointAt)
}

func (f *planeFace) Project(p v3.Vec) (float64, float64, bool) {
	n := f.normal()
	w := geomkernel.Sub(p, f.origin)
	d := geomkernel.Dot(w, n)
	onPlane := geomkernel.Sub(p, geomkernel.Scale(n, d))
	rel := geomkernel.Sub(onPlane, f.origin)
	return geomkernel.Dot(rel, f.u), geomkernel.Dot(rel, f.v), true
}

// boundingBoxOf returns the axis-aligned min/max corners of points.
func boundingBoxOf(points []v3.Vec) (v3.Vec, v3.Vec) {
	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
