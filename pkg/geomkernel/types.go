package geomkernel

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SurfaceKind is the closed enumeration of surface types the AAG
// understands. Kernels that expose exotic surfaces (offset, blend, swept)
// must report them as Other.
type SurfaceKind int

const (
	Plane SurfaceKind = iota
	Cylinder
	Cone
	Sphere
	Torus
	BSpline
	Other
)

// String returns the string representation of a SurfaceKind.
func (k SurfaceKind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Sphere:
		return "sphere"
	case Torus:
		return "torus"
	case BSpline:
		return "bspline"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// PlaneParams is the canonical parameterization of a planar face.
type PlaneParams struct {
	Point  v3.Vec
	Normal v3.Vec
}

// CylinderParams is the canonical parameterization of a cylindrical face.
// Invariant: Radius > 0 and Axis.Dir is a unit vector.
type CylinderParams struct {
	Axis   Axis
	Radius float64
}

// ConeParams is the canonical parameterization of a conical face.
type ConeParams struct {
	Axis      Axis
	Radius    float64 // radius at the apex-relative reference plane
	HalfAngle float64 // radians
}

// SphereParams is the canonical parameterization of a spherical face.
type SphereParams struct {
	Center v3.Vec
	Radius float64
}

// TorusParams is the canonical parameterization of a toroidal face.
type TorusParams struct {
	Axis        Axis
	MajorRadius float64
	MinorRadius float64
}

// Axis is an oriented infinite line: a location on the line plus a unit
// direction.
type Axis struct {
	Loc v3.Vec
	Dir v3.Vec
}

// EdgeKind is the closed enumeration of edge curve types the AAG cares
// about for bounding-arc classification (circular vs. linear vs. other).
type EdgeKind int

const (
	LinearEdge EdgeKind = iota
	CircularEdge
	OtherEdge
)

// CircleParams describes a circular bounding edge's geometry, used by the
// hole and fillet recognizers to test for semicircular / quarter-circle
// arcs.
type CircleParams struct {
	Center     v3.Vec
	Axis       v3.Vec // unit normal of the circle's plane
	Radius     float64
	RangeStart float64 // radians
	RangeEnd   float64 // radians
}

// AngularSpan returns the parametric angular range covered by the circular
// edge, in degrees, always non-negative.
func (c CircleParams) AngularSpan() float64 {
	span := (c.RangeEnd - c.RangeStart) * 180.0 / 3.141592653589793
	if span < 0 {
		span = -span
	}
	return span
}
