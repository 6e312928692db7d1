package aag

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// FID is a stable, dense face identifier assigned by a single
// deterministic traversal of the shape's faces at Build time. FIDs are
// stable within one run; they are not portable across shapes or runs.
type FID int

// EID is an arc identifier assigned to interior edges (those separating
// exactly two distinct faces). It indexes Graph.Arcs.
type EID int

// FaceAttrs holds the cached per-face geometric attributes the
// recognizers read.
type FaceAttrs struct {
	Kernel      geomkernel.FaceID
	Surface     geomkernel.SurfaceKind
	Area        float64
	Normal      v3.Vec // outward unit normal sampled at the parameter-space center, orientation-corrected
	Centroid    v3.Vec
	Plane       geomkernel.PlaneParams    // valid iff Surface == Plane
	Cylinder    geomkernel.CylinderParams // valid iff Surface == Cylinder
	Cone        geomkernel.ConeParams     // valid iff Surface == Cone
	Sphere      geomkernel.SphereParams   // valid iff Surface == Sphere
	Torus       geomkernel.TorusParams    // valid iff Surface == Torus
	BBoxMin     v3.Vec
	BBoxMax     v3.Vec
	BoundingIDs []geomkernel.EdgeID
}

// Convexity is the closed, mutually exclusive classification of an AAG
// arc derived from its signed dihedral angle θ.
type Convexity int

const (
	// Smooth holds when |θ| > 177°: tangent continuity between faces.
	Smooth Convexity = iota
	// Convex holds when θ < 0 and not Smooth: material bulges outward.
	Convex
	// Concave holds when θ > 0 and not Smooth: material recedes inward.
	Concave
)

// String returns the string representation of a Convexity.
func (c Convexity) String() string {
	switch c {
	case Smooth:
		return "smooth"
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// classify derives the Convexity flag from a signed dihedral angle in
// degrees. This is the only place Convexity is derived from θ; every
// other component reads θ and the flag verbatim.
func classify(thetaDeg float64) Convexity {
	abs := thetaDeg
	if abs < 0 {
		abs = -abs
	}
	if abs > 177.0 {
		return Smooth
	}
	if thetaDeg < 0 {
		return Convex
	}
	return Concave
}

// Arc is an AAG edge between two faces: the unordered face pair, the
// underlying kernel edge, the signed dihedral angle, and its convexity
// classification.
type Arc struct {
	A, B       FID
	Kernel     geomkernel.EdgeID
	AngleDeg   float64 // θ ∈ (−180°, +180°]
	Convexity  Convexity
	Degenerate bool // true if the angle could not be computed and was recorded as 0

	// Kind and Circle cache the underlying edge's curve classification and
	// (when circular) its parameterization, so recognizers can test
	// bounding-arc spans (semicircular, quarter-circle) without holding a
	// reference to the shape themselves.
	Kind   geomkernel.EdgeKind
	Circle geomkernel.CircleParams
}

// Other returns the neighbor FID across this arc relative to fid.
func (a Arc) Other(fid FID) FID {
	if a.A == fid {
		return a.B
	}
	return a.A
}

type facePair struct {
	lo, hi FID
}

func pairKey(a, b FID) facePair {
	if a <= b {
		return facePair{a, b}
	}
	return facePair{b, a}
}
