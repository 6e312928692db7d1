package geomkernel

import v3 "github.com/deadsy/sdfx/vec/v3"

// FaceID is a kernel-local handle to a face. It has no meaning outside the
// Shape it was obtained from; the AAG builder re-numbers faces into its own
// stable, dense FIDs on build.
type FaceID int

// EdgeID is a kernel-local handle to an edge, scoped the same way as
// FaceID.
type EdgeID int

// Shape is the narrow capability set a loaded B-rep solid must expose.
// Implementations must be pure: Shape methods never mutate kernel state
// and never cache results behind the caller's back.
type Shape interface {
	// Faces enumerates the shape's faces in a stable, deterministic
	// order. The AAG builder assigns FIDs by walking this slice once.
	Faces() []FaceID

	// Face returns the face accessor for the given kernel face handle.
	Face(id FaceID) Face

	// Edges enumerates the shape's topological edges in a stable order.
	Edges() []EdgeID

	// Edge returns the edge accessor for the given kernel edge handle.
	Edge(id EdgeID) Edge

	// EdgeFaces returns the faces incident to an edge. Exactly two
	// distinct entries means an interior edge (one AAG arc); one entry
	// means a boundary edge (no arc); more than two means non-manifold
	// (recorded as a diagnostic, no arc produced).
	EdgeFaces(id EdgeID) []FaceID

	// Classify reports whether a world point is inside, on, or outside
	// the solid. No recognizer calls it: the thin-wall ray sampling
	// intersects face surfaces directly.
	Classify(p v3.Vec) PointClass
}

// PointClass is the result of classifying a point against a solid.
type PointClass int

const (
	Outside PointClass = iota
	OnBoundary
	Inside
)

// Face is the narrow capability set exposed per face.
type Face interface {
	// SurfaceKind reports the closed surface-type enumeration for this
	// face.
	SurfaceKind() SurfaceKind

	// PlaneParams, CylinderParams, SphereParams, TorusParams, ConeParams
	// return the canonical parameterization for the corresponding
	// SurfaceKind. Callers only invoke the accessor matching
	// SurfaceKind(); behavior is undefined otherwise.
	PlaneParams() PlaneParams
	CylinderParams() CylinderParams
	ConeParams() ConeParams
	SphereParams() SphereParams
	TorusParams() TorusParams

	// ParamBounds returns the face's parametric domain as
	// (uMin, uMax, vMin, vMax).
	ParamBounds() (float64, float64, float64, float64)

	// NormalAt returns the outward unit normal at parameter (u, v),
	// corrected for the face's topological orientation (negated if the
	// face is reversed). Returns ok=false (ErrNormalUndefined) if the
	// normal is degenerate at that parameter.
	NormalAt(u, v float64) (n v3.Vec, ok bool)

	// PointAt returns the world-space point at parameter (u, v).
	PointAt(u, v float64) v3.Vec

	// Centroid returns the face's area centroid in world space.
	Centroid() v3.Vec

	// Area returns the face's surface area.
	Area() float64

	// Orientation reports whether the face's topological orientation is
	// reversed relative to its underlying surface's natural normal.
	Orientation() Orientation

	// BoundingEdges returns the edges that bound this face.
	BoundingEdges() []EdgeID

	// BoundingBox returns the face's axis-aligned bounding box
	// (min, max).
	BoundingBox() (min, max v3.Vec)

	// Project finds the closest point on the face's surface to p, in
	// (u, v) parameter space. Returns ok=false (ErrProjectionFailed) if
	// no projection exists (e.g. p is too far outside the face's
	// natural domain).
	Project(p v3.Vec) (u, v float64, ok bool)

	// Triangulate runs the kernel's incremental triangulator over the
	// face's parametric domain at the given linear-deflection tolerance
	// (smaller values track curvature more closely). Returns the face's
	// local vertex positions and a flat triangle index list into that
	// vertex slice (three indices per triangle).
	Triangulate(deflection float64) (verts []v3.Vec, tris []int)
}

// Orientation is whether a face's topology agrees with its surface's
// natural orientation.
type Orientation int

const (
	Forward Orientation = iota
	Reversed
)

// Edge is the narrow capability set exposed per edge.
type Edge interface {
	// Kind reports the edge's curve type.
	Kind() EdgeKind

	// Endpoints returns the edge's parametric range [t0, t1].
	Endpoints() (t0, t1 float64)

	// PointAt returns the world-space point at parameter t.
	PointAt(t float64) v3.Vec

	// TangentAt returns the unit tangent at parameter t. Returns
	// ok=false (ErrDegenerateEdge) if the tangent is zero-length there.
	TangentAt(t float64) (tan v3.Vec, ok bool)

	// CircleParams returns the circular parameterization of this edge.
	// Only meaningful when Kind() == CircularEdge.
	CircleParams() CircleParams

	// MidParam returns a parameter value near the edge's midpoint,
	// suitable as the dihedral-angle sample point.
	MidParam() float64
}
