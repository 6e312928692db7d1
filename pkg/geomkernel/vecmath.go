package geomkernel

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// The handful of vector operations the dihedral-angle algorithm and the
// recognizers need, built on top of sdfx's v3.Vec storage type. sdfx's own
// vec/v3 package targets signed-distance-field geometry rather than
// B-rep topology, so the small amount of linear algebra this module needs
// (dot/cross/normalize against an edge tangent) is written directly
// against v3.Vec's fields.

// Dot returns the dot product of a and b.
func Dot(a, b v3.Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func Cross(a, b v3.Vec) v3.Vec {
	return v3.Vec{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Sub returns a - b.
func Sub(a, b v3.Vec) v3.Vec {
	return v3.Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Add returns a + b.
func Add(a, b v3.Vec) v3.Vec {
	return v3.Vec{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Scale returns a scaled by s.
func Scale(a v3.Vec, s float64) v3.Vec {
	return v3.Vec{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// Length returns the Euclidean length of a.
func Length(a v3.Vec) float64 {
	return math.Sqrt(Dot(a, a))
}

// Normalize returns a unit vector parallel to a, and false if a is too
// close to zero-length to normalize safely.
func Normalize(a v3.Vec) (v3.Vec, bool) {
	l := Length(a)
	if l < 1e-12 {
		return v3.Vec{}, false
	}
	return Scale(a, 1.0/l), true
}

// DistanceToLine projects p onto the infinite line through loc in
// direction dir (dir assumed unit) and returns the perpendicular distance
// from p to that line.
func DistanceToLine(p, loc, dir v3.Vec) float64 {
	w := Sub(p, loc)
	along := Dot(w, dir)
	closest := Add(loc, Scale(dir, along))
	return Length(Sub(p, closest))
}

// SignedAngle returns the signed angle in degrees, in (−180°, +180°],
// from y1 to y2 measured about the axis t (assumed unit).
func SignedAngle(y1, y2, t v3.Vec) float64 {
	cosT := Dot(y1, y2)
	sinT := Dot(Cross(y1, y2), t)
	rad := math.Atan2(sinT, cosT)
	deg := rad * 180.0 / math.Pi
	if deg <= -180.0 {
		deg += 360.0
	}
	return deg
}
