package recognize

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// cosOneDegree is cos(1°), the coaxiality direction tolerance.
var cosOneDegree = math.Cos(1 * math.Pi / 180)

// coaxial reports whether two oriented axes are coaxial: their
// directions agree within 1° (ignoring sign) and the perpendicular
// distance between the infinite lines is below 1e-6. Both tolerances
// are part of the output contract and must not be tightened or relaxed.
func coaxial(a, b geomkernel.Axis) bool {
	cosAngle := math.Abs(geomkernel.Dot(a.Dir, b.Dir))
	if cosAngle <= cosOneDegree {
		return false
	}
	return perpendicularDistance(a, b) < 1e-6
}

// perpendicularDistance returns the distance between two infinite
// lines.
func perpendicularDistance(a, b geomkernel.Axis) float64 {
	cross := geomkernel.Cross(a.Dir, b.Dir)
	w := geomkernel.Sub(b.Loc, a.Loc)
	n := geomkernel.Length(cross)
	if n < 1e-12 {
		// Parallel lines: distance from b.Loc to the line through a.
		return geomkernel.DistanceToLine(b.Loc, a.Loc, a.Dir)
	}
	unit, _ := geomkernel.Normalize(cross)
	return math.Abs(geomkernel.Dot(w, unit))
}

// closestPointOnAxis projects p onto the infinite line (loc, dir).
func closestPointOnAxis(p v3.Vec, axis geomkernel.Axis) v3.Vec {
	w := geomkernel.Sub(p, axis.Loc)
	along := geomkernel.Dot(w, axis.Dir)
	return geomkernel.Add(axis.Loc, geomkernel.Scale(axis.Dir, along))
}

// isInternalCylinder reports whether a cylindrical face is a bore wall:
// sample the face at its parametric center (attrs.Centroid/attrs.Normal
// are already cached there), let r_dir be the unit vector from the axis
// toward that point; the face is internal iff n·r_dir < 0, i.e. the
// outward normal points back toward the axis.
func isInternalCylinder(attrs aag.FaceAttrs) bool {
	closest := closestPointOnAxis(attrs.Centroid, attrs.Cylinder.Axis)
	rDir, ok := geomkernel.Normalize(geomkernel.Sub(attrs.Centroid, closest))
	if !ok {
		return false
	}
	return geomkernel.Dot(attrs.Normal, rDir) < 0
}

// boundingArcs returns the AAG arcs for every bounding edge of attrs
// that produced one (boundary/non-manifold edges have none).
func boundingArcs(g *aag.Graph, attrs aag.FaceAttrs) []aag.Arc {
	var arcs []aag.Arc
	for _, eid := range attrs.BoundingIDs {
		if a, ok := g.ArcByKernelEdge(eid); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// angularSpanNear reports whether a circular arc's angular span (degrees)
// is within tolerance of target.
func angularSpanNear(a aag.Arc, target, tolerance float64) bool {
	if a.Kind != geomkernel.CircularEdge {
		return false
	}
	span := a.Circle.AngularSpan()
	return math.Abs(span-target) <= tolerance
}

// hasQuarterArc reports whether any bounding edge of attrs is a
// quarter-circle (90° ± 5°), the fillet signature.
func hasQuarterArc(g *aag.Graph, attrs aag.FaceAttrs) bool {
	for _, a := range boundingArcs(g, attrs) {
		if angularSpanNear(a, 90, 5) {
			return true
		}
	}
	return false
}

// hasConcentricSemicircleNoQuarter checks a hole candidate's rim
// signature: among the bounding circular edges whose center lies within
// 1e-3 of the cylinder's axis line, require at least one semicircular
// arc (180°±5°) and zero quarter-circle arcs (90°±5°). The
// quarter-circle exclusion is what rejects fillet faces that survived
// the internality test.
func hasConcentricSemicircleNoQuarter(g *aag.Graph, attrs aag.FaceAttrs) bool {
	axis := attrs.Cylinder.Axis
	sawSemicircle := false
	for _, a := range boundingArcs(g, attrs) {
		if a.Kind != geomkernel.CircularEdge {
			continue
		}
		if geomkernel.DistanceToLine(a.Circle.Center, axis.Loc, axis.Dir) > 1e-3 {
			continue
		}
		if angularSpanNear(a, 90, 5) {
			return false
		}
		if angularSpanNear(a, 180, 5) {
			sawSemicircle = true
		}
	}
	return sawSemicircle
}

// inOpenRange reports whether v lies strictly between lo and hi.
func inOpenRange(v, lo, hi float64) bool {
	return v > lo && v < hi
}

// bboxMargin reports whether two faces' axis-aligned bounding boxes lie
// within margin of one another on every axis.
func bboxMargin(a, b aag.FaceAttrs, margin float64) bool {
	return a.BBoxMin.X-margin <= b.BBoxMax.X && b.BBoxMin.X-margin <= a.BBoxMax.X &&
		a.BBoxMin.Y-margin <= b.BBoxMax.Y && b.BBoxMin.Y-margin <= a.BBoxMax.Y &&
		a.BBoxMin.Z-margin <= b.BBoxMax.Z && b.BBoxMin.Z-margin <= a.BBoxMax.Z
}

// bboxDims returns the (x, y, z) extents of a face's bounding box.
func bboxDims(a aag.FaceAttrs) (float64, float64, float64) {
	d := geomkernel.Sub(a.BBoxMax, a.BBoxMin)
	return d.X, d.Y, d.Z
}
