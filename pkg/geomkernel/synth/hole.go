package synth

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// ThroughHole returns a rectangular block of the given dims with a
// vertical cylindrical bore of the given radius, centered at (center.X,
// center.Y) in the block's XY plane, running the full height of the
// block. The bore is carried as two half-cylinder faces joined by smooth
// seam edges, so each rim circle splits into two semicircular arcs the
// way imported B-rep models deliver them. The canonical through-hole
// fixture.
func ThroughHole(dims v3.Vec, center v3.Vec, radius float64) *Shape {
	b := newBuilder()
	faces := addBoxFaces(b, dims)

	h1ID, h2ID, h1, h2 := addBoreHalves(b, center, radius, 0, dims.Z)
	addBoreRims(b, faces.top, faces.topID, center, radius, dims.Z, sideVMax, h1ID, h2ID, h1, h2)
	addBoreRims(b, faces.bottom, faces.bottomID, center, radius, 0, sideVMin, h1ID, h2ID, h1, h2)
	faces.top.cutoutArea += math.Pi * radius * radius
	faces.bottom.cutoutArea += math.Pi * radius * radius

	classifier := composeClassifier(
		boxClassifier(v3.Vec{}, dims),
		negateInsideCylinder(v3.Vec{X: center.X, Y: center.Y, Z: 0}, v3.Vec{Z: 1}, radius, 0, dims.Z),
	)
	return b.build(classifier)
}

// Counterbore returns a through-hole block whose bore widens to
// counterRadius for counterDepth below the top face, leaving a flat
// annular step face between the wide and narrow bores. Its AAG has a
// coaxial chain of four half-cylinder faces at two radii joined by a
// concave planar step, the canonical counterbore fixture for the
// coaxial-chain collection rule.
func Counterbore(dims v3.Vec, center v3.Vec, holeRadius, counterRadius, counterDepth float64) *Shape {
	b := newBuilder()
	faces := addBoxFaces(b, dims)

	stepZ := dims.Z - counterDepth

	w1ID, w2ID, w1, w2 := addBoreHalves(b, center, counterRadius, stepZ, dims.Z)
	n1ID, n2ID, n1, n2 := addBoreHalves(b, center, holeRadius, 0, stepZ)

	stepOrigin := v3.Vec{X: center.X, Y: center.Y, Z: stepZ}
	step := &planeFace{origin: stepOrigin, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMin: -counterRadius, uMax: counterRadius, vMin: -counterRadius, vMax: counterRadius}
	stepID := b.addFace(step)

	addBoreRims(b, faces.top, faces.topID, center, counterRadius, dims.Z, sideVMax, w1ID, w2ID, w1, w2)
	addBoreRims(b, step, stepID, center, counterRadius, stepZ, sideVMin, w1ID, w2ID, w1, w2)
	addBoreRims(b, step, stepID, center, holeRadius, stepZ, sideVMax, n1ID, n2ID, n1, n2)
	addBoreRims(b, faces.bottom, faces.bottomID, center, holeRadius, 0, sideVMin, n1ID, n2ID, n1, n2)

	faces.top.cutoutArea += math.Pi * counterRadius * counterRadius
	faces.bottom.cutoutArea += math.Pi * holeRadius * holeRadius
	// the step's rect parameter patch spans the full 2R square; trim it to
	// the annulus between the two bores.
	step.cutoutArea = 4*counterRadius*counterRadius - math.Pi*(counterRadius*counterRadius-holeRadius*holeRadius)

	classifier := composeClassifier(
		boxClassifier(v3.Vec{}, dims),
		negateInsideCylinder(v3.Vec{X: center.X, Y: center.Y, Z: 0}, v3.Vec{Z: 1}, counterRadius, stepZ, dims.Z),
		negateInsideCylinder(v3.Vec{X: center.X, Y: center.Y, Z: 0}, v3.Vec{Z: 1}, holeRadius, 0, stepZ),
	)
	return b.build(classifier)
}

// addBoreHalves registers the two reversed half-cylinder faces of a
// vertical bore of the given radius spanning [zMin, zMax], joined along
// two vertical seam lines. The seam arcs come out smooth, so graph
// traversals cross freely between the halves.
func addBoreHalves(b *builder, center v3.Vec, radius, zMin, zMax float64) (geomkernel.FaceID, geomkernel.FaceID, *cylFace, *cylFace) {
	axisLoc := v3.Vec{X: center.X, Y: center.Y, Z: zMin}
	axisDir := v3.Vec{Z: 1}
	e1, e2 := perpendicularBasis(axisDir)
	axis := geomkernel.Axis{Loc: axisLoc, Dir: axisDir}

	h1 := &cylFace{axis: axis, radius: radius, e1: e1, e2: e2, uMin: 0, uMax: math.Pi, vMin: 0, vMax: zMax - zMin, reversed: true}
	h2 := &cylFace{axis: axis, radius: radius, e1: e1, e2: e2, uMin: math.Pi, uMax: 2 * math.Pi, vMin: 0, vMax: zMax - zMin, reversed: true}
	h1ID := b.addFace(h1)
	h2ID := b.addFace(h2)

	seamAt := func(u float64, s side) {
		base := geomkernel.Add(v3.Vec{X: center.X, Y: center.Y}, geomkernel.Scale(h1.radial(u), radius))
		p0 := v3.Vec{X: base.X, Y: base.Y, Z: zMin}
		p1 := v3.Vec{X: base.X, Y: base.Y, Z: zMax}
		e := orientedLineEdge(p0, p1, h2, s)
		eid := b.addEdge(e, h1ID, h2ID)
		h1.boundingEdges = append(h1.boundingEdges, eid)
		h2.boundingEdges = append(h2.boundingEdges, eid)
	}
	seamAt(0, sideUMax)
	seamAt(math.Pi, sideUMin)

	return h1ID, h2ID, h1, h2
}

// addBoreRims joins the two halves of a bore to a planar face at height
// z with one semicircular rim arc per half. It does not change the
// planar face's area; callers account for the rim disc in its cutout.
func addBoreRims(b *builder, plane *planeFace, planeID geomkernel.FaceID, center v3.Vec, radius, z float64, s side, h1ID, h2ID geomkernel.FaceID, h1, h2 *cylFace) {
	rimCenter := v3.Vec{X: center.X, Y: center.Y, Z: z}

	rim1 := orientedCircleEdge(rimCenter, h1.e1, h1.e2, radius, 0, math.Pi, h1, s)
	rim1ID := b.addEdge(rim1, planeID, h1ID)
	plane.boundingEdges = append(plane.boundingEdges, rim1ID)
	h1.boundingEdges = append(h1.boundingEdges, rim1ID)

	rim2 := orientedCircleEdge(rimCenter, h2.e1, h2.e2, radius, math.Pi, 2*math.Pi, h2, s)
	rim2ID := b.addEdge(rim2, planeID, h2ID)
	plane.boundingEdges = append(plane.boundingEdges, rim2ID)
	h2.boundingEdges = append(h2.boundingEdges, rim2ID)
}

// composeClassifier intersects a base point-in-solid test with zero or
// more "subtract this region" tests.
func composeClassifier(base func(v3.Vec) geomkernel.PointClass, cuts ...func(v3.Vec) geomkernel.PointClass) func(v3.Vec) geomkernel.PointClass {
	return func(p v3.Vec) geomkernel.PointClass {
		c := base(p)
		for _, cut := range cuts {
			if cut(p) == geomkernel.Inside {
				return geomkernel.Outside
			}
		}
		return c
	}
}

// negateInsideCylinder reports Inside for points within the given
// radius of an axis-aligned bore segment, used to subtract bore volume
// from a block classifier.
func negateInsideCylinder(loc, dir v3.Vec, radius, vMin, vMax float64) func(v3.Vec) geomkernel.PointClass {
	return func(p v3.Vec) geomkernel.PointClass {
		h := geomkernel.Dot(geomkernel.Sub(p, loc), dir)
		if h < vMin || h > vMax {
			return geomkernel.Outside
		}
		if geomkernel.DistanceToLine(p, loc, dir) < radius {
			return geomkernel.Inside
		}
		return geomkernel.Outside
	}
}
