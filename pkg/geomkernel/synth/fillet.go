package synth

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// FilletedBoxEdge returns a block of the given dims with its top/+X
// longitudinal edge (running along Y at x=L, z=H) replaced by a
// quarter-round cylindrical fillet of the given radius: two
// near-tangent (smooth) arcs where the fillet meets the top and +X
// faces, and two quarter-circle arcs where it meets the -Y/+Y end
// walls. The canonical fillet fixture for the small-radius,
// quarter-circle-bounded-arc signature.
func FilletedBoxEdge(dims v3.Vec, radius float64) *Shape {
	b := newBuilder()
	L, W, H := dims.X, dims.Y, dims.Z

	top := &planeFace{origin: v3.Vec{X: 0, Y: 0, Z: H}, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMax: L - radius, vMax: W}
	bottom := &planeFace{origin: v3.Vec{X: 0, Y: W, Z: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Y: -1}, uMax: L, vMax: W}
	posX := &planeFace{origin: v3.Vec{X: L}, u: v3.Vec{Y: 1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H - radius}
	negX := &planeFace{origin: v3.Vec{X: 0, Y: W}, u: v3.Vec{Y: -1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H}
	posY := &planeFace{origin: v3.Vec{X: L, Y: W}, u: v3.Vec{X: -1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H}
	negY := &planeFace{origin: v3.Vec{X: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H}

	topID := b.addFace(top)
	bottomID := b.addFace(bottom)
	posXID := b.addFace(posX)
	negXID := b.addFace(negX)
	posYID := b.addFace(posY)
	negYID := b.addFace(negY)

	axisLoc := v3.Vec{X: L - radius, Y: 0, Z: H - radius}
	axisDir := v3.Vec{Y: 1}
	e1, e2 := perpendicularBasis(axisDir)
	fillet := &cylFace{axis: geomkernel.Axis{Loc: axisLoc, Dir: axisDir}, radius: radius, e1: e1, e2: e2, uMin: math.Pi / 2, uMax: math.Pi, vMin: 0, vMax: W}
	filletID := b.addFace(fillet)

	c000 := v3.Vec{X: 0, Y: 0, Z: 0}
	c100 := v3.Vec{X: L, Y: 0, Z: 0}
	c010 := v3.Vec{X: 0, Y: W, Z: 0}
	c001 := v3.Vec{X: 0, Y: 0, Z: H}
	c110 := v3.Vec{X: L, Y: W, Z: 0}
	c011 := v3.Vec{X: 0, Y: W, Z: H}
	topNear0 := v3.Vec{X: L - radius, Y: 0, Z: H}
	topNearW := v3.Vec{X: L - radius, Y: W, Z: H}
	posXNear0 := v3.Vec{X: L, Y: 0, Z: H - radius}
	posXNearW := v3.Vec{X: L, Y: W, Z: H - radius}

	mkLine := func(p0, p1 v3.Vec, aID geomkernel.FaceID, aFace *planeFace, bID geomkernel.FaceID, bFace geomkernel.Face, s side) {
		e := orientedLineEdge(p0, p1, bFace, s)
		eid := b.addEdge(e, aID, bID)
		aFace.boundingEdges = append(aFace.boundingEdges, eid)
		switch f := bFace.(type) {
		case *planeFace:
			f.boundingEdges = append(f.boundingEdges, eid)
		case *cylFace:
			f.boundingEdges = append(f.boundingEdges, eid)
		}
	}

	// bottom and its four edges are exactly as in an ordinary block: the
	// fillet only touches the top quarter of the box.
	mkLine(c000, c100, bottomID, bottom, negYID, negY, sideVMin)
	mkLine(c100, c110, bottomID, bottom, posXID, posX, sideVMin)
	mkLine(c110, c010, bottomID, bottom, posYID, posY, sideVMin)
	mkLine(c010, c000, bottomID, bottom, negXID, negX, sideVMin)

	// top's far (x=0) and side (y=0, y=W) edges, ending at the trimmed
	// x = L-radius boundary instead of the original sharp corner. Its
	// fourth (x=L) side is the fillet instead of posX.
	mkLine(c001, topNear0, topID, top, negYID, negY, sideVMax)
	mkLine(topNearW, c011, topID, top, posYID, posY, sideVMax)
	mkLine(c011, c001, topID, top, negXID, negX, sideVMax)

	// posX's far (z=0) and side (y=0, y=W) edges, shortened to the
	// trimmed z = H-radius boundary. Its fourth (z=H) side is the
	// fillet instead of top.
	mkLine(c100, posXNear0, posXID, posX, negYID, negY, sideUMax)
	mkLine(c110, posXNearW, posXID, posX, posYID, posY, sideUMin)

	// fillet's two tangent (smooth) longitudinal edges.
	mkLine(topNear0, topNearW, topID, top, filletID, fillet, sideUMin)
	mkLine(posXNear0, posXNearW, posXID, posX, filletID, fillet, sideUMax)

	// fillet's two end-cap quarter-circle arcs, shared with the -Y/+Y
	// walls.
	endArc0 := orientedCircleEdge(v3.Vec{X: L - radius, Y: 0, Z: H - radius}, e1, e2, radius, math.Pi/2, math.Pi, negY, sideVMax)
	endArc0ID := b.addEdge(endArc0, filletID, negYID)
	fillet.boundingEdges = append(fillet.boundingEdges, endArc0ID)
	negY.boundingEdges = append(negY.boundingEdges, endArc0ID)

	endArcW := orientedCircleEdge(v3.Vec{X: L - radius, Y: W, Z: H - radius}, e1, e2, radius, math.Pi/2, math.Pi, posY, sideVMax)
	endArcWID := b.addEdge(endArcW, filletID, posYID)
	fillet.boundingEdges = append(fillet.boundingEdges, endArcWID)
	posY.boundingEdges = append(posY.boundingEdges, endArcWID)

	return b.build(boxClassifier(v3.Vec{}, dims))
}
