package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// ThinRib returns a block of the given dims with a thin rectangular rib
// of the given height, thickness (in X) and length (in Y) standing on
// its top face, centered over (center.X, center.Y). The rib's two long
// side walls face each other across thickness, the canonical
// close-parallel-face fixture for thin-wall detection.
func ThinRib(dims v3.Vec, center v3.Vec, height, thickness, length float64) *Shape {
	b := newBuilder()
	faces := addBoxFaces(b, dims)
	H := dims.Z
	px0, px1 := center.X-thickness/2, center.X+thickness/2
	py0, py1 := center.Y-length/2, center.Y+length/2

	ribTop := &planeFace{origin: v3.Vec{X: px0, Y: py0, Z: H + height}, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMax: thickness, vMax: length}
	wallNeg := &planeFace{origin: v3.Vec{X: px0, Y: py1, Z: H}, u: v3.Vec{Y: -1}, v: v3.Vec{Z: 1}, uMax: length, vMax: height}
	wallPos := &planeFace{origin: v3.Vec{X: px1, Y: py0, Z: H}, u: v3.Vec{Y: 1}, v: v3.Vec{Z: 1}, uMax: length, vMax: height}
	wallYneg := &planeFace{origin: v3.Vec{X: px0, Y: py0, Z: H}, u: v3.Vec{X: 1}, v: v3.Vec{Z: 1}, uMax: thickness, vMax: height}
	wallYpos := &planeFace{origin: v3.Vec{X: px1, Y: py1, Z: H}, u: v3.Vec{X: -1}, v: v3.Vec{Z: 1}, uMax: thickness, vMax: height}

	ribTopID := b.addFace(ribTop)
	wallNegID := b.addFace(wallNeg)
	wallPosID := b.addFace(wallPos)
	wallYnegID := b.addFace(wallYneg)
	wallYposID := b.addFace(wallYpos)

	mkEdge := func(p0, p1 v3.Vec, aID geomkernel.FaceID, aFace *planeFace, bID geomkernel.FaceID, bFace *planeFace, s side) {
		e := orientedLineEdge(p0, p1, bFace, s)
		eid := b.addEdge(e, aID, bID)
		aFace.boundingEdges = append(aFace.boundingEdges, eid)
		bFace.boundingEdges = append(bFace.boundingEdges, eid)
	}

	b00 := v3.Vec{X: px0, Y: py0, Z: H}
	b10 := v3.Vec{X: px1, Y: py0, Z: H}
	b11 := v3.Vec{X: px1, Y: py1, Z: H}
	b01 := v3.Vec{X: px0, Y: py1, Z: H}
	mkEdge(b00, b01, faces.topID, faces.top, wallNegID, wallNeg, sideVMin)
	mkEdge(b10, b11, faces.topID, faces.top, wallPosID, wallPos, sideVMin)
	mkEdge(b00, b10, faces.topID, faces.top, wallYnegID, wallYneg, sideVMin)
	mkEdge(b01, b11, faces.topID, faces.top, wallYposID, wallYpos, sideVMin)

	t00 := v3.Vec{X: px0, Y: py0, Z: H + height}
	t10 := v3.Vec{X: px1, Y: py0, Z: H + height}
	t11 := v3.Vec{X: px1, Y: py1, Z: H + height}
	t01 := v3.Vec{X: px0, Y: py1, Z: H + height}
	mkEdge(t00, t01, ribTopID, ribTop, wallNegID, wallNeg, sideVMax)
	mkEdge(t10, t11, ribTopID, ribTop, wallPosID, wallPos, sideVMax)
	mkEdge(t00, t10, ribTopID, ribTop, wallYnegID, wallYneg, sideVMax)
	mkEdge(t01, t11, ribTopID, ribTop, wallYposID, wallYpos, sideVMax)

	mkEdge(b00, t00, wallNegID, wallNeg, wallYnegID, wallYneg, sideUMin)
	mkEdge(b10, t10, wallPosID, wallPos, wallYnegID, wallYneg, sideUMax)
	mkEdge(b11, t11, wallPosID, wallPos, wallYposID, wallYpos, sideUMin)
	mkEdge(b01, t01, wallNegID, wallNeg, wallYposID, wallYpos, sideUMax)

	faces.top.cutoutArea += thickness * length

	classifier := composeClassifier(
		boxClassifier(v3.Vec{}, dims),
	)
	ribClassifier := func(p v3.Vec) geomkernel.PointClass {
		if p.X > px0+1e-9 && p.X < px1-1e-9 &&
			p.Y > py0+1e-9 && p.Y < py1-1e-9 &&
			p.Z > H+1e-9 && p.Z < H+height-1e-9 {
			return geomkernel.Inside
		}
		return classifier(p)
	}
	return b.build(ribClassifier)
}
