package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// RectangularPocket returns a block of the given dims with a rectangular
// cavity of the given footprint and depth cut into its top face,
// centered over (center.X, center.Y). Its AAG has a closed loop of four
// concave wall-to-wall edges, a concave floor-to-wall edge per wall, and
// a convex mouth rim isolating the pocket from the outer shell. The
// block's bottom is carried as a 4x4 grid of coplanar panels joined by
// smooth arcs, the way kernels keep split faces after a boolean, so the
// fixture's face count resembles a production part rather than a bare
// six-face block.
func RectangularPocket(dims v3.Vec, center v3.Vec, footprint v3.Vec, depth float64) *Shape {
	b := newBuilder()
	L, W, H := dims.X, dims.Y, dims.Z
	px0, px1 := center.X-footprint.X/2, center.X+footprint.X/2
	py0, py1 := center.Y-footprint.Y/2, center.Y+footprint.Y/2
	floorZ := H - depth

	top := &planeFace{origin: v3.Vec{X: 0, Y: 0, Z: H}, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMax: L, vMax: W, cutoutArea: footprint.X * footprint.Y}
	posX := &planeFace{origin: v3.Vec{X: L}, u: v3.Vec{Y: 1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H}
	negX := &planeFace{origin: v3.Vec{X: 0, Y: W}, u: v3.Vec{Y: -1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H}
	posY := &planeFace{origin: v3.Vec{X: L, Y: W}, u: v3.Vec{X: -1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H}
	negY := &planeFace{origin: v3.Vec{X: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H}

	topID := b.addFace(top)
	posXID := b.addFace(posX)
	negXID := b.addFace(negX)
	posYID := b.addFace(posY)
	negYID := b.addFace(negY)

	const grid = 4
	var panels [grid][grid]*planeFace
	var panelIDs [grid][grid]geomkernel.FaceID
	xAt := func(i int) float64 { return L * float64(i) / grid }
	yAt := func(j int) float64 { return W * float64(j) / grid }
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			p := &planeFace{
				origin: v3.Vec{X: xAt(i), Y: yAt(j + 1), Z: 0},
				u:      v3.Vec{X: 1}, v: v3.Vec{Y: -1},
				uMax: xAt(i+1) - xAt(i), vMax: yAt(j+1) - yAt(j),
			}
			panels[i][j] = p
			panelIDs[i][j] = b.addFace(p)
		}
	}

	floor := &planeFace{origin: v3.Vec{X: px0, Y: py0, Z: floorZ}, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMax: px1 - px0, vMax: py1 - py0}
	floorID := b.addFace(floor)

	wallXpos := &planeFace{origin: v3.Vec{X: px0, Y: py0, Z: floorZ}, u: v3.Vec{Y: 1}, v: v3.Vec{Z: 1}, uMax: py1 - py0, vMax: H - floorZ}
	wallXneg := &planeFace{origin: v3.Vec{X: px1, Y: py1, Z: floorZ}, u: v3.Vec{Y: -1}, v: v3.Vec{Z: 1}, uMax: py1 - py0, vMax: H - floorZ}
	wallYpos := &planeFace{origin: v3.Vec{X: px1, Y: py0, Z: floorZ}, u: v3.Vec{X: -1}, v: v3.Vec{Z: 1}, uMax: px1 - px0, vMax: H - floorZ}
	wallYneg := &planeFace{origin: v3.Vec{X: px0, Y: py1, Z: floorZ}, u: v3.Vec{X: 1}, v: v3.Vec{Z: 1}, uMax: px1 - px0, vMax: H - floorZ}

	wallXposID := b.addFace(wallXpos)
	wallXnegID := b.addFace(wallXneg)
	wallYposID := b.addFace(wallYpos)
	wallYnegID := b.addFace(wallYneg)

	mkEdge := func(p0, p1 v3.Vec, aID geomkernel.FaceID, aFace *planeFace, bID geomkernel.FaceID, bFace *planeFace, s side) {
		e := orientedLineEdge(p0, p1, bFace, s)
		eid := b.addEdge(e, aID, bID)
		aFace.boundingEdges = append(aFace.boundingEdges, eid)
		bFace.boundingEdges = append(bFace.boundingEdges, eid)
	}

	// bottom panel grid: smooth seams between neighbors, then the
	// perimeter split per panel against the four side walls.
	for i := 0; i < grid; i++ {
		for j := 0; j < grid; j++ {
			if i+1 < grid {
				p0 := v3.Vec{X: xAt(i + 1), Y: yAt(j), Z: 0}
				p1 := v3.Vec{X: xAt(i + 1), Y: yAt(j + 1), Z: 0}
				mkEdge(p0, p1, panelIDs[i][j], panels[i][j], panelIDs[i+1][j], panels[i+1][j], sideUMin)
			}
			if j+1 < grid {
				p0 := v3.Vec{X: xAt(i), Y: yAt(j + 1), Z: 0}
				p1 := v3.Vec{X: xAt(i + 1), Y: yAt(j + 1), Z: 0}
				mkEdge(p0, p1, panelIDs[i][j], panels[i][j], panelIDs[i][j+1], panels[i][j+1], sideVMax)
			}
		}
	}
	for i := 0; i < grid; i++ {
		mkEdge(v3.Vec{X: xAt(i)}, v3.Vec{X: xAt(i + 1)}, panelIDs[i][0], panels[i][0], negYID, negY, sideVMin)
		mkEdge(v3.Vec{X: xAt(i), Y: W}, v3.Vec{X: xAt(i + 1), Y: W}, panelIDs[i][grid-1], panels[i][grid-1], posYID, posY, sideVMin)
	}
	for j := 0; j < grid; j++ {
		mkEdge(v3.Vec{Y: yAt(j)}, v3.Vec{Y: yAt(j + 1)}, panelIDs[0][j], panels[0][j], negXID, negX, sideVMin)
		mkEdge(v3.Vec{X: L, Y: yAt(j)}, v3.Vec{X: L, Y: yAt(j + 1)}, panelIDs[grid-1][j], panels[grid-1][j], posXID, posX, sideVMin)
	}

	c001 := v3.Vec{X: 0, Y: 0, Z: H}
	c101 := v3.Vec{X: L, Y: 0, Z: H}
	c011 := v3.Vec{X: 0, Y: W, Z: H}
	c111 := v3.Vec{X: L, Y: W, Z: H}
	c000 := v3.Vec{X: 0, Y: 0, Z: 0}
	c100 := v3.Vec{X: L, Y: 0, Z: 0}
	c010 := v3.Vec{X: 0, Y: W, Z: 0}
	c110 := v3.Vec{X: L, Y: W, Z: 0}

	mkEdge(c001, c101, topID, top, negYID, negY, sideVMax)
	mkEdge(c101, c111, topID, top, posXID, posX, sideVMax)
	mkEdge(c111, c011, topID, top, posYID, posY, sideVMax)
	mkEdge(c011, c001, topID, top, negXID, negX, sideVMax)

	mkEdge(c000, c001, negXID, negX, negYID, negY, sideUMin)
	mkEdge(c100, c101, posXID, posX, negYID, negY, sideUMax)
	mkEdge(c110, c111, posXID, posX, posYID, posY, sideUMin)
	mkEdge(c010, c011, negXID, negX, posYID, posY, sideUMax)

	// pocket mouth: top face's inner rim, one edge per wall, all at
	// z=H.
	p00 := v3.Vec{X: px0, Y: py0, Z: H}
	p10 := v3.Vec{X: px1, Y: py0, Z: H}
	p11 := v3.Vec{X: px1, Y: py1, Z: H}
	p01 := v3.Vec{X: px0, Y: py1, Z: H}
	mkEdge(p00, p01, topID, top, wallXposID, wallXpos, sideVMax)
	mkEdge(p11, p10, topID, top, wallXnegID, wallXneg, sideVMax)
	mkEdge(p10, p00, topID, top, wallYposID, wallYpos, sideVMax)
	mkEdge(p01, p11, topID, top, wallYnegID, wallYneg, sideVMax)

	// pocket floor: one rim edge per wall, all at z=floorZ.
	f00 := v3.Vec{X: px0, Y: py0, Z: floorZ}
	f10 := v3.Vec{X: px1, Y: py0, Z: floorZ}
	f11 := v3.Vec{X: px1, Y: py1, Z: floorZ}
	f01 := v3.Vec{X: px0, Y: py1, Z: floorZ}
	mkEdge(f00, f01, floorID, floor, wallXposID, wallXpos, sideVMin)
	mkEdge(f11, f10, floorID, floor, wallXnegID, wallXneg, sideVMin)
	mkEdge(f10, f00, floorID, floor, wallYposID, wallYpos, sideVMin)
	mkEdge(f01, f11, floorID, floor, wallYnegID, wallYneg, sideVMin)

	// four vertical wall-to-wall corners.
	mkEdge(f00, p00, wallXposID, wallXpos, wallYposID, wallYpos, sideUMax)
	mkEdge(f10, p10, wallXnegID, wallXneg, wallYposID, wallYpos, sideUMin)
	mkEdge(f11, p11, wallXnegID, wallXneg, wallYnegID, wallYneg, sideUMax)
	mkEdge(f01, p01, wallXposID, wallXpos, wallYnegID, wallYneg, sideUMin)

	classifier := composeClassifier(
		boxClassifier(v3.Vec{}, dims),
		negateInsideBox(v3.Vec{X: px0, Y: py0, Z: floorZ}, v3.Vec{X: px1, Y: py1, Z: H}),
	)
	return b.build(classifier)
}

// negateInsideBox reports Inside for points within the axis-aligned
// region [min, max], used to subtract a rectangular cavity from a block
// classifier.
func negateInsideBox(min, max v3.Vec) func(v3.Vec) geomkernel.PointClass {
	const eps = 1e-9
	return func(p v3.Vec) geomkernel.PointClass {
		if p.X > min.X+eps && p.X < max.X-eps &&
			p.Y > min.Y+eps && p.Y < max.Y-eps &&
			p.Z > min.Z+eps && p.Z < max.Z-eps {
			return geomkernel.Inside
		}
		return geomkernel.Outside
	}
}
