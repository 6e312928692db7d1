package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// Box returns a rectangular block spanning [0,dims.X] x [0,dims.Y] x
// [0,dims.Z], six planar faces and twelve straight, convex edges. It is
// the base fixture every other synth primitive starts from.
func Box(dims v3.Vec) *Shape {
	b := newBuilder()
	addBoxFaces(b, dims)
	return b.build(boxClassifier(v3.Vec{}, dims))
}

// boxFaces names a block's six sides by outward-normal direction, both
// their FaceID and their concrete face, so derived fixtures (holes,
// pockets, fillets) can reference and mutate a specific wall.
type boxFaces struct {
	topID, bottomID, posXID, negXID, posYID, negYID geomkernel.FaceID
	top, bottom, posX, negX, posY, negY              *planeFace
}

// addBoxFaces registers the six faces and twelve edges of an
// axis-aligned block with one corner at the world origin.
func addBoxFaces(b *builder, dims v3.Vec) boxFaces {
	L, W, H := dims.X, dims.Y, dims.Z

	f := boxFaces{
		top:    &planeFace{origin: v3.Vec{X: 0, Y: 0, Z: H}, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMax: L, vMax: W},
		bottom: &planeFace{origin: v3.Vec{X: 0, Y: W, Z: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Y: -1}, uMax: L, vMax: W},
		posX:   &planeFace{origin: v3.Vec{X: L}, u: v3.Vec{Y: 1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H},
		negX:   &planeFace{origin: v3.Vec{X: 0, Y: W}, u: v3.Vec{Y: -1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H},
		posY:   &planeFace{origin: v3.Vec{X: L, Y: W}, u: v3.Vec{X: -1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H},
		negY:   &planeFace{origin: v3.Vec{X: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H},
	}
	f.topID = b.addFace(f.top)
	f.bottomID = b.addFace(f.bottom)
	f.posXID = b.addFace(f.posX)
	f.negXID = b.addFace(f.negX)
	f.posYID = b.addFace(f.posY)
	f.negYID = b.addFace(f.negY)

	c000 := v3.Vec{X: 0, Y: 0, Z: 0}
	c100 := v3.Vec{X: L, Y: 0, Z: 0}
	c010 := v3.Vec{X: 0, Y: W, Z: 0}
	c001 := v3.Vec{X: 0, Y: 0, Z: H}
	c110 := v3.Vec{X: L, Y: W, Z: 0}
	c101 := v3.Vec{X: L, Y: 0, Z: H}
	c011 := v3.Vec{X: 0, Y: W, Z: H}
	c111 := v3.Vec{X: L, Y: W, Z: H}

	mkEdge := func(p0, p1 v3.Vec, aID geomkernel.FaceID, aFace *planeFace, bID geomkernel.FaceID, bFace *planeFace, s side) {
		e := orientedLineEdge(p0, p1, bFace, s)
		eid := b.addEdge(e, aID, bID)
		aFace.boundingEdges = append(aFace.boundingEdges, eid)
		bFace.boundingEdges = append(bFace.boundingEdges, eid)
	}

	mkEdge(c000, c100, f.bottomID, f.bottom, f.negYID, f.negY, sideVMin)
	mkEdge(c100, c110, f.bottomID, f.bottom, f.posXID, f.posX, sideVMin)
	mkEdge(c110, c010, f.bottomID, f.bottom, f.posYID, f.posY, sideVMin)
	mkEdge(c010, c000, f.bottomID, f.bottom, f.negXID, f.negX, sideVMin)

	mkEdge(c001, c101, f.topID, f.top, f.negYID, f.negY, sideVMax)
	mkEdge(c101, c111, f.topID, f.top, f.posXID, f.posX, sideVMax)
	mkEdge(c111, c011, f.topID, f.top, f.posYID, f.posY, sideVMax)
	mkEdge(c011, c001, f.topID, f.top, f.negXID, f.negX, sideVMax)

	mkEdge(c000, c001, f.negXID, f.negX, f.negYID, f.negY, sideUMin)
	mkEdge(c100, c101, f.posXID, f.posX, f.negYID, f.negY, sideUMax)
	mkEdge(c110, c111, f.posXID, f.posX, f.posYID, f.posY, sideUMin)
	mkEdge(c010, c011, f.negXID, f.negX, f.posYID, f.posY, sideUMax)

	return f
}

// boxClassifier returns a point-in-solid test for the axis-aligned
// block [min, min+dims].
func boxClassifier(min, dims v3.Vec) func(v3.Vec) geomkernel.PointClass {
	max := geomkernel.Add(min, dims)
	const eps = 1e-9
	return func(p v3.Vec) geomkernel.PointClass {
		inside := p.X > min.X+eps && p.X < max.X-eps &&
			p.Y > min.Y+eps && p.Y < max.Y-eps &&
			p.Z > min.Z+eps && p.Z < max.Z-eps
		if inside {
			return geomkernel.Inside
		}
		onBoundary := p.X >= min.X-eps && p.X <= max.X+eps &&
			p.Y >= min.Y-eps && p.Y <= max.Y+eps &&
			p.Z >= min.Z-eps && p.Z <= max.Z+eps
		if onBoundary {
			return geomkernel.OnBoundary
		}
		return geomkernel.Outside
	}
}
