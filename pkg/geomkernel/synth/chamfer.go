package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// ChamferedBoxCorner returns a block of the given dims with its
// (L, W, H) corner truncated by a flat triangular bevel whose legs run
// distance d down each of the three meeting edges. The bevel's normal
// leans equally into all three axes and every arc to its neighbors is
// sharp, the canonical fixture for the small-oblique-planar-face
// signature.
func ChamferedBoxCorner(dims v3.Vec, d float64) *Shape {
	b := newBuilder()
	L, W, H := dims.X, dims.Y, dims.Z

	top := &planeFace{origin: v3.Vec{X: 0, Y: 0, Z: H}, u: v3.Vec{X: 1}, v: v3.Vec{Y: 1}, uMax: L, vMax: W, cutoutArea: d * d / 2}
	bottom := &planeFace{origin: v3.Vec{X: 0, Y: W, Z: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Y: -1}, uMax: L, vMax: W}
	posX := &planeFace{origin: v3.Vec{X: L}, u: v3.Vec{Y: 1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H, cutoutArea: d * d / 2}
	negX := &planeFace{origin: v3.Vec{X: 0, Y: W}, u: v3.Vec{Y: -1}, v: v3.Vec{Z: 1}, uMax: W, vMax: H}
	posY := &planeFace{origin: v3.Vec{X: L, Y: W}, u: v3.Vec{X: -1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H, cutoutArea: d * d / 2}
	negY := &planeFace{origin: v3.Vec{X: 0}, u: v3.Vec{X: 1}, v: v3.Vec{Z: 1}, uMax: L, vMax: H}

	topID := b.addFace(top)
	bottomID := b.addFace(bottom)
	posXID := b.addFace(posX)
	negXID := b.addFace(negX)
	posYID := b.addFace(posY)
	negYID := b.addFace(negY)

	// the three cut points, one on each edge meeting the truncated
	// corner.
	pa := v3.Vec{X: L, Y: W - d, Z: H}
	pb := v3.Vec{X: L - d, Y: W, Z: H}
	pc := v3.Vec{X: L, Y: W, Z: H - d}

	chamfer := newTriFace(pa, pc, pb)
	chamferID := b.addFace(chamfer)

	c000 := v3.Vec{X: 0, Y: 0, Z: 0}
	c100 := v3.Vec{X: L, Y: 0, Z: 0}
	c010 := v3.Vec{X: 0, Y: W, Z: 0}
	c001 := v3.Vec{X: 0, Y: 0, Z: H}
	c110 := v3.Vec{X: L, Y: W, Z: 0}
	c101 := v3.Vec{X: L, Y: 0, Z: H}
	c011 := v3.Vec{X: 0, Y: W, Z: H}

	mkLine := func(p0, p1 v3.Vec, aID geomkernel.FaceID, aFace geomkernel.Face, bID geomkernel.FaceID, bFace *planeFace, s side) {
		e := orientedLineEdge(p0, p1, bFace, s)
		eid := b.addEdge(e, aID, bID)
		switch f := aFace.(type) {
		case *planeFace:
			f.boundingEdges = append(f.boundingEdges, eid)
		case *triFace:
			f.boundingEdges = append(f.boundingEdges, eid)
		}
		bFace.boundingEdges = append(bFace.boundingEdges, eid)
	}

	mkLine(c000, c100, bottomID, bottom, negYID, negY, sideVMin)
	mkLine(c100, c110, bottomID, bottom, posXID, posX, sideVMin)
	mkLine(c110, c010, bottomID, bottom, posYID, posY, sideVMin)
	mkLine(c010, c000, bottomID, bottom, negXID, negX, sideVMin)

	// top's rim: the posX and posY sides stop at the cut points.
	mkLine(c001, c101, topID, top, negYID, negY, sideVMax)
	mkLine(c101, pa, topID, top, posXID, posX, sideVMax)
	mkLine(pb, c011, topID, top, posYID, posY, sideVMax)
	mkLine(c011, c001, topID, top, negXID, negX, sideVMax)

	// verticals, with the posX/posY shared one stopping at pc.
	mkLine(c000, c001, negXID, negX, negYID, negY, sideUMin)
	mkLine(c100, c101, posXID, posX, negYID, negY, sideUMax)
	mkLine(c110, pc, posXID, posX, posYID, posY, sideUMin)
	mkLine(c010, c011, negXID, negX, posYID, posY, sideUMax)

	// the bevel's three edges, one in each of the planes z=H, x=L, y=W.
	mkLine(pa, pb, chamferID, chamfer, topID, top, sideUMax)
	mkLine(pa, pc, chamferID, chamfer, posXID, posX, sideUMax)
	mkLine(pb, pc, chamferID, chamfer, posYID, posY, sideUMin)

	return b.build(boxClassifier(v3.Vec{}, dims))
}

// triFace is a flat triangular face with vertices p0, p1, p2 wound
// counterclockwise as seen from the outward normal.
type triFace struct {
	p0, p1, p2    v3.Vec
	u, v, n       v3.Vec
	uMax, vMax    float64
	boundingEdges []geomkernel.EdgeID
}

func newTriFace(p0, p1, p2 v3.Vec) *triFace {
	e01 := geomkernel.Sub(p1, p0)
	e02 := geomkernel.Sub(p2, p0)
	n, _ := geomkernel.Normalize(geomkernel.Cross(e01, e02))
	u, _ := geomkernel.Normalize(e01)
	v := geomkernel.Cross(n, u)
	return &triFace{
		p0: p0, p1: p1, p2: p2,
		u: u, v: v, n: n,
		uMax: geomkernel.Length(e01),
		vMax: geomkernel.Dot(e02, v),
	}
}

func (f *triFace) SurfaceKind() geomkernel.SurfaceKind { return geomkernel.Plane }

func (f *triFace) PlaneParams() geomkernel.PlaneParams {
	return geomkernel.PlaneParams{Point: f.p0, Normal: f.n}
}

func (f *triFace) CylinderParams() geomkernel.CylinderParams { return geomkernel.CylinderParams{} }
func (f *triFace) ConeParams() geomkernel.ConeParams         { return geomkernel.ConeParams{} }
func (f *triFace) SphereParams() geomkernel.SphereParams     { return geomkernel.SphereParams{} }
func (f *triFace) TorusParams() geomkernel.TorusParams       { return geomkernel.TorusParams{} }

func (f *triFace) ParamBounds() (float64, float64, float64, float64) {
	return 0, f.uMax, 0, f.vMax
}

func (f *triFace) NormalAt(u, v float64) (v3.Vec, bool) { return f.n, true }

func (f *triFace) PointAt(u, v float64) v3.Vec {
	p := geomkernel.Add(f.p0, geomkernel.Scale(f.u, u))
	return geomkernel.Add(p, geomkernel.Scale(f.v, v))
}

func (f *triFace) Centroid() v3.Vec {
	s := geomkernel.Add(geomkernel.Add(f.p0, f.p1), f.p2)
	return geomkernel.Scale(s, 1.0/3.0)
}

func (f *triFace) Area() float64 {
	c := geomkernel.Cross(geomkernel.Sub(f.p1, f.p0), geomkernel.Sub(f.p2, f.p0))
	return geomkernel.Length(c) / 2
}

func (f *triFace) Orientation() geomkernel.Orientation { return geomkernel.Forward }

func (f *triFace) BoundingEdges() []geomkernel.EdgeID { return f.boundingEdges }

func (f *triFace) BoundingBox() (v3.Vec, v3.Vec) {
	return boundingBoxOf([]v3.Vec{f.p0, f.p1, f.p2})
}

func (f *triFace) Triangulate(deflection float64) ([]v3.Vec, []int) {
	return []v3.Vec{f.p0, f.p1, f.p2}, []int{0, 1, 2}
}

func (f *triFace) Project(p v3.Vec) (float64, float64, bool) {
	w := geomkernel.Sub(p, f.p0)
	d := geomkernel.Dot(w, f.n)
	onPlane := geomkernel.Sub(p, geomkernel.Scale(f.n, d))
	rel := geomkernel.Sub(onPlane, f.p0)
	return geomkernel.Dot(rel, f.u), geomkernel.Dot(rel, f.v), true
}
