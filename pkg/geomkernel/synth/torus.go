package synth

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// torusFace is a bounded toroidal face used for fillet fixtures: u is
// the angle around the major axis, v is the angle around the tube.
type torusFace struct {
	axis          geomkernel.Axis
	major, minor  float64
	e1, e2        v3.Vec
	uMin, uMax    float64
	vMin, vMax    float64
	reversed      bool
	boundingEdges []geomkernel.EdgeID
}

func (f *torusFace) radial(theta float64) v3.Vec {
	c, s := math.Cos(theta), math.Sin(theta)
	return geomkernel.Add(geomkernel.Scale(f.e1, c), geomkernel.Scale(f.e2, s))
}

func (f *torusFace) tubeCenter(theta float64) v3.Vec {
	return geomkernel.Add(f.axis.Loc, geomkernel.Scale(f.radial(theta), f.major))
}

func (f *torusFace) SurfaceKind() geomkernel.SurfaceKind { return geomkernel.Torus }

func (f *torusFace) PlaneParams() geomkernel.PlaneParams       { return geomkernel.PlaneParams{} }
func (f *torusFace) CylinderParams() geomkernel.CylinderParams { return geomkernel.CylinderParams{} }
func (f *torusFace) ConeParams() geomkernel.ConeParams         { return geomkernel.ConeParams{} }
func (f *torusFace) SphereParams() geomkernel.SphereParams     { return geomkernel.SphereParams{} }
func (f *torusFace) TorusParams() geomkernel.TorusParams {
	return geomkernel.TorusParams{Axis: f.axis, MajorRadius: f.major, MinorRadius: f.minor}
}

func (f *torusFace) ParamBounds() (float64, float64, float64, float64) {
	return f.uMin, f.uMax, f.vMin, f.vMax
}

func (f *torusFace) tubeNormal(theta, phi float64) v3.Vec {
	c, s := math.Cos(phi), math.Sin(phi)
	n := geomkernel.Add(geomkernel.Scale(f.radial(theta), c), geomkernel.Scale(f.axis.Dir, s))
	if f.reversed {
		n = geomkernel.Scale(n, -1)
	}
	return n
}

func (f *torusFace) NormalAt(u, v float64) (v3.Vec, bool) {
	return f.tubeNormal(u, v), true
}

func (f *torusFace) PointAt(u, v float64) v3.Vec {
	n := f.tubeNormal(u, v)
	if f.reversed {
		n = geomkernel.Scale(n, -1)
	}
	return geomkernel.Add(f.tubeCenter(u), geomkernel.Scale(n, f.minor))
}

func (f *torusFace) Centroid() v3.Vec {
	return f.PointAt((f.uMin+f.uMax)/2, (f.vMin+f.vMax)/2)
}

func (f *torusFace) Area() float64 {
	return f.minor * (f.vMax - f.vMin) * f.major * (f.uMax - f.uMin)
}

func (f *torusFace) Orientation() geomkernel.Orientation {
	if f.reversed {
		return geomkernel.Reversed
	}
	return geomkernel.Forward
}

func (f *torusFace) BoundingEdges() []geomkernel.EdgeID {
	return f.boundingEdges
}

func (f *torusFace) BoundingBox() (v3.Vec, v3.Vec) {
	const samples = 6
	var pts []v3.Vec
	for i := 0; i <= samples; i++ {
		theta := f.uMin + (f.uMax-f.uMin)*float64(i)/float64(samples)
		for j := 0; j <= samples; j++ {
			phi := f.vMin + (f.vMax-f.vMin)*float64(j)/float64(samples)
			pts = append(pts, f.PointAt(theta, phi))
		}
	}
	return boundingBoxOf(pts)
}

func (f *torusFace) Triangulate(deflection float64) ([]v3.Vec, []int) {
	return triangulateGrid(f.uMin, f.uMax, f.vMin, f.vMax, deflection, f.PointAt)
}

func (f *torusFace) Project(p v3.Vec) (float64, float64, bool) {
	w := geomkernel.Sub(p, f.axis.Loc)
	h := geomkernel.Dot(w, f.axis.Dir)
	radialVec := geomkernel.Sub(w, geomkernel.Scale(f.axis.Dir, h))
	length := geomkernel.Length(radialVec)
	if length < 1e-12 {
		return 0, 0, false
	}
	unit, _ := geomkernel.Normalize(radialVec)
	theta := math.Atan2(geomkernel.Dot(unit, f.e2), geomkernel.Dot(unit, f.e1))
	toTube := geomkernel.Sub(p, f.tubeCenter(theta))
	phi := math.Atan2(geomkernel.Dot(toTube, f.axis.Dir), geomkernel.Dot(toTube, unit))
	return theta, phi, true
}

// FilletedTorusEdge returns a block of the given dims with a cylindrical
// boss of bossRadius and bossHeight standing on its top face, centered
// over (center.X, center.Y), whose top rim is blended by a quarter-torus
// ring of tube radius filletRadius meeting the boss wall and the top
// disc tangentially. The boss and the ring are each carried as two
// seamed halves, so the ring's seam edges are the quarter-circle arcs
// that mark a toroidal blend. The canonical curved-blend fixture.
func FilletedTorusEdge(dims v3.Vec, center v3.Vec, bossRadius, bossHeight, filletRadius float64) *Shape {
	b := newBuilder()
	faces := addBoxFaces(b, dims)
	H := dims.Z
	R := bossRadius
	r := filletRadius
	ringRadius := R - r
	topZ := H + bossHeight
	tubeZ := topZ - r

	axisLoc := v3.Vec{X: center.X, Y: center.Y, Z: H}
	axisDir := v3.Vec{Z: 1}
	e1, e2 := perpendicularBasis(axisDir)
	axis := geomkernel.Axis{Loc: axisLoc, Dir: axisDir}

	c1 := &cylFace{axis: axis, radius: R, e1: e1, e2: e2, uMin: 0, uMax: math.Pi, vMin: 0, vMax: tubeZ - H}
	c2 := &cylFace{axis: axis, radius: R, e1: e1, e2: e2, uMin: math.Pi, uMax: 2 * math.Pi, vMin: 0, vMax: tubeZ - H}
	c1ID := b.addFace(c1)
	c2ID := b.addFace(c2)

	torusAxis := geomkernel.Axis{Loc: v3.Vec{X: center.X, Y: center.Y, Z: tubeZ}, Dir: axisDir}
	t1 := &torusFace{axis: torusAxis, major: ringRadius, minor: r, e1: e1, e2: e2, uMin: 0, uMax: math.Pi, vMin: 0, vMax: math.Pi / 2}
	t2 := &torusFace{axis: torusAxis, major: ringRadius, minor: r, e1: e1, e2: e2, uMin: math.Pi, uMax: 2 * math.Pi, vMin: 0, vMax: math.Pi / 2}
	t1ID := b.addFace(t1)
	t2ID := b.addFace(t2)

	disc := &planeFace{
		origin: v3.Vec{X: center.X, Y: center.Y, Z: topZ},
		u:      v3.Vec{X: 1}, v: v3.Vec{Y: 1},
		uMin: -ringRadius, uMax: ringRadius, vMin: -ringRadius, vMax: ringRadius,
		cutoutArea: ringRadius * ringRadius * (4 - math.Pi),
	}
	discID := b.addFace(disc)

	// boss base: one semicircular rim per half where the boss meets the
	// block's top face.
	baseRim1 := orientedCircleEdge(v3.Vec{X: center.X, Y: center.Y, Z: H}, e1, e2, R, 0, math.Pi, c1, sideVMin)
	baseRim1ID := b.addEdge(baseRim1, faces.topID, c1ID)
	faces.top.boundingEdges = append(faces.top.boundingEdges, baseRim1ID)
	c1.boundingEdges = append(c1.boundingEdges, baseRim1ID)

	baseRim2 := orientedCircleEdge(v3.Vec{X: center.X, Y: center.Y, Z: H}, e1, e2, R, math.Pi, 2*math.Pi, c2, sideVMin)
	baseRim2ID := b.addEdge(baseRim2, faces.topID, c2ID)
	faces.top.boundingEdges = append(faces.top.boundingEdges, baseRim2ID)
	c2.boundingEdges = append(c2.boundingEdges, baseRim2ID)

	faces.top.cutoutArea += math.Pi * R * R

	// boss seams between the two cylinder halves.
	seamAt := func(u float64, s side) {
		base := geomkernel.Add(v3.Vec{X: center.X, Y: center.Y}, geomkernel.Scale(c1.radial(u), R))
		p0 := v3.Vec{X: base.X, Y: base.Y, Z: H}
		p1 := v3.Vec{X: base.X, Y: base.Y, Z: tubeZ}
		e := orientedLineEdge(p0, p1, c2, s)
		eid := b.addEdge(e, c1ID, c2ID)
		c1.boundingEdges = append(c1.boundingEdges, eid)
		c2.boundingEdges = append(c2.boundingEdges, eid)
	}
	seamAt(0, sideUMax)
	seamAt(math.Pi, sideUMin)

	// tangent junction between each boss half and its ring half.
	junc1 := orientedCircleEdge(v3.Vec{X: center.X, Y: center.Y, Z: tubeZ}, e1, e2, R, 0, math.Pi, t1, sideVMin)
	junc1ID := b.addEdge(junc1, c1ID, t1ID)
	c1.boundingEdges = append(c1.boundingEdges, junc1ID)
	t1.boundingEdges = append(t1.boundingEdges, junc1ID)

	junc2 := orientedCircleEdge(v3.Vec{X: center.X, Y: center.Y, Z: tubeZ}, e1, e2, R, math.Pi, 2*math.Pi, t2, sideVMin)
	junc2ID := b.addEdge(junc2, c2ID, t2ID)
	c2.boundingEdges = append(c2.boundingEdges, junc2ID)
	t2.boundingEdges = append(t2.boundingEdges, junc2ID)

	// ring seams: quarter-circle arcs in the tube direction between the
	// two torus halves.
	ringSeamAt := func(u float64, s side) {
		e := orientedCircleEdge(t1.tubeCenter(u), t1.radial(u), axisDir, r, 0, math.Pi/2, t2, s)
		eid := b.addEdge(e, t1ID, t2ID)
		t1.boundingEdges = append(t1.boundingEdges, eid)
		t2.boundingEdges = append(t2.boundingEdges, eid)
	}
	ringSeamAt(0, sideUMax)
	ringSeamAt(math.Pi, sideUMin)

	// tangent rim between each ring half and the top disc.
	discRim1 := orientedCircleEdge(v3.Vec{X: center.X, Y: center.Y, Z: topZ}, e1, e2, ringRadius, 0, math.Pi, t1, sideVMax)
	discRim1ID := b.addEdge(discRim1, discID, t1ID)
	disc.boundingEdges = append(disc.boundingEdges, discRim1ID)
	t1.boundingEdges = append(t1.boundingEdges, discRim1ID)

	discRim2 := orientedCircleEdge(v3.Vec{X: center.X, Y: center.Y, Z: topZ}, e1, e2, ringRadius, math.Pi, 2*math.Pi, t2, sideVMax)
	discRim2ID := b.addEdge(discRim2, discID, t2ID)
	disc.boundingEdges = append(disc.boundingEdges, discRim2ID)
	t2.boundingEdges = append(t2.boundingEdges, discRim2ID)

	// coarse classifier: block plus a right cylinder for the boss,
	// ignoring the rim blend; no recognizer calls Shape.Classify.
	base := boxClassifier(v3.Vec{}, dims)
	classifier := func(p v3.Vec) geomkernel.PointClass {
		if c := base(p); c != geomkernel.Outside {
			return c
		}
		d := geomkernel.DistanceToLine(p, axisLoc, axisDir)
		if p.Z < H-1e-9 || p.Z > topZ+1e-9 || d > R+1e-9 {
			return geomkernel.Outside
		}
		if p.Z < topZ-1e-9 && d < R-1e-9 {
			return geomkernel.Inside
		}
		return geomkernel.OnBoundary
	}
	return b.build(classifier)
}
