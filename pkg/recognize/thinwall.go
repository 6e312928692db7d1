package recognize

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// ThinWallRecognizer identifies face pairs separated by a near-uniform
// thickness below a threshold, via ray-sampled or exact coaxial
// measurement.
type ThinWallRecognizer struct {
	ThresholdMM float64
}

// NewThinWallRecognizer returns a thin-wall recognizer with the given
// thickness threshold in mm.
func NewThinWallRecognizer(thresholdMM float64) *ThinWallRecognizer {
	return &ThinWallRecognizer{ThresholdMM: thresholdMM}
}

func (r *ThinWallRecognizer) Name() string                { return "thin_wall" }
func (r *ThinWallRecognizer) FeatureTypes() []FeatureType { return []FeatureType{ThinWall} }
func (r *ThinWallRecognizer) Excludes() bool              { return false }

func (r *ThinWallRecognizer) Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature {
	var feats []Feature
	claimed := map[aag.FID]bool{}
	t := r.ThresholdMM

	for i := aag.FID(0); int(i) < g.FaceCount(); i++ {
		if excluded.Has(i) || claimed[i] {
			continue
		}
		ai := g.Attrs(i)
		if !isThinWallCandidateSurface(ai) {
			continue
		}

		for j := i + 1; int(j) < g.FaceCount(); j++ {
			if excluded.Has(j) || claimed[j] {
				continue
			}
			aj := g.Attrs(j)
			if !isThinWallCandidateSurface(aj) {
				continue
			}
			if ai.Surface != aj.Surface {
				continue
			}
			if ai.Area < 10 || aj.Area < 10 {
				continue
			}
			if !bboxMargin(ai, aj, 10*t) {
				continue
			}
			if geomkernel.Dot(ai.Normal, aj.Normal) >= -0.80 {
				continue
			}

			meas, ok := measureThickness(g, i, ai, j, aj, t)
			if !ok {
				continue
			}

			claimed[i], claimed[j] = true, true
			params := map[string]float64{
				"avg_thickness": meas.mean,
				"min_thickness": meas.min,
				"max_thickness": meas.max,
				"cv":            meas.cv,
				"overlap":       meas.overlap,
			}
			subtype := thinWallSubtype(ai, aj, meas.coaxial)
			feats = append(feats, newFeature(ids.Next(ThinWall), ThinWall, subtype, []aag.FID{i, j}, params, r.Name(), meas.confidence))
			break
		}
	}

	return feats
}

// isThinWallCandidateSurface restricts pairing candidates to planar or
// cylindrical faces.
func isThinWallCandidateSurface(a aag.FaceAttrs) bool {
	return a.Surface == geomkernel.Plane || a.Surface == geomkernel.Cylinder
}

type thicknessMeasurement struct {
	mean, min, max, cv, overlap, confidence float64
	coaxial                                 bool
}

// measureThickness measures the separation between two candidate faces:
// the exact coaxial-cylinder formula when both are cylinders on one
// axis, otherwise a 5×5 ray-sampled grid against the opposing face.
func measureThickness(g *aag.Graph, i aag.FID, ai aag.FaceAttrs, j aag.FID, aj aag.FaceAttrs, tMax float64) (thicknessMeasurement, bool) {
	if ai.Surface == geomkernel.Cylinder && aj.Surface == geomkernel.Cylinder && coaxial(ai.Cylinder.Axis, aj.Cylinder.Axis) {
		thickness := math.Abs(ai.Cylinder.Radius - aj.Cylinder.Radius)
		if thickness <= 0 || thickness > tMax {
			return thicknessMeasurement{}, false
		}
		return thicknessMeasurement{mean: thickness, min: thickness, max: thickness, cv: 0, overlap: 1, confidence: 1.0, coaxial: true}, true
	}

	fi := g.Face(i)
	fj := g.Face(j)
	if fi == nil || fj == nil {
		return thicknessMeasurement{}, false
	}

	uMin, uMax, vMin, vMax := fi.ParamBounds()
	var samples []float64
	for gi := 0; gi < 5; gi++ {
		for gj := 0; gj < 5; gj++ {
			u := uMin + (uMax-uMin)*(float64(gi)+0.5)/5
			v := vMin + (vMax-vMin)*(float64(gj)+0.5)/5
			n, ok := fi.NormalAt(u, v)
			if !ok {
				continue
			}
			p := fi.PointAt(u, v)
			// fi's outward normal points away from the material; the
			// opposing wall lies back through the solid, so the probe
			// travels inward along -n.
			inward := geomkernel.Scale(n, -1)
			dist, hit := intersectFace(p, inward, fj, aj)
			if !hit || dist <= 0.01 || dist >= 2*tMax {
				continue
			}
			samples = append(samples, dist)
		}
	}

	k := len(samples)
	overlap := float64(k) / 25.0
	if overlap < 0.20 {
		return thicknessMeasurement{}, false
	}

	mean := 0.0
	minT, maxT := samples[0], samples[0]
	for _, s := range samples {
		mean += s
		if s < minT {
			minT = s
		}
		if s > maxT {
			maxT = s
		}
	}
	mean /= float64(k)
	if mean <= 0 || mean > tMax {
		return thicknessMeasurement{}, false
	}

	variance := 0.0
	for _, s := range samples {
		d := s - mean
		variance += d * d
	}
	variance /= float64(k)
	cv := math.Sqrt(variance) / mean
	if cv > 0.35 {
		return thicknessMeasurement{}, false
	}

	confidence := 1 - 0.5*cv - 0.2*(1-overlap)
	if k < 10 {
		confidence -= 0.1
	}
	confidence = math.Max(0.5, math.Min(1.0, confidence))

	return thicknessMeasurement{mean: mean, min: minT, max: maxT, cv: cv, overlap: overlap, confidence: confidence}, true
}

// intersectFace casts a ray from p along n and reports the distance to
// its intersection with face fj, computed analytically from fj's cached
// plane or cylinder parameters. The adapter contract carries no general
// ray-intersector, so the recognizer derives one from the two surface
// types it pairs.
func intersectFace(p, n v3.Vec, fj geomkernel.Face, aj aag.FaceAttrs) (float64, bool) {
	switch aj.Surface {
	case geomkernel.Plane:
		return intersectPlane(p, n, aj.Plane)
	case geomkernel.Cylinder:
		return intersectCylinder(p, n, aj.Cylinder)
	default:
		return 0, false
	}
}

// intersectPlane solves for t in (p + t·n)·normal = point·normal.
func intersectPlane(p, n v3.Vec, plane geomkernel.PlaneParams) (float64, bool) {
	denom := geomkernel.Dot(n, plane.Normal)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t := geomkernel.Dot(geomkernel.Sub(plane.Point, p), plane.Normal) / denom
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// intersectCylinder solves for the smallest positive t such that
// p + t·n lies on the infinite cylinder of the given radius about axis.
func intersectCylinder(p, n v3.Vec, cyl geomkernel.CylinderParams) (float64, bool) {
	axis := cyl.Axis
	dp := geomkernel.Sub(p, axis.Loc)
	nPerp := geomkernel.Sub(n, geomkernel.Scale(axis.Dir, geomkernel.Dot(n, axis.Dir)))
	dPerp := geomkernel.Sub(dp, geomkernel.Scale(axis.Dir, geomkernel.Dot(dp, axis.Dir)))

	a := geomkernel.Dot(nPerp, nPerp)
	b := 2 * geomkernel.Dot(nPerp, dPerp)
	c := geomkernel.Dot(dPerp, dPerp) - cyl.Radius*cyl.Radius

	if a < 1e-12 {
		return 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	best, ok := math.Inf(1), false
	for _, t := range []float64{t1, t2} {
		if t > 0 && t < best {
			best, ok = t, true
		}
	}
	return best, ok
}

// thinWallSubtype labels a wall pair: concentric for coaxial cylinders,
// shell when at least half the pair's area is curved, and sheet vs. web
// for mostly-planar pairs by in-plane aspect ratio.
func thinWallSubtype(ai, aj aag.FaceAttrs, coaxialCylinders bool) string {
	if coaxialCylinders {
		return "concentric"
	}
	total := ai.Area + aj.Area
	planar := 0.0
	if ai.Surface == geomkernel.Plane {
		planar += ai.Area
	}
	if aj.Surface == geomkernel.Plane {
		planar += aj.Area
	}
	if (total-planar)/total >= 0.50 {
		return "shell"
	}
	planarFrac := planar / total

	// a planar wall is flat, so its smallest bbox extent is the
	// thickness direction; the aspect comes from the two in-plane
	// extents.
	dx, dy, dz := bboxDims(ai)
	dims := []float64{dx, dy, dz}
	sortFloats(dims)
	long, short := dims[2], dims[1]
	if short < 1e-9 {
		return "sheet"
	}
	aspect := long / short
	if planarFrac >= 0.80 && aspect < 5 {
		return "sheet"
	}
	if planarFrac >= 0.60 && aspect >= 5 {
		return "web"
	}
	return "sheet"
}

func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}
