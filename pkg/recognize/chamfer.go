package recognize

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// ChamferRecognizer identifies narrow oblique planar break-edge faces.
type ChamferRecognizer struct {
	MaxWidth float64
}

// NewChamferRecognizer returns a chamfer recognizer with the given
// maximum chamfer width in mm.
func NewChamferRecognizer(maxWidth float64) *ChamferRecognizer {
	return &ChamferRecognizer{MaxWidth: maxWidth}
}

func (r *ChamferRecognizer) Name() string                { return "chamfer" }
func (r *ChamferRecognizer) FeatureTypes() []FeatureType { return []FeatureType{Chamfer} }
func (r *ChamferRecognizer) Excludes() bool              { return false }

func (r *ChamferRecognizer) Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature {
	var feats []Feature
	maxArea := 10 * r.MaxWidth * r.MaxWidth

	for fid := aag.FID(0); int(fid) < g.FaceCount(); fid++ {
		if excluded.Has(fid) {
			continue
		}
		attrs := g.Attrs(fid)
		if attrs.Surface != geomkernel.Plane {
			continue
		}
		if !isNonAxisAligned(attrs.Normal) {
			continue
		}
		if attrs.Area > maxArea {
			continue
		}

		linearEdges := 0
		for _, a := range boundingArcs(g, attrs) {
			if a.Kind == geomkernel.LinearEdge {
				linearEdges++
			}
		}
		if linearEdges < 2 {
			continue
		}

		sharpNeighbors := 0
		for _, entry := range g.Neighbors(fid) {
			if isSharpArc(g.ArcAt(entry.Arc)) {
				sharpNeighbors++
			}
		}
		if sharpNeighbors < 2 {
			continue
		}

		dx, dy, dz := bboxDims(attrs)
		width := math.Max(dx, math.Max(dy, dz))

		params := map[string]float64{"width_mm": width}
		feats = append(feats, newFeature(ids.Next(Chamfer), Chamfer, "", []aag.FID{fid}, params, r.Name(), 0.80))
	}

	return feats
}

// isNonAxisAligned reports whether every component of a unit normal
// lies in (0.1, 0.94), the filter that excludes primary surfaces
// (normal has a near-1.0 component) and shallow drafts.
func isNonAxisAligned(n v3.Vec) bool {
	return inOpenRange(math.Abs(n.X), 0.1, 0.94) &&
		inOpenRange(math.Abs(n.Y), 0.1, 0.94) &&
		inOpenRange(math.Abs(n.Z), 0.1, 0.94)
}

// isSharpArc reports whether an arc's dihedral angle deviates from 180°
// by more than 20°. θ ranges over (−180°, 180°], so every convex arc
// is sharp and a concave arc is sharp once it leaves the near-tangent
// band.
func isSharpArc(a aag.Arc) bool {
	return math.Abs(a.AngleDeg-180) > 20
}
