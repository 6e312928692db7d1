package recognize

import (
	"math"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// CavityRecognizer identifies enclosed pockets by seeding on planar faces
// surrounded mostly by concave neighbors and flood-filling across
// non-Convex arcs.
type CavityRecognizer struct {
	MaxVolume float64
}

// NewCavityRecognizer returns a cavity recognizer bounded by the given
// maximum estimated volume.
func NewCavityRecognizer(maxVolume float64) *CavityRecognizer {
	return &CavityRecognizer{MaxVolume: maxVolume}
}

func (r *CavityRecognizer) Name() string                { return "cavity" }
func (r *CavityRecognizer) FeatureTypes() []FeatureType { return []FeatureType{Cavity} }
func (r *CavityRecognizer) Excludes() bool              { return false }

func (r *CavityRecognizer) Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature {
	claimed := map[aag.FID]bool{}
	var feats []Feature

	for fid := aag.FID(0); int(fid) < g.FaceCount(); fid++ {
		if excluded.Has(fid) || claimed[fid] {
			continue
		}
		attrs := g.Attrs(fid)
		if attrs.Surface != geomkernel.Plane {
			continue
		}
		if !isCavitySeed(g, fid) {
			continue
		}

		candidate := floodFillCavity(g, fid, claimed, excluded)
		if len(candidate) == 0 {
			continue
		}

		feat, ok := validateCavity(g, candidate, r.MaxVolume)
		if !ok {
			continue
		}

		for _, f := range candidate {
			claimed[f] = true
		}
		feats = append(feats, newFeature(ids.Next(Cavity), Cavity, "pocket", feat.faces, feat.params, r.Name(), 0.70))
	}

	return feats
}

// isCavitySeed reports whether a planar face can start a cavity flood:
// at least 60% of its neighbor arcs are concave and not smooth, and the
// absolute count of such arcs is at least 2.
func isCavitySeed(g *aag.Graph, fid aag.FID) bool {
	neighbors := g.Neighbors(fid)
	if len(neighbors) == 0 {
		return false
	}
	const epsilon = 5.0
	concave := 0
	for _, entry := range neighbors {
		theta := g.ArcAt(entry.Arc).AngleDeg
		if theta > epsilon && math.Abs(theta) < 177 {
			concave++
		}
	}
	return concave >= 2 && float64(concave)/float64(len(neighbors)) >= 0.60
}

// floodFillCavity breadth-first traverses Smooth or Concave arcs from
// seed, never crossing a Convex arc, collecting every reached FID not
// already claimed by an earlier cavity.
func floodFillCavity(g *aag.Graph, seed aag.FID, claimed map[aag.FID]bool, excluded Excluded) []aag.FID {
	visited := map[aag.FID]bool{seed: true}
	queue := []aag.FID{seed}
	var candidate []aag.FID

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if claimed[cur] || excluded.Has(cur) {
			continue
		}
		candidate = append(candidate, cur)

		for _, entry := range g.Neighbors(cur) {
			if visited[entry.Neighbor] {
				continue
			}
			arc := g.ArcAt(entry.Arc)
			if arc.Convexity == aag.Convex {
				continue
			}
			visited[entry.Neighbor] = true
			queue = append(queue, entry.Neighbor)
		}
	}

	return candidate
}

type cavityFeature struct {
	faces  []aag.FID
	params map[string]float64
}

// validateCavity applies the size, boundary-ratio, and volume checks
// against a flood-filled candidate face set.
func validateCavity(g *aag.Graph, candidate []aag.FID, maxVolume float64) (cavityFeature, bool) {
	n := len(candidate)
	if n < 3 || float64(n) >= 0.25*float64(g.FaceCount()) {
		return cavityFeature{}, false
	}

	inCandidate := make(map[aag.FID]bool, n)
	for _, f := range candidate {
		inCandidate[f] = true
	}

	boundaryFaces := 0
	totalArea := 0.0
	for _, f := range candidate {
		totalArea += g.Attrs(f).Area
		for _, entry := range g.Neighbors(f) {
			if inCandidate[entry.Neighbor] {
				continue
			}
			if g.ArcAt(entry.Arc).Convexity == aag.Convex {
				boundaryFaces++
				break
			}
		}
	}
	boundaryRatio := float64(boundaryFaces) / float64(n)

	if n > 15 && boundaryRatio < 0.25 {
		return cavityFeature{}, false
	}
	if boundaryRatio < 0.20 {
		return cavityFeature{}, false
	}

	volume := totalArea * math.Sqrt(totalArea) * 0.1
	if volume > maxVolume {
		return cavityFeature{}, false
	}

	return cavityFeature{
		faces: append([]aag.FID(nil), candidate...),
		params: map[string]float64{
			"volume_mm3":     volume,
			"area_mm2":       totalArea,
			"boundary_ratio": boundaryRatio,
		},
	}, true
}
