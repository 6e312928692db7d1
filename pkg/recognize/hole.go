package recognize

import (
	"math"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// HoleRecognizer identifies internal cylinders, coaxial chains, and
// counterbores.
type HoleRecognizer struct{}

// NewHoleRecognizer returns a hole recognizer.
func NewHoleRecognizer() *HoleRecognizer { return &HoleRecognizer{} }

func (r *HoleRecognizer) Name() string                { return "hole" }
func (r *HoleRecognizer) FeatureTypes() []FeatureType { return []FeatureType{Hole} }
func (r *HoleRecognizer) Excludes() bool              { return false }

func (r *HoleRecognizer) Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature {
	return recognizeCylinderChains(g, ids, excluded, true, Hole, r.Name())
}

// recognizeCylinderChains is shared by the hole and shaft recognizers,
// which are symmetric over internal vs. external cylinders.
func recognizeCylinderChains(g *aag.Graph, ids *IDCounter, excluded Excluded, internal bool, featureType FeatureType, source string) []Feature {
	traversed := map[aag.FID]bool{}
	var feats []Feature

	for _, fid := range g.CylindricalFaces() {
		if traversed[fid] || excluded.Has(fid) {
			continue
		}
		attrs := g.Attrs(fid)
		if isInternalCylinder(attrs) != internal {
			continue
		}
		if internal && !hasConcentricSemicircleNoQuarter(g, attrs) {
			// The quarter-arc test only applies to holes: it is what
			// rejects fillet faces that survived internality.
			continue
		}

		chain := collectCoaxialChain(g, fid, traversed, excluded, internal)
		if len(chain) == 0 {
			continue
		}

		feats = append(feats, buildChainFeature(g, chain, featureType, ids, source))
	}

	return feats
}

// collectCoaxialChain does a breadth-first walk from seed, collecting
// every cylindrical face that is internal (resp. external), coaxial with
// the seed, and reachable through at most one non-cylindrical connector
// face per hop. The connector hop is what lets a counterbore's chain
// bridge the annular step between its wide and narrow bores, while the
// one-hop limit keeps a planar-faced model from propagating the search
// arbitrarily far.
func collectCoaxialChain(g *aag.Graph, seed aag.FID, traversed map[aag.FID]bool, excluded Excluded, internal bool) []aag.FID {
	seedAxis := g.Attrs(seed).Cylinder.Axis

	var chain []aag.FID
	visited := map[aag.FID]bool{seed: true}
	type frontier struct {
		fid          aag.FID
		viaConnector bool
	}
	queue := []frontier{{fid: seed}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		attrs := g.Attrs(cur.fid)
		if attrs.Surface == geomkernel.Cylinder {
			chain = append(chain, cur.fid)
			traversed[cur.fid] = true
		}

		for _, entry := range g.Neighbors(cur.fid) {
			if visited[entry.Neighbor] {
				continue
			}

			nbAttrs := g.Attrs(entry.Neighbor)
			if nbAttrs.Surface == geomkernel.Cylinder {
				if excluded.Has(entry.Neighbor) {
					continue
				}
				if isInternalCylinder(nbAttrs) != internal {
					continue
				}
				if !coaxial(seedAxis, nbAttrs.Cylinder.Axis) {
					continue
				}
				visited[entry.Neighbor] = true
				queue = append(queue, frontier{fid: entry.Neighbor})
				continue
			}

			if cur.viaConnector {
				continue // at most one non-cylindrical hop in a row
			}
			visited[entry.Neighbor] = true
			queue = append(queue, frontier{fid: entry.Neighbor, viaConnector: true})
		}
	}

	return chain
}

// buildChainFeature emits a single Hole or Shaft feature for a coaxial
// chain of cylindrical faces. Bores are counted as distinct radius
// tiers, not faces: a kernel that splits each cylinder into two seamed
// halves still yields one tier per drill step.
func buildChainFeature(g *aag.Graph, chain []aag.FID, featureType FeatureType, ids *IDCounter, source string) Feature {
	minRadius := g.Attrs(chain[0]).Cylinder.Radius
	axis := g.Attrs(chain[0]).Cylinder.Axis
	radii := make([]float64, 0, len(chain))
	for _, fid := range chain {
		r := g.Attrs(fid).Cylinder.Radius
		radii = append(radii, r)
		if r < minRadius {
			minRadius = r
		}
	}
	bores := countRadiusTiers(radii)

	subtype := "simple"
	if bores > 1 {
		if featureType == Hole {
			subtype = "counterbored"
		} else {
			subtype = "stepped"
		}
	}

	params := map[string]float64{
		"diameter_mm": 2 * minRadius,
		"radius_mm":   minRadius,
		"axis_x":      axis.Dir.X,
		"axis_y":      axis.Dir.Y,
		"axis_z":      axis.Dir.Z,
	}
	if bores > 1 {
		params["bore_count"] = float64(bores)
	}

	return newFeature(ids.Next(featureType), featureType, subtype, append([]aag.FID(nil), chain...), params, source, 0.9)
}

// countRadiusTiers returns the number of distinct radii in the chain,
// collapsing values closer than 1e-6.
func countRadiusTiers(radii []float64) int {
	sortFloats(radii)
	tiers := 0
	for i, r := range radii {
		if i == 0 || math.Abs(r-radii[i-1]) > 1e-6 {
			tiers++
		}
	}
	return tiers
}
