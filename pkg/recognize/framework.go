package recognize

import (
	"fmt"

	"github.com/brepfeat/aag/pkg/aag"
)

// IDCounter assigns per-type, zero-padded, monotone feature identifiers
// of the form "<type>_<NNNN>". The orchestrator owns one counter per
// run and hands recognizers a mutable handle; there is no process-wide
// state.
type IDCounter struct {
	counts map[FeatureType]int
}

// NewIDCounter returns a counter with every type starting at zero.
func NewIDCounter() *IDCounter {
	return &IDCounter{counts: make(map[FeatureType]int)}
}

// Next returns the next identifier for t and advances its counter.
func (c *IDCounter) Next(t FeatureType) string {
	c.counts[t]++
	return fmt.Sprintf("%s_%04d", t, c.counts[t])
}

// Excluded is the mutable face-exclusion set threaded through the
// orchestrator: a plain map passed by reference, not a global.
type Excluded map[aag.FID]bool

// NewExcluded returns an empty exclusion set.
func NewExcluded() Excluded {
	return make(Excluded)
}

// Add marks the given FIDs as excluded.
func (e Excluded) Add(fids ...aag.FID) {
	for _, f := range fids {
		e[f] = true
	}
}

// Has reports whether fid has been excluded.
func (e Excluded) Has(fid aag.FID) bool {
	return e[fid]
}

// Recognizer is the common interface every feature family implements.
// Implementations must not mutate the graph.
type Recognizer interface {
	// Name identifies the recognizer for provenance (Feature.Source) and
	// diagnostics.
	Name() string

	// FeatureTypes lists the feature types this recognizer can emit.
	FeatureTypes() []FeatureType

	// Excludes reports whether this recognizer's output faces are added
	// to the shared excluded set after it runs. Only the fillet
	// recognizer returns true.
	Excludes() bool

	// Recognize runs the recognizer against graph g, given the current
	// excluded set (read-only; the orchestrator updates it after the
	// call if Excludes() is true) and the shared id counter.
	Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature
}

// newFeature builds a Feature with a non-nil, empty Edges slice so its
// JSON encoding always has "edges": [], never null.
func newFeature(id string, t FeatureType, subtype string, faces []aag.FID, params map[string]float64, source string, confidence float64) Feature {
	return Feature{
		ID:         id,
		Type:       t,
		Subtype:    subtype,
		Faces:      faces,
		Edges:      []int{},
		Params:     params,
		Source:     source,
		Confidence: confidence,
	}
}

// Result is the outcome of running the full recognizer pipeline.
type Result struct {
	Features []Feature
	Excluded Excluded
	Warnings []string
}

// DefaultOrder is the fixed recognizer execution order: fillets,
// chamfers, thin walls, holes, shafts, cavities. The ordering is part
// of the output contract. It resolves the ambiguity where a small
// cylindrical surface could be read as either a fillet or a hole, since
// a fillet's tangent-edge signature is more specific than a hole's
// cylindricity.
func DefaultOrder(maxFilletRadius, maxChamferWidth, thinWallThreshold, maxCavityVolume float64) []Recognizer {
	return []Recognizer{
		NewFilletRecognizer(maxFilletRadius),
		NewChamferRecognizer(maxChamferWidth),
		NewThinWallRecognizer(thinWallThreshold),
		NewHoleRecognizer(),
		NewShaftRecognizer(),
		NewCavityRecognizer(maxCavityVolume),
	}
}

// Orchestrate runs recognizers in order against g, threading a single
// IDCounter and Excluded set. A recognizer's unexpected panic is caught
// at this boundary: it contributes zero features, a warning is
// recorded, and the run continues with the remaining recognizers.
func Orchestrate(g *aag.Graph, recognizers []Recognizer) Result {
	ids := NewIDCounter()
	excluded := NewExcluded()
	var features []Feature
	var warnings []string

	for _, r := range recognizers {
		feats, warn := runRecognizer(r, g, ids, excluded)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		features = append(features, feats...)
		if r.Excludes() {
			for _, f := range feats {
				excluded.Add(f.Faces...)
			}
		}
	}

	return Result{Features: features, Excluded: excluded, Warnings: warnings}
}

func runRecognizer(r Recognizer, g *aag.Graph, ids *IDCounter, excluded Excluded) (feats []Feature, warning string) {
	defer func() {
		if rec := recover(); rec != nil {
			warning = fmt.Sprintf("recognizer %s: internal failure: %v", r.Name(), rec)
			feats = nil
		}
	}()
	return r.Recognize(g, ids, excluded), ""
}
