package recognize

import "github.com/brepfeat/aag/pkg/aag"

// ShaftRecognizer identifies external cylinders and coaxial stepped-shaft
// chains, the mirror image of HoleRecognizer over internal cylinders.
type ShaftRecognizer struct{}

// NewShaftRecognizer returns a shaft recognizer.
func NewShaftRecognizer() *ShaftRecognizer { return &ShaftRecognizer{} }

func (r *ShaftRecognizer) Name() string                { return "shaft" }
func (r *ShaftRecognizer) FeatureTypes() []FeatureType { return []FeatureType{Shaft} }
func (r *ShaftRecognizer) Excludes() bool              { return false }

func (r *ShaftRecognizer) Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature {
	return recognizeCylinderChains(g, ids, excluded, false, Shaft, r.Name())
}
