package recognize

import "github.com/brepfeat/aag/pkg/aag"

// FeatureType is the closed set of manufacturing feature categories.
type FeatureType string

const (
	Hole     FeatureType = "hole"
	Shaft    FeatureType = "shaft"
	Fillet   FeatureType = "fillet"
	Chamfer  FeatureType = "chamfer"
	Cavity   FeatureType = "cavity"
	ThinWall FeatureType = "thin_wall"
)

// Feature is one recognized manufacturing feature: a generated id, a
// type tag, an optional subtype, the participating FIDs, named numeric
// parameters, the recognizer that produced it, and a confidence in
// [0,1]. Features own their FID list and parameter map; they hold no
// back-reference into the graph.
type Feature struct {
	ID         string             `json:"id"`
	Type       FeatureType        `json:"type"`
	Subtype    string             `json:"subtype,omitempty"`
	Faces      []aag.FID          `json:"faces"`
	Edges      []int              `json:"edges"`
	Params     map[string]float64 `json:"params"`
	Source     string             `json:"source"`
	Confidence float64            `json:"confidence"`
}
