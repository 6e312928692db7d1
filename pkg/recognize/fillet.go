package recognize

import (
	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
)

// FilletRecognizer identifies cylindrical and toroidal blend faces by
// their quarter-circle bounding-arc signature. It is the only
// recognizer that feeds its output faces back into the shared excluded
// set, since a fillet's signature is more specific than a hole's
// cylindricity and must be resolved first.
type FilletRecognizer struct {
	MaxRadius float64
}

// NewFilletRecognizer returns a fillet recognizer with the given maximum
// blend radius in mm.
func NewFilletRecognizer(maxRadius float64) *FilletRecognizer {
	return &FilletRecognizer{MaxRadius: maxRadius}
}

func (r *FilletRecognizer) Name() string                { return "fillet" }
func (r *FilletRecognizer) FeatureTypes() []FeatureType { return []FeatureType{Fillet} }
func (r *FilletRecognizer) Excludes() bool              { return true }

func (r *FilletRecognizer) Recognize(g *aag.Graph, ids *IDCounter, excluded Excluded) []Feature {
	var feats []Feature

	for fid := aag.FID(0); int(fid) < g.FaceCount(); fid++ {
		if excluded.Has(fid) {
			continue
		}
		attrs := g.Attrs(fid)

		var radius, majorRadius float64
		axis := attrs.Cylinder.Axis
		var subtype string
		switch attrs.Surface {
		case geomkernel.Cylinder:
			radius = attrs.Cylinder.Radius
			subtype = "blend"
		case geomkernel.Torus:
			radius = attrs.Torus.MinorRadius
			majorRadius = attrs.Torus.MajorRadius
			axis = attrs.Torus.Axis
			subtype = "curved_blend"
		default:
			continue
		}
		if radius <= 0 || radius > r.MaxRadius {
			continue
		}
		if !hasQuarterArc(g, attrs) {
			continue
		}

		params := map[string]float64{
			"radius_mm": radius,
			"axis_x":    axis.Dir.X,
			"axis_y":    axis.Dir.Y,
			"axis_z":    axis.Dir.Z,
		}
		if subtype == "curved_blend" {
			params["major_radius_mm"] = majorRadius
		}

		feats = append(feats, newFeature(ids.Next(Fillet), Fillet, subtype, []aag.FID{fid}, params, r.Name(), 0.85))
	}

	return feats
}
