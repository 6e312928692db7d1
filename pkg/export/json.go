package export

import (
	"encoding/json"
	"os"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
	"github.com/brepfeat/aag/pkg/recognize"
)

// FeatureListing is the JSON-serializable feature array handed to
// downstream viewers. Feature already carries the right json tags; this
// exists so callers have a single named type for the top-level array.
type FeatureListing []recognize.Feature

// WriteFeatures serializes features to path as an indented JSON array.
func WriteFeatures(features []recognize.Feature, path string) error {
	if features == nil {
		features = []recognize.Feature{}
	}
	data, err := json.MarshalIndent(FeatureListing(features), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// aagNode is one face entry in the AAG dump. The per-kind surface
// parameter fields are omitted via omitempty when not applicable to
// this face's SurfaceType.
type aagNode struct {
	ID            int         `json:"id"`
	Type          string      `json:"type"`
	SurfaceType   string      `json:"surface_type"`
	AreaMM2       float64     `json:"area_mm2"`
	Normal        [3]float64  `json:"normal"`
	AxisDir       *[3]float64 `json:"axis_dir,omitempty"`
	RadiusMM      float64     `json:"radius_mm,omitempty"`
	MajorRadiusMM float64     `json:"major_radius_mm,omitempty"`
}

// aagArc is one arc entry in the AAG dump.
type aagArc struct {
	U         int     `json:"u"`
	V         int     `json:"v"`
	AngleDeg  float64 `json:"angle_deg"`
	Convexity string  `json:"convexity"`
}

// aagDump is the top-level AAG dump document.
type aagDump struct {
	Nodes []aagNode `json:"nodes"`
	Arcs  []aagArc  `json:"arcs"`
}

// WriteAAGDump serializes g's nodes and arcs to path as indented JSON.
func WriteAAGDump(g *aag.Graph, path string) error {
	dump := aagDump{
		Nodes: make([]aagNode, 0, g.FaceCount()),
		Arcs:  make([]aagArc, 0, len(g.Arcs())),
	}

	for fid := aag.FID(0); int(fid) < g.FaceCount(); fid++ {
		attrs := g.Attrs(fid)
		node := aagNode{
			ID:          int(fid),
			Type:        "face",
			SurfaceType: attrs.Surface.String(),
			AreaMM2:     attrs.Area,
			Normal:      [3]float64{attrs.Normal.X, attrs.Normal.Y, attrs.Normal.Z},
		}
		switch attrs.Surface {
		case geomkernel.Cylinder:
			dir := [3]float64{attrs.Cylinder.Axis.Dir.X, attrs.Cylinder.Axis.Dir.Y, attrs.Cylinder.Axis.Dir.Z}
			node.AxisDir = &dir
			node.RadiusMM = attrs.Cylinder.Radius
		case geomkernel.Torus:
			dir := [3]float64{attrs.Torus.Axis.Dir.X, attrs.Torus.Axis.Dir.Y, attrs.Torus.Axis.Dir.Z}
			node.AxisDir = &dir
			node.RadiusMM = attrs.Torus.MinorRadius
			node.MajorRadiusMM = attrs.Torus.MajorRadius
		}
		dump.Nodes = append(dump.Nodes, node)
	}

	for _, arc := range g.Arcs() {
		dump.Arcs = append(dump.Arcs, aagArc{
			U:         int(arc.A),
			V:         int(arc.B),
			AngleDeg:  arc.AngleDeg,
			Convexity: arc.Convexity.String(),
		})
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
