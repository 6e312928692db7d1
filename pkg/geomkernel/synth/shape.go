package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// Shape is an assembled synthetic solid: a fixed face list, a fixed edge
// list, and the edge-to-incident-faces index the geomkernel.Shape
// contract requires. Classify is a coarse inside/outside test good
// enough for the optional ray-sampled thickness machinery; it is not
// used by the core recognizers.
type Shape struct {
	faces      []geomkernel.Face
	edges      []geomkernel.Edge
	edgeFaces  [][]geomkernel.FaceID
	classifier func(p v3.Vec) geomkernel.PointClass
}

func (s *Shape) Faces() []geomkernel.FaceID {
	out := make([]geomkernel.FaceID, len(s.faces))
	for i := range s.faces {
		out[i] = geomkernel.FaceID(i)
	}
	return out
}

func (s *Shape) Face(id geomkernel.FaceID) geomkernel.Face {
	return s.faces[id]
}

func (s *Shape) Edges() []geomkernel.EdgeID {
	out := make([]geomkernel.EdgeID, len(s.edges))
	for i := range s.edges {
		out[i] = geomkernel.EdgeID(i)
	}
	return out
}

func (s *Shape) Edge(id geomkernel.EdgeID) geomkernel.Edge {
	return s.edges[id]
}

func (s *Shape) EdgeFaces(id geomkernel.EdgeID) []geomkernel.FaceID {
	return s.edgeFaces[id]
}

func (s *Shape) Classify(p v3.Vec) geomkernel.PointClass {
	if s.classifier == nil {
		return geomkernel.Outside
	}
	return s.classifier(p)
}

// builder accumulates faces and edges for one shape under construction.
type builder struct {
	faces     []geomkernel.Face
	edges     []geomkernel.Edge
	edgeFaces [][]geomkernel.FaceID
}

func newBuilder() *builder {
	return &builder{}
}

// addFace appends a face and returns its FaceID.
func (b *builder) addFace(f geomkernel.Face) geomkernel.FaceID {
	b.faces = append(b.faces, f)
	return geomkernel.FaceID(len(b.faces) - 1)
}

// addEdge appends an edge shared by the given faces (1 for a boundary
// edge, 2 for an interior edge, 3+ for a deliberately non-manifold
// fixture) and returns its EdgeID.
func (b *builder) addEdge(e geomkernel.Edge, faces ...geomkernel.FaceID) geomkernel.EdgeID {
	b.edges = append(b.edges, e)
	b.edgeFaces = append(b.edgeFaces, append([]geomkernel.FaceID(nil), faces...))
	return geomkernel.EdgeID(len(b.edges) - 1)
}

func (b *builder) build(classifier func(p v3.Vec) geomkernel.PointClass) *Shape {
	return &Shape{
		faces:      b.faces,
		edges:      b.edges,
		edgeFaces:  b.edgeFaces,
		classifier: classifier,
	}
}
