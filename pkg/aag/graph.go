package aag

import "github.com/brepfeat/aag/pkg/geomkernel"

// neighborEntry is one entry in a face's neighbor list: the neighbor FID
// and the arc index connecting to it.
type neighborEntry struct {
	Neighbor FID
	Arc      EID
}

// Graph is the immutable face/arc container produced by Build. It owns a
// dense FID-indexed attribute array, an ordered arc sequence, and two
// lookup indices: arc-by-unordered-pair and neighbor lists.
type Graph struct {
	attrs        []FaceAttrs
	arcs         []Arc
	byPair       map[facePair]EID
	byKernelEdge map[geomkernel.EdgeID]EID
	neighbors    map[FID][]neighborEntry
	diagnostics  []string

	// shape is the kernel handle the graph was built from. The graph
	// owns this handle for the run's duration; it exists only for the
	// optional ray/thickness machinery (thin-wall recognizer,
	// tessellator), never for the core dihedral/arc computation, which
	// is fully captured in attrs/arcs.
	shape geomkernel.Shape
}

// newGraph allocates an empty graph sized for faceCount faces.
func newGraph(faceCount int) *Graph {
	return &Graph{
		attrs:        make([]FaceAttrs, faceCount),
		arcs:         make([]Arc, 0, faceCount),
		byPair:       make(map[facePair]EID),
		byKernelEdge: make(map[geomkernel.EdgeID]EID),
		neighbors:    make(map[FID][]neighborEntry, faceCount),
	}
}

// FaceCount returns the number of faces in the graph.
func (g *Graph) FaceCount() int {
	return len(g.attrs)
}

// Valid reports whether fid is a valid face identifier in this graph.
func (g *Graph) Valid(fid FID) bool {
	return fid >= 0 && int(fid) < len(g.attrs)
}

// Attrs returns the cached attributes for fid. The caller must first
// confirm validity with Valid, or the zero FaceAttrs is returned for an
// out-of-range FID.
func (g *Graph) Attrs(fid FID) FaceAttrs {
	if !g.Valid(fid) {
		return FaceAttrs{}
	}
	return g.attrs[fid]
}

// Neighbors returns the neighbor list for fid: each entry names a
// neighboring FID and the arc index connecting to it.
func (g *Graph) Neighbors(fid FID) []neighborEntry {
	return g.neighbors[fid]
}

// NeighborFIDs returns just the neighboring FIDs for fid, in arc order.
func (g *Graph) NeighborFIDs(fid FID) []FID {
	entries := g.neighbors[fid]
	out := make([]FID, len(entries))
	for i, e := range entries {
		out[i] = e.Neighbor
	}
	return out
}

// Arc returns the arc between fid1 and fid2 and true, or the zero Arc and
// false if no interior edge connects them.
func (g *Graph) Arc(fid1, fid2 FID) (Arc, bool) {
	eid, ok := g.byPair[pairKey(fid1, fid2)]
	if !ok {
		return Arc{}, false
	}
	return g.arcs[eid], true
}

// ArcAt returns the arc at the given EID.
func (g *Graph) ArcAt(eid EID) Arc {
	return g.arcs[eid]
}

// Arcs returns the full ordered arc sequence.
func (g *Graph) Arcs() []Arc {
	return g.arcs
}

// Dihedral returns θ for the arc between fid1 and fid2, or 0 if no arc
// connects them.
func (g *Graph) Dihedral(fid1, fid2 FID) float64 {
	a, ok := g.Arc(fid1, fid2)
	if !ok {
		return 0
	}
	return a.AngleDeg
}

// CylindricalFaces returns all FIDs whose surface kind is Cylinder.
func (g *Graph) CylindricalFaces() []FID {
	return g.facesOfKind(geomkernel.Cylinder)
}

// ToroidalFaces returns all FIDs whose surface kind is Torus.
func (g *Graph) ToroidalFaces() []FID {
	return g.facesOfKind(geomkernel.Torus)
}

func (g *Graph) facesOfKind(kind geomkernel.SurfaceKind) []FID {
	var out []FID
	for i, a := range g.attrs {
		if a.Surface == kind {
			out = append(out, FID(i))
		}
	}
	return out
}

// Diagnostics returns the non-fatal build diagnostics accumulated while
// constructing the graph (non-manifold edges, degenerate tangents, etc).
func (g *Graph) Diagnostics() []string {
	return g.diagnostics
}

// ArcByKernelEdge returns the arc built from the given kernel-local edge
// handle, or false if that edge produced no arc (boundary or
// non-manifold). Recognizers use this together with FaceAttrs.BoundingIDs
// to inspect a face's own bounding-edge geometry (circular arc span,
// edge kind) without a reference to the shape.
func (g *Graph) ArcByKernelEdge(eid geomkernel.EdgeID) (Arc, bool) {
	i, ok := g.byKernelEdge[eid]
	if !ok {
		return Arc{}, false
	}
	return g.arcs[i], true
}

// Face returns the kernel face accessor for fid, for the optional
// ray/thickness machinery (thin-wall recognizer, tessellator) that needs
// more than the cached FaceAttrs. Returns nil if the graph was built
// without retaining a shape handle, or fid is out of range.
func (g *Graph) Face(fid FID) geomkernel.Face {
	if g.shape == nil || !g.Valid(fid) {
		return nil
	}
	return g.shape.Face(g.attrs[fid].Kernel)
}

// addArc registers a new arc between a and b and indexes it into byPair
// and both faces' neighbor lists. Returns the new arc's EID.
func (g *Graph) addArc(arc Arc) EID {
	eid := EID(len(g.arcs))
	g.arcs = append(g.arcs, arc)
	g.byPair[pairKey(arc.A, arc.B)] = eid
	g.byKernelEdge[arc.Kernel] = eid
	g.neighbors[arc.A] = append(g.neighbors[arc.A], neighborEntry{Neighbor: arc.B, Arc: eid})
	g.neighbors[arc.B] = append(g.neighbors[arc.B], neighborEntry{Neighbor: arc.A, Arc: eid})
	return eid
}
