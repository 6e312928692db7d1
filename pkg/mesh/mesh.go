package mesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
)

// Mesh is a single indexed triangle mesh assembled from a graph's faces,
// with per-vertex positions and flat (per-triangle, not interpolated)
// normals, and a parallel TriFaceIDs array naming the source FID of
// every triangle.
type Mesh struct {
	Positions  []v3.Vec
	Normals    []v3.Vec
	Indices    []uint32
	TriFaceIDs []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Tessellate walks g's faces in FID order, triangulates each with the
// kernel's incremental triangulator at the given linear-deflection
// tolerance, and assembles one global indexed mesh. Per-vertex normals
// use the face's centroid normal rather than interpolated vertex
// normals, so shared edges between faces of different surface kinds
// still render with a visually sharp crease.
func Tessellate(g *aag.Graph, deflection float64) (*Mesh, error) {
	if deflection <= 0 || deflection > 1 {
		return nil, fmt.Errorf("mesh: deflection must be in (0, 1], got %v", deflection)
	}

	m := &Mesh{}

	for fid := aag.FID(0); int(fid) < g.FaceCount(); fid++ {
		face := g.Face(fid)
		if face == nil {
			continue
		}
		attrs := g.Attrs(fid)

		localVerts, localTris := face.Triangulate(deflection)
		if len(localVerts) == 0 || len(localTris) == 0 {
			continue
		}

		offset := uint32(len(m.Positions))
		m.Positions = append(m.Positions, localVerts...)
		for range localVerts {
			m.Normals = append(m.Normals, attrs.Normal)
		}

		if len(localTris)%3 != 0 {
			return nil, fmt.Errorf("mesh: face %d triangulator returned %d indices, not a multiple of 3", fid, len(localTris))
		}
		for i := 0; i < len(localTris); i += 3 {
			m.Indices = append(m.Indices,
				offset+uint32(localTris[i]),
				offset+uint32(localTris[i+1]),
				offset+uint32(localTris[i+2]),
			)
			m.TriFaceIDs = append(m.TriFaceIDs, uint32(fid))
		}
	}

	if len(m.TriFaceIDs) != m.TriangleCount() {
		return nil, fmt.Errorf("mesh: tri_face_ids length %d does not match triangle count %d", len(m.TriFaceIDs), m.TriangleCount())
	}

	return m, nil
}
