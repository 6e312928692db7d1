package aag

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
)

// Build constructs the Attributed Adjacency Graph for shape:
//
//  1. FIDs are assigned by enumerating faces in the adapter's order.
//  2. Each face's attributes are populated, including the
//     orientation-corrected normal sampled at the parameter-space center.
//  3. An edge→incident-faces multimap is walked; edges with exactly two
//     distinct incident faces produce one arc each. Edges with more than
//     two incident faces are non-manifold: recorded as a diagnostic, no
//     arc produced. Edges with exactly one incident face are boundary
//     edges: no arc.
//
// Build fails only if shape itself is nil (geomkernel.ErrInvalidShape);
// everything else degrades to a recorded diagnostic and a best-effort
// attribute/arc.
func Build(shape geomkernel.Shape) (*Graph, error) {
	if shape == nil {
		return nil, geomkernel.ErrInvalidShape
	}

	kernelFaces := shape.Faces()
	g := newGraph(len(kernelFaces))
	g.shape = shape

	// kernelToFID maps the kernel's own FaceID handles to our dense FIDs,
	// assigned in the adapter's enumeration order.
	kernelToFID := make(map[geomkernel.FaceID]FID, len(kernelFaces))
	for i, kfid := range kernelFaces {
		kernelToFID[kfid] = FID(i)
	}

	for i, kfid := range kernelFaces {
		face := shape.Face(kfid)
		g.attrs[i] = buildFaceAttrs(kfid, face)
	}

	for _, keid := range shape.Edges() {
		incident := shape.EdgeFaces(keid)
		switch len(incident) {
		case 0, 1:
			// boundary or unreferenced edge: no arc
			continue
		case 2:
			a := kernelToFID[incident[0]]
			b := kernelToFID[incident[1]]
			if a == b {
				// a face bounding itself twice on the same edge is not an
				// interior edge between two distinct faces
				continue
			}
			edge := shape.Edge(keid)
			theta, degenerate := dihedralAngle(edge, shape.Face(incident[0]), shape.Face(incident[1]))
			arc := Arc{
				A:          a,
				B:          b,
				Kernel:     keid,
				AngleDeg:   theta,
				Convexity:  classify(theta),
				Degenerate: degenerate,
				Kind:       edge.Kind(),
				Circle:     edge.CircleParams(),
			}
			g.addArc(arc)
			if degenerate {
				g.diagnostics = append(g.diagnostics, fmt.Sprintf("edge %d: degenerate dihedral sample, arc recorded with theta=0", keid))
			}
		default:
			g.diagnostics = append(g.diagnostics, fmt.Sprintf("edge %d: non-manifold, %d incident faces, no arc produced", keid, len(incident)))
		}
	}

	return g, nil
}

// buildFaceAttrs populates the cached attributes for one face.
func buildFaceAttrs(kfid geomkernel.FaceID, face geomkernel.Face) FaceAttrs {
	uMin, uMax, vMin, vMax := face.ParamBounds()
	uMid := (uMin + uMax) / 2
	vMid := (vMin + vMax) / 2

	normal, ok := face.NormalAt(uMid, vMid)
	if !ok {
		normal = v3.Vec{}
	}

	bboxMin, bboxMax := face.BoundingBox()

	attrs := FaceAttrs{
		Kernel:      kfid,
		Surface:     face.SurfaceKind(),
		Area:        face.Area(),
		Normal:      normal,
		Centroid:    face.Centroid(),
		BBoxMin:     bboxMin,
		BBoxMax:     bboxMax,
		BoundingIDs: face.BoundingEdges(),
	}

	switch attrs.Surface {
	case geomkernel.Plane:
		attrs.Plane = face.PlaneParams()
	case geomkernel.Cylinder:
		attrs.Cylinder = face.CylinderParams()
	case geomkernel.Cone:
		attrs.Cone = face.ConeParams()
	case geomkernel.Sphere:
		attrs.Sphere = face.SphereParams()
	case geomkernel.Torus:
		attrs.Torus = face.TorusParams()
	}

	return attrs
}
