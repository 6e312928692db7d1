package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/engine"
	"github.com/brepfeat/aag/pkg/export"
	"github.com/brepfeat/aag/pkg/geomkernel/synth"
	"github.com/brepfeat/aag/pkg/recognize"
	"github.com/brepfeat/aag/pkg/scene"
)

// TestIntegration_CompletePipeline verifies that Engine.Run produces a
// complete Result with every pipeline stage populated, and that the
// exporters can write all five output artifacts from it.
func TestIntegration_CompletePipeline(t *testing.T) {
	shape := synth.ThroughHole(v3.Vec{X: 50, Y: 50, Z: 20}, v3.Vec{X: 25, Y: 25}, 3)

	e := engine.New(engine.DefaultConfig())
	result, err := e.Run(shape)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Stage 1: graph construction.
	if result.Graph == nil {
		t.Fatal("Result.Graph is nil - graph stage incomplete")
	}
	t.Logf("✓ Stage 1: graph built with %d faces, %d arcs", result.Graph.FaceCount(), len(result.Graph.Arcs()))
	if result.Graph.FaceCount() == 0 {
		t.Error("graph has no faces")
	}
	if len(result.Graph.Arcs()) == 0 {
		t.Error("graph has no arcs - a closed solid must have interior edges")
	}

	// Stage 2: recognition.
	holes := 0
	for _, f := range result.Features {
		if f.Type == recognize.Hole {
			holes++
		}
	}
	t.Logf("✓ Stage 2: %d feature(s) recognized (%d hole)", len(result.Features), holes)
	if holes != 1 {
		t.Errorf("got %d hole features, want 1", holes)
	}

	// Feature-face closure: every FID a feature references must be a
	// valid node of the graph it was recognized against.
	for _, f := range result.Features {
		for _, fid := range f.Faces {
			if !result.Graph.Valid(fid) {
				t.Errorf("feature %s references invalid fid %d", f.ID, fid)
			}
		}
	}

	// Stage 3: tessellation and the triangle-to-face map.
	if result.Mesh == nil {
		t.Fatal("Result.Mesh is nil - tessellation stage incomplete")
	}
	t.Logf("✓ Stage 3: mesh with %d triangles", result.Mesh.TriangleCount())
	if result.Mesh.TriangleCount() == 0 {
		t.Error("mesh has no triangles")
	}
	if len(result.Mesh.TriFaceIDs) != result.Mesh.TriangleCount() {
		t.Errorf("TriFaceIDs length %d != triangle count %d", len(result.Mesh.TriFaceIDs), result.Mesh.TriangleCount())
	}
	for i, fid := range result.Mesh.TriFaceIDs {
		if !result.Graph.Valid(aag.FID(fid)) {
			t.Fatalf("triangle %d maps to invalid fid %d", i, fid)
		}
	}

	// Stage 4: all five exporters against a scratch directory.
	dir := t.TempDir()
	if err := export.WriteFeatures(result.Features, filepath.Join(dir, "features.json")); err != nil {
		t.Errorf("WriteFeatures: %v", err)
	}
	if err := export.WriteAAGDump(result.Graph, filepath.Join(dir, "aag.json")); err != nil {
		t.Errorf("WriteAAGDump: %v", err)
	}
	if err := export.WriteTriFaceMap(result.Mesh, filepath.Join(dir, "tri_face_map.bin")); err != nil {
		t.Errorf("WriteTriFaceMap: %v", err)
	}
	if err := export.WriteGLTF(result.Mesh, filepath.Join(dir, "mesh.glb")); err != nil {
		t.Errorf("WriteGLTF: %v", err)
	}
	if err := export.WriteSVG(result.Graph, filepath.Join(dir, "aag.svg"), export.DefaultSVGOptions()); err != nil {
		t.Errorf("WriteSVG: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "tri_face_map.bin"))
	if err != nil {
		t.Fatalf("tri_face_map.bin: %v", err)
	}
	if got, want := info.Size(), int64(4*result.Mesh.TriangleCount()); got != want {
		t.Errorf("tri_face_map.bin is %d bytes, want %d", got, want)
	}

	t.Log("✓ All pipeline stages completed successfully")
}

// TestIntegration_RecognitionIdempotence verifies that running the
// recognizers twice over one graph produces byte-identical feature JSON:
// the id counters reset per run and nothing else carries state.
func TestIntegration_RecognitionIdempotence(t *testing.T) {
	shape := synth.Counterbore(v3.Vec{X: 50, Y: 50, Z: 20}, v3.Vec{X: 25, Y: 25}, 3, 6, 5)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	run := func() []byte {
		res := recognize.Orchestrate(g, recognize.DefaultOrder(10, 5, 5, 1e9))
		data, err := json.Marshal(res.Features)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		return data
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Fatalf("feature JSON differs across runs:\n%s\nvs\n%s", first, second)
	}
}

// TestIntegration_AllSceneKinds runs every scene kind the loader knows
// end to end: the engine must finish, and every recognized feature must
// reference only valid graph faces.
func TestIntegration_AllSceneKinds(t *testing.T) {
	kinds := []string{
		"box", "through_hole", "counterbore", "filleted_edge",
		"filleted_torus", "chamfered_corner", "pocket", "thin_rib",
		"randomized_through_hole",
	}

	e := engine.New(engine.DefaultConfig())
	for _, kind := range kinds {
		sc := scene.DefaultScene()
		sc.Kind = kind
		sc.Seed = 7

		shape, err := sc.Build()
		if err != nil {
			t.Fatalf("kind %s: Build: %v", kind, err)
		}
		result, err := e.Run(shape)
		if err != nil {
			t.Fatalf("kind %s: Run: %v", kind, err)
		}

		for _, f := range result.Features {
			for _, fid := range f.Faces {
				if !result.Graph.Valid(fid) {
					t.Errorf("kind %s: feature %s references invalid fid %d", kind, f.ID, fid)
				}
			}
			if f.Confidence < 0 || f.Confidence > 1 {
				t.Errorf("kind %s: feature %s has confidence %v outside [0,1]", kind, f.ID, f.Confidence)
			}
		}
		t.Logf("✓ %s: %d faces, %d features, %d triangles",
			kind, result.Graph.FaceCount(), len(result.Features), result.Mesh.TriangleCount())
	}
}
