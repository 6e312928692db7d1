package mesh

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel/synth"
)

func buildTestGraph(t *testing.T) *aag.Graph {
	t.Helper()
	shape := synth.Box(v3.Vec{X: 40, Y: 30, Z: 20})
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("aag.Build: %v", err)
	}
	return g
}

func TestTessellate_InvariantsHold(t *testing.T) {
	g := buildTestGraph(t)

	m, err := Tessellate(g, 0.35)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if m.TriangleCount() == 0 {
		t.Fatal("expected at least one triangle for a box")
	}
	if len(m.TriFaceIDs) != m.TriangleCount() {
		t.Fatalf("len(TriFaceIDs) = %d, want %d", len(m.TriFaceIDs), m.TriangleCount())
	}
	if len(m.Positions) != len(m.Normals) {
		t.Fatalf("len(Positions) = %d, len(Normals) = %d, want equal", len(m.Positions), len(m.Normals))
	}
	for i, fid := range m.TriFaceIDs {
		if !g.Valid(aag.FID(fid)) {
			t.Fatalf("tri %d: fid %d is not valid in the graph", i, fid)
		}
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			t.Fatalf("index %d (value %d) out of range for %d positions", i, idx, len(m.Positions))
		}
	}
}

func TestTessellate_RejectsInvalidDeflection(t *testing.T) {
	g := buildTestGraph(t)

	for _, d := range []float64{0, -0.1, 1.5} {
		if _, err := Tessellate(g, d); err == nil {
			t.Errorf("Tessellate(%v): expected error, got nil", d)
		}
	}
}

func TestTessellate_Deterministic(t *testing.T) {
	g := buildTestGraph(t)

	m1, err := Tessellate(g, 0.5)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	m2, err := Tessellate(g, 0.5)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if m1.TriangleCount() != m2.TriangleCount() {
		t.Fatalf("triangle counts differ across runs: %d vs %d", m1.TriangleCount(), m2.TriangleCount())
	}
	for i := range m1.Indices {
		if m1.Indices[i] != m2.Indices[i] {
			t.Fatalf("index %d differs across runs: %d vs %d", i, m1.Indices[i], m2.Indices[i])
		}
	}
}
