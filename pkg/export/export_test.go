package export

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel/synth"
	"github.com/brepfeat/aag/pkg/mesh"
	"github.com/brepfeat/aag/pkg/recognize"
)

func testGraph(t *testing.T) *aag.Graph {
	t.Helper()
	g, err := aag.Build(synth.Box(v3.Vec{X: 30, Y: 20, Z: 10}))
	if err != nil {
		t.Fatalf("aag.Build: %v", err)
	}
	return g
}

func TestWriteFeatures_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.json")
	if err := WriteFeatures(nil, path); err != nil {
		t.Fatalf("WriteFeatures: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", data)
	}
}

func TestWriteFeatures_RoundTrips(t *testing.T) {
	feats := []recognize.Feature{
		{ID: "hole_0001", Type: recognize.Hole, Faces: []aag.FID{2}, Edges: []int{}, Params: map[string]float64{"radius_mm": 3}, Source: "hole", Confidence: 0.9},
	}
	path := filepath.Join(t.TempDir(), "features.json")
	if err := WriteFeatures(feats, path); err != nil {
		t.Fatalf("WriteFeatures: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty output file, stat err=%v", err)
	}
}

func TestWriteAAGDump(t *testing.T) {
	g := testGraph(t)
	path := filepath.Join(t.TempDir(), "aag.json")
	if err := WriteAAGDump(g, path); err != nil {
		t.Fatalf("WriteAAGDump: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty AAG dump, stat err=%v", err)
	}
}

func TestWriteTriFaceMap_LengthMatchesTriangleCount(t *testing.T) {
	g := testGraph(t)
	m, err := mesh.Tessellate(g, 0.35)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	path := filepath.Join(t.TempDir(), "trimap.bin")
	if err := WriteTriFaceMap(m, path); err != nil {
		t.Fatalf("WriteTriFaceMap: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 4*m.TriangleCount() {
		t.Fatalf("file length = %d, want %d", len(data), 4*m.TriangleCount())
	}
	for i := 0; i < m.TriangleCount(); i++ {
		fid := binary.LittleEndian.Uint32(data[i*4:])
		if !g.Valid(aag.FID(fid)) {
			t.Fatalf("triangle %d: fid %d not valid", i, fid)
		}
	}
}

func TestWriteGLTF_ValidGLBHeader(t *testing.T) {
	g := testGraph(t)
	m, err := mesh.Tessellate(g, 0.35)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	path := filepath.Join(t.TempDir(), "mesh.glb")
	if err := WriteGLTF(m, path); err != nil {
		t.Fatalf("WriteGLTF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) < 12 {
		t.Fatalf("output too short to contain a glTF header: %d bytes", len(data))
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != glbMagic {
		t.Fatalf("magic = %x, want %x", magic, glbMagic)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != glbVersion {
		t.Fatalf("version = %d, want %d", version, glbVersion)
	}
	totalLen := binary.LittleEndian.Uint32(data[8:12])
	if int(totalLen) != len(data) {
		t.Fatalf("declared length %d != actual file length %d", totalLen, len(data))
	}
}

func TestWriteSVG_ProducesWellFormedDocument(t *testing.T) {
	g := testGraph(t)
	path := filepath.Join(t.TempDir(), "aag.svg")
	if err := WriteSVG(g, path, DefaultSVGOptions()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty SVG output")
	}
}
