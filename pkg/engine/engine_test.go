package engine

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/geomkernel/synth"
)

func TestRun_ThroughHoleProducesHoleFeature(t *testing.T) {
	shape := synth.ThroughHole(v3.Vec{X: 40, Y: 40, Z: 20}, v3.Vec{X: 20, Y: 20}, 5)
	e := New(DefaultConfig())

	result, err := e.Run(shape)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	found := false
	for _, f := range result.Features {
		if f.Type == "hole" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a hole feature, got %#v", result.Features)
	}
	if result.Mesh.TriangleCount() == 0 {
		t.Error("expected a non-empty tessellated mesh")
	}
}

func TestRun_ModuleSelectorRestrictsOutput(t *testing.T) {
	shape := synth.ThroughHole(v3.Vec{X: 40, Y: 40, Z: 20}, v3.Vec{X: 20, Y: 20}, 5)
	cfg := DefaultConfig()
	cfg.Modules = "recognize_fillets"
	e := New(cfg)

	result, err := e.Run(shape)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, f := range result.Features {
		if f.Type != "fillet" {
			t.Errorf("unexpected feature type %q with modules=recognize_fillets", f.Type)
		}
	}
}

func TestRun_RejectsUnknownModule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules = "recognize_bogus"
	e := New(cfg)

	if _, err := e.Run(synth.Box(v3.Vec{X: 10, Y: 10, Z: 10})); err == nil {
		t.Error("expected an error for an unknown module selector")
	}
}

func TestConfig_ValidateRejectsBadDeflection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MeshDeflection = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero mesh deflection")
	}
}

func TestLoadConfigFromBytes_FillsDefaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte("modules: recognize_holes\n"))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.MeshDeflection != 0.35 {
		t.Errorf("MeshDeflection = %v, want default 0.35", cfg.MeshDeflection)
	}
	if cfg.Modules != "recognize_holes" {
		t.Errorf("Modules = %q, want %q", cfg.Modules, "recognize_holes")
	}
}
