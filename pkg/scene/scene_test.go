package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ThroughHole(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	yamlBody := "kind: through_hole\ndims: {x: 50, y: 50, z: 20}\ncenter: {x: 25, y: 25}\nradius: 3\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0644); err != nil {
		t.Fatal(err)
	}

	shape, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(shape.Faces()) == 0 {
		t.Error("expected a non-empty face list")
	}
}

func TestLoad_UnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("kind: nonsense\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown scene kind")
	}
}

func TestDefaultScene_Builds(t *testing.T) {
	sc := DefaultScene()
	shape, err := sc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(shape.Faces()) == 0 {
		t.Error("expected a non-empty face list")
	}
}
