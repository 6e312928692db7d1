package scene

import (
	"fmt"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gopkg.in/yaml.v3"

	"github.com/brepfeat/aag/pkg/geomkernel"
	"github.com/brepfeat/aag/pkg/geomkernel/synth"
)

// Vec3 is the YAML-friendly mirror of v3.Vec used in scene files.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) vec() v3.Vec { return v3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Scene names one synthetic fixture and its parameters, the --input
// file's contents. Kind selects which geomkernel.Shape constructor in
// pkg/geomkernel/synth to call; the remaining fields are read
// according to Kind and ignored otherwise.
type Scene struct {
	// Kind is one of: box, through_hole, counterbore, filleted_edge,
	// filleted_torus, chamfered_corner, pocket, thin_rib,
	// randomized_through_hole.
	Kind string `yaml:"kind"`

	Dims   Vec3 `yaml:"dims"`
	Center Vec3 `yaml:"center"`

	Radius        float64 `yaml:"radius"`
	CounterRadius float64 `yaml:"counterRadius"`
	CounterDepth  float64 `yaml:"counterDepth"`

	BossRadius float64 `yaml:"bossRadius"`

	Footprint Vec3    `yaml:"footprint"`
	Depth     float64 `yaml:"depth"`

	Height    float64 `yaml:"height"`
	Thickness float64 `yaml:"thickness"`
	Length    float64 `yaml:"length"`

	Seed uint64 `yaml:"seed"`
}

// DefaultScene is a 50x50x20mm block with a 6mm-diameter axial
// through-hole.
func DefaultScene() *Scene {
	return &Scene{
		Kind:   "through_hole",
		Dims:   Vec3{X: 50, Y: 50, Z: 20},
		Center: Vec3{X: 25, Y: 25},
		Radius: 3,
	}
}

// Load reads and builds a Shape from a YAML scene file at path.
func Load(path string) (geomkernel.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading %s: %w", path, err)
	}
	sc := DefaultScene()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("scene: parsing %s: %w", path, err)
	}
	return sc.Build()
}

// Build constructs the geomkernel.Shape the scene names.
func (s *Scene) Build() (geomkernel.Shape, error) {
	switch s.Kind {
	case "", "box":
		return synth.Box(nonZeroDims(s.Dims)), nil
	case "through_hole":
		return synth.ThroughHole(nonZeroDims(s.Dims), s.Center.vec(), nonZero(s.Radius, 3)), nil
	case "counterbore":
		return synth.Counterbore(nonZeroDims(s.Dims), s.Center.vec(),
			nonZero(s.Radius, 3), nonZero(s.CounterRadius, 6), nonZero(s.CounterDepth, 5)), nil
	case "filleted_edge":
		return synth.FilletedBoxEdge(nonZeroDims(s.Dims), nonZero(s.Radius, 2)), nil
	case "filleted_torus":
		return synth.FilletedTorusEdge(nonZeroDims(s.Dims), s.Center.vec(),
			nonZero(s.BossRadius, 6), nonZero(s.Height, 8), nonZero(s.Radius, 2)), nil
	case "chamfered_corner":
		return synth.ChamferedBoxCorner(nonZeroDims(s.Dims), nonZero(s.Radius, 1)), nil
	case "pocket":
		return synth.RectangularPocket(nonZeroDims(s.Dims), s.Center.vec(),
			nonZeroVec(s.Footprint, v3.Vec{X: 10, Y: 20}), nonZero(s.Depth, 5)), nil
	case "thin_rib":
		return synth.ThinRib(nonZeroDims(s.Dims), s.Center.vec(),
			nonZero(s.Height, 10), nonZero(s.Thickness, 2), nonZero(s.Length, 30)), nil
	case "randomized_through_hole":
		return synth.RandomizedThroughHole(s.Seed), nil
	default:
		return nil, fmt.Errorf("scene: unknown kind %q", s.Kind)
	}
}

func nonZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func nonZeroVec(v Vec3, def v3.Vec) v3.Vec {
	if v.X == 0 && v.Y == 0 && v.Z == 0 {
		return def
	}
	return v.vec()
}

func nonZeroDims(v Vec3) v3.Vec {
	return nonZeroVec(v, v3.Vec{X: 50, Y: 50, Z: 20})
}
