package recognize

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"pgregory.net/rapid"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel/synth"
)

const (
	testMaxFilletRadius    = 10.0
	testMaxChamferWidth    = 5.0
	testThinWallThreshold  = 5.0
	testMaxCavityVolumeMM3 = 1e9
)

func defaultOrder() []Recognizer {
	return DefaultOrder(testMaxFilletRadius, testMaxChamferWidth, testThinWallThreshold, testMaxCavityVolumeMM3)
}

func featuresByType(feats []Feature, t FeatureType) []Feature {
	var out []Feature
	for _, f := range feats {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// A single 6mm-diameter through-hole in a block resolves to one simple
// hole feature and nothing else: the bore's two half-faces collapse into
// one chain with a single radius tier.
func TestOrchestrate_SingleThroughHole(t *testing.T) {
	shape := synth.ThroughHole(v3.Vec{X: 50, Y: 50, Z: 20}, v3.Vec{X: 25, Y: 25}, 3)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	holes := featuresByType(res.Features, Hole)
	if len(holes) != 1 {
		t.Fatalf("got %d hole features, want 1 (all features: %+v)", len(holes), res.Features)
	}
	h := holes[0]
	if h.Subtype != "simple" {
		t.Errorf("subtype = %q, want simple", h.Subtype)
	}
	if got := h.Params["diameter_mm"]; got != 6.0 {
		t.Errorf("diameter_mm = %v, want 6.0", got)
	}
	if got := h.Params["axis_z"]; got < 0.99 && got > -0.99 {
		t.Errorf("axis_z = %v, want close to +-1 (vertical bore)", got)
	}

	if n := len(featuresByType(res.Features, Fillet)); n != 0 {
		t.Errorf("got %d fillet features, want 0", n)
	}
	if n := len(featuresByType(res.Features, Cavity)); n != 0 {
		t.Errorf("got %d cavity features, want 0", n)
	}
}

// A counterbored hole (3mm-radius bore widening to a 6mm radius for part
// of its depth)
// resolves to a single hole feature with subtype counterbored and two
// bore tiers, with the reported diameter taken from the narrow bore.
func TestOrchestrate_Counterbore(t *testing.T) {
	shape := synth.Counterbore(v3.Vec{X: 50, Y: 50, Z: 20}, v3.Vec{X: 25, Y: 25}, 3, 6, 5)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	holes := featuresByType(res.Features, Hole)
	if len(holes) != 1 {
		t.Fatalf("got %d hole features, want 1 (all features: %+v)", len(holes), res.Features)
	}
	h := holes[0]
	if h.Subtype != "counterbored" {
		t.Errorf("subtype = %q, want counterbored", h.Subtype)
	}
	if got := h.Params["diameter_mm"]; got != 6.0 {
		t.Errorf("diameter_mm = %v, want 6.0 (the narrow bore's diameter)", got)
	}
	if got := h.Params["bore_count"]; got != 2.0 {
		t.Errorf("bore_count = %v, want 2.0", got)
	}
}

// A single 2mm fillet along a box edge resolves to one fillet feature,
// and its face lands in the exclusion set before the hole pass runs, so
// no hole feature claims it.
func TestOrchestrate_FilletedEdge(t *testing.T) {
	shape := synth.FilletedBoxEdge(v3.Vec{X: 50, Y: 50, Z: 20}, 2)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	fillets := featuresByType(res.Features, Fillet)
	if len(fillets) != 1 {
		t.Fatalf("got %d fillet features, want 1 (all features: %+v)", len(fillets), res.Features)
	}
	f := fillets[0]
	if got := f.Params["radius_mm"]; got != 2.0 {
		t.Errorf("radius_mm = %v, want 2.0", got)
	}
	if f.Subtype != "blend" {
		t.Errorf("subtype = %q, want blend", f.Subtype)
	}
	if len(f.Faces) != 1 {
		t.Fatalf("fillet feature has %d faces, want 1", len(f.Faces))
	}
	if !res.Excluded.Has(f.Faces[0]) {
		t.Error("fillet face was not added to the excluded set")
	}

	if n := len(featuresByType(res.Features, Hole)); n != 0 {
		t.Errorf("got %d hole features, want 0", n)
	}
}

// A cylindrical boss whose top rim is blended by a quarter-torus ring
// resolves to toroidal fillet features, one per seamed ring half, each
// carrying the tube radius and the ring's major radius; the boss itself
// stays a shaft.
func TestOrchestrate_ToroidalFillet(t *testing.T) {
	shape := synth.FilletedTorusEdge(v3.Vec{X: 40, Y: 40, Z: 10}, v3.Vec{X: 20, Y: 20}, 6, 8, 2)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	fillets := featuresByType(res.Features, Fillet)
	if len(fillets) != 2 {
		t.Fatalf("got %d fillet features, want 2 (all features: %+v)", len(fillets), res.Features)
	}
	for _, f := range fillets {
		if f.Subtype != "curved_blend" {
			t.Errorf("subtype = %q, want curved_blend", f.Subtype)
		}
		if got := f.Params["radius_mm"]; got != 2.0 {
			t.Errorf("radius_mm = %v, want 2.0", got)
		}
		if got := f.Params["major_radius_mm"]; got != 4.0 {
			t.Errorf("major_radius_mm = %v, want 4.0 (boss radius minus tube radius)", got)
		}
		for _, fid := range f.Faces {
			if !res.Excluded.Has(fid) {
				t.Errorf("toroidal fillet face %d was not added to the excluded set", fid)
			}
		}
	}

	shafts := featuresByType(res.Features, Shaft)
	if len(shafts) != 1 {
		t.Fatalf("got %d shaft features, want 1 (all features: %+v)", len(shafts), res.Features)
	}
	if shafts[0].Subtype != "simple" {
		t.Errorf("shaft subtype = %q, want simple", shafts[0].Subtype)
	}
	if n := len(featuresByType(res.Features, Hole)); n != 0 {
		t.Errorf("got %d hole features, want 0", n)
	}
}

// A 1mm corner bevel on a cube resolves to one chamfer feature whose
// normal leans into all three axes and whose width matches the bevel
// leg.
func TestOrchestrate_ChamferedCorner(t *testing.T) {
	shape := synth.ChamferedBoxCorner(v3.Vec{X: 20, Y: 20, Z: 20}, 1)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	chamfers := featuresByType(res.Features, Chamfer)
	if len(chamfers) != 1 {
		t.Fatalf("got %d chamfer features, want 1 (all features: %+v)", len(chamfers), res.Features)
	}
	c := chamfers[0]
	width := c.Params["width_mm"]
	if width < 1.0 || width > 1.5 {
		t.Errorf("width_mm = %v, want in [1.0, 1.5]", width)
	}

	attrs := g.Attrs(c.Faces[0])
	for _, comp := range []float64{attrs.Normal.X, attrs.Normal.Y, attrs.Normal.Z} {
		abs := comp
		if abs < 0 {
			abs = -abs
		}
		if !(abs > 0.1 && abs < 0.94) {
			t.Errorf("chamfer face normal component %v not in (0.1, 0.94)", comp)
		}
	}
}

// A 10x20x5mm rectangular pocket resolves to one cavity feature over its
// five interior faces (floor plus four walls) with no convex arc from a
// cavity face to another cavity face's neighbor inside the set.
func TestOrchestrate_RectangularPocket(t *testing.T) {
	shape := synth.RectangularPocket(v3.Vec{X: 60, Y: 60, Z: 20}, v3.Vec{X: 30, Y: 30}, v3.Vec{X: 10, Y: 20}, 5)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	cavities := featuresByType(res.Features, Cavity)
	if len(cavities) != 1 {
		t.Fatalf("got %d cavity features, want 1 (all features: %+v)", len(cavities), res.Features)
	}
	c := cavities[0]
	if len(c.Faces) != 5 {
		t.Errorf("cavity has %d faces, want 5 (floor + 4 walls)", len(c.Faces))
	}
	if got := c.Params["boundary_ratio"]; got < 0.2 {
		t.Errorf("boundary_ratio = %v, want >= 0.2", got)
	}
	if 4*len(c.Faces) >= g.FaceCount() {
		t.Errorf("cavity with %d faces is not local in a %d-face graph", len(c.Faces), g.FaceCount())
	}

	inCavity := make(map[aag.FID]bool, len(c.Faces))
	for _, fid := range c.Faces {
		inCavity[fid] = true
	}
	for _, fid := range c.Faces {
		for _, entry := range g.Neighbors(fid) {
			if !inCavity[entry.Neighbor] {
				continue
			}
			if g.ArcAt(entry.Arc).Convexity == aag.Convex {
				t.Errorf("cavity faces %d and %d meet across a convex arc", fid, entry.Neighbor)
			}
		}
	}
}

// Two 30x30mm parallel planar faces 2mm apart resolve to one thin_wall
// feature, subtype sheet, with mean thickness at the plate separation.
func TestOrchestrate_ParallelPlateThinWall(t *testing.T) {
	shape := synth.ThinRib(v3.Vec{X: 100, Y: 100, Z: 20}, v3.Vec{X: 50, Y: 50}, 30, 2, 30)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	walls := featuresByType(res.Features, ThinWall)
	if len(walls) != 1 {
		t.Fatalf("got %d thin_wall features, want 1 (all features: %+v)", len(walls), res.Features)
	}
	w := walls[0]
	if w.Subtype != "sheet" {
		t.Errorf("subtype = %q, want sheet", w.Subtype)
	}
	if got := w.Params["avg_thickness"]; got < 1.9 || got > 2.1 {
		t.Errorf("avg_thickness = %v, want close to 2.0", got)
	}
	if got := w.Params["cv"]; got > 0.35 {
		t.Errorf("cv = %v, want <= 0.35", got)
	}
	if got := w.Params["overlap"]; got < 0.20 {
		t.Errorf("overlap = %v, want >= 0.20", got)
	}
}

// A long narrow rib (80mm walls only 10mm tall) crosses the aspect-ratio
// threshold and is labeled web rather than sheet.
func TestOrchestrate_ThinWallWebSubtype(t *testing.T) {
	shape := synth.ThinRib(v3.Vec{X: 120, Y: 120, Z: 20}, v3.Vec{X: 60, Y: 60}, 10, 2, 80)
	g, err := aag.Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	res := Orchestrate(g, defaultOrder())

	walls := featuresByType(res.Features, ThinWall)
	if len(walls) != 1 {
		t.Fatalf("got %d thin_wall features, want 1 (all features: %+v)", len(walls), res.Features)
	}
	if walls[0].Subtype != "web" {
		t.Errorf("subtype = %q, want web (80mm long, 10mm tall wall)", walls[0].Subtype)
	}
	if got := walls[0].Params["avg_thickness"]; got < 1.9 || got > 2.1 {
		t.Errorf("avg_thickness = %v, want close to 2.0", got)
	}
}

// Randomly sized and positioned coaxial cylinder pairs must always be
// recognized as a single counterbored hole, regardless of the incidental
// radii, depth, and position drawn. Axis orientation is not randomized:
// the synthetic kernel builds every bore Z-aligned, and the coaxiality
// test itself compares axes by direction cosine and line distance alone
// (see DESIGN.md).
func TestOrchestrate_CounterboreAlwaysCounterbored(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		shape := synth.RandomizedCounterbore(seed)

		g, err := aag.Build(shape)
		if err != nil {
			rt.Fatalf("Build: %v", err)
		}

		res := Orchestrate(g, defaultOrder())

		holes := featuresByType(res.Features, Hole)
		if len(holes) != 1 {
			rt.Fatalf("seed %d: got %d hole features, want 1 (all: %+v)", seed, len(holes), res.Features)
		}
		if holes[0].Subtype != "counterbored" {
			rt.Fatalf("seed %d: subtype = %q, want counterbored", seed, holes[0].Subtype)
		}
		if got := holes[0].Params["bore_count"]; got != 2.0 {
			rt.Fatalf("seed %d: bore_count = %v, want 2.0", seed, got)
		}
	})
}

// The recognizer slice DefaultOrder returns always runs fillets before
// holes: a fillet candidate that also passes the cylindrical-chain test
// must be claimed by the fillet pass first.
func TestOrchestrate_FixedRecognizerOrder(t *testing.T) {
	order := defaultOrder()
	names := make([]string, len(order))
	for i, r := range order {
		names[i] = r.Name()
	}
	want := []string{"fillet", "chamfer", "thin_wall", "hole", "shaft", "cavity"}
	if len(names) != len(want) {
		t.Fatalf("got %d recognizers, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("recognizer[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
