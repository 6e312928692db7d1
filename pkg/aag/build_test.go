package aag

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"pgregory.net/rapid"

	"github.com/brepfeat/aag/pkg/geomkernel"
	"github.com/brepfeat/aag/pkg/geomkernel/synth"
)

func TestBuild_RejectsNilShape(t *testing.T) {
	if _, err := Build(nil); err != geomkernel.ErrInvalidShape {
		t.Fatalf("Build(nil) error = %v, want ErrInvalidShape", err)
	}
}

func TestBuild_StableFIDs(t *testing.T) {
	shape := synth.Box(v3.Vec{X: 40, Y: 30, Z: 20})

	g1, err := Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g2, err := Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g1.FaceCount() != g2.FaceCount() {
		t.Fatalf("FaceCount differs across builds: %d vs %d", g1.FaceCount(), g2.FaceCount())
	}
	for fid := FID(0); int(fid) < g1.FaceCount(); fid++ {
		a1, a2 := g1.Attrs(fid), g2.Attrs(fid)
		if a1.Surface != a2.Surface {
			t.Fatalf("fid %d: surface kind differs: %v vs %v", fid, a1.Surface, a2.Surface)
		}
		if a1.Area != a2.Area {
			t.Fatalf("fid %d: area differs: %v vs %v", fid, a1.Area, a2.Area)
		}
	}
}

func TestBuild_ArcSymmetryAndClassification(t *testing.T) {
	shape := synth.ThroughHole(v3.Vec{X: 50, Y: 50, Z: 20}, v3.Vec{X: 25, Y: 25}, 3)
	g, err := Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(g.Arcs()) == 0 {
		t.Fatal("expected at least one arc")
	}

	for _, arc := range g.Arcs() {
		if arc.A == arc.B {
			t.Fatalf("arc %+v connects a face to itself", arc)
		}
		back, ok := g.Arc(arc.B, arc.A)
		if !ok {
			t.Fatalf("arc(%d,%d) exists but arc(%d,%d) does not", arc.A, arc.B, arc.B, arc.A)
		}
		if back.AngleDeg != arc.AngleDeg || back.Convexity != arc.Convexity {
			t.Fatalf("arc(%d,%d) and arc(%d,%d) disagree: %+v vs %+v", arc.A, arc.B, arc.B, arc.A, arc, back)
		}

		if arc.AngleDeg <= -180 || arc.AngleDeg > 180 {
			t.Fatalf("angle %v out of (-180, 180] range", arc.AngleDeg)
		}

		abs := arc.AngleDeg
		if abs < 0 {
			abs = -abs
		}
		switch arc.Convexity {
		case Smooth:
			if abs <= 177 {
				t.Fatalf("Smooth arc has |angle| = %v, want > 177", abs)
			}
		case Convex:
			if !(arc.AngleDeg < 0 && abs <= 177) {
				t.Fatalf("Convex arc fails invariant: angle=%v", arc.AngleDeg)
			}
		case Concave:
			if !(arc.AngleDeg > 0 && abs <= 177) {
				t.Fatalf("Concave arc fails invariant: angle=%v", arc.AngleDeg)
			}
		}
	}
}

func TestBuild_NeighborsAgreeWithArcs(t *testing.T) {
	shape := synth.RectangularPocket(v3.Vec{X: 60, Y: 60, Z: 20}, v3.Vec{X: 30, Y: 30}, v3.Vec{X: 10, Y: 20}, 5)
	g, err := Build(shape)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for fid := FID(0); int(fid) < g.FaceCount(); fid++ {
		for _, entry := range g.Neighbors(fid) {
			arc := g.ArcAt(entry.Arc)
			if arc.Other(fid) != entry.Neighbor {
				t.Fatalf("fid %d: neighbor entry %+v disagrees with arc %+v", fid, entry, arc)
			}
		}
	}
}

func TestBuild_RandomizedThroughHoleInvariantsHold(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		shape := synth.RandomizedThroughHole(seed)

		g, err := Build(shape)
		if err != nil {
			rt.Fatalf("Build: %v", err)
		}

		cyls := g.CylindricalFaces()
		if len(cyls) == 0 {
			rt.Fatal("expected at least one cylindrical face")
		}
		for _, fid := range cyls {
			attrs := g.Attrs(fid)
			if attrs.Cylinder.Radius <= 0 {
				rt.Fatalf("fid %d: non-positive cylinder radius %v", fid, attrs.Cylinder.Radius)
			}
			if l := geomkernel.Length(attrs.Cylinder.Axis.Dir); l < 0.99 || l > 1.01 {
				rt.Fatalf("fid %d: axis direction not unit length: %v", fid, l)
			}
		}

		for _, arc := range g.Arcs() {
			if arc.AngleDeg <= -180 || arc.AngleDeg > 180 {
				rt.Fatalf("angle %v out of (-180, 180] range", arc.AngleDeg)
			}
		}
	})
}
