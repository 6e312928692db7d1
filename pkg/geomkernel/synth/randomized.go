package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/rng"
)

// RandomizedThroughHole returns a through-hole fixture (see ThroughHole)
// whose block dimensions, bore position, and bore radius are drawn from
// a deterministic RNG seeded by the caller. Property tests use this to
// sample many geometrically distinct but topologically identical
// fixtures from one reported seed, so a failure can be replayed exactly.
func RandomizedThroughHole(seed uint64) *Shape {
	r := rng.NewRNG(seed, "randomized_through_hole", nil)

	dims := v3.Vec{
		X: r.Float64Range(20, 80),
		Y: r.Float64Range(20, 80),
		Z: r.Float64Range(10, 40),
	}
	radius := r.Float64Range(2, dims.X/4)
	if maxY := dims.Y / 4; radius > maxY {
		radius = maxY
	}

	margin := radius + 2
	center := v3.Vec{
		X: r.Float64Range(margin, dims.X-margin),
		Y: r.Float64Range(margin, dims.Y-margin),
	}

	return ThroughHole(dims, center, radius)
}

// RandomizedCounterbore returns a Counterbore fixture whose block
// dimensions, bore position, and the two bore radii and step depth are
// drawn from a deterministic RNG seeded by the caller. Property tests use
// this to sample many geometrically distinct counterbore instances from
// one reported seed, checking that the coaxial-chain recognition is
// robust to the incidental radii and depth rather than tuned to one
// literal fixture.
func RandomizedCounterbore(seed uint64) *Shape {
	r := rng.NewRNG(seed, "randomized_counterbore", nil)

	dims := v3.Vec{
		X: r.Float64Range(30, 80),
		Y: r.Float64Range(30, 80),
		Z: r.Float64Range(15, 40),
	}
	maxRadius := dims.X/4 - 1
	if alt := dims.Y/4 - 1; alt < maxRadius {
		maxRadius = alt
	}
	if maxRadius < 6 {
		maxRadius = 6
	}

	counterRadius := r.Float64Range(4, maxRadius)
	holeRadius := r.Float64Range(1, counterRadius-1)
	counterDepth := r.Float64Range(1, dims.Z/2)

	margin := counterRadius + 2
	center := v3.Vec{
		X: r.Float64Range(margin, dims.X-margin),
		Y: r.Float64Range(margin, dims.Y-margin),
	}

	return Counterbore(dims, center, holeRadius, counterRadius, counterDepth)
}
