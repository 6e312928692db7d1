package synth

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// triangulateGrid samples a regular (n+1)x(n+1) grid over [uMin,uMax] x
// [vMin,vMax] via pointAt and emits two triangles per grid cell. The
// synth kernel's surfaces are all analytic and bounded, so a uniform
// grid is a faithful incremental triangulator: finer deflection values
// simply ask for a denser grid.
func triangulateGrid(uMin, uMax, vMin, vMax float64, deflection float64, pointAt func(u, v float64) v3.Vec) ([]v3.Vec, []int) {
	n := gridResolution(deflection)

	verts := make([]v3.Vec, 0, (n+1)*(n+1))
	index := func(i, j int) int { return i*(n+1) + j }
	for i := 0; i <= n; i++ {
		u := uMin + (uMax-uMin)*float64(i)/float64(n)
		for j := 0; j <= n; j++ {
			v := vMin + (vMax-vMin)*float64(j)/float64(n)
			verts = append(verts, pointAt(u, v))
		}
	}

	tris := make([]int, 0, n*n*6)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := index(i, j)
			b := index(i+1, j)
			c := index(i+1, j+1)
			d := index(i, j+1)
			tris = append(tris, a, b, c, a, c, d)
		}
	}

	return verts, tris
}

// gridResolution maps a linear-deflection tolerance in (0,1] to a grid
// subdivision count: tighter deflection asks for a denser grid, clamped
// to keep synthetic fixtures cheap to tessellate.
func gridResolution(deflection float64) int {
	if deflection <= 0 {
		deflection = 0.01
	}
	n := int(1.0 / deflection)
	if n < 2 {
		n = 2
	}
	if n > 32 {
		n = 32
	}
	return n
}
