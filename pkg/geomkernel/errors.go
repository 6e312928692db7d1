package geomkernel

import "errors"

// Sentinel errors surfaced by the adapter contract. Callers treat absence
// (a returned error) as a non-qualifying result, never as a reason to
// panic or abort the run; only ErrInvalidShape is fatal to a build.
var (
	// ErrInvalidShape means the adapter rejected the input before any
	// graph construction could begin. Fatal for the run.
	ErrInvalidShape = errors.New("geomkernel: invalid shape")

	// ErrNormalUndefined means a face normal could not be evaluated at
	// the requested parameter (degenerate parameterization, singular
	// point). The affected face/arc is recorded with a zero vector.
	ErrNormalUndefined = errors.New("geomkernel: normal undefined")

	// ErrProjectionFailed means a world point could not be projected
	// onto a face's surface.
	ErrProjectionFailed = errors.New("geomkernel: projection failed")

	// ErrDegenerateEdge means a shared edge has a zero-length tangent at
	// the sampled point. The arc for that edge is still produced, with θ
	// recorded as 0 and Arc.Degenerate set.
	ErrDegenerateEdge = errors.New("geomkernel: degenerate edge")
)
