// Package aag builds and queries the Attributed Adjacency Graph: the
// face/edge graph of a B-rep shape, with signed dihedral angles, surface
// classification, and cached per-face geometric attributes. The graph is
// built once by Build and is immutable for the rest of the run.
package aag
