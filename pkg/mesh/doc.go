// Package mesh walks an aag.Graph's faces in FID order and assembles a
// single indexed triangle mesh, tracking which face produced each
// triangle so downstream consumers can map a triangle index back to its
// FID.
package mesh
