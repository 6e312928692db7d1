// Package export writes a recognition run's outputs in the bit-stable
// formats downstream consumers parse: the feature listing and AAG dump
// as JSON, the triangle→face map as packed little-endian uint32s, the
// mesh as binary glTF, and an SVG debug visualization of the graph.
package export
