// Package scene loads the YAML description the CLI's --input flag
// points at and builds the corresponding synthetic geomkernel.Shape.
// There is no STEP/IGES importer here: a scene file names a fixture
// kind and its parameters rather than pointing at a pre-built artifact.
package scene
