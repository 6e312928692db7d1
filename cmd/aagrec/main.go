// Command aagrec loads a scene, runs one end-to-end AAG recognition
// pass over it, and writes the feature listing, AAG dump, triangle-face
// map, glTF mesh, and a debug SVG to an output directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brepfeat/aag/pkg/engine"
	"github.com/brepfeat/aag/pkg/export"
	"github.com/brepfeat/aag/pkg/scene"
)

const version = "1.0.0"

var (
	input          = flag.String("input", "", "Path to a scene YAML file (required)")
	outdir         = flag.String("outdir", ".", "Output directory for generated files")
	modules        = flag.String("modules", "all", "Module selector: \"all\" or a comma-separated list")
	meshQuality    = flag.Float64("mesh-quality", 0.35, "Tessellator linear-deflection parameter, in (0, 1]")
	thinWallThresh = flag.Float64("thin-wall-threshold", 5, "Thin-wall thickness threshold, in mm")
	verbose        = flag.Bool("verbose", false, "Enable verbose output")
	versionF       = flag.Bool("version", false, "Print version and exit")
	help           = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("aagrec version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading scene from %s\n", *input)
	}

	shape, err := scene.Load(*input)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}

	cfg := engine.DefaultConfig()
	cfg.Modules = *modules
	cfg.MeshDeflection = *meshQuality
	cfg.ThinWallThresholdMM = *thinWallThresh
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(*outdir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	e := engine.New(cfg)

	start := time.Now()
	if *verbose {
		fmt.Println("Running recognition...")
	}
	result, err := e.Run(shape)
	if err != nil {
		return fmt.Errorf("recognition failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Recognition completed in %v\n", elapsed)
		printStats(result)
	}

	if err := exportResult(result); err != nil {
		return err
	}

	for _, w := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	fmt.Printf("Recognized %d feature(s) from %d face(s) in %v\n",
		len(result.Features), result.Graph.FaceCount(), elapsed)
	return nil
}

func exportResult(result *engine.Result) error {
	featuresPath := filepath.Join(*outdir, "features.json")
	if err := export.WriteFeatures(result.Features, featuresPath); err != nil {
		return fmt.Errorf("failed to export features: %w", err)
	}

	aagPath := filepath.Join(*outdir, "aag.json")
	if err := export.WriteAAGDump(result.Graph, aagPath); err != nil {
		return fmt.Errorf("failed to export AAG dump: %w", err)
	}

	triMapPath := filepath.Join(*outdir, "tri_face_map.bin")
	if err := export.WriteTriFaceMap(result.Mesh, triMapPath); err != nil {
		return fmt.Errorf("failed to export triangle-face map: %w", err)
	}

	gltfPath := filepath.Join(*outdir, "mesh.glb")
	if err := export.WriteGLTF(result.Mesh, gltfPath); err != nil {
		return fmt.Errorf("failed to export mesh: %w", err)
	}

	svgPath := filepath.Join(*outdir, "aag.svg")
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("AAG (%d faces, %d features)", result.Graph.FaceCount(), len(result.Features))
	if err := export.WriteSVG(result.Graph, svgPath, opts); err != nil {
		return fmt.Errorf("failed to export AAG visualization: %w", err)
	}

	return nil
}

func printStats(result *engine.Result) {
	fmt.Println("\nRecognition statistics:")
	fmt.Printf("  Faces: %d\n", result.Graph.FaceCount())
	fmt.Printf("  Triangles: %d\n", result.Mesh.TriangleCount())
	fmt.Printf("  Features: %d\n", len(result.Features))

	byType := map[string]int{}
	for _, f := range result.Features {
		byType[string(f.Type)]++
	}
	for _, t := range []string{"hole", "shaft", "fillet", "chamfer", "cavity", "thin_wall"} {
		if n := byType[t]; n > 0 {
			fmt.Printf("    %s: %d\n", t, n)
		}
	}

	if len(result.Diagnostics) > 0 {
		fmt.Printf("  Diagnostics: %d\n", len(result.Diagnostics))
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: aagrec -input <scene.yaml> [flags]")
	flag.PrintDefaults()
}
