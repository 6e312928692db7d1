package engine

import (
	"fmt"

	"github.com/brepfeat/aag/pkg/aag"
	"github.com/brepfeat/aag/pkg/geomkernel"
	"github.com/brepfeat/aag/pkg/mesh"
	"github.com/brepfeat/aag/pkg/recognize"
)

// Result is the outcome of one end-to-end recognition run.
type Result struct {
	Graph       *aag.Graph
	Features    []recognize.Feature
	Mesh        *mesh.Mesh
	Diagnostics []string
}

// Engine wires the geometry adapter, AAG builder, recognizer
// orchestration, and tessellator into a single fixed pipeline.
type Engine struct {
	Config *Config
}

// New returns an engine configured by cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{Config: cfg}
}

// Run executes the full pipeline against shape: build the graph, run
// the selected recognizers in their fixed order, tessellate a mesh, and
// return the combined result. Run fails only if the module selector is
// invalid or graph construction itself fails
// (geomkernel.ErrInvalidShape); a recognizer's internal
// failure or a tessellation error is recorded as a diagnostic and does
// not fail the run.
func (e *Engine) Run(shape geomkernel.Shape) (*Result, error) {
	enabled, err := parseModules(e.Config.Modules)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	g, err := aag.Build(shape)
	if err != nil {
		return nil, fmt.Errorf("engine: building graph: %w", err)
	}

	recognizers := filterRecognizers(
		recognize.DefaultOrder(
			e.Config.MaxFilletRadiusMM,
			e.Config.MaxChamferWidthMM,
			e.Config.ThinWallThresholdMM,
			e.Config.MaxCavityVolumeMM3,
		),
		enabled,
	)

	result := recognize.Orchestrate(g, recognizers)

	diagnostics := append([]string{}, g.Diagnostics()...)
	diagnostics = append(diagnostics, result.Warnings...)

	m, err := mesh.Tessellate(g, e.Config.MeshDeflection)
	if err != nil {
		m = &mesh.Mesh{}
		diagnostics = append(diagnostics, fmt.Sprintf("tessellation failed: %v", err))
	}

	return &Result{
		Graph:       g,
		Features:    result.Features,
		Mesh:        m,
		Diagnostics: diagnostics,
	}, nil
}
