package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's numeric knobs and module selector. It
// supports YAML parsing and validation.
type Config struct {
	// Modules is "all" or a comma-separated list drawn from
	// {recognize_holes, recognize_shafts, recognize_fillets,
	// recognize_chamfers, recognize_cavities, recognize_thin_walls}.
	Modules string `yaml:"modules"`

	// MeshDeflection is the tessellator's linear-deflection parameter,
	// in (0, 1].
	MeshDeflection float64 `yaml:"meshDeflection"`

	// ThinWallThresholdMM is the thin-wall recognizer's thickness
	// threshold.
	ThinWallThresholdMM float64 `yaml:"thinWallThresholdMm"`

	// MaxFilletRadiusMM bounds fillet candidate radius.
	MaxFilletRadiusMM float64 `yaml:"maxFilletRadiusMm"`

	// MaxChamferWidthMM bounds chamfer candidate width.
	MaxChamferWidthMM float64 `yaml:"maxChamferWidthMm"`

	// MaxCavityVolumeMM3 bounds estimated cavity volume.
	MaxCavityVolumeMM3 float64 `yaml:"maxCavityVolumeMm3"`
}

// DefaultConfig returns the stock tuning: mesh deflection 0.35,
// thin-wall threshold 5 mm, fillet radius 10 mm, chamfer width 5 mm,
// all modules enabled. MaxCavityVolumeMM3 gets a generous bound so it
// does not silently reject valid cavities.
func DefaultConfig() *Config {
	return &Config{
		Modules:             "all",
		MeshDeflection:      0.35,
		ThinWallThresholdMM: 5,
		MaxFilletRadiusMM:   10,
		MaxChamferWidthMM:   5,
		MaxCavityVolumeMM3:  1e9,
	}
}

// LoadConfig reads and validates a YAML configuration file, filling in
// defaults for any field the file omits.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	if c.MeshDeflection <= 0 || c.MeshDeflection > 1 {
		return fmt.Errorf("meshDeflection must be in (0, 1], got %v", c.MeshDeflection)
	}
	if c.ThinWallThresholdMM <= 0 {
		return fmt.Errorf("thinWallThresholdMm must be positive, got %v", c.ThinWallThresholdMM)
	}
	if c.MaxFilletRadiusMM <= 0 {
		return fmt.Errorf("maxFilletRadiusMm must be positive, got %v", c.MaxFilletRadiusMM)
	}
	if c.MaxChamferWidthMM <= 0 {
		return fmt.Errorf("maxChamferWidthMm must be positive, got %v", c.MaxChamferWidthMM)
	}
	if c.MaxCavityVolumeMM3 <= 0 {
		return fmt.Errorf("maxCavityVolumeMm3 must be positive, got %v", c.MaxCavityVolumeMM3)
	}
	if _, err := parseModules(c.Modules); err != nil {
		return fmt.Errorf("modules: %w", err)
	}
	return nil
}
