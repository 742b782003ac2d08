package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is a YAML-loadable simulation configuration. Zero-value fields
// mean "not set in YAML" and fall back to DefaultConfig's values, the same
// way nil pointer fields defer to a baseline config elsewhere in this
// codebase.
type Bundle struct {
	XMinutes            int64            `yaml:"x_minutes"`
	MaturationMinutes   int64            `yaml:"maturation_minutes"`
	WindowMinutes       int64            `yaml:"window_minutes"`
	Rows                int              `yaml:"rows"`
	RowCapacity         int              `yaml:"row_capacity"`
	AllocationStrategy  string           `yaml:"allocation_strategy"`
	ConsumptionStrategy string           `yaml:"consumption_strategy"`
	Activation          ActivationBundle `yaml:"activation"`
	Weights             *WeightBundle    `yaml:"weights"`
}

// ActivationBundle holds per-source activation minutes in YAML form.
type ActivationBundle struct {
	A *int64 `yaml:"a"`
	B *int64 `yaml:"b"`
	C *int64 `yaml:"c"`
}

// WeightBundle holds S4 WeightedComposite weights in YAML form.
type WeightBundle struct {
	Free float64 `yaml:"free"`
	Lot  float64 `yaml:"lot"`
}

// LoadBundle reads and parses a YAML policy configuration file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &b, nil
}

// Validate checks strategy names and non-negative parameters before the
// bundle is turned into a Config. Config.Validate performs the remaining,
// more detailed checks (role layout coverage, x_minutes divisibility) once
// defaults have been filled in.
func (b *Bundle) Validate() error {
	if !ValidAllocationStrategies[b.AllocationStrategy] {
		return fmt.Errorf("unknown allocation_strategy %q", b.AllocationStrategy)
	}
	if !ValidConsumptionStrategies[b.ConsumptionStrategy] {
		return fmt.Errorf("unknown consumption_strategy %q", b.ConsumptionStrategy)
	}
	if b.XMinutes < 0 {
		return fmt.Errorf("x_minutes must be non-negative, got %d", b.XMinutes)
	}
	if b.Weights != nil && (b.Weights.Free < 0 || b.Weights.Lot < 0) {
		return fmt.Errorf("weights must be non-negative")
	}
	return nil
}

// ToConfig merges the bundle over DefaultConfig, treating zero values (and
// nil pointer/struct fields) as "use the default".
func (b *Bundle) ToConfig() Config {
	cfg := DefaultConfig()

	if b.XMinutes != 0 {
		cfg.XMinutes = b.XMinutes
	}
	if b.MaturationMinutes != 0 {
		cfg.MaturationMinutes = b.MaturationMinutes
	}
	if b.WindowMinutes != 0 {
		cfg.WindowMinutes = b.WindowMinutes
	}
	if b.Rows != 0 {
		cfg.Rows = b.Rows
		cfg.RoleLayout = DefaultRoleLayout() // only valid when Rows == 12; callers with a
		// non-default row count must also set a custom layout out of band.
	}
	if b.RowCapacity != 0 {
		cfg.RowCapacity = b.RowCapacity
	}
	if b.AllocationStrategy != "" {
		cfg.AllocationStrategy = b.AllocationStrategy
	}
	if b.ConsumptionStrategy != "" {
		cfg.ConsumptionStrategy = b.ConsumptionStrategy
	}
	if b.Activation.A != nil {
		cfg.Activation.A = *b.Activation.A
	}
	if b.Activation.B != nil {
		cfg.Activation.B = *b.Activation.B
	}
	if b.Activation.C != nil {
		cfg.Activation.C = *b.Activation.C
	}
	if b.Weights != nil {
		cfg.Weights = WeightConfig{Free: b.Weights.Free, Lot: b.Weights.Lot}
	}
	return cfg
}
