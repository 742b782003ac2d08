package sim

const (
	AllocationMostFree             = "most_free"
	AllocationRoundRobin           = "round_robin"
	AllocationDedicatedPlusDynamic = "dedicated_plus_dynamic"
	AllocationWeighted             = "weighted"

	ConsumptionFirstThree  = "first_three"
	ConsumptionLongestHead = "longest_head"
)

// ValidAllocationStrategies is the set of recognized allocation strategy
// names. Empty string defers to the config default.
var ValidAllocationStrategies = map[string]bool{
	"":                             true,
	AllocationMostFree:             true,
	AllocationRoundRobin:           true,
	AllocationDedicatedPlusDynamic: true,
	AllocationWeighted:             true,
}

// ValidConsumptionStrategies is the set of recognized consumption strategy
// names. Empty string defers to the config default.
var ValidConsumptionStrategies = map[string]bool{
	"":                     true,
	ConsumptionFirstThree:  true,
	ConsumptionLongestHead: true,
}

// ActivationTimes holds the per-source staggered start minute.
type ActivationTimes struct {
	A, B, C int64
}

// WeightConfig configures the S4 WeightedComposite allocation strategy.
type WeightConfig struct {
	Free float64
	Lot  float64
}

// Config holds every recognized construction option.
type Config struct {
	XMinutes            int64
	MaturationMinutes   int64
	WindowMinutes       int64
	Rows                int
	RowCapacity         int
	RoleLayout          []Role
	AllocationStrategy  string
	ConsumptionStrategy string
	Activation          ActivationTimes
	Weights             WeightConfig
}

// DefaultRoleLayout returns the default twelve-row layout: rows 0-2
// dedicated A, 4-6 dedicated B, 8-10 dedicated C, rows 3/7/11 dynamic.
func DefaultRoleLayout() []Role {
	layout := make([]Role, 12)
	for i := range layout {
		switch {
		case i >= 0 && i <= 2:
			layout[i] = RoleDedicatedA
		case i >= 4 && i <= 6:
			layout[i] = RoleDedicatedB
		case i >= 8 && i <= 10:
			layout[i] = RoleDedicatedC
		default: // 3, 7, 11
			layout[i] = RoleDynamic
		}
	}
	return layout
}

// DefaultConfig returns the default line parameters: X=24, maturation=1200,
// window=720, 12 rows of capacity 22, the default role layout, most_free
// allocation, first_three consumption, and staggered activation
// A=0/B=720/C=1440.
func DefaultConfig() Config {
	return Config{
		XMinutes:            24,
		MaturationMinutes:   1200,
		WindowMinutes:       720,
		Rows:                12,
		RowCapacity:         22,
		RoleLayout:          DefaultRoleLayout(),
		AllocationStrategy:  AllocationMostFree,
		ConsumptionStrategy: ConsumptionFirstThree,
		Activation:          ActivationTimes{A: 0, B: 720, C: 1440},
		Weights:             WeightConfig{Free: 0.5, Lot: 0.5},
	}
}

// LotSize returns floor(window / (x/3)), the number of pallets consumed
// during one full window at the default consumption cadence.
func (c Config) LotSize() int64 {
	return c.WindowMinutes / c.ConsumptionPeriod()
}

// ConsumptionPeriod returns x/3, the minutes between consumption attempts
// within an active window.
func (c Config) ConsumptionPeriod() int64 {
	return c.XMinutes / 3
}

// activationFor returns the configured activation minute for a source.
func (c Config) activationFor(s Source) int64 {
	switch s {
	case SourceA:
		return c.Activation.A
	case SourceB:
		return c.Activation.B
	case SourceC:
		return c.Activation.C
	default:
		return 0
	}
}

// Validate checks every precondition assigned to construction time. It
// never panics; every failure is a returned *ConfigurationError.
func (c Config) Validate() error {
	if c.XMinutes < 1 {
		return configErrorf("x_minutes must be >= 1, got %d", c.XMinutes)
	}
	if c.XMinutes%3 != 0 {
		return configErrorf("x_minutes must be divisible by 3 so x/3 is an integer consumption period, got %d", c.XMinutes)
	}
	if c.MaturationMinutes < 0 {
		return configErrorf("maturation_minutes must be >= 0, got %d", c.MaturationMinutes)
	}
	if c.WindowMinutes < 1 {
		return configErrorf("window_minutes must be >= 1, got %d", c.WindowMinutes)
	}
	if c.MaturationMinutes < c.WindowMinutes {
		return configErrorf("maturation_minutes (%d) must be >= window_minutes (%d)", c.MaturationMinutes, c.WindowMinutes)
	}
	if c.Rows < 1 {
		return configErrorf("rows must be >= 1, got %d", c.Rows)
	}
	if c.RowCapacity < 1 {
		return configErrorf("row_capacity must be >= 1, got %d", c.RowCapacity)
	}
	if len(c.RoleLayout) != c.Rows {
		return configErrorf("role_layout has %d entries, want %d (rows)", len(c.RoleLayout), c.Rows)
	}
	hasDedicated := map[Source]bool{}
	for i, r := range c.RoleLayout {
		if src, ok := r.dedicatedSource(); ok {
			hasDedicated[src] = true
		} else if r != RoleDynamic {
			return configErrorf("role_layout[%d]: unrecognized role %v", i, r)
		}
	}
	for _, s := range Sources {
		if !hasDedicated[s] {
			return configErrorf("role_layout has no dedicated row for source %s", s)
		}
	}
	if !ValidAllocationStrategies[c.AllocationStrategy] {
		return configErrorf("unknown allocation_strategy %q", c.AllocationStrategy)
	}
	if !ValidConsumptionStrategies[c.ConsumptionStrategy] {
		return configErrorf("unknown consumption_strategy %q", c.ConsumptionStrategy)
	}
	if c.Activation.A < 0 || c.Activation.B < 0 || c.Activation.C < 0 {
		return configErrorf("activation times must be non-negative")
	}
	return nil
}
