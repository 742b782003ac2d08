package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_DerivedValues(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(8), cfg.ConsumptionPeriod())
	assert.Equal(t, int64(90), cfg.LotSize())
	require.NoError(t, cfg.Validate())
}

func TestConfig_ValidateRejectsNonDivisibleX(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XMinutes = 25
	err := cfg.Validate()
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestConfig_ValidateRejectsMissingDedicatedRow(t *testing.T) {
	cfg := DefaultConfig()
	layout := DefaultRoleLayout()
	for i, r := range layout {
		if r == RoleDedicatedC {
			layout[i] = RoleDynamic
		}
	}
	cfg.RoleLayout = layout
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C")
}

func TestConfig_ValidateRejectsUnknownStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllocationStrategy = "bogus"
	assert.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsMaturationBelowWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaturationMinutes = 100
	cfg.WindowMinutes = 720
	assert.Error(t, cfg.Validate())
}
