package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FiscalSim/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fiscalsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, model.DefaultParams(), cfg.Params())
	assert.Equal(t, 1300.0, cfg.Capacity.Base)
	assert.Equal(t, 1800.0, cfg.Capacity.Seasonal)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  spring_days: 45
  ramp_days: 0
  seed: 7
capacity:
  seasonal: 0
batch:
  runs: 10
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	p := cfg.Params()
	assert.Equal(t, 45, p.SpringDays)
	assert.Equal(t, 0, p.RampDays)
	assert.Equal(t, uint64(7), p.Seed)
	assert.Equal(t, 60, p.FallDays, "unset keys keep their defaults")
	assert.Equal(t, 10, cfg.Batch.Runs)
	assert.Equal(t, 4, cfg.Batch.Workers)

	plan := cfg.CapacityPlan()
	assert.Equal(t, 0.0, plan.Seasonal)
	assert.Equal(t, []model.Interval{
		{Name: "spring", Start: 90, End: 135},
		{Name: "fall", Start: 273, End: 333},
	}, plan.Windows)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FISCALSIM_SEED", "123")
	t.Setenv("FISCALSIM_TOTAL_REVENUE", "900000")
	t.Setenv("FISCALSIM_RAMP_DAYS", "7")
	t.Setenv("FISCALSIM_LISTEN_ADDR", ":9090")
	t.Setenv("FISCALSIM_DEBUG", "true")

	cfg, err := Load(writeConfig(t, "simulation:\n  seed: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, uint64(123), cfg.Simulation.Seed)
	assert.Equal(t, 900000.0, cfg.Simulation.TotalRevenue)
	assert.Equal(t, 7, cfg.Simulation.RampDays)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.True(t, cfg.Debug)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeConfig(t, "simulation: [unclosed"))
	assert.Error(t, err)

	t.Setenv("FISCALSIM_SEED", "not-a-number")
	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Simulation.SpringDays = 40
	assert.ErrorIs(t, cfg.Validate(), model.ErrInvalidConfiguration)

	cfg = Default()
	cfg.Capacity.Base = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Capacity.Seasonal = math.NaN()
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Batch.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.ListenAddr = ""
	assert.Error(t, cfg.Validate())
}
