package simulator

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FiscalSim/internal/model"
)

func TestOffSeason(t *testing.T) {
	sim := unchecked(model.DefaultParams())

	assert.Empty(t, sim.OffSeason(0, 1000))
	assert.Empty(t, sim.OffSeason(-3, 1000))

	values := sim.OffSeason(500, 1000)
	require.Len(t, values, 500)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 900.0)
		assert.LessOrEqual(t, v, 1099.0)
	}
}

func TestRamp_DownMirrorsUp(t *testing.T) {
	sim := unchecked(model.DefaultParams())

	up, down := sim.Ramp(1000, 2500)
	require.Len(t, up, 21)
	require.Len(t, down, 21)

	reversed := slices.Clone(up)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, down)

	// Linear trend dominates the ±40 noise with a step of ~71.
	assert.Less(t, up[0], up[20])
	assert.InDelta(t, 2500, up[20], 40)
}

func TestRamp_ZeroDays(t *testing.T) {
	p := model.DefaultParams()
	p.RampDays = 0
	sim := unchecked(p)

	up, down := sim.Ramp(1000, 2500)
	assert.Empty(t, up)
	assert.Empty(t, down)
}

func TestRamp_ZeroDaysConsumesNoRandomness(t *testing.T) {
	p := model.DefaultParams()
	p.RampDays = 0
	a, b := unchecked(p), unchecked(p)

	a.Ramp(1000, 2500)
	assert.Equal(t, a.OffSeason(5, 0), b.OffSeason(5, 0))
}

func TestSeason_LengthAndShape(t *testing.T) {
	p := model.DefaultParams()
	sim := unchecked(p)

	spring, err := sim.Season(p.Spring())
	require.NoError(t, err)
	require.Len(t, spring, p.SpringDays)

	up := spring[:p.RampDays]
	down := spring[len(spring)-p.RampDays:]
	reversed := slices.Clone(up)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, down)
}

func TestSeason_NoRampIsAllPlateau(t *testing.T) {
	p := model.DefaultParams()
	p.RampDays = 0
	p.SpringDays = 10
	sim := unchecked(p)

	spring, err := sim.Season(p.Spring())
	require.NoError(t, err)
	require.Len(t, spring, 10)

	mean := p.Spring().PlateauMean(p.TotalRevenue)
	sigma := p.Spring().PlateauStdDev(p.TotalRevenue)
	for _, v := range spring {
		assert.InDelta(t, mean, v, 8*sigma)
	}
}

func TestSeason_RejectsDegeneratePlateau(t *testing.T) {
	p := model.DefaultParams()
	sim := unchecked(p)

	for _, days := range []int{42, 30, 1} {
		season := p.Spring()
		season.Days = days
		out, err := sim.Season(season)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration, "days=%d", days)
		assert.Nil(t, out)
	}

	season := p.Fall()
	season.Days = 0
	_, err := sim.Season(season)
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestSource_IntRangeIsHalfOpen(t *testing.T) {
	src := NewSource(1)
	seen := map[int]bool{}
	for range 5000 {
		v := src.IntRange(-3, 3)
		require.GreaterOrEqual(t, v, -3)
		require.Less(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func TestSource_SameSeedSameStream(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for range 50 {
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
		assert.Equal(t, a.Normal(10, 2), b.Normal(10, 2))
	}
}
