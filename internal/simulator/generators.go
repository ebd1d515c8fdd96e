package simulator

import (
	"slices"

	"FiscalSim/internal/model"
)

// Noise bounds, half-open.
const (
	offSeasonNoiseLow  = -100
	offSeasonNoiseHigh = 100
	rampNoiseLow       = -40
	rampNoiseHigh      = 40
)

// OffSeason produces days values of mean plus independent integer noise.
// A gap of zero or fewer days yields an empty slice.
func (s *Simulator) OffSeason(days int, mean float64) []float64 {
	if days <= 0 {
		return []float64{}
	}
	out := make([]float64, days)
	for i := range out {
		out[i] = mean + float64(s.src.IntRange(offSeasonNoiseLow, offSeasonNoiseHigh))
	}
	return out
}

// Ramp builds the linear transition from baseline to plateau over the
// configured ramp length. The ramp-down is the ramp-up reversed, so both
// carry the same noise.
func (s *Simulator) Ramp(baseline, plateau float64) (up, down []float64) {
	n := s.params.RampDays
	if n <= 0 {
		return []float64{}, []float64{}
	}
	step := (plateau - baseline) / float64(n)
	level := baseline
	up = make([]float64, n)
	for i := range up {
		level += step
		up[i] = level + float64(s.src.IntRange(rampNoiseLow, rampNoiseHigh))
	}
	down = slices.Clone(up)
	slices.Reverse(down)
	return up, down
}

// Season produces ramp-up, normally distributed plateau and ramp-down for
// one season. The result always has exactly season.Days entries.
func (s *Simulator) Season(season model.Season) ([]float64, error) {
	if season.Days <= 0 {
		return nil, &model.ConfigError{Field: season.Name + "_days", Reason: "must be positive"}
	}
	if err := season.CheckRamp(s.params.RampDays); err != nil {
		return nil, err
	}

	mean := season.PlateauMean(s.params.TotalRevenue)
	sigma := season.PlateauStdDev(s.params.TotalRevenue)
	up, down := s.Ramp(s.params.BaselineMean(), mean)

	out := make([]float64, 0, season.Days)
	out = append(out, up...)
	for range season.Days - 2*s.params.RampDays {
		out = append(out, s.src.Normal(mean, sigma))
	}
	out = append(out, down...)
	return out, nil
}
