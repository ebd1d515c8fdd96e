package model

import "math"

const (
	// DaysInYear is the length of a simulated fiscal year.
	DaysInYear = 365
	// SpringStart is the fixed calendar anchor of the spring season (April 1st).
	SpringStart = 90
	// FallStart is the fixed calendar anchor of the fall season (October 1st).
	FallStart = 273
)

// Params is the fixed configuration of one simulation run.
type Params struct {
	TotalRevenue float64 `json:"total_revenue"`
	SpringShare  float64 `json:"spring_share"`
	FallShare    float64 `json:"fall_share"`
	SpringDays   int     `json:"spring_days"`
	FallDays     int     `json:"fall_days"`
	RampDays     int     `json:"ramp_days"`
	Seed         uint64  `json:"seed"`
}

// DefaultParams returns the reference tire-service year.
func DefaultParams() Params {
	return Params{
		TotalRevenue: 600_000,
		SpringShare:  0.25,
		FallShare:    0.35,
		SpringDays:   60,
		FallDays:     60,
		RampDays:     21,
		Seed:         42,
	}
}

// Season describes one high-demand interval of the year.
type Season struct {
	Name  string
	Share float64
	Days  int
	Start int
}

// PlateauMean is the expected daily revenue once the season is fully ramped.
func (s Season) PlateauMean(totalRevenue float64) float64 {
	return s.Share * totalRevenue / float64(s.Days)
}

// PlateauStdDev shrinks as the season gets longer.
func (s Season) PlateauStdDev(totalRevenue float64) float64 {
	return s.PlateauMean(totalRevenue) / float64(s.Days)
}

// Interval returns the calendar days covered by the season.
func (s Season) Interval() Interval {
	return Interval{Name: s.Name, Start: s.Start, End: s.Start + s.Days}
}

// OffShare is the fraction of annual revenue earned outside both seasons.
func (p Params) OffShare() float64 {
	return 1 - p.SpringShare - p.FallShare
}

// OffSeasonDays is the number of days outside both seasons.
func (p Params) OffSeasonDays() int {
	return DaysInYear - p.SpringDays - p.FallDays
}

// BaselineMean is the average daily off-season revenue.
func (p Params) BaselineMean() float64 {
	return p.TotalRevenue * p.OffShare() / float64(p.OffSeasonDays())
}

func (p Params) Spring() Season {
	return Season{Name: "spring", Share: p.SpringShare, Days: p.SpringDays, Start: SpringStart}
}

func (p Params) Fall() Season {
	return Season{Name: "fall", Share: p.FallShare, Days: p.FallDays, Start: FallStart}
}

// WithSeed returns a copy of p using the given seed.
func (p Params) WithSeed(seed uint64) Params {
	p.Seed = seed
	return p
}

// Validate checks every constraint eagerly. The first violation is returned
// as a *ConfigError wrapping ErrInvalidConfiguration.
func (p Params) Validate() error {
	if !(p.TotalRevenue > 0) || math.IsInf(p.TotalRevenue, 0) {
		return invalid("total_revenue", "must be a positive finite amount, got %v", p.TotalRevenue)
	}
	if !(p.SpringShare > 0 && p.SpringShare < 1) {
		return invalid("spring_share", "must be in (0,1), got %v", p.SpringShare)
	}
	if !(p.FallShare > 0 && p.FallShare < 1) {
		return invalid("fall_share", "must be in (0,1), got %v", p.FallShare)
	}
	if p.SpringShare+p.FallShare >= 1 {
		return invalid("spring_share+fall_share", "must be below 1, got %v", p.SpringShare+p.FallShare)
	}
	if p.SpringDays <= 0 {
		return invalid("spring_days", "must be positive, got %d", p.SpringDays)
	}
	if p.FallDays <= 0 {
		return invalid("fall_days", "must be positive, got %d", p.FallDays)
	}
	if p.SpringDays+p.FallDays >= DaysInYear {
		return invalid("spring_days+fall_days", "must be below %d, got %d", DaysInYear, p.SpringDays+p.FallDays)
	}
	if p.RampDays < 0 {
		return invalid("ramp_days", "must not be negative, got %d", p.RampDays)
	}
	for _, s := range []Season{p.Spring(), p.Fall()} {
		if err := s.CheckRamp(p.RampDays); err != nil {
			return err
		}
	}
	return NewLayout(p).Validate()
}

// CheckRamp reports whether a season leaves room for a plateau between its
// two ramps.
func (s Season) CheckRamp(rampDays int) error {
	if s.Days <= 2*rampDays {
		return invalid(s.Name+"_days", "must exceed twice ramp_days (%d), got %d", rampDays, s.Days)
	}
	return nil
}
