package model

// CapacityPlan describes how much revenue the business can serve per day.
// Inside any of the seasonal windows the Seasonal capacity applies, elsewhere
// Base does. A zero Seasonal value means a flat Base line all year.
type CapacityPlan struct {
	Base     float64    `json:"base"`
	Seasonal float64    `json:"seasonal,omitempty"`
	Windows  []Interval `json:"windows,omitempty"`
}

// DefaultCapacityPlan staffs up to 1800/day during both seasons of the
// layout and 1300/day otherwise.
func DefaultCapacityPlan(l Layout) CapacityPlan {
	return CapacityPlan{
		Base:     1300,
		Seasonal: 1800,
		Windows:  l.Seasons(),
	}
}

// At returns the capacity for a single day.
func (c CapacityPlan) At(day int) float64 {
	if c.Seasonal > 0 {
		for _, w := range c.Windows {
			if w.Contains(day) {
				return c.Seasonal
			}
		}
	}
	return c.Base
}

// Line returns the capacity for every day in [0, days).
func (c CapacityPlan) Line(days int) []float64 {
	line := make([]float64, days)
	for d := range line {
		line[d] = c.At(d)
	}
	return line
}

// CapacityReport compares a series against a capacity line.
type CapacityReport struct {
	Capacity          []float64 `json:"capacity"`
	Collected         float64   `json:"collected"`
	LostPotential     float64   `json:"lost_potential"`
	Unutilized        float64   `json:"unutilized"`
	DaysOverCapacity  int       `json:"days_over_capacity"`
	DaysUnderCapacity int       `json:"days_under_capacity"`
}

// Summary is the descriptive statistics of a series.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}
