package calculator

import (
	"errors"
	"math"
	"slices"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"FiscalSim/internal/model"
)

// TotalRevenue sums the series in decimal so the annual figure does not pick
// up float rounding from 365 additions.
func TotalRevenue(series []float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range series {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// Describe returns count, mean, sample standard deviation, min, quartiles and
// max of the series. Quartiles interpolate linearly between order statistics.
func Describe(series []float64) (model.Summary, error) {
	if len(series) == 0 {
		return model.Summary{}, errors.New("no values to describe")
	}
	sorted := slices.Clone(series)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = math.NaN()
	}
	return model.Summary{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(sorted),
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.50),
		Q3:     quantile(sorted, 0.75),
		Max:    floats.Max(sorted),
	}, nil
}

// quantile interpolates at position p*(n-1) of sorted data.
func quantile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
