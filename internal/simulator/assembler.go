package simulator

import "FiscalSim/internal/model"

// Assemble concatenates the five interval outputs in calendar order. It
// generates nothing; the only check is that the result spans exactly one
// fiscal year.
func Assemble(offA, spring, offB, fall, offC []float64) (model.Series, error) {
	parts := [][]float64{offA, spring, offB, fall, offC}
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n != model.DaysInYear {
		return nil, &model.LengthError{Got: n, Want: model.DaysInYear}
	}
	series := make(model.Series, 0, n)
	for _, p := range parts {
		series = append(series, p...)
	}
	return series, nil
}
