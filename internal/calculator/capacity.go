package calculator

import (
	"errors"
	"math"

	"FiscalSim/internal/model"
)

// CompareCapacity splits each day's demand into collected revenue, revenue
// lost above the capacity line and capacity left unused below it.
func CompareCapacity(series []float64, plan model.CapacityPlan) (model.CapacityReport, error) {
	if len(series) == 0 {
		return model.CapacityReport{}, errors.New("no series provided")
	}
	for _, c := range []float64{plan.Base, plan.Seasonal} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return model.CapacityReport{}, errors.New("capacity must be finite")
		}
		if c < 0 {
			return model.CapacityReport{}, errors.New("capacity must not be negative")
		}
	}

	rep := model.CapacityReport{Capacity: plan.Line(len(series))}
	for d, demand := range series {
		capacity := rep.Capacity[d]
		switch {
		case demand > capacity:
			rep.Collected += capacity
			rep.LostPotential += demand - capacity
			rep.DaysOverCapacity++
		case demand < capacity:
			rep.Collected += demand
			rep.Unutilized += capacity - demand
			rep.DaysUnderCapacity++
		default:
			rep.Collected += demand
		}
	}
	return rep, nil
}
