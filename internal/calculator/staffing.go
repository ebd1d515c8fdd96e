package calculator

import (
	"errors"
	"math"
)

// MarginalOutput is the output added by the x-th seasonal worker.
func MarginalOutput(x float64) float64 {
	return -2*x*x + 6*x + 90
}

// AccumulatedOutput returns the running total of marginal output for 0..n-1
// extra workers.
func AccumulatedOutput(n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.New("worker count must not be negative")
	}
	out := make([]float64, n)
	acc := 0.0
	for x := range out {
		acc += MarginalOutput(float64(x))
		out[x] = acc
	}
	return out, nil
}

// DecayingReturn is the alternative exponential return curve e^(-k·x).
func DecayingReturn(x, k float64) float64 {
	return math.Exp(-k * x)
}
