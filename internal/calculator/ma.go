package calculator

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// RollingMean computes the trailing simple moving average over every full
// window. Entry i averages values[i : i+window].
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	if len(values) < window {
		return nil, errors.New("not enough data for moving average")
	}
	out := make([]float64, len(values)-window+1)
	sum := floats.Sum(values[:window])
	out[0] = sum / float64(window)
	for i := 1; i < len(out); i++ {
		sum += values[i+window-1] - values[i-1]
		out[i] = sum / float64(window)
	}
	return out, nil
}

// PeakWindow returns the highest moving average and the day its window starts.
func PeakWindow(values []float64, window int) (mean float64, start int, err error) {
	ma, err := RollingMean(values, window)
	if err != nil {
		return 0, 0, err
	}
	start = floats.MaxIdx(ma)
	return ma[start], start, nil
}
