package crossval

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotEnoughSamples reports an aggregation over fewer than two folds,
// where the sample standard deviation is undefined.
var ErrNotEnoughSamples = errors.New("not enough samples")

// Aggregate reduces per-fold samples to mean and spread, where spread is
// twice the unbiased sample standard deviation (a 95%-interval-style band).
func Aggregate(samples []float64) (mean, spread float64, err error) {
	if len(samples) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2, got %d", ErrNotEnoughSamples, len(samples))
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean = sum / float64(len(samples))

	var sq float64
	for _, s := range samples {
		d := s - mean
		sq += d * d
	}
	spread = 2 * math.Sqrt(sq/float64(len(samples)-1))

	return mean, spread, nil
}
