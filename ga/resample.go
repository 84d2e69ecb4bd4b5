package ga

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFitness is returned when a fitness value cannot be used as a
// selection weight (negative or NaN).
var ErrInvalidFitness = errors.New("invalid fitness for resampling")

// Resample draws a new population of the same size, proportional to fitness,
// using stochastic universal sampling: N equally spaced pointers, the first at
// half a step, swept once over the cumulative fitness of pop in the given
// order. The result is not sorted; it follows the order of the sweep.
//
// A population whose total fitness is zero is resampled uniformly, each
// candidate selected exactly once.
func Resample(pop []Candidate) ([]Candidate, error) {
	size := len(pop)
	resampled := make([]Candidate, 0, size)
	if size == 0 {
		return resampled, nil
	}

	fs := fitnesses(pop)
	for i, f := range fs {
		if f < 0 || math.IsNaN(f) {
			return nil, fmt.Errorf("candidate %d has fitness %v: %w", i, f, ErrInvalidFitness)
		}
	}

	total := 0.0
	for _, f := range fs {
		total += f
	}
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("total fitness is %v: %w", total, ErrInvalidFitness)
	}
	if total == 0 {
		return append(resampled, pop...), nil
	}

	step := total / float64(size)
	pos := 0
	cumulative := fs[0]
	for i := 0; i < size; i++ {
		pointer := (float64(i) + 0.5) * step
		for pointer > cumulative && pos < size-1 {
			pos++
			cumulative += fs[pos]
		}
		resampled = append(resampled, pop[pos])
	}
	return resampled, nil
}
