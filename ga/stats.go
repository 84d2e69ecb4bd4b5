package ga

import (
	"fmt"
	"math"
	"sort"
)

// GenerationStats summarizes the fitness distribution of one generation.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Stdev      float64 // Sample standard deviation, 0 below two candidates.
	Median     float64
}

// Summarize computes the fitness statistics of pop. An empty population
// yields zero statistics.
func Summarize(generation int, pop []Candidate) GenerationStats {
	s := GenerationStats{Generation: generation}
	n := len(pop)
	if n == 0 {
		return s
	}

	fs := fitnesses(pop)
	s.Best, s.Worst = fs[0], fs[0]
	total := 0.0
	for _, f := range fs {
		total += f
		s.Best = math.Max(s.Best, f)
		s.Worst = math.Min(s.Worst, f)
	}
	s.Mean = total / float64(n)

	if n > 1 {
		variance := 0.0
		for _, f := range fs {
			variance += (f - s.Mean) * (f - s.Mean)
		}
		s.Stdev = math.Sqrt(variance / float64(n-1))
	}

	sort.Float64s(fs)
	if n%2 == 1 {
		s.Median = fs[n/2]
	} else {
		s.Median = (fs[n/2-1] + fs[n/2]) / 2
	}
	return s
}

func (s GenerationStats) String() string {
	return fmt.Sprintf("gen %d: best %.4f, mean %.4f (stdev %.4f), median %.4f, worst %.4f",
		s.Generation, s.Best, s.Mean, s.Stdev, s.Median, s.Worst)
}

// fitnesses collects the fitness of every candidate, computing it where unset.
func fitnesses(pop []Candidate) []float64 {
	fs := make([]float64, len(pop))
	for i, c := range pop {
		fs[i] = c.Fitness()
	}
	return fs
}
