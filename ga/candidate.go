package ga

import "sort"

// Candidate is an individual in the population. Implementations own their
// genome and cache their fitness; the evolutionary loop only relies on this
// capability set and works unmodified with any conforming variant.
type Candidate interface {
	// Genome returns the current genes. Callers must not modify the result.
	Genome() Genome
	// Fitness returns the cached fitness, computing it on first access.
	Fitness() float64
	// ComputeFitness recomputes the fitness from the genome and caches it.
	ComputeFitness() float64
	// Mutate applies per-symbol mutation. With clone false the receiver is
	// changed in place and returned; with clone true a new candidate of the
	// same variant is returned and the receiver is left untouched. Either way
	// the returned candidate has fresh fitness.
	Mutate(rng Rand, clone bool) Candidate
	// Mate produces a new candidate of the receiver's variant by uniform
	// crossover. Its fitness is left unset.
	Mate(rng Rand, other Candidate) (Candidate, error)
	// Clone returns an independent deep copy, cached fitness included.
	Clone() Candidate
}

// Factory creates a freshly initialized candidate with random genes.
type Factory func(rng Rand) Candidate

// fitnessCache is either unset or holds a computed value.
type fitnessCache struct {
	value    float64
	computed bool
}

func (c *fitnessCache) set(v float64) {
	c.value = v
	c.computed = true
}

func (c *fitnessCache) invalidate() {
	c.value = 0
	c.computed = false
}

// Less orders candidates by ascending fitness. Equal fitness is a tie.
func Less(a, b Candidate) bool {
	return a.Fitness() < b.Fitness()
}

// Compare returns -1, 0 or +1 as a's fitness is less than, equal to, or
// greater than b's.
func Compare(a, b Candidate) int {
	fa, fb := a.Fitness(), b.Fitness()
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}

// Best returns the fittest candidate, the first one on ties.
// It returns nil for an empty population.
func Best(pop []Candidate) Candidate {
	var best Candidate
	for _, c := range pop {
		if best == nil || Less(best, c) {
			best = c
		}
	}
	return best
}

// SortDescending sorts the population best first. Ties keep their relative order.
func SortDescending(pop []Candidate) {
	sort.SliceStable(pop, func(i, j int) bool {
		return Less(pop[j], pop[i])
	})
}
