package ga

import (
	"errors"
	"fmt"
)

// scriptedRand replays fixed draws. Intn returns the next scripted int modulo
// n; Float64 returns the next scripted float.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		panic("scriptedRand: out of ints")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scriptedRand: out of floats")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

var errNoMating = errors.New("fixed candidates do not mate")

// fixedCandidate has a constant fitness and an identifying name.
type fixedCandidate struct {
	name    string
	fitness float64
	mateErr error
}

func fixed(name string, fitness float64) *fixedCandidate {
	return &fixedCandidate{name: name, fitness: fitness}
}

func (f *fixedCandidate) Genome() Genome          { return Genome{} }
func (f *fixedCandidate) Fitness() float64        { return f.fitness }
func (f *fixedCandidate) ComputeFitness() float64 { return f.fitness }
func (f *fixedCandidate) Clone() Candidate        { c := *f; return &c }
func (f *fixedCandidate) String() string          { return fmt.Sprintf("%s(%v)", f.name, f.fitness) }

func (f *fixedCandidate) Mutate(_ Rand, clone bool) Candidate {
	if clone {
		return f.Clone()
	}
	return f
}

func (f *fixedCandidate) Mate(_ Rand, _ Candidate) (Candidate, error) {
	if f.mateErr != nil {
		return nil, f.mateErr
	}
	return f.Clone(), nil
}

func fixedPopulation(values ...float64) []Candidate {
	pop := make([]Candidate, len(values))
	for i, v := range values {
		pop[i] = fixed(fmt.Sprintf("c%d", i), v)
	}
	return pop
}

func names(pop []Candidate) []string {
	out := make([]string, len(pop))
	for i, c := range pop {
		out[i] = c.(*fixedCandidate).name
	}
	return out
}

// countingVariant returns a default-like variant whose Score counts its calls.
func countingVariant(length int, rate float64) (*Variant, *int) {
	calls := 0
	v := &Variant{
		Name:         "counting",
		Length:       length,
		MutationRate: rate,
		Alphabet:     2,
		Score: func(g Genome) float64 {
			calls++
			return CountOnes(g)
		},
	}
	return v, &calls
}
