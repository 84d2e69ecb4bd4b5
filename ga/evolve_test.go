package ga

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initialPopulation(rng Rand, v *Variant, size int) []Candidate {
	pop := make([]Candidate, size)
	for i := range pop {
		pop[i] = v.New(rng)
	}
	SortDescending(pop)
	return pop
}

func TestEvolvePreservesPopulationSize(t *testing.T) {
	for _, size := range []int{1, 2, 7, 50} {
		for _, crossover := range []bool{false, true} {
			for _, survival := range []bool{false, true} {
				name := fmt.Sprintf("size=%d/crossover=%v/survival=%v", size, crossover, survival)
				t.Run(name, func(t *testing.T) {
					rng := NewRand(int64(size))
					pop := initialPopulation(rng, DefaultVariant(), size)
					for gen := 0; gen < 5; gen++ {
						next, err := Evolve(rng, pop, crossover, survival)
						require.NoError(t, err)
						require.Len(t, next, size)
						pop = next
					}
				})
			}
		}
	}
}

func TestEvolveReturnsSortedPopulation(t *testing.T) {
	rng := NewRand(4)
	pop := initialPopulation(rng, DefaultVariant(), 30)
	next, err := Evolve(rng, pop, true, false)
	require.NoError(t, err)
	for i := 1; i < len(next); i++ {
		assert.GreaterOrEqual(t, next[i-1].Fitness(), next[i].Fitness())
	}
}

func TestEvolveWithSurvivalNeverRegresses(t *testing.T) {
	rng := NewRand(8)
	v := DefaultVariant()
	v.MutationRate = 0.3
	pop := initialPopulation(rng, v, 20)

	best := Best(pop).Fitness()
	for gen := 0; gen < 100; gen++ {
		next, err := Evolve(rng, pop, gen%2 == 0, true)
		require.NoError(t, err)
		cur := Best(next).Fitness()
		assert.GreaterOrEqual(t, cur, best, "generation %d", gen)
		best = cur
		pop = next
	}
}

func TestEvolveDoesNotModifyInput(t *testing.T) {
	rng := NewRand(12)
	pop := initialPopulation(rng, DefaultVariant(), 15)

	before := make([]string, len(pop))
	order := make([]Candidate, len(pop))
	for i, c := range pop {
		before[i] = c.Genome().String()
		order[i] = c
	}

	_, err := Evolve(rng, pop, true, true)
	require.NoError(t, err)

	for i, c := range pop {
		assert.Same(t, order[i], c)
		assert.Equal(t, before[i], c.Genome().String())
	}
}

func TestEvolveOffspringAreFreshInstances(t *testing.T) {
	rng := NewRand(13)
	pop := initialPopulation(rng, DefaultVariant(), 10)
	prev := map[Candidate]bool{}
	for _, c := range pop {
		prev[c] = true
	}

	next, err := Evolve(rng, pop, false, false)
	require.NoError(t, err)
	for _, c := range next {
		assert.False(t, prev[c], "offspring must not alias the previous generation")
	}
}

func TestEvolveSurvivalKeepsElite(t *testing.T) {
	v := DefaultVariant()
	v.MutationRate = 0.5
	elite := v.FromGenome(MustParseGenome("11111111111111111111111111111111"))
	pop := []Candidate{elite}
	for i := 0; i < 9; i++ {
		pop = append(pop, v.FromGenome(MustParseGenome("00000000000000000000000000000001")))
	}

	next, err := Evolve(NewRand(3), pop, true, true)
	require.NoError(t, err)
	assert.Equal(t, 32.0, next[0].Fitness())
}

func TestEvolvePropagatesErrors(t *testing.T) {
	t.Run("resample", func(t *testing.T) {
		_, err := Evolve(NewRand(1), fixedPopulation(1, -1), false, false)
		assert.ErrorIs(t, err, ErrInvalidFitness)
	})

	t.Run("crossover", func(t *testing.T) {
		pop := fixedPopulation(2, 1)
		for _, c := range pop {
			c.(*fixedCandidate).mateErr = errNoMating
		}
		_, err := Evolve(NewRand(1), pop, true, false)
		assert.ErrorIs(t, err, errNoMating)
	})

	t.Run("length mismatch", func(t *testing.T) {
		v := DefaultVariant()
		pop := []Candidate{
			v.FromGenome(MustParseGenome("1111")),
			v.FromGenome(MustParseGenome("11111")),
		}
		// Candidate 0 is resampled once and mates with candidate 1.
		rng := &scriptedRand{ints: []int{1}}
		_, err := Evolve(rng, pop, true, false)
		assert.ErrorIs(t, err, ErrGenomeLengthMismatch)
	})
}
