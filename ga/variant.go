package ga

import (
	"errors"
	"fmt"
)

// Defaults of the bit-string candidate.
const (
	DefaultLength       = 32
	DefaultMutationRate = 0.1
	DefaultAlphabet     = 2
)

var (
	// ErrInvalidVariant is returned when variant parameters are out of range.
	ErrInvalidVariant = errors.New("invalid variant")
	// ErrNoPartner is returned when mating with a nil candidate.
	ErrNoPartner = errors.New("mate with nil partner")
)

// ScoreFunc computes a fitness value from a genome. It must be deterministic.
type ScoreFunc func(Genome) float64

// Variant parameterizes the default bit-string candidate: genome length,
// alphabet, mutation probability and fitness function. Variants that need
// different genome semantics altogether implement Candidate directly and can
// reuse RandomGenome, MutateGenome and UniformCrossover.
type Variant struct {
	Name         string
	Length       int       // Number of symbols per genome, DefaultLength when zero.
	MutationRate float64   // Per-symbol mutation probability.
	Alphabet     int       // Number of distinct symbols, DefaultAlphabet when zero.
	Score        ScoreFunc // Defaults to CountOnes when nil.
}

// DefaultVariant returns the classic "max ones" candidate: 32 bits, 10%
// mutation rate, fitness equal to the number of ones.
func DefaultVariant() *Variant {
	return &Variant{
		Name:         "onemax",
		Length:       DefaultLength,
		MutationRate: DefaultMutationRate,
		Alphabet:     DefaultAlphabet,
		Score:        CountOnes,
	}
}

// resolved returns v with zero Length and Alphabet replaced by their defaults.
// v itself is returned when nothing needs filling in.
func (v *Variant) resolved() *Variant {
	if v.Length != 0 && v.Alphabet != 0 {
		return v
	}
	r := *v
	if r.Length == 0 {
		r.Length = DefaultLength
	}
	if r.Alphabet == 0 {
		r.Alphabet = DefaultAlphabet
	}
	return &r
}

// Validate checks the variant parameters after defaults are applied.
func (v *Variant) Validate() error {
	r := v.resolved()
	if r.Length < 0 {
		return fmt.Errorf("%w %q: length cannot be negative, got %d", ErrInvalidVariant, v.Name, r.Length)
	}
	if r.MutationRate < 0 || r.MutationRate > 1 {
		return fmt.Errorf("%w %q: mutation rate must be between 0 and 1, got %v", ErrInvalidVariant, v.Name, r.MutationRate)
	}
	if r.Alphabet < 2 || r.Alphabet > MaxAlphabet {
		return fmt.Errorf("%w %q: alphabet must be between 2 and %d, got %d", ErrInvalidVariant, v.Name, MaxAlphabet, r.Alphabet)
	}
	return nil
}

// Factory validates the variant and returns its constructor, ready to be
// handed to Sim or NewPopulation.
func (v *Variant) Factory() (Factory, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.resolved().New, nil
}

func (v *Variant) score(g Genome) float64 {
	if v.Score == nil {
		return CountOnes(g)
	}
	return v.Score(g)
}

// New creates a candidate with uniformly random genes. It has the Factory
// signature; Factory is the checked way to obtain it. New itself never fails:
// out-of-range parameters degrade to empty genomes or a single symbol.
func (v *Variant) New(rng Rand) Candidate {
	r := v.resolved()
	return &BitString{
		variant: r,
		genes:   RandomGenome(rng, r.Length, r.Alphabet),
	}
}

// FromGenome creates a candidate of this variant holding a copy of genes.
// Symbols outside the alphabet are replaced by valid ones when mutated.
func (v *Variant) FromGenome(genes Genome) *BitString {
	return &BitString{variant: v.resolved(), genes: genes.Clone()}
}

// BitString is the default Candidate implementation.
type BitString struct {
	variant *Variant
	genes   Genome
	fitness fitnessCache
}

// Variant returns the parameters this candidate was created with, defaults applied.
func (b *BitString) Variant() *Variant { return b.variant }

// Genome returns the genes. Callers must not modify the result.
func (b *BitString) Genome() Genome { return b.genes }

// Fitness returns the cached fitness, scoring the genome on first access.
func (b *BitString) Fitness() float64 {
	if !b.fitness.computed {
		b.ComputeFitness()
	}
	return b.fitness.value
}

// ComputeFitness scores the genome with the variant's ScoreFunc and caches it.
func (b *BitString) ComputeFitness() float64 {
	b.fitness.set(b.variant.score(b.genes))
	return b.fitness.value
}

// Mutate replaces each symbol with probability MutationRate. See Candidate.
func (b *BitString) Mutate(rng Rand, clone bool) Candidate {
	mutated := MutateGenome(rng, b.genes, b.variant.MutationRate, b.variant.Alphabet)

	target := b
	if clone {
		target = &BitString{variant: b.variant}
	}
	target.genes = mutated
	target.fitness.invalidate()
	target.ComputeFitness()
	return target
}

// Mate returns a child of the receiver's variant built by uniform crossover
// with other. It fails with ErrNoPartner or ErrGenomeLengthMismatch.
func (b *BitString) Mate(rng Rand, other Candidate) (Candidate, error) {
	if other == nil {
		return nil, fmt.Errorf("mate: %w", ErrNoPartner)
	}
	genes, err := UniformCrossover(rng, b.genes, other.Genome())
	if err != nil {
		return nil, fmt.Errorf("mate: %w", err)
	}
	return &BitString{variant: b.variant, genes: genes}, nil
}

// Clone returns a deep copy sharing only the immutable variant parameters.
func (b *BitString) Clone() Candidate {
	return &BitString{
		variant: b.variant,
		genes:   b.genes.Clone(),
		fitness: b.fitness,
	}
}

func (b *BitString) String() string {
	return b.genes.String()
}
