package ga

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidOptions is returned when a simulation is configured with
// unusable parameters.
var ErrInvalidOptions = errors.New("invalid simulation options")

// Options controls a simulation run.
type Options struct {
	Generations int  // Number of generations to evolve.
	PopSize     int  // Number of candidates per generation.
	Crossover   bool // Sexual reproduction via uniform crossover.
	Survival    bool // Parents compete with offspring for the next generation.
	Verbose     bool // Print progress after every generation.
	// Out receives verbose progress. Defaults to os.Stdout.
	Out io.Writer
}

func (o Options) validate() error {
	if o.PopSize < 1 {
		return fmt.Errorf("pop size must be positive, got %d: %w", o.PopSize, ErrInvalidOptions)
	}
	if o.Generations < 0 {
		return fmt.Errorf("generations cannot be negative, got %d: %w", o.Generations, ErrInvalidOptions)
	}
	return nil
}

// Population holds the state of an evolutionary run.
type Population struct {
	Options    Options
	Members    []Candidate // Current generation, best first.
	Generation int         // Number of generations evolved so far.
	// Best is an independent snapshot of the fittest candidate seen so far.
	// It is never aliased by Members.
	Best         Candidate
	LastImproved int               // Generation in which Best last improved.
	History      []GenerationStats // One entry per generation, initial one included.

	rng Rand
}

// NewPopulation creates the initial generation of opts.PopSize candidates.
func NewPopulation(rng Rand, factory Factory, opts Options) (*Population, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", ErrInvalidOptions)
	}
	if factory == nil {
		return nil, fmt.Errorf("nil candidate factory: %w", ErrInvalidOptions)
	}

	members := make([]Candidate, opts.PopSize)
	for i := range members {
		members[i] = factory(rng)
	}
	SortDescending(members)

	p := &Population{
		Options: opts,
		Members: members,
		Best:    Best(members).Clone(),
		rng:     rng,
	}
	p.History = append(p.History, Summarize(0, members))
	return p, nil
}

// RunGeneration advances the population by one generation and updates the
// best-so-far snapshot. On error the population is left unchanged.
func (p *Population) RunGeneration() error {
	if p.Options.Verbose {
		fmt.Fprintf(p.out(), "Generation %d\n", p.Generation)
	}

	next, err := Evolve(p.rng, p.Members, p.Options.Crossover, p.Options.Survival)
	if err != nil {
		return fmt.Errorf("generation %d: %w", p.Generation, err)
	}
	p.Members = next
	p.Generation++

	if cur := Best(p.Members); Less(p.Best, cur) {
		p.Best = cur.Clone()
		p.LastImproved = p.Generation
	}
	stats := Summarize(p.Generation, p.Members)
	p.History = append(p.History, stats)

	if p.Options.Verbose {
		fmt.Fprintf(p.out(), "best so far: %s with fitness = %v\n", p.Best.Genome(), p.Best.Fitness())
		fmt.Fprintf(p.out(), " %s, stagnant for %d\n", stats, p.Stagnation())
	}
	return nil
}

// Stagnation returns the number of generations since Best last improved.
func (p *Population) Stagnation() int {
	return p.Generation - p.LastImproved
}

func (p *Population) out() io.Writer {
	if p.Options.Out == nil {
		return os.Stdout
	}
	return p.Options.Out
}
