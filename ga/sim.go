package ga

// Sim runs a simulation of opts.Generations generations over a population of
// opts.PopSize candidates created by factory, and returns a snapshot of the
// best candidate seen. With zero generations it returns the best of the
// initial population.
func Sim(rng Rand, factory Factory, opts Options) (Candidate, error) {
	p, err := NewPopulation(rng, factory, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < opts.Generations; i++ {
		if err := p.RunGeneration(); err != nil {
			return nil, err
		}
	}
	return p.Best, nil
}
