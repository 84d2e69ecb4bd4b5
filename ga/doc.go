// Package ga provides a minimal genetic algorithm for experimenting with
// bit-string candidates.
//
// Each generation is resampled in proportion to fitness (stochastic universal
// sampling), optionally recombined by uniform crossover, mutated symbol by
// symbol, optionally merged with the previous generation, and truncated back
// to its original size, best first.
//
// Candidates are pluggable: the default BitString is parameterized by a
// Variant (length, alphabet, mutation rate, fitness function), and anything
// implementing Candidate can be evolved through a Factory. All randomness
// comes from an explicit Rand, so runs are reproducible given a seed.
//
// Basic usage:
//
//	variant := ga.DefaultVariant()
//	best, err := ga.Sim(ga.NewRand(1), variant.New, ga.Options{
//		Generations: 100,
//		PopSize:     100,
//		Crossover:   true,
//		Survival:    true,
//	})
//	if err != nil {
//		log.Fatalf("Simulation failed: %v", err)
//	}
//	fmt.Println(best.Genome(), best.Fitness())
package ga
