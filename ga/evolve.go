package ga

import "fmt"

// Evolve produces the next generation of pop and returns it sorted best
// first, with the same size as pop. The input is expected to be sorted;
// it is never modified.
//
// With crossover, each resampled candidate mates with a partner drawn
// uniformly (with replacement) from the same resampled set; otherwise
// reproduction is asexual. Offspring are always mutated as clones. With
// survival, the previous generation competes with the offspring for the
// N slots.
func Evolve(rng Rand, pop []Candidate, crossover, survival bool) ([]Candidate, error) {
	size := len(pop)

	// --- Step 1: Resample by fitness ---
	resampled, err := Resample(pop)
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	// --- Step 2: Recombine ---
	// Drawing mates from the resampled set counts fitness twice for sexual
	// offspring; resampling a second, differently ordered copy would be
	// smoother but slower.
	offspring := resampled
	if crossover {
		offspring = make([]Candidate, 0, size)
		for i, cand := range resampled {
			mate := resampled[rng.Intn(size)]
			child, err := cand.Mate(rng, mate)
			if err != nil {
				return nil, fmt.Errorf("crossover of offspring %d: %w", i, err)
			}
			offspring = append(offspring, child)
		}
	}

	// --- Step 3: Mutate ---
	next := make([]Candidate, 0, 2*size)
	for _, cand := range offspring {
		next = append(next, cand.Mutate(rng, true))
	}

	// --- Step 4: Survival ---
	if survival {
		next = append(next, pop...)
	}

	// --- Step 5: Elitist truncation ---
	SortDescending(next)
	return next[:size:size], nil
}
