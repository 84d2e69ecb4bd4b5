package ga

import (
	"errors"
	"fmt"
	"strings"
)

// symbolDigits renders one symbol per character. Alphabets are limited to its length.
const symbolDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxAlphabet is the largest alphabet a Genome can be rendered with.
const MaxAlphabet = len(symbolDigits)

// ErrGenomeLengthMismatch is returned when two genomes of different length are combined.
var ErrGenomeLengthMismatch = errors.New("genome length mismatch")

// Genome is a fixed-length sequence of symbols. The default bit-string
// encoding uses only the symbols 0 and 1.
type Genome []byte

// String renders the genome one character per symbol, e.g. "1101".
func (g Genome) String() string {
	var b strings.Builder
	b.Grow(len(g))
	for _, s := range g {
		if int(s) < MaxAlphabet {
			b.WriteByte(symbolDigits[s])
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Clone returns an independent copy of the genome.
func (g Genome) Clone() Genome {
	if g == nil {
		return nil
	}
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// ParseGenome parses the text form produced by Genome.String.
func ParseGenome(s string) (Genome, error) {
	g := make(Genome, len(s))
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(symbolDigits, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("invalid symbol %q at position %d", s[i], i)
		}
		g[i] = byte(idx)
	}
	return g, nil
}

// MustParseGenome is like ParseGenome but panics on malformed input.
// Intended for literals in tests and examples.
func MustParseGenome(s string) Genome {
	g, err := ParseGenome(s)
	if err != nil {
		panic(err)
	}
	return g
}

// RandomGenome draws each symbol independently and uniformly from [0, alphabet).
// A negative length yields an empty genome; an alphabet below 2 yields all zeros.
func RandomGenome(rng Rand, length, alphabet int) Genome {
	if length < 0 {
		length = 0
	}
	g := make(Genome, length)
	if alphabet < 2 {
		return g
	}
	for i := range g {
		g[i] = byte(rng.Intn(alphabet))
	}
	return g
}

// MutateGenome returns a copy of genes where each symbol, with probability
// rate, is replaced by a different symbol of the alphabet. For the binary
// alphabet this is a bit flip.
func MutateGenome(rng Rand, genes Genome, rate float64, alphabet int) Genome {
	mutated := make(Genome, len(genes))
	for i, s := range genes {
		if rng.Float64() < rate {
			s = otherSymbol(rng, s, alphabet)
		}
		mutated[i] = s
	}
	return mutated
}

// otherSymbol picks uniformly among the alphabet symbols other than s.
// A symbol outside the alphabet is replaced by any valid symbol.
func otherSymbol(rng Rand, s byte, alphabet int) byte {
	switch {
	case alphabet < 2:
		return 0
	case int(s) >= alphabet:
		return byte(rng.Intn(alphabet))
	case alphabet == 2:
		return s ^ 1
	default:
		return byte((int(s) + 1 + rng.Intn(alphabet-1)) % alphabet)
	}
}

// UniformCrossover builds a child genome position by position, taking each
// symbol from a or b on a fair coin flip (0 selects a, 1 selects b).
func UniformCrossover(rng Rand, a, b Genome) (Genome, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("uniform crossover of lengths %d and %d: %w", len(a), len(b), ErrGenomeLengthMismatch)
	}
	parents := [2]Genome{a, b}
	child := make(Genome, len(a))
	for i := range child {
		child[i] = parents[rng.Intn(2)][i]
	}
	return child, nil
}

// CountOnes is the default fitness: the number of symbols equal to 1.
func CountOnes(g Genome) float64 {
	n := 0
	for _, s := range g {
		if s == 1 {
			n++
		}
	}
	return float64(n)
}
