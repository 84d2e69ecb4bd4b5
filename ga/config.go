package ga

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"gopkg.in/ini.v1"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores the parameters of a simulation run. The core API never reads
// it; it exists so experiments can be driven from an INI file and the
// environment.
type Config struct {
	Simulation SimulationConfig
	Candidate  CandidateConfig
}

// SimulationConfig holds the parameters of the evolutionary loop.
type SimulationConfig struct {
	Generations int   `ini:"generations" env:"MINGAL_GENERATIONS"`
	PopSize     int   `ini:"pop_size"    env:"MINGAL_POP_SIZE"`
	Crossover   bool  `ini:"crossover"   env:"MINGAL_CROSSOVER"`
	Survival    bool  `ini:"survival"    env:"MINGAL_SURVIVAL"`
	Verbose     bool  `ini:"verbose"     env:"MINGAL_VERBOSE"`
	Seed        int64 `ini:"seed"        env:"MINGAL_SEED"` // 0 means seed from the clock
}

// CandidateConfig holds the parameters of the default bit-string candidate.
type CandidateConfig struct {
	Length       int     `ini:"length"        env:"MINGAL_LENGTH"`
	MutationRate float64 `ini:"mutation_rate" env:"MINGAL_MUTATION_RATE"`
	Alphabet     int     `ini:"alphabet"      env:"MINGAL_ALPHABET"`
}

// DefaultConfig returns the parameters of the demo run: 100 generations of
// 100 candidates with crossover and survival.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Generations: 100,
			PopSize:     100,
			Crossover:   true,
			Survival:    true,
			Verbose:     true,
		},
		Candidate: CandidateConfig{
			Length:       DefaultLength,
			MutationRate: DefaultMutationRate,
			Alphabet:     DefaultAlphabet,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file. Keys missing
// from the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()
	if err := f.Section("Simulation").MapTo(&config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to map [Simulation] section: %w", err)
	}
	if err := f.Section("Candidate").MapTo(&config.Candidate); err != nil {
		return nil, fmt.Errorf("failed to map [Candidate] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides config values with any MINGAL_* environment variables
// that are set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Simulation.PopSize <= 0 {
		return fmt.Errorf("%w: pop_size must be positive", ErrInvalidConfig)
	}
	if c.Simulation.Generations < 0 {
		return fmt.Errorf("%w: generations cannot be negative", ErrInvalidConfig)
	}
	if c.Candidate.Length <= 0 {
		return fmt.Errorf("%w: length must be positive", ErrInvalidConfig)
	}
	if c.Candidate.MutationRate < 0 || c.Candidate.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be between 0 and 1", ErrInvalidConfig)
	}
	if c.Candidate.Alphabet < 2 || c.Candidate.Alphabet > MaxAlphabet {
		return fmt.Errorf("%w: alphabet must be between 2 and %d", ErrInvalidConfig, MaxAlphabet)
	}
	return nil
}

// Options converts the simulation section into run options.
func (c *Config) Options() Options {
	return Options{
		Generations: c.Simulation.Generations,
		PopSize:     c.Simulation.PopSize,
		Crossover:   c.Simulation.Crossover,
		Survival:    c.Simulation.Survival,
		Verbose:     c.Simulation.Verbose,
	}
}

// Variant builds a bit-string variant from the candidate section, scored by score.
// A nil score counts ones.
func (c *Config) Variant(name string, score ScoreFunc) *Variant {
	return &Variant{
		Name:         name,
		Length:       c.Candidate.Length,
		MutationRate: c.Candidate.MutationRate,
		Alphabet:     c.Candidate.Alphabet,
		Score:        score,
	}
}
