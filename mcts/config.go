package mcts

import "github.com/pkg/errors"

// Config configures one Engine. The zero value is not valid; use
// DefaultConfig and override fields as needed.
type Config struct {
	// Iterations is the number of search iterations run per
	// recommendation.
	Iterations int
	// ExplorationWeight is UCB1's c constant.
	ExplorationWeight float32
	// Verbose enables diagnostic logging and keeps the last search tree
	// so DOT has something to render. Statistics is available after
	// every search either way.
	Verbose bool
}

// DefaultConfig returns the engine's default configuration: 1000
// iterations, exploration weight √2, verbose logging off.
func DefaultConfig() Config {
	return Config{
		Iterations:        1000,
		ExplorationWeight: DefaultExplorationWeight,
		Verbose:           false,
	}
}

// IsValid reports whether the configuration can be used to build an
// Engine.
func (c Config) IsValid() bool {
	return c.Iterations > 0 && c.ExplorationWeight > 0
}

// Validate returns a descriptive error if the configuration is
// invalid, or nil otherwise.
func (c Config) Validate() error {
	if !c.IsValid() {
		return errors.Errorf("invalid mcts config: iterations=%d explorationWeight=%f", c.Iterations, c.ExplorationWeight)
	}
	return nil
}
