package sim

import (
	"math/rand"

	"github.com/vlife-go/vlife/config"
)

// Option configures a Simulator at construction time, following the
// teacher's functional-options idiom (see config.Config's Default plus
// per-field overrides).
type Option func(*Simulator)

// WithMinCells sets the population floor Simulator.Update tops up to.
func WithMinCells(n int) Option {
	return func(s *Simulator) {
		s.cfg.MinCells = n
	}
}

// WithConfig replaces the simulator's entire tunable configuration.
func WithConfig(cfg config.Config) Option {
	return func(s *Simulator) {
		s.cfg = cfg
	}
}

// WithSeed seeds the simulator's random source, for reproducible runs.
// Resolves spec.md §5's open question (the source uses a thread-local,
// unseeded RNG) in favor of an explicitly threaded, seedable one.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}
