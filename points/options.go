// SPDX-License-Identifier: MIT
// Package: salesman/points
//
// options.go - functional options and resolved configuration for Generate.
//
// Contract:
//   • Options mutate a generatorConfig before sampling starts.
//   • Option constructors panic on meaningless input (nil rng); Generate
//     itself never panics.
//   • Later options override earlier ones.

package points

import "math/rand"

// defaultSeed is used when no RNG is supplied or when WithSeed(0) is given.
// The value is arbitrary but stable across releases.
const defaultSeed int64 = 1

// Option customizes Generate.
type Option func(*generatorConfig)

// generatorConfig is the resolved set of knobs for one Generate call.
type generatorConfig struct {
	rng *rand.Rand
}

// WithRand makes Generate draw from r. r is consumed, not copied; do not share
// it across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("points: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed makes Generate draw from a fresh source seeded with seed.
// seed==0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// newGeneratorConfig applies opts in order and falls back to the default
// deterministic stream.
func newGeneratorConfig(opts ...Option) generatorConfig {
	var cfg generatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
