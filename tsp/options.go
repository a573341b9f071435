package tsp

import "fmt"

const (
	// DefaultMaxCities bounds n when no WithMaxCities option is given.
	// At 20 cities the tables take 2²⁰·20·9 bytes ≈ 189 MiB.
	DefaultMaxCities = 20

	// HardMaxCities is the largest limit WithMaxCities accepts.
	// TableBytes(24) ≈ 3.4 GiB; each further city roughly doubles it.
	HardMaxCities = 24

	// DefaultMaxTableBytes bounds the DP allocation when no
	// WithMaxTableBytes option is given. It admits HardMaxCities.
	DefaultMaxTableBytes uint64 = 4 << 30
)

// Option customizes Solve.
type Option func(*config)

type config struct {
	maxCities int
	maxBytes  uint64
}

// WithMaxCities sets the largest n Solve accepts.
// Panics if k is outside [1, HardMaxCities].
func WithMaxCities(k int) Option {
	if k < 1 || k > HardMaxCities {
		panic(fmt.Sprintf("tsp: WithMaxCities(%d) not in [1,%d]", k, HardMaxCities))
	}
	return func(c *config) {
		c.maxCities = k
	}
}

// WithMaxTableBytes sets the largest DP allocation, as reported by
// TableBytes, that Solve will attempt.
// Panics if b == 0.
func WithMaxTableBytes(b uint64) Option {
	if b == 0 {
		panic("tsp: WithMaxTableBytes(0)")
	}
	return func(c *config) {
		c.maxBytes = b
	}
}

func newConfig(opts ...Option) config {
	cfg := config{maxCities: DefaultMaxCities, maxBytes: DefaultMaxTableBytes}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// TableBytes reports the memory Solve allocates for n cities: 2ⁿ·n uint64
// costs plus 2ⁿ·n int8 parents. It returns 0 for n ≤ 1 (no DP) and for n
// beyond HardMaxCities.
func TableBytes(n int) uint64 {
	if n <= 1 || n > HardMaxCities {
		return 0
	}
	cells := (uint64(1) << uint(n)) * uint64(n)

	return cells * (8 + 1)
}
