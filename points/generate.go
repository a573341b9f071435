// SPDX-License-Identifier: MIT
// Package: salesman/points
//
// generate.go - rejection-sampled random layouts.
//
// Contract:
//   - 0 ≤ n ≤ MaxCities (else ErrInvalidCount).
//   - width·height ≥ n (else ErrBoundsTooSmall); checked before any draw, so
//     sampling always terminates.
//   - City i is placed before city i+1; a fixed seed yields a fixed Set.
//
// Determinism:
//   - Each attempt draws x then y from the configured RNG.

package points

import "fmt"

const methodGenerate = "Generate"

// Generate places n cities uniformly at random inside [0,width)×[0,height)
// with no two cities on the same coordinate.
//
// A candidate that collides with an accepted coordinate is discarded and
// redrawn. Expected draws stay close to n while n is small relative to the
// area; a layout that fills the whole rectangle still terminates but degrades
// towards coupon-collector behaviour.
//
// Complexity: O(n) expected time for sparse layouts, O(n) space.
func Generate(n int, width, height uint32, opts ...Option) (Set, error) {
	// 1) Preconditions: reject count and bounds before sampling.
	if n < 0 || n > MaxCities {
		return nil, fmt.Errorf("%s: n=%d not in [0,%d]: %w", methodGenerate, n, MaxCities, ErrInvalidCount)
	}
	if uint64(width)*uint64(height) < uint64(n) {
		return nil, fmt.Errorf("%s: %dx%d cannot hold %d cities: %w",
			methodGenerate, width, height, n, ErrBoundsTooSmall)
	}

	cfg := newGeneratorConfig(opts...)

	var (
		set   = make(Set, n)
		taken = make(map[Point]struct{}, n)
		rng   = cfg.rng
		i     int
		p     Point
	)

	// 2) Draw each city, resampling on collision.
	for i = 0; i < n; i++ {
		for {
			p = Point{
				X: uint32(rng.Int63n(int64(width))),
				Y: uint32(rng.Int63n(int64(height))),
			}
			if _, ok := taken[p]; !ok {
				break
			}
		}
		taken[p] = struct{}{}
		set[City(i)] = p
	}

	return set, nil
}
