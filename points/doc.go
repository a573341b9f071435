// SPDX-License-Identifier: MIT
// Package points generates collision-free city layouts on an integer grid.
//
// A layout is a Set: a mapping from dense city identifiers 0..n-1 to unique
// (x, y) coordinates inside a rectangle [0,width)×[0,height). Coordinates are
// drawn uniformly and resampled on collision (rejection sampling).
//
// Randomness is always injected:
//
//	set, err := points.Generate(10, 430, 600, points.WithSeed(7))
//
// Without WithRand/WithSeed a fixed default seed is used, so a bare call is
// reproducible too. Bounds that cannot hold n distinct points are rejected
// with ErrBoundsTooSmall before any sampling starts.
//
// Complexity: O(n) expected draws while n ≪ width·height; O(1) membership check
// per draw via a coordinate set.
package points
