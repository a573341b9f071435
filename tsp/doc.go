// Package tsp solves the Travelling Salesman Problem exactly with the
// Held–Karp dynamic program.
//
// Input is a distance.Table over cities 0..n-1; city 0 is the fixed origin.
//
//   - Solve — Held–Karp over (subset bitmask, last city) states.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ), one flat cost buffer plus a parallel parent buffer
//
//   - Instances above DefaultMaxCities are rejected unless WithMaxCities
//     raises the limit.
//
// Costs are uint64. Unreachable is the "no path yet" sentinel; SatAdd keeps it
// sticky under addition, so it never wraps into a small cost.
//
// Tours are closed: for n ≥ 1, len(Path) == n+1 and Path[0] == Path[n] == 0.
// The one-city instance therefore yields [0, 0] at cost 0; the empty instance
// yields an empty path.
//
// ValidateTour and TourCost check any closed tour against a table, which is
// how callers (and the tests) confirm a reported cost.
package tsp
