// Package tsp - tour utilities.
//
// Helpers operating on closed tours ([]points.City, origin 0):
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - CanonicalizeOrientation: pick one of the two directions of a cycle.
//
// Both are O(n) and never log or panic.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/points"
)

// ValidateTour enforces the closed-tour invariants for n cities:
//
//	n == 0: len(tour) == 0
//	n ≥ 1:  len(tour) == n+1, tour[0] == tour[n] == 0,
//	        each city in [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []points.City, n int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidCount)
	}
	if n == 0 {
		if len(tour) != 0 {
			return fmt.Errorf("len=%d for empty instance: %w", len(tour), ErrInvalidTour)
		}
		return nil
	}
	if len(tour) != n+1 {
		return fmt.Errorf("len=%d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("endpoints %d..%d, want 0..0: %w", tour[0], tour[n], ErrInvalidTour)
	}

	var (
		seen = make([]bool, n)
		i    int
		v    points.City
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if int(v) >= n {
			return fmt.Errorf("city %d at %d out of range: %w", v, i, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("city %d repeated at %d: %w", v, i, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// CanonicalizeOrientation returns a copy of a closed tour travelling in the
// direction whose first step goes to the smaller neighbour of the origin.
// A cycle and its reverse therefore canonicalize to the same slice.
// Tours shorter than 4 entries have only one orientation and are copied as-is.
//
// Complexity: O(n) time, O(n) space.
func CanonicalizeOrientation(tour []points.City) []points.City {
	out := append([]points.City(nil), tour...)
	n := len(out) - 1
	if n < 3 || out[0] != out[n] {
		return out
	}
	if out[1] > out[n-1] {
		for i, k := 1, n-1; i < k; i, k = i+1, k-1 {
			out[i], out[k] = out[k], out[i]
		}
	}

	return out
}
