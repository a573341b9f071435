// SPDX-License-Identifier: MIT
// Package: salesman/distance
//
// table.go - pair keys, squared distances and the lookup table.

package distance

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/salesman/points"
)

// ErrMissingPair indicates the table has no entry for a pair of distinct
// cities that should be present. It is a data-integrity failure, never an
// "unreachable" cost.
var ErrMissingPair = errors.New("distance: missing pair")

// Key is an unordered pair of distinct cities with I < J.
// Build keys through MakeKey; a hand-made Key{I: 3, J: 1} never matches.
type Key struct {
	I points.City
	J points.City
}

// Table maps each unordered city pair to its squared Euclidean distance.
type Table map[Key]uint64

// MakeKey returns the canonical key for the pair (i, j): smaller id first.
//
// Complexity: O(1).
func MakeKey(i, j points.City) Key {
	if i < j {
		return Key{I: i, J: j}
	}
	return Key{I: j, J: i}
}

// Squared returns (ax−bx)² + (ay−by)² in 64-bit arithmetic.
// Differences are taken as absolute values, so unsigned subtraction never
// wraps regardless of argument order. Each square fits in 64 bits; their sum
// may not, and then saturates at math.MaxUint64, the solver's unreachable
// sentinel.
//
// Complexity: O(1).
func Squared(a, b points.Point) uint64 {
	var (
		dx = absDiff(a.X, b.X)
		dy = absDiff(a.Y, b.Y)
	)
	sum, carry := bits.Add64(dx*dx, dy*dy, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return sum
}

// absDiff returns |a−b| widened to uint64.
func absDiff(a, b uint32) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// Build computes the distance for every unordered pair of distinct cities
// in set. No entry is produced for a city paired with itself.
//
// Complexity: O(n²) time, n(n−1)/2 entries.
func Build(set points.Set) Table {
	var (
		ids = set.Sorted()
		n   = len(ids)
		t   = make(Table, n*(n-1)/2)
		a   int
		b   int
	)
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			t[MakeKey(ids[a], ids[b])] = Squared(set[ids[a]], set[ids[b]])
		}
	}

	return t
}

// Lookup returns d(i,j) independent of argument order.
// A city paired with itself costs 0 and is always found.
//
// Complexity: O(1).
func (t Table) Lookup(i, j points.City) (uint64, bool) {
	if i == j {
		return 0, true
	}
	d, ok := t[MakeKey(i, j)]

	return d, ok
}

// MustLookup is Lookup that reports an absent pair as ErrMissingPair, wrapped
// with the pair.
func (t Table) MustLookup(i, j points.City) (uint64, error) {
	d, ok := t.Lookup(i, j)
	if !ok {
		return 0, fmt.Errorf("pair (%d,%d): %w", i, j, ErrMissingPair)
	}

	return d, nil
}

// Validate checks that every pair of distinct cities in [0,n) is present.
// The first absent pair, in ascending (i,j) order, is reported.
//
// Complexity: O(n²).
func (t Table) Validate(n int) error {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if _, ok := t[Key{I: points.City(i), J: points.City(j)}]; !ok {
				return fmt.Errorf("pair (%d,%d) of %d cities: %w", i, j, n, ErrMissingPair)
			}
		}
	}

	return nil
}

// Cities returns the number of distinct identifiers referenced by the keys.
//
// Complexity: O(|t|).
func (t Table) Cities() int {
	seen := make(map[points.City]struct{})
	for k := range t {
		seen[k.I] = struct{}{}
		seen[k.J] = struct{}{}
	}

	return len(seen)
}
