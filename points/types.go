// SPDX-License-Identifier: MIT
// Package: salesman/points
//
// types.go - city identifiers, coordinates and sentinel errors.

package points

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxCities is the size of the City identifier space.
const MaxCities = math.MaxUint16

// City is a dense city identifier in [0, n).
type City = uint16

// Point is an integer coordinate inside the generation bounds.
type Point struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Set maps every city identifier to its coordinate.
// A valid Set has dense identifiers and pairwise distinct coordinates.
type Set map[City]Point

var (
	// ErrInvalidCount indicates a negative city count or one beyond MaxCities.
	ErrInvalidCount = errors.New("points: invalid city count")

	// ErrBoundsTooSmall indicates width·height cannot hold n distinct points.
	ErrBoundsTooSmall = errors.New("points: bounds too small for city count")

	// ErrDuplicatePoint indicates two cities share one coordinate.
	ErrDuplicatePoint = errors.New("points: duplicate coordinate")

	// ErrSparseIDs indicates the identifiers are not exactly 0..n-1.
	ErrSparseIDs = errors.New("points: identifiers are not dense")
)

// Len returns the number of cities.
func (s Set) Len() int { return len(s) }

// Sorted returns the identifiers in ascending order.
//
// Complexity: O(n log n).
func (s Set) Sorted() []City {
	ids := make([]City, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Validate checks the Set invariants: identifiers dense in [0, n) and every
// coordinate unique.
//
// Complexity: O(n) time, O(n) space.
func (s Set) Validate() error {
	var (
		n    = len(s)
		seen = make(map[Point]City, n)
		id   City
		p    Point
	)
	for id, p = range s {
		if int(id) >= n {
			return fmt.Errorf("city %d with %d cities: %w", id, n, ErrSparseIDs)
		}
		if other, ok := seen[p]; ok {
			return fmt.Errorf("cities %d and %d at %s: %w", other, id, p, ErrDuplicatePoint)
		}
		seen[p] = id
	}

	return nil
}

// FromSlice builds a Set from fixed coordinates; pts[i] becomes city i.
// The result is validated, so duplicate coordinates are rejected.
//
// Complexity: O(n).
func FromSlice(pts []Point) (Set, error) {
	if len(pts) > MaxCities {
		return nil, fmt.Errorf("n=%d > max=%d: %w", len(pts), MaxCities, ErrInvalidCount)
	}
	s := make(Set, len(pts))
	for i, p := range pts {
		s[City(i)] = p
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
