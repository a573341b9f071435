// Package tsp_test provides helpers shared across *_test.go files in this
// package: fixed instances, seeded random instances, and two reference tours
// (nearest-neighbour for an upper bound, brute force for the exact optimum).
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/points"
	"github.com/katalvlaran/salesman/tsp"
)

const (
	// demoWidth and demoHeight match the CLI defaults (left half of 900×600).
	demoWidth  = 430
	demoHeight = 590
)

// squarePoints is the 10×10 square: adjacent edges cost 100, diagonals 200.
var squarePoints = []points.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

// fixedInstance builds a table from explicit coordinates.
func fixedInstance(t *testing.T, pts []points.Point) (points.Set, distance.Table) {
	t.Helper()
	set, err := points.FromSlice(pts)
	require.NoError(t, err)

	return set, distance.Build(set)
}

// randomInstance builds a seeded random table of n cities.
func randomInstance(t testing.TB, n int, seed int64) (points.Set, distance.Table) {
	t.Helper()
	set, err := points.Generate(n, demoWidth, demoHeight, points.WithSeed(seed))
	require.NoError(t, err)

	return set, distance.Build(set)
}

// nearestNeighbour walks from 0 to the closest unvisited city (lowest id on
// ties) until all are visited, then returns to 0.
func nearestNeighbour(t *testing.T, table distance.Table, n int) ([]points.City, uint64) {
	t.Helper()
	var (
		tour    = make([]points.City, 0, n+1)
		visited = make([]bool, n)
		cur     points.City
		sum     uint64
	)
	tour = append(tour, 0)
	visited[0] = true
	for step := 1; step < n; step++ {
		var (
			best  uint64
			next  = -1
			d     uint64
			found bool
		)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d, found = table.Lookup(cur, points.City(j))
			require.True(t, found)
			if next < 0 || d < best {
				best, next = d, j
			}
		}
		visited[next] = true
		cur = points.City(next)
		tour = append(tour, cur)
		sum += best
	}
	back, ok := table.Lookup(cur, 0)
	require.True(t, ok)

	return append(tour, 0), sum + back
}

// bruteForce enumerates every permutation of 1..n-1 and returns the minimum
// closed-tour cost. Only for n ≤ 9.
func bruteForce(t *testing.T, table distance.Table, n int) uint64 {
	t.Helper()
	require.LessOrEqual(t, n, 9)

	rest := make([]points.City, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, points.City(i))
	}

	best := tsp.Unreachable
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(append([]points.City{0}, rest...), 0)
			c, err := tsp.TourCost(table, tour)
			require.NoError(t, err)
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// requireValidSolution asserts the permutation shape and the cost round trip.
func requireValidSolution(t *testing.T, table distance.Table, n int, sol tsp.Solution) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(sol.Path, n))
	c, err := tsp.TourCost(table, sol.Path)
	require.NoError(t, err)
	require.Equal(t, sol.Cost, c, "reported cost must equal the sum of path edges")
}
