package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/points"
)

// noParent marks a parent cell with no recorded predecessor.
const noParent int8 = -1

// Solve computes a minimum-cost Hamiltonian cycle over cities 0..n-1 that
// starts and ends at city 0, using the Held–Karp dynamic program.
//
// It returns a Solution containing:
//   - Path: n+1 city ids, Path[0] == Path[n] == 0.
//   - Cost: total cycle cost, equal to TourCost(table, Path).
//
// Degenerate sizes skip the DP: n == 0 gives an empty Path, n == 1 gives
// [0, 0]; both cost 0.
//
// Preconditions are checked before any table is allocated:
//   - n < 0                    ⇒ ErrInvalidCount
//   - n > configured maximum   ⇒ ErrTooManyCities (see WithMaxCities)
//   - TableBytes(n) > budget   ⇒ ErrTooManyCities (see WithMaxTableBytes)
//   - a pair in [0,n) missing  ⇒ distance.ErrMissingPair
//
// ErrNoTour is returned only if every closing state stays Unreachable.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// State (mask, last) lives at index mask*n + last of one flat buffer.
// cost[mask][last] = minimum cost to start at 0, visit exactly the cities in
// mask (bit 0 always set), and end at last.
//
// Masks are visited in increasing numeric order. mask ^ 1<<last is smaller
// than mask, so every predecessor state is final by the time it is read and a
// single forward pass suffices.
//
// Ties keep the lowest predecessor id (strict <), so the Path is a pure
// function of (table, n).
func Solve(table distance.Table, n int, opts ...Option) (Solution, error) {
	cfg := newConfig(opts...)

	// --- 1. Preconditions ---
	if n < 0 {
		return Solution{}, fmt.Errorf("Solve: n=%d: %w", n, ErrInvalidCount)
	}
	if n > cfg.maxCities {
		return Solution{}, fmt.Errorf("Solve: n=%d > max=%d: %w", n, cfg.maxCities, ErrTooManyCities)
	}
	if need := TableBytes(n); need > cfg.maxBytes {
		return Solution{}, fmt.Errorf("Solve: n=%d needs %d bytes > budget %d: %w", n, need, cfg.maxBytes, ErrTooManyCities)
	}
	switch n {
	case 0:
		return Solution{Path: []points.City{}}, nil
	case 1:
		return Solution{Path: []points.City{0, 0}}, nil
	}
	if err := table.Validate(n); err != nil {
		return Solution{}, fmt.Errorf("Solve: %w", err)
	}

	// --- 2. Dense copy of the edge costs for the inner loop ---
	dist := denseCosts(table, n)

	// --- 3. Allocate cost and parent tables ---
	var (
		size    = 1 << n
		allMask = size - 1
		cost    = make([]uint64, size*n)
		parent  = make([]int8, size*n)
		i       int
	)
	for i = range cost {
		cost[i] = Unreachable
		parent[i] = noParent
	}
	// Base case: only city 0 visited, standing at 0.
	cost[1*n+0] = 0

	// --- 4. Fill states for every mask containing city 0 ---
	var (
		mask, prevMask int
		last, prev     int
		row, prevRow   int
		best, cand     uint64
		bestPrev       int8
	)
	// Odd masks are exactly those containing bit 0.
	for mask = 3; mask <= allMask; mask += 2 {
		row = mask * n
		for last = 1; last < n; last++ {
			if mask&(1<<last) == 0 {
				continue // last not in subset
			}
			prevMask = mask ^ (1 << last)
			prevRow = prevMask * n
			best = Unreachable
			bestPrev = noParent
			for prev = 0; prev < n; prev++ {
				if prev == last || prevMask&(1<<prev) == 0 {
					continue // prev not in the predecessor subset
				}
				cand = SatAdd(cost[prevRow+prev], dist[prev*n+last])
				if cand < best {
					best = cand
					bestPrev = int8(prev)
				}
			}
			cost[row+last] = best
			parent[row+last] = bestPrev
		}
	}

	// --- 5. Close the tour by returning to 0 ---
	var (
		bestCost = Unreachable
		lastCity = -1
		total    uint64
	)
	row = allMask * n
	for last = 1; last < n; last++ {
		total = SatAdd(cost[row+last], dist[last*n])
		if total < bestCost {
			bestCost = total
			lastCity = last
		}
	}
	if lastCity < 0 {
		return Solution{}, ErrNoTour
	}

	// --- 6. Walk parents back from (allMask, lastCity) ---
	path, err := reconstruct(parent, n, allMask, lastCity)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Path: path, Cost: bestCost}, nil
}

// reconstruct follows parent pointers from (mask, last) to the base state and
// returns the closed tour 0 → … → last → 0.
//
// Complexity: O(n).
func reconstruct(parent []int8, n, mask, last int) ([]points.City, error) {
	var (
		path = make([]points.City, n+1)
		pos  = n - 1
		city = last
		p    int8
	)
	// Emit cities from the end of the open path towards city 0.
	for city != 0 {
		if pos < 1 {
			return nil, fmt.Errorf("reconstruct: chain longer than %d: %w", n-1, ErrNoTour)
		}
		path[pos] = points.City(city)
		pos--
		p = parent[mask*n+city]
		if p == noParent {
			return nil, fmt.Errorf("reconstruct: no parent for city %d: %w", city, ErrNoTour)
		}
		mask ^= 1 << city
		city = int(p)
	}
	if pos != 0 || mask != 1 {
		return nil, fmt.Errorf("reconstruct: chain stopped at %d of %d: %w", pos, n, ErrNoTour)
	}
	path[0] = 0
	path[n] = 0

	return path, nil
}

// denseCosts copies a validated table into a flat n×n buffer (zero diagonal)
// so the O(n²·2ⁿ) loop indexes memory instead of hashing pair keys.
//
// Complexity: O(n²).
func denseCosts(table distance.Table, n int) []uint64 {
	var (
		d    = make([]uint64, n*n)
		i, j int
		c    uint64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c, _ = table.Lookup(points.City(i), points.City(j)) // presence checked by Validate
			d[i*n+j] = c
			d[j*n+i] = c
		}
	}

	return d
}
