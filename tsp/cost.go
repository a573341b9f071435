// Package tsp - cost utilities.
//
// TourCost recomputes the cost of a closed tour from the distance table. It
// reproduces Solve's accumulation exactly (same table, same saturating
// addition), so Solve(...).Cost == TourCost(table, Solve(...).Path).
package tsp

import (
	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/points"
)

// TourCost sums d(tour[i], tour[i+1]) over consecutive entries.
//
// Contract:
//   - tour may be empty or a single entry (cost 0).
//   - Repeated consecutive ids cost 0 (d(i,i) == 0).
//   - An absent pair ⇒ distance.ErrMissingPair, wrapped with the pair.
//   - Sums saturate at Unreachable rather than wrap.
//
// Complexity: O(len(tour)).
func TourCost(table distance.Table, tour []points.City) (uint64, error) {
	var (
		sum uint64
		d   uint64
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		d, err = table.MustLookup(tour[i], tour[i+1])
		if err != nil {
			return 0, err
		}
		sum = SatAdd(sum, d)
	}

	return sum, nil
}
