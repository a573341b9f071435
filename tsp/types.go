package tsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/salesman/points"
)

// Unreachable marks a DP state with no valid predecessor.
const Unreachable uint64 = math.MaxUint64

var (
	// ErrInvalidCount is returned for a negative city count.
	ErrInvalidCount = errors.New("tsp: invalid city count")

	// ErrTooManyCities is returned when n exceeds the configured limit.
	ErrTooManyCities = errors.New("tsp: too many cities for exact solve")

	// ErrNoTour is returned when every closing state is Unreachable.
	ErrNoTour = errors.New("tsp: no Hamiltonian cycle")

	// ErrInvalidTour is returned by ValidateTour for a malformed closed tour.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// Solution holds the outcome of Solve.
type Solution struct {
	// Path is the visiting order, starting and ending at city 0.
	// For n ≥ 1 cities, len(Path) == n+1.
	Path []points.City

	// Cost is the sum of edge costs along Path.
	Cost uint64
}
