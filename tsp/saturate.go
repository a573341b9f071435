package tsp

import "golang.org/x/exp/constraints"

// SatAdd returns a+b, clamped to the maximum value of T instead of wrapping.
// With the maximum as an "unreachable" sentinel, SatAdd(sentinel, x) and
// SatAdd(x, sentinel) both stay at the sentinel.
//
// Complexity: O(1).
func SatAdd[T constraints.Unsigned](a, b T) T {
	s := a + b
	if s < a {
		return ^T(0)
	}
	return s
}
