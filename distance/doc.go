// SPDX-License-Identifier: MIT
// Package distance builds the symmetric pairwise cost table consumed by the
// Held–Karp solver.
//
// The cost of an edge is the squared Euclidean distance between two cities:
//
//	d(i,j) = (xi−xj)² + (yi−yj)²
//
// Squared distances keep everything in exact integer arithmetic. Values are
// held as uint64; a sum that does not fit saturates at math.MaxUint64, which
// the solver reads as an unreachable edge.
//
// Storage is keyed by an unordered pair. MakeKey puts the smaller identifier
// first, so (i,j) and (j,i) hit the same entry and only one is stored.
//
// Complexity: Build is O(n²) time and space; Lookup is O(1).
package distance
