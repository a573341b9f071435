// Package salesman finds exact travelling-salesman tours for small planar
// instances and draws them.
//
// What is salesman?
//
//	A small pure-Go toolkit built around the Held–Karp dynamic program:
//		• Point generation: unique random integer coordinates, seedable
//		• Distance table: squared Euclidean cost per unordered city pair
//		• Exact solver: Held–Karp over bitmask subsets, O(n²·2ⁿ)
//		• Rendering: dots, Bresenham edges and labels to PNG
//
// Everything is organized under these subpackages:
//
//	points/       — City, Point, Set and the rejection-sampling generator
//	distance/     — canonical pair keys and the squared-distance Table
//	tsp/          — Solve, ValidateTour, TourCost, SatAdd
//	render/       — Canvas with Points, Graph, Tour and Split scenes
//	cmd/salesman/ — command-line front end
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	10×10 square: the optimal tour 0 → 1 → 2 → 3 → 0 costs 4·10² = 400.
//
//	go install github.com/katalvlaran/salesman/cmd/salesman@latest
package salesman
