// SPDX-License-Identifier: MIT
// Package: salesman/render
//
// scene.go - whole-frame compositions of a city set.
//
// Every scene clears the frame first, draws edges, then dots (and labels) on
// top, so dots are never hidden by lines.

package render

import (
	"fmt"
	"image"
	"strconv"

	"github.com/katalvlaran/salesman/points"
)

// Points draws every city as a dot.
func (c *Canvas) Points(set points.Set) {
	c.Clear()
	c.dots(set, image.Point{})
}

// Graph connects every pair of distinct cities, then draws the dots.
//
// Complexity: O(n² · line length).
func (c *Canvas) Graph(set points.Set) {
	c.Clear()
	c.graph(set, image.Point{})
}

// Tour draws the edges path[i]→path[i+1], then the dots.
// A path id missing from set ⇒ ErrUnknownCity and the frame is left cleared.
func (c *Canvas) Tour(set points.Set, path []points.City) error {
	c.Clear()
	if err := checkPath(set, path); err != nil {
		return err
	}
	c.tour(set, path, image.Point{})

	return nil
}

// Split draws Graph on the left half of the frame and Tour on the right
// half, shifted by half the frame width. Cities are expected to fit inside
// one half.
func (c *Canvas) Split(set points.Set, path []points.City) error {
	c.Clear()
	if err := checkPath(set, path); err != nil {
		return err
	}
	c.graph(set, image.Point{})
	c.tour(set, path, image.Point{X: c.img.Bounds().Dx() / 2})

	return nil
}

func (c *Canvas) graph(set points.Set, off image.Point) {
	ids := set.Sorted()
	for a := 0; a < len(ids); a++ {
		for b := a + 1; b < len(ids); b++ {
			c.drawLine(set[ids[a]], set[ids[b]], off)
		}
	}
	c.dots(set, off)
}

func (c *Canvas) tour(set points.Set, path []points.City, off image.Point) {
	for i := 0; i+1 < len(path); i++ {
		c.drawLine(set[path[i]], set[path[i+1]], off)
	}
	c.dots(set, off)
}

func (c *Canvas) dots(set points.Set, off image.Point) {
	for _, id := range set.Sorted() {
		p := set[id]
		c.drawDot(p, off)
		c.drawLabel(p, strconv.Itoa(int(id)), off)
	}
}

func checkPath(set points.Set, path []points.City) error {
	for i, id := range path {
		if _, ok := set[id]; !ok {
			return fmt.Errorf("path[%d]=%d: %w", i, id, ErrUnknownCity)
		}
	}

	return nil
}
