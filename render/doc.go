// SPDX-License-Identifier: MIT
// Package render rasterizes city layouts and tours into an RGBA image and
// encodes them as PNG.
//
// A Canvas owns one pixel buffer. Cities are stamped as square dots whose
// top-left corner is the city coordinate; edges are Bresenham lines between
// dot centres, thickened by one pixel. Scenes combine the two:
//
//   - Points: dots only.
//   - Graph:  every pair of cities connected, then dots on top.
//   - Tour:   consecutive path edges, then dots on top.
//   - Split:  Graph on the left half, Tour on the right half.
//
// Everything outside the canvas is clipped silently. The package never logs.
//
//	c, _ := render.NewCanvas(900, 600, render.WithLabels(true))
//	_ = c.Tour(set, sol.Path)
//	_ = c.EncodePNG(f)
package render
