// SPDX-License-Identifier: MIT
// Package: salesman/render
//
// options.go - functional options for NewCanvas.
//
// Defaults: white background, black 10×10 dots,
// green edges, no labels.

package render

import "image/color"

const (
	defaultDotSize = 10
	minDotSize     = 1
)

var (
	defaultBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	defaultDotColor   = color.RGBA{A: 0xFF}
	defaultEdgeColor  = color.RGBA{G: 0xFF, A: 0xFF}
	defaultLabelColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// Option customizes a Canvas.
type Option func(*canvasConfig)

type canvasConfig struct {
	dotSize    int
	labels     bool
	background color.Color
	dot        color.Color
	edge       color.Color
	label      color.Color
}

// WithDotSize sets the side length of a city dot in pixels.
// Panics if size < 1.
func WithDotSize(size int) Option {
	if size < minDotSize {
		panic("render: WithDotSize(<1)")
	}
	return func(c *canvasConfig) {
		c.dotSize = size
	}
}

// WithLabels enables city id labels next to each dot.
func WithLabels(on bool) Option {
	return func(c *canvasConfig) {
		c.labels = on
	}
}

// WithColors overrides the palette. Nil entries keep the default.
func WithColors(background, dot, edge color.Color) Option {
	return func(c *canvasConfig) {
		if background != nil {
			c.background = background
		}
		if dot != nil {
			c.dot = dot
		}
		if edge != nil {
			c.edge = edge
		}
	}
}

func newCanvasConfig(opts ...Option) canvasConfig {
	cfg := canvasConfig{
		dotSize:    defaultDotSize,
		background: defaultBackground,
		dot:        defaultDotColor,
		edge:       defaultEdgeColor,
		label:      defaultLabelColor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
