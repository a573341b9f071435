// SPDX-License-Identifier: MIT
// Package: salesman/render
//
// canvas.go - pixel buffer, dots, lines and labels.

package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/salesman/points"
)

const labelFontSize = 12

var (
	// ErrBadSize indicates a non-positive canvas dimension.
	ErrBadSize = errors.New("render: invalid canvas size")

	// ErrUnknownCity indicates a path references a city absent from the set.
	ErrUnknownCity = errors.New("render: unknown city")
)

// Canvas is a white RGBA frame that scenes draw into.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	cfg  canvasConfig
	face font.Face // nil unless labels are enabled
}

// NewCanvas allocates a width×height frame filled with the background colour.
func NewCanvas(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewCanvas: %dx%d: %w", width, height, ErrBadSize)
	}
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		cfg: newCanvasConfig(opts...),
	}
	if c.cfg.labels {
		face, err := newLabelFace()
		if err != nil {
			return nil, fmt.Errorf("NewCanvas: %w", err)
		}
		c.face = face
	}
	c.Clear()

	return c, nil
}

// newLabelFace loads the embedded Go Regular font at labelFontSize.
func newLabelFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image exposes the underlying buffer; callers must not retain it across
// further drawing if they need a stable snapshot.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the frame rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Clear fills the frame with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.cfg.background), image.Point{}, draw.Src)
}

// DrawDot stamps a dotSize×dotSize square with its top-left corner at p.
// The part outside the frame is clipped.
func (c *Canvas) DrawDot(p points.Point) {
	c.drawDot(p, image.Point{})
}

// DrawLine draws an edge between the dot centres of a and b.
func (c *Canvas) DrawLine(a, b points.Point) {
	c.drawLine(a, b, image.Point{})
}

// DrawLabel writes text to the right of the dot at p. It is a no-op unless
// the canvas was built WithLabels(true).
func (c *Canvas) DrawLabel(p points.Point, text string) {
	c.drawLabel(p, text, image.Point{})
}

// EncodePNG writes the frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) drawDot(p points.Point, off image.Point) {
	var (
		x0 = int(p.X) + off.X
		y0 = int(p.Y) + off.Y
		r  = image.Rect(x0, y0, x0+c.cfg.dotSize, y0+c.cfg.dotSize)
	)
	// draw.Draw clips r to the destination bounds.
	draw.Draw(c.img, r, image.NewUniform(c.cfg.dot), image.Point{}, draw.Src)
}

// centre returns the pixel at the middle of the dot anchored at p.
func (c *Canvas) centre(p points.Point, off image.Point) image.Point {
	half := c.cfg.dotSize / 2

	return image.Point{X: int(p.X) + half + off.X, Y: int(p.Y) + half + off.Y}
}

// drawLine rasterizes the segment between two dot centres with Bresenham's
// integer algorithm. Each step also sets the pixel to its left, giving a
// two-pixel stroke.
//
// Complexity: O(max(|dx|, |dy|)).
func (c *Canvas) drawLine(a, b points.Point, off image.Point) {
	var (
		p0  = c.centre(a, off)
		p1  = c.centre(b, off)
		x0  = p0.X
		y0  = p0.Y
		dx  = abs(p1.X - x0)
		dy  = -abs(p1.Y - y0)
		sx  = 1
		sy  = 1
		err = dx + dy
		e2  int
		col = c.cfg.edge
	)
	if x0 > p1.X {
		sx = -1
	}
	if y0 > p1.Y {
		sy = -1
	}
	for {
		// Set ignores pixels outside the frame.
		c.img.Set(x0-1, y0, col)
		c.img.Set(x0, y0, col)
		e2 = 2 * err
		if e2 >= dy {
			if x0 == p1.X {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == p1.Y {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) drawLabel(p points.Point, text string, off image.Point) {
	if c.face == nil {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.cfg.label),
		Face: c.face,
		Dot:  fixed.P(int(p.X)+c.cfg.dotSize+2+off.X, int(p.Y)+c.cfg.dotSize+off.Y),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
