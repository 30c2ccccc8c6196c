// seehuhn.de/go/lines - clipped digital line drawing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package lines

import (
	"image"
	"image/color"
	"iter"
	"slices"
)

// Walk returns the pixels of the Bresenham line from (x0, y0) to (x1, y1),
// starting at (x0, y0) and ending at (x1, y1).
//
// This is the plain error-accumulator walk.  When the ideal line passes
// exactly between two pixels, the choice depends on the walking direction,
// so Walk(a, b) and Walk(b, a) can differ by such tie pixels.  AppendLine
// avoids this.
func Walk(x0, y0, x1, y1 int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		s := newStepper(x0, y0, x1, y1)
		for {
			if !yield(image.Point{X: s.x, Y: s.y}) {
				return
			}
			if s.done() {
				return
			}
			s.step()
		}
	}
}

// stepper holds the state of a Bresenham walk.
type stepper struct {
	x, y   int // current pixel
	x1, y1 int // last pixel
	dx, dy int // absolute extent
	sx, sy int // step direction, +1 or -1
	err    int // dx-dy plus the accumulated corrections
}

func newStepper(x0, y0, x1, y1 int) stepper {
	s := stepper{
		x: x0, y: y0,
		x1: x1, y1: y1,
		dx: abs(x1 - x0),
		dy: abs(y1 - y0),
		sx: -1,
		sy: -1,
	}
	if x0 < x1 {
		s.sx = 1
	}
	if y0 < y1 {
		s.sy = 1
	}
	s.err = s.dx - s.dy
	return s
}

func (s *stepper) done() bool {
	return s.x == s.x1 && s.y == s.y1
}

// step advances to the next pixel.  Both branches can fire in the same
// step, giving a diagonal move.
func (s *stepper) step() {
	e2 := 2 * s.err
	if e2 > -s.dy {
		s.err -= s.dy
		s.x += s.sx
	}
	if e2 < s.dx {
		s.err += s.dx
		s.y += s.sy
	}
}

// AppendLine appends the pixels of the digital line from (x0, y0) to
// (x1, y1) to dst and returns the extended slice.  The pixels are in walk
// order from (x0, y0) to (x1, y1), and both endpoints are included.
//
// The set of pixels does not depend on the direction: the line is always
// walked from the endpoint with the smaller x (or, for vertical lines, the
// smaller y), and reversed afterwards if needed.
func AppendLine(dst []image.Point, x0, y0, x1, y1 int) []image.Point {
	forward := x0 < x1 || x0 == x1 && y0 <= y1
	if !forward {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	start := len(dst)
	s := newStepper(x0, y0, x1, y1)
	for {
		dst = append(dst, image.Point{X: s.x, Y: s.y})
		if s.done() {
			break
		}
		s.step()
	}

	if !forward {
		slices.Reverse(dst[start:])
	}
	return dst
}

// Rasteriser draws clipped lines into a Sink.
// Internal buffers grow as needed but never shrink, so that drawing many
// lines with one Rasteriser does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Viewport is the visible pixel grid.  Pixels outside it are dropped.
	Viewport Viewport

	// Sink receives the pixels.
	Sink Sink

	pixels []image.Point
}

// NewRasteriser returns a Rasteriser drawing into sink, restricted to vp.
func NewRasteriser(vp Viewport, sink Sink) *Rasteriser {
	return &Rasteriser{
		Viewport: vp,
		Sink:     sink,
	}
}

// Line writes the pixels of the digital line from (x0, y0) to (x1, y1) to
// the sink, in walk order.  Pixels outside the viewport are silently
// dropped.
func (r *Rasteriser) Line(x0, y0, x1, y1 int, c color.Color) {
	r.pixels = AppendLine(r.pixels[:0], x0, y0, x1, y1)
	for _, p := range r.pixels {
		if !r.Viewport.Contains(p.X, p.Y) {
			continue
		}
		r.Sink.Plot(p.X, p.Y, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
