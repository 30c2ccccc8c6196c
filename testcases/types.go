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


package testcases

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single line drawing test.
type TestCase struct {
	Name   string   // lowercase a-z, 0-9 and _ only
	Width  int      // viewport width in pixels
	Height int      // viewport height in pixels
	From   vec.Vec2 // first endpoint, before clipping
	To     vec.Vec2 // second endpoint, before clipping

	// Visible is false if the clipper rejects the segment.
	Visible bool

	// Want lists the pixels written to the sink, in walk order from the
	// (clipped) first endpoint.  Pixels outside the viewport are omitted.
	Want []image.Point
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// px builds a pixel list from alternating x and y coordinates.
func px(coords ...int) []image.Point {
	res := make([]image.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, image.Point{X: coords[i], Y: coords[i+1]})
	}
	return res
}

// hline returns the pixels of a horizontal run from x0 to x1 at height y.
func hline(x0, x1, y int) []image.Point {
	step := 1
	if x1 < x0 {
		step = -1
	}
	var res []image.Point
	for x := x0; ; x += step {
		res = append(res, image.Point{X: x, Y: y})
		if x == x1 {
			return res
		}
	}
}

// vline returns the pixels of a vertical run from y0 to y1 at column x.
func vline(x, y0, y1 int) []image.Point {
	step := 1
	if y1 < y0 {
		step = -1
	}
	var res []image.Point
	for y := y0; ; y += step {
		res = append(res, image.Point{X: x, Y: y})
		if y == y1 {
			return res
		}
	}
}
