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


// Package lines draws straight line segments onto a pixel grid.
//
// Segments are first clipped to a [Viewport] with the Cohen-Sutherland
// algorithm ([Clip]) and then rasterised with the integer Bresenham
// algorithm ([Rasteriser.Line]).  Pixels are delivered to a caller-supplied
// [Sink].
package lines

import "image/color"

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

// Stroke is a segment together with the color used to draw it.
type Stroke struct {
	Segment
	Color color.Color
}

// Draw clips s to the viewport of r and draws the visible part.
// The return value visible is false if no part of s lies inside the
// viewport; this is not an error.
func (r *Rasteriser) Draw(s Segment, c color.Color) (visible bool, err error) {
	clipped, ok, err := Clip(s, r.Viewport)
	if err != nil || !ok {
		return false, err
	}
	x0, y0, x1, y1 := clipped.Ints()
	r.Line(x0, y0, x1, y1, c)
	return true, nil
}

// DrawAll draws the strokes in order, so that later strokes overwrite
// earlier ones where they cross.  It returns the number of strokes which
// were at least partially visible.  Drawing stops at the first invalid
// stroke.
func (r *Rasteriser) DrawAll(strokes []Stroke) (drawn int, err error) {
	for _, s := range strokes {
		visible, err := r.Draw(s.Segment, s.Color)
		if err != nil {
			return drawn, err
		}
		if visible {
			drawn++
		}
	}
	return drawn, nil
}
