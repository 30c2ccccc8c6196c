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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrNonFinite is returned when a segment has a NaN or infinite coordinate.
var ErrNonFinite = errors.New("coordinate is not finite")

// maxClipIterations bounds the refinement loop in Clip.  Every iteration
// moves one endpoint onto a viewport edge, so four iterations suffice for
// well-formed input.
const maxClipIterations = 16

// Segment is a directed line segment from P0 to P1.
type Segment struct {
	P0, P1 vec.Vec2
}

// Seg returns the segment from (x0, y0) to (x1, y1).
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{
		P0: vec.Vec2{X: x0, Y: y0},
		P1: vec.Vec2{X: x1, Y: y1},
	}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// Translate returns the segment shifted by d.
func (s Segment) Translate(d vec.Vec2) Segment {
	return Segment{P0: s.P0.Add(d), P1: s.P1.Add(d)}
}

// Ints returns the endpoint coordinates converted to integers.
// The coordinates are truncated; use this on the output of Clip,
// which is already rounded.
func (s Segment) Ints() (x0, y0, x1, y1 int) {
	return int(s.P0.X), int(s.P0.Y), int(s.P1.X), int(s.P1.Y)
}

// check returns an error if any coordinate of s is NaN or infinite.
func (s Segment) check() error {
	for _, v := range [...]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("segment %v: %w", s, ErrNonFinite)
		}
	}
	return nil
}

// Clip returns the part of s which is visible in vp, using the
// Cohen-Sutherland algorithm.  The endpoints of the result are rounded to
// the nearest integer and keep the direction of s.  If no part of s is
// visible, ok is false.
//
// Outside endpoints are moved onto the edges y = 0, y = vp.Height-1,
// x = vp.Width-1 and x = 0, tested in this order.  Since rounding happens
// after clipping, an endpoint of the result can lie one unit beyond the
// last pixel row or column; Rasteriser drops such pixels.
func Clip(s Segment, vp Viewport) (clipped Segment, ok bool, err error) {
	if err := vp.Validate(); err != nil {
		return Segment{}, false, err
	}
	if err := s.check(); err != nil {
		return Segment{}, false, err
	}

	x0, y0 := s.P0.X, s.P0.Y
	x1, y1 := s.P1.X, s.P1.Y
	code0 := ComputeOutCode(x0, y0, vp)
	code1 := ComputeOutCode(x1, y1, vp)

	xMax := float64(vp.Width - 1)
	yMax := float64(vp.Height - 1)

	for range maxClipIterations {
		if code0|code1 == Inside {
			clipped = Segment{
				P0: vec.Vec2{X: roundHalfUp(x0), Y: roundHalfUp(y0)},
				P1: vec.Vec2{X: roundHalfUp(x1), Y: roundHalfUp(y1)},
			}
			return clipped, true, nil
		}
		if code0&code1 != 0 {
			return Segment{}, false, nil
		}

		out := code0
		if out == Inside {
			out = code1
		}

		var x, y float64
		switch {
		case out&Top != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&Bottom != 0:
			x = x0 + (x1-x0)*(yMax-y0)/(y1-y0)
			y = yMax
		case out&Right != 0:
			y = y0 + (y1-y0)*(xMax-x0)/(x1-x0)
			x = xMax
		case out&Left != 0:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}

		if out == code0 {
			x0, y0 = x, y
			code0 = ComputeOutCode(x0, y0, vp)
		} else {
			x1, y1 = x, y
			code1 = ComputeOutCode(x1, y1, vp)
		}
	}

	// The outcodes did not converge.
	return Segment{}, false, nil
}

// roundHalfUp rounds x to the nearest integer, with halves rounded
// towards positive infinity.  Unlike math.Round, -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
