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

import "strings"

// OutCode records on which sides of a viewport a point lies.
// At most one of Left/Right and at most one of Top/Bottom is set.
type OutCode uint8

// Region bits of an OutCode.  Top is the y < 0 side, since pixel rows are
// numbered from the top of the viewport.
const (
	Inside OutCode = 0
	Left   OutCode = 1
	Right  OutCode = 2
	Bottom OutCode = 4
	Top    OutCode = 8
)

// ComputeOutCode returns the region code of (x, y) relative to vp.
//
// The bounds are half-open: x == vp.Width is already to the right.  The
// right and bottom tests only run when the left and top tests fail.
func ComputeOutCode(x, y float64, vp Viewport) OutCode {
	code := Inside
	if x < 0 {
		code |= Left
	} else if x >= float64(vp.Width) {
		code |= Right
	}
	if y < 0 {
		code |= Top
	} else if y >= float64(vp.Height) {
		code |= Bottom
	}
	return code
}

// String lists the set bits, for example "top|left".
func (c OutCode) String() string {
	if c == Inside {
		return "inside"
	}
	var parts []string
	if c&Top != 0 {
		parts = append(parts, "top")
	}
	if c&Bottom != 0 {
		parts = append(parts, "bottom")
	}
	if c&Right != 0 {
		parts = append(parts, "right")
	}
	if c&Left != 0 {
		parts = append(parts, "left")
	}
	return strings.Join(parts, "|")
}
