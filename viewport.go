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

	"seehuhn.de/go/geom/rect"
)

// ErrEmptyViewport is returned when a viewport has a non-positive size.
var ErrEmptyViewport = errors.New("viewport must have positive width and height")

// Viewport is the visible pixel grid [0, Width) × [0, Height).
// Pixel (0, 0) is the top-left corner and y grows downwards.
type Viewport struct {
	Width  int
	Height int
}

// Validate checks that the viewport has a positive width and height.
func (vp Viewport) Validate() error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", vp.Width, vp.Height, ErrEmptyViewport)
	}
	return nil
}

// Contains reports whether the pixel (x, y) lies inside the viewport.
func (vp Viewport) Contains(x, y int) bool {
	return x >= 0 && x < vp.Width && y >= 0 && y < vp.Height
}

// Rect returns the viewport as a device-space rectangle.
func (vp Viewport) Rect() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(vp.Width),
		URy: float64(vp.Height),
	}
}

// ViewportOf returns the viewport covered by an integer-aligned rectangle
// anchored at the origin.  Fractional sizes are truncated.
func ViewportOf(r rect.Rect) Viewport {
	return Viewport{
		Width:  int(r.URx - r.LLx),
		Height: int(r.URy - r.LLy),
	}
}
