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

	"golang.org/x/image/draw"
)

// Sink receives the pixels of rasterised lines.
// Implementations must ignore pixels outside their own bounds.
type Sink interface {
	Plot(x, y int, c color.Color)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(x, y int, c color.Color)

// Plot calls f(x, y, c).
func (f SinkFunc) Plot(x, y int, c color.Color) {
	f(x, y, c)
}

// ImageSink writes pixels into an image.
type ImageSink struct {
	Dst draw.Image
}

// Plot sets the pixel (x, y) of the image to c, if it is inside the
// image bounds.
func (s ImageSink) Plot(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(s.Dst.Bounds()) {
		return
	}
	s.Dst.Set(x, y, c)
}
