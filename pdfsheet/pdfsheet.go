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


// Package pdfsheet records rasterised pixels and writes them to PDF.
//
// Every pixel becomes a filled unit square, so that the digital line can
// be inspected at any zoom level.  The ideal, unclipped segments can be
// drawn on top for comparison.
package pdfsheet

import (
	"image/color"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lines"
)

// Pixel is a single recorded pixel.
type Pixel struct {
	X, Y  int
	Color color.Color
}

// Recorder is a [lines.Sink] which remembers every pixel, in plot order.
type Recorder struct {
	Pixels []Pixel
}

// Plot implements [lines.Sink].
func (r *Recorder) Plot(x, y int, c color.Color) {
	r.Pixels = append(r.Pixels, Pixel{X: x, Y: y, Color: c})
}

// Reset discards all recorded pixels, keeping the allocated memory.
func (r *Recorder) Reset() {
	r.Pixels = r.Pixels[:0]
}

// Sheet describes the layout of a PDF page showing a pixel grid.
type Sheet struct {
	Viewport lines.Viewport

	// Scale is the size of one pixel in PDF points.
	// Zero means 1.
	Scale float64

	// Background fills the viewport before the pixels are drawn.
	// Nil leaves the page blank.
	Background color.Color

	// Overlay segments are stroked on top of the pixels, through the
	// pixel centres.
	Overlay []lines.Segment

	// OverlayColor is the stroke color of the overlay.
	// Nil means red.
	OverlayColor color.Color
}

// Write writes a single-page PDF file showing the pixels to w.
// Pixels are painted in order, so later pixels cover earlier ones.
func (s *Sheet) Write(w io.Writer, pixels []Pixel) error {
	if err := s.Viewport.Validate(); err != nil {
		return err
	}
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	width := float64(s.Viewport.Width)
	height := float64(s.Viewport.Height)

	paper := &pdf.Rectangle{
		URx: width * scale,
		URy: height * scale,
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; pixel rows count from the top.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, height * scale})

	if s.Background != nil {
		page.SetFillColor(toPDF(s.Background))
		page.Rectangle(0, 0, width, height)
		page.Fill()
	}

	var last color.Color
	for _, p := range pixels {
		if !s.Viewport.Contains(p.X, p.Y) {
			continue
		}
		if p.Color != last {
			page.SetFillColor(toPDF(p.Color))
			last = p.Color
		}
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		page.Fill()
	}

	if len(s.Overlay) > 0 {
		c := s.OverlayColor
		if c == nil {
			c = color.RGBA{R: 255, A: 255}
		}
		page.SetStrokeColor(toPDF(c))
		page.SetLineWidth(0.1)
		for _, seg := range s.Overlay {
			page.MoveTo(seg.P0.X+0.5, seg.P0.Y+0.5)
			page.LineTo(seg.P1.X+0.5, seg.P1.Y+0.5)
		}
		page.Stroke()
	}

	return page.Close()
}

// toPDF converts a Go color to a DeviceRGB color.  Alpha is ignored.
func toPDF(c color.Color) pdfcolor.Color {
	r, g, b, _ := c.RGBA()
	return pdfcolor.DeviceRGB(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}
