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


// Package canvas provides an in-memory RGBA pixel surface for line
// drawings.
//
// A Canvas is a [lines.Sink], so rasterised lines can be drawn into it
// directly.  It is also a tinygo.org/x/drivers Displayer, which lets
// tinyfont render status text onto it.
package canvas

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"seehuhn.de/go/lines"
)

var (
	_ lines.Sink        = (*Canvas)(nil)
	_ drivers.Displayer = (*Canvas)(nil)
)

// Canvas is a pixel surface covering a viewport.
type Canvas struct {
	Img        *image.RGBA
	Background color.RGBA
}

// New allocates a canvas for vp, filled with the background color.
func New(vp lines.Viewport, bg color.RGBA) (*Canvas, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	c := &Canvas{
		Img:        image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height)),
		Background: bg,
	}
	c.Clear()
	return c, nil
}

// Viewport returns the viewport covered by the canvas.
func (c *Canvas) Viewport() lines.Viewport {
	b := c.Img.Bounds()
	return lines.Viewport{Width: b.Dx(), Height: b.Dy()}
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// Plot implements [lines.Sink].  Pixels outside the canvas are ignored.
func (c *Canvas) Plot(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.Img.Rect) {
		return
	}
	c.Img.Set(x, y, col)
}

// Size implements the drivers.Displayer interface.
func (c *Canvas) Size() (x, y int16) {
	b := c.Img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements the drivers.Displayer interface.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Plot(int(x), int(y), col)
}

// Display implements the drivers.Displayer interface.
// The canvas has no backing device, so this is a no-op.
func (c *Canvas) Display() error {
	return nil
}

// noticeFont is the font used by Notice.
var noticeFont = &proggy.TinySZ8pt7b

// Notice writes a one-line message in the top-left corner of the canvas.
// Text which does not fit is clipped like any other drawing.
func (c *Canvas) Notice(msg string, col color.RGBA) {
	const margin = 2
	y := int16(noticeFont.GetYAdvance())
	tinyfont.WriteLine(c, noticeFont, margin, y, msg, col)
}

// Scaled returns a copy of the canvas enlarged by an integer factor.
// Each canvas pixel becomes a scale×scale block.
func (c *Canvas) Scaled(scale int) *image.RGBA {
	if scale <= 1 {
		dst := image.NewRGBA(c.Img.Rect)
		copy(dst.Pix, c.Img.Pix)
		return dst
	}
	b := c.Img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.Img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the canvas, enlarged by scale, as a PNG image.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	return png.Encode(w, c.Scaled(scale))
}

// Preview writes a character-cell rendering of the canvas to w.
// Every cell which contains a non-background pixel is shown as '#', all
// others as '.'.  The canvas is downsampled so that at most cols
// characters are used per line.
func (c *Canvas) Preview(w io.Writer, cols int) error {
	b := c.Img.Bounds()
	step := 1
	if cols > 0 && b.Dx() > cols {
		step = (b.Dx() + cols - 1) / cols
	}

	out := bufio.NewWriter(w)
	line := make([]byte, 0, b.Dx()/step+2)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x += step {
			ch := byte('.')
			if c.inked(x, y, step) {
				ch = '#'
			}
			line = append(line, ch)
		}
		line = append(line, '\n')
		if _, err := out.Write(line); err != nil {
			return err
		}
	}
	return out.Flush()
}

// inked reports whether the step×step block at (x, y) contains a pixel
// which differs from the background.
func (c *Canvas) inked(x, y, step int) bool {
	cell := image.Rect(x, y, x+step, y+step).Intersect(c.Img.Rect)
	for yy := cell.Min.Y; yy < cell.Max.Y; yy++ {
		for xx := cell.Min.X; xx < cell.Max.X; xx++ {
			if c.Img.RGBAAt(xx, yy) != c.Background {
				return true
			}
		}
	}
	return false
}
