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


// Package scene reads line drawings from Hjson files and renders them.
//
// A scene file looks like this:
//
//	{
//	  width: 320
//	  height: 240
//	  scale: 2
//	  background: white
//	  lines: [
//	    { from: [-20, -20], to: [100, 80], color: "red" }
//	    { from: [10, 200], to: [300, 200], color: "#3366ff" }
//	  ]
//	}
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hjson/hjson-go"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lines"
)

// Line is a single line of a scene, as stored in the file.
type Line struct {
	From  [2]float64 `json:"from"`
	To    [2]float64 `json:"to"`
	Color string     `json:"color"`
}

// Scene is a list of lines on a canvas of fixed size.
type Scene struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Scale      int    `json:"scale"`
	Background string `json:"background"`
	Lines      []Line `json:"lines"`
}

// Defaults for fields missing from a scene file.
const (
	DefaultWidth      = 200
	DefaultHeight     = 200
	DefaultBackground = "white"
	DefaultColor      = "black"
)

// Load reads a scene from an Hjson file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from Hjson data, fills in defaults and checks
// that all colors can be parsed.
func Parse(data []byte) (*Scene, error) {
	// hjson decodes into generic values; the JSON round trip maps these
	// onto the struct fields.
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	s := &Scene{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}

	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Scale == 0 {
		s.Scale = 1
	}
	if s.Background == "" {
		s.Background = DefaultBackground
	}
	if err := s.Viewport().Validate(); err != nil {
		return nil, err
	}
	if s.Scale < 0 {
		return nil, fmt.Errorf("scale %d: %w", s.Scale, errNegativeScale)
	}
	if _, err := ParseColor(s.Background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	for i := range s.Lines {
		if s.Lines[i].Color == "" {
			s.Lines[i].Color = DefaultColor
		}
		if _, err := ParseColor(s.Lines[i].Color); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	return s, nil
}

var errNegativeScale = errors.New("scale must not be negative")

// Viewport returns the visible area of the scene.
func (s *Scene) Viewport() lines.Viewport {
	return lines.Viewport{Width: s.Width, Height: s.Height}
}

// BackgroundColor returns the parsed background color.
func (s *Scene) BackgroundColor() color.RGBA {
	c, _ := ParseColor(s.Background)
	return c
}

// Add appends a line to the scene.
func (s *Scene) Add(seg lines.Segment, col string) {
	s.Lines = append(s.Lines, Line{
		From:  [2]float64{seg.P0.X, seg.P0.Y},
		To:    [2]float64{seg.P1.X, seg.P1.Y},
		Color: col,
	})
}

// Strokes returns the lines of the scene, shifted by offset.
// Lines with unparsable colors are drawn in black.
func (s *Scene) Strokes(offset vec.Vec2) []lines.Stroke {
	res := make([]lines.Stroke, len(s.Lines))
	for i, l := range s.Lines {
		col, err := ParseColor(l.Color)
		if err != nil {
			col = color.RGBA{A: 255}
		}
		seg := lines.Seg(l.From[0], l.From[1], l.To[0], l.To[1])
		res[i] = lines.Stroke{
			Segment: seg.Translate(offset),
			Color:   col,
		}
	}
	return res
}

// Render draws all lines of the scene, shifted by offset, in file order.
// It returns how many lines were at least partially visible and how many
// were rejected as lying entirely outside the viewport.
func (s *Scene) Render(r *lines.Rasteriser, offset vec.Vec2) (drawn, rejected int, err error) {
	strokes := s.Strokes(offset)
	drawn, err = r.DrawAll(strokes)
	if err != nil {
		return drawn, 0, err
	}
	return drawn, len(strokes) - drawn, nil
}
