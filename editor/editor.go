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


// Package editor implements an interactive line editor, independent of
// any windowing library.
//
// The editor keeps a [scene.Scene] and a pan offset.  Pointer events,
// given in canvas pixels, add lines to the scene or move the view, and
// [Editor.Render] redraws the canvas when something changed.
package editor

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/canvas"
	"seehuhn.de/go/lines/scene"
)

// OutsideMessage is shown on the canvas when a new line is not visible.
const OutsideMessage = "line entirely outside the visible area"

var (
	rubberBandColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	noticeColor     = color.RGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff}
)

// Editor holds the state of the line editor.
type Editor struct {
	sc  *scene.Scene
	cv  *canvas.Canvas
	r   *lines.Rasteriser
	pan scene.Pan

	color string

	drawing    bool
	start, end vec.Vec2 // rubber band, in scene coordinates

	notice string
	dirty  bool
}

// New creates an editor for the given scene.  New lines are drawn in
// color col.
func New(sc *scene.Scene, col string) (*Editor, error) {
	if _, err := scene.ParseColor(col); err != nil {
		return nil, err
	}
	cv, err := canvas.New(sc.Viewport(), sc.BackgroundColor())
	if err != nil {
		return nil, err
	}
	e := &Editor{
		sc:    sc,
		cv:    cv,
		r:     lines.NewRasteriser(sc.Viewport(), cv),
		color: col,
		dirty: true,
	}
	return e, nil
}

// Canvas returns the canvas the editor draws on.
func (e *Editor) Canvas() *canvas.Canvas {
	return e.cv
}

// Scene returns the scene being edited.
func (e *Editor) Scene() *scene.Scene {
	return e.sc
}

// Offset returns the current pan offset.
func (e *Editor) Offset() vec.Vec2 {
	return e.pan.Offset
}

// Notice returns the message currently shown on the canvas, if any.
func (e *Editor) Notice() string {
	return e.notice
}

// toScene converts a canvas position to scene coordinates.
func (e *Editor) toScene(pos vec.Vec2) vec.Vec2 {
	return pos.Sub(e.pan.Offset)
}

// BeginLine starts a new line at the pointer position.
func (e *Editor) BeginLine(pos vec.Vec2) {
	e.drawing = true
	e.start = e.toScene(pos)
	e.end = e.start
	e.notice = ""
	e.dirty = true
}

// EndLine adds the rubber-band line to the scene.
func (e *Editor) EndLine(pos vec.Vec2) {
	if !e.drawing {
		return
	}
	e.drawing = false
	e.end = e.toScene(pos)
	seg := lines.Segment{P0: e.start, P1: e.end}
	e.sc.Add(seg, e.color)

	_, ok, err := lines.Clip(seg.Translate(e.pan.Offset), e.sc.Viewport())
	if err == nil && !ok {
		e.notice = OutsideMessage
	}
	e.dirty = true
}

// BeginPan starts moving the scene with the pointer.
func (e *Editor) BeginPan(pos vec.Vec2) {
	e.pan.Begin(pos)
}

func (e *Editor) EndPan() {
	e.pan.End()
}

// Move handles pointer movement.
func (e *Editor) Move(pos vec.Vec2) {
	if e.pan.Move(pos) {
		e.dirty = true
	}
	if e.drawing {
		end := e.toScene(pos)
		if end != e.end {
			e.end = end
			e.dirty = true
		}
	}
}

// Clear removes all lines.
func (e *Editor) Clear() {
	e.sc.Lines = e.sc.Lines[:0]
	e.drawing = false
	e.notice = ""
	e.dirty = true
}

// Render redraws the canvas if anything changed.  It reports whether the
// canvas was redrawn.
func (e *Editor) Render() (bool, error) {
	if !e.dirty {
		return false, nil
	}
	e.dirty = false

	e.cv.Clear()
	if _, _, err := e.sc.Render(e.r, e.pan.Offset); err != nil {
		return true, err
	}
	if e.drawing {
		seg := lines.Segment{P0: e.start, P1: e.end}.Translate(e.pan.Offset)
		if _, err := e.r.Draw(seg, rubberBandColor); err != nil {
			return true, err
		}
	}
	if e.notice != "" {
		e.cv.Notice(e.notice, noticeColor)
	}
	return true, nil
}
