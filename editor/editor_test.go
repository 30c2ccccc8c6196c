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


package editor

import (
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines/scene"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	sc := &scene.Scene{Width: 10, Height: 10, Scale: 1, Background: "white"}
	e, err := New(sc, "red")
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func render(t *testing.T, e *Editor) {
	t.Helper()
	if _, err := e.Render(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawLine(t *testing.T) {
	e := newTestEditor(t)
	render(t, e)

	e.BeginLine(vec.Vec2{X: 1, Y: 1})
	e.Move(vec.Vec2{X: 5, Y: 1})
	render(t, e)
	if got := e.Canvas().Img.RGBAAt(3, 1); got != rubberBandColor {
		t.Errorf("rubber band pixel = %v, want %v", got, rubberBandColor)
	}
	if len(e.Scene().Lines) != 0 {
		t.Errorf("line added before release")
	}

	e.EndLine(vec.Vec2{X: 5, Y: 1})
	render(t, e)
	if n := len(e.Scene().Lines); n != 1 {
		t.Fatalf("got %d lines, want 1", n)
	}
	l := e.Scene().Lines[0]
	if l.From != [2]float64{1, 1} || l.To != [2]float64{5, 1} || l.Color != "red" {
		t.Errorf("wrong line %v", l)
	}
	if got := e.Canvas().Img.RGBAAt(3, 1); got != red {
		t.Errorf("line pixel = %v, want %v", got, red)
	}
	if e.Notice() != "" {
		t.Errorf("unexpected notice %q", e.Notice())
	}
}

func TestRenderOnlyWhenChanged(t *testing.T) {
	e := newTestEditor(t)
	if redrawn, _ := e.Render(); !redrawn {
		t.Error("first Render did not draw")
	}
	if redrawn, _ := e.Render(); redrawn {
		t.Error("Render redrew an unchanged canvas")
	}
	e.Move(vec.Vec2{X: 3, Y: 3})
	if redrawn, _ := e.Render(); redrawn {
		t.Error("pointer movement without a drag caused a redraw")
	}
}

func TestPan(t *testing.T) {
	e := newTestEditor(t)
	e.BeginLine(vec.Vec2{X: 1, Y: 1})
	e.EndLine(vec.Vec2{X: 5, Y: 1})

	e.BeginPan(vec.Vec2{X: 0, Y: 0})
	e.Move(vec.Vec2{X: 1, Y: 2})
	e.Move(vec.Vec2{X: 2, Y: 3})
	e.EndPan()
	e.Move(vec.Vec2{X: 8, Y: 8})

	if got, want := e.Offset(), (vec.Vec2{X: 2, Y: 3}); got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}
	render(t, e)
	img := e.Canvas().Img
	if got := img.RGBAAt(5, 4); got != red {
		t.Errorf("shifted pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(3, 1); got != white {
		t.Errorf("old pixel = %v, want %v", got, white)
	}

	// new lines are stored in scene coordinates
	e.BeginLine(vec.Vec2{X: 2, Y: 3})
	e.EndLine(vec.Vec2{X: 2, Y: 8})
	l := e.Scene().Lines[1]
	if l.From != [2]float64{0, 0} || l.To != [2]float64{0, 5} {
		t.Errorf("wrong line %v", l)
	}
}

func TestOutsideNotice(t *testing.T) {
	e := newTestEditor(t)
	e.BeginLine(vec.Vec2{X: -20, Y: -20})
	e.EndLine(vec.Vec2{X: -10, Y: -30})
	if e.Notice() != OutsideMessage {
		t.Errorf("notice = %q, want %q", e.Notice(), OutsideMessage)
	}
	if len(e.Scene().Lines) != 1 {
		t.Error("rejected line was not kept in the scene")
	}

	e.BeginLine(vec.Vec2{X: 1, Y: 1})
	if e.Notice() != "" {
		t.Errorf("notice not cleared: %q", e.Notice())
	}
}

func TestClear(t *testing.T) {
	e := newTestEditor(t)
	e.BeginLine(vec.Vec2{X: 0, Y: 0})
	e.EndLine(vec.Vec2{X: 9, Y: 9})
	render(t, e)

	e.Clear()
	render(t, e)
	if len(e.Scene().Lines) != 0 {
		t.Error("lines left after Clear")
	}
	if got := e.Canvas().Img.RGBAAt(4, 4); got != white {
		t.Errorf("pixel = %v, want %v", got, white)
	}

	e.EndLine(vec.Vec2{X: 3, Y: 3})
	if len(e.Scene().Lines) != 0 {
		t.Error("EndLine without BeginLine added a line")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(&scene.Scene{Width: 10, Height: 10}, "no-such-color"); err == nil {
		t.Error("bad color accepted")
	}
	if _, err := New(&scene.Scene{Width: 0, Height: 10}, "red"); err == nil {
		t.Error("empty viewport accepted")
	}
}
