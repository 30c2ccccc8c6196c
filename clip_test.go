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
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestComputeOutCode(t *testing.T) {
	vp := Viewport{Width: 10, Height: 10}
	cases := []struct {
		x, y float64
		want OutCode
	}{
		{0, 0, Inside},
		{9.99, 9.99, Inside},
		{-0.01, 5, Left},
		{10, 5, Right},
		{5, -1, Top},
		{5, 10, Bottom},
		{-1, -1, Left | Top},
		{10, 10, Right | Bottom},
		{-1, 10, Left | Bottom},
		{10, -1, Right | Top},
	}
	for _, c := range cases {
		got := ComputeOutCode(c.x, c.y, vp)
		if got != c.want {
			t.Errorf("ComputeOutCode(%g, %g) = %s, want %s", c.x, c.y, got, c.want)
		}
	}
}

func TestOutCodeString(t *testing.T) {
	cases := map[OutCode]string{
		Inside:         "inside",
		Left:           "left",
		Top | Right:    "top|right",
		Bottom | Left:  "bottom|left",
		Top | Bottom:   "top|bottom",
		Right | Bottom: "bottom|right",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
	}
}

// TestClipScenarios checks a few hand-computed clipping results.
func TestClipScenarios(t *testing.T) {
	vp := Viewport{Width: 10, Height: 10}
	cases := []struct {
		name string
		in   Segment
		want Segment
		ok   bool
	}{
		{"origin", Seg(-5, -5, 5, 5), Seg(0, 0, 5, 5), true},
		{"right", Seg(20, 5, 30, 5), Segment{}, false},
		{"reversed", Seg(5, 5, -5, -5), Seg(5, 5, 0, 0), true},
		{"bottom", Seg(4, 4, 4, 40), Seg(4, 4, 4, 9), true},
		{"top_first", Seg(-5, -10, 15, 10), Seg(5, 0, 9, 4), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok, err := Clip(c.in, vp)
			if err != nil {
				t.Fatal(err)
			}
			if ok != c.ok {
				t.Fatalf("ok = %t, want %t", ok, c.ok)
			}
			if got != c.want {
				t.Errorf("Clip(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestClipInside(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	vp := Viewport{Width: 64, Height: 48}
	for range 1000 {
		s := Seg(
			float64(rng.IntN(vp.Width)), float64(rng.IntN(vp.Height)),
			float64(rng.IntN(vp.Width)), float64(rng.IntN(vp.Height)),
		)
		if c := ComputeOutCode(s.P0.X, s.P0.Y, vp) | ComputeOutCode(s.P1.X, s.P1.Y, vp); c != Inside {
			t.Fatalf("%v: outcode %s", s, c)
		}
		got, ok, err := Clip(s, vp)
		if err != nil || !ok {
			t.Fatalf("Clip(%v) = _, %t, %v", s, ok, err)
		}
		if got != s {
			t.Errorf("Clip(%v) = %v", s, got)
		}
	}
}

func TestClipSharedHalfPlane(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	vp := Viewport{Width: 20, Height: 30}

	// outside returns a random point in the given excluded half-plane.
	outside := func(side OutCode) vec.Vec2 {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		d := rng.Float64()*50 + 0.001
		switch side {
		case Left:
			x = -d
		case Right:
			x = float64(vp.Width) + d
		case Top:
			y = -d
		case Bottom:
			y = float64(vp.Height) + d
		}
		return vec.Vec2{X: x, Y: y}
	}

	for _, side := range []OutCode{Left, Right, Top, Bottom} {
		for range 500 {
			s := Segment{P0: outside(side), P1: outside(side)}
			_, ok, err := Clip(s, vp)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Errorf("%s: Clip(%v) accepted", side, s)
			}
		}
	}
}

// TestClipSingleCrossing checks segments which leave the viewport through
// exactly one edge.
func TestClipSingleCrossing(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	vp := Viewport{Width: 40, Height: 40}
	w, h := float64(vp.Width), float64(vp.Height)

	for range 1000 {
		x0 := float64(rng.IntN(30) + 5)
		y0 := float64(rng.IntN(30) + 5)

		// right edge
		x1 := w + float64(rng.IntN(20))
		y1 := float64(rng.IntN(30) + 5)
		got, ok, err := Clip(Seg(x0, y0, x1, y1), vp)
		if err != nil || !ok {
			t.Fatalf("right: Clip = _, %t, %v", ok, err)
		}
		wantY := roundHalfUp(y0 + (y1-y0)*(w-1-x0)/(x1-x0))
		if got.P0 != (vec.Vec2{X: x0, Y: y0}) || got.P1 != (vec.Vec2{X: w - 1, Y: wantY}) {
			t.Errorf("right: Clip(%g,%g,%g,%g) = %v", x0, y0, x1, y1, got)
		}

		// top edge, with the outside point first
		x1 = float64(rng.IntN(30) + 5)
		y1 = -1 - float64(rng.IntN(20))
		got, ok, err = Clip(Seg(x1, y1, x0, y0), vp)
		if err != nil || !ok {
			t.Fatalf("top: Clip = _, %t, %v", ok, err)
		}
		wantX := roundHalfUp(x1 + (x0-x1)*(0-y1)/(y0-y1))
		if got.P0 != (vec.Vec2{X: wantX, Y: 0}) || got.P1 != (vec.Vec2{X: x0, Y: y0}) {
			t.Errorf("top: Clip(%g,%g,%g,%g) = %v", x1, y1, x0, y0, got)
		}

		// bottom edge
		y1 = h + float64(rng.IntN(20))
		got, ok, err = Clip(Seg(x0, y0, x1, y1), vp)
		if err != nil || !ok {
			t.Fatalf("bottom: Clip = _, %t, %v", ok, err)
		}
		if got.P1.Y != h-1 {
			t.Errorf("bottom: Clip(%g,%g,%g,%g) = %v", x0, y0, x1, y1, got)
		}
	}
}

// TestClipRange checks that clipped endpoints never lie more than one
// unit beyond the last pixel, for arbitrary real input.
func TestClipRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	vp := Viewport{Width: 17, Height: 9}
	w, h := float64(vp.Width), float64(vp.Height)
	for range 5000 {
		s := Seg(
			rng.Float64()*60-20, rng.Float64()*40-15,
			rng.Float64()*60-20, rng.Float64()*40-15,
		)
		got, ok, err := Clip(s, vp)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			continue
		}
		for _, p := range []vec.Vec2{got.P0, got.P1} {
			if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
				t.Errorf("Clip(%v) = %v: endpoint out of range", s, got)
			}
			if p.X != math.Trunc(p.X) || p.Y != math.Trunc(p.Y) {
				t.Errorf("Clip(%v) = %v: not rounded", s, got)
			}
		}
	}
}

func TestClipErrors(t *testing.T) {
	vp := Viewport{Width: 10, Height: 10}
	bad := []Segment{
		Seg(math.NaN(), 0, 1, 1),
		Seg(0, math.Inf(1), 1, 1),
		Seg(0, 0, math.Inf(-1), 1),
		Seg(0, 0, 1, math.NaN()),
	}
	for _, s := range bad {
		_, ok, err := Clip(s, vp)
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("Clip(%v): err = %v, want ErrNonFinite", s, err)
		}
		if ok {
			t.Errorf("Clip(%v) accepted", s)
		}
	}

	_, _, err := Clip(Seg(0, 0, 1, 1), Viewport{Width: 0, Height: 5})
	if !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("empty viewport: err = %v", err)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-2.5, -2},
		{-2.51, -3},
		{9.6, 10},
	}
	for _, c := range cases {
		if got := roundHalfUp(c.in); got != c.want {
			t.Errorf("roundHalfUp(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}
