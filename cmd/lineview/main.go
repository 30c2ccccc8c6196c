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


// Command lineview is an interactive line editor.
//
// Drag with the left mouse button to draw a line, drag with the right
// mouse button to move the drawing around.  Press C to remove all lines
// and Escape to quit.  Lines are clipped to the window and rasterised
// pixel by pixel.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lines/editor"
	"seehuhn.de/go/lines/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lineview: ")

	sceneFile := flag.String("scene", "", "load lines from this Hjson scene file")
	width := flag.Int("width", 320, "canvas width in pixels")
	height := flag.Int("height", 240, "canvas height in pixels")
	scale := flag.Int("scale", 0, "window pixels per canvas pixel (0 = scene default)")
	col := flag.String("color", "black", "color for new lines")
	flag.Parse()

	if err := run(*sceneFile, *width, *height, *scale, *col); err != nil {
		log.Fatal(err)
	}
}

func run(sceneFile string, width, height, scale int, col string) error {
	sc := &scene.Scene{
		Width:      width,
		Height:     height,
		Scale:      2,
		Background: scene.DefaultBackground,
	}
	if sceneFile != "" {
		var err error
		sc, err = scene.Load(sceneFile)
		if err != nil {
			return err
		}
	}
	if scale > 0 {
		sc.Scale = scale
	}

	e, err := editor.New(sc, col)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("lineview")
	ebiten.SetWindowSize(sc.Width*sc.Scale, sc.Height*sc.Scale)
	return ebiten.RunGame(&game{e: e})
}

// game connects the editor to ebiten.
type game struct {
	e   *editor.Editor
	img *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.e.Clear()
	}

	x, y := ebiten.CursorPosition()
	pos := vec.Vec2{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.e.BeginLine(pos)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.e.BeginPan(pos)
	}
	g.e.Move(pos)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.e.EndLine(pos)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.e.EndPan()
	}

	_, err := g.e.Render()
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	cv := g.e.Canvas()
	b := cv.Img.Bounds()
	if g.img == nil {
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(cv.Img.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.e.Scene().Viewport()
	return vp.Width, vp.Height
}
