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


// Command drawline clips and rasterises lines and writes the result to a
// PNG or PDF file.
//
// A single line is given with -x0, -y0, -x1, -y1 and -color; a whole
// drawing can be read from an Hjson scene file with -scene.  Lines which
// lie entirely outside the canvas are reported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/term"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/canvas"
	"seehuhn.de/go/lines/pdfsheet"
	"seehuhn.de/go/lines/scene"
)

// outsideMessage is shown when a line has no visible part.
const outsideMessage = "line entirely outside the visible area"

type options struct {
	x0, y0, x1, y1 float64
	color          string
	width, height  int
	scene          string
	out            string
	scale          int
	preview        bool
	cpuProfile     bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("drawline: ")

	var opt options
	flag.Float64Var(&opt.x0, "x0", 0, "x coordinate of the first endpoint")
	flag.Float64Var(&opt.y0, "y0", 0, "y coordinate of the first endpoint")
	flag.Float64Var(&opt.x1, "x1", 0, "x coordinate of the second endpoint")
	flag.Float64Var(&opt.y1, "y1", 0, "y coordinate of the second endpoint")
	flag.StringVar(&opt.color, "color", "black", "line color (name, #rgb or #rrggbb)")
	flag.IntVar(&opt.width, "width", scene.DefaultWidth, "canvas width in pixels")
	flag.IntVar(&opt.height, "height", scene.DefaultHeight, "canvas height in pixels")
	flag.StringVar(&opt.scene, "scene", "", "read lines from this Hjson scene file")
	flag.StringVar(&opt.out, "o", "line.png", "output file (.png or .pdf)")
	flag.IntVar(&opt.scale, "scale", 0, "size of one canvas pixel in the output (0 = scene default)")
	flag.BoolVar(&opt.preview, "preview", false, "print a text preview when stdout is a terminal")
	flag.BoolVar(&opt.cpuProfile, "cpuprofile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if opt.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if err := run(&opt); err != nil {
		log.Fatal(err)
	}
}

func run(opt *options) error {
	sc, err := loadScene(opt)
	if err != nil {
		return err
	}
	if opt.scale > 0 {
		sc.Scale = opt.scale
	}

	cv, err := canvas.New(sc.Viewport(), sc.BackgroundColor())
	if err != nil {
		return err
	}
	rec := &pdfsheet.Recorder{}
	sink := lines.SinkFunc(func(x, y int, c color.Color) {
		cv.Plot(x, y, c)
		rec.Plot(x, y, c)
	})
	r := lines.NewRasteriser(sc.Viewport(), sink)

	drawn, rejected, err := sc.Render(r, vec.Vec2{})
	if err != nil {
		return err
	}
	switch {
	case drawn == 0 && rejected > 0:
		log.Print(outsideMessage)
		cv.Notice(outsideMessage, noticeColor(sc.BackgroundColor()))
	case rejected > 0:
		log.Printf("%d of %d lines entirely outside the visible area", rejected, drawn+rejected)
	}

	if err := writeOutput(opt.out, sc, cv, rec); err != nil {
		return err
	}

	if opt.preview && term.IsTerminal(int(os.Stdout.Fd())) {
		cols, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			cols = 80
		}
		return cv.Preview(os.Stdout, cols)
	}
	return nil
}

// loadScene returns the scene file given on the command line, or a scene
// holding the single line from the coordinate flags.
func loadScene(opt *options) (*scene.Scene, error) {
	if opt.scene != "" {
		return scene.Load(opt.scene)
	}
	if _, err := scene.ParseColor(opt.color); err != nil {
		return nil, err
	}
	sc := &scene.Scene{
		Width:      opt.width,
		Height:     opt.height,
		Scale:      1,
		Background: scene.DefaultBackground,
	}
	if err := sc.Viewport().Validate(); err != nil {
		return nil, err
	}
	sc.Add(lines.Seg(opt.x0, opt.y0, opt.x1, opt.y1), opt.color)
	return sc, nil
}

var errUnknownFormat = errors.New("unknown output format")

func writeOutput(fname string, sc *scene.Scene, cv *canvas.Canvas, rec *pdfsheet.Recorder) (err error) {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png":
		write = func(w io.Writer) error {
			return cv.WritePNG(w, sc.Scale)
		}
	case ".pdf":
		sheet := &pdfsheet.Sheet{
			Viewport:   sc.Viewport(),
			Scale:      float64(sc.Scale),
			Background: sc.BackgroundColor(),
		}
		for _, s := range sc.Strokes(vec.Vec2{}) {
			sheet.Overlay = append(sheet.Overlay, s.Segment)
		}
		write = func(w io.Writer) error {
			return sheet.Write(w, rec.Pixels)
		}
	default:
		return fmt.Errorf("%s: %w", fname, errUnknownFormat)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// noticeColor picks black or white text, whichever contrasts more with
// the background.
func noticeColor(bg color.RGBA) color.RGBA {
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
