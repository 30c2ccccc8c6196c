// Command export writes the test cases, together with the pixels this
// package draws for them, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string    `json:"name"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	From    []float64 `json:"from"`
	To      []float64 `json:"to"`
	Visible bool      `json:"visible"`
	Clipped []int     `json:"clipped,omitempty"`
	Pixels  [][]int   `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		From:   []float64{tc.From.X, tc.From.Y},
		To:     []float64{tc.To.X, tc.To.Y},
		Pixels: [][]int{},
	}

	vp := lines.Viewport{Width: tc.Width, Height: tc.Height}
	seg := lines.Segment{P0: tc.From, P1: tc.To}
	clipped, ok, err := lines.Clip(seg, vp)
	if err != nil {
		return jtc, err
	}
	jtc.Visible = ok
	if !ok {
		return jtc, nil
	}
	x0, y0, x1, y1 := clipped.Ints()
	jtc.Clipped = []int{x0, y0, x1, y1}

	var pixels []image.Point
	sink := lines.SinkFunc(func(x, y int, _ color.Color) {
		pixels = append(pixels, image.Point{X: x, Y: y})
	})
	lines.NewRasteriser(vp, sink).Line(x0, y0, x1, y1, color.Black)
	for _, p := range pixels {
		jtc.Pixels = append(jtc.Pixels, []int{p.X, p.Y})
	}
	return jtc, nil
}
