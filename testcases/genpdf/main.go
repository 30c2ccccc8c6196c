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


// Command genpdf generates reference sheets for the line drawing tests.
// For every test case it writes a PDF showing the expected pixels as
// unit squares, with the ideal, unclipped segment drawn on top.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/pdfsheet"
	"seehuhn.de/go/lines/testcases"
)

const refDir = "testdata/reference"

// pixelScale is the size of one pixel on the reference sheets, in PDF points.
const pixelScale = 12

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	sheet := &pdfsheet.Sheet{
		Viewport:   lines.Viewport{Width: tc.Width, Height: tc.Height},
		Scale:      pixelScale,
		Background: color.White,
		Overlay:    []lines.Segment{{P0: tc.From, P1: tc.To}},
	}

	pixels := make([]pdfsheet.Pixel, len(tc.Want))
	for i, p := range tc.Want {
		pixels[i] = pdfsheet.Pixel{X: p.X, Y: p.Y, Color: color.Black}
	}

	f, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	err = sheet.Write(f, pixels)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
