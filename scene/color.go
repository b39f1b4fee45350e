// seehuhn.de/go/paint - a scene-description language and rasterizer
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

package scene

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit RGB triple, opaque (alpha always 255). It is an alias
// for the standard library's color.RGBA so that the rasterizer's output
// buffer can be a real *image.RGBA.
type Color = color.RGBA

// Black is the default pixel color for samples no fill covers.
var Black = Color{A: 255}

// NewColor builds an opaque Color from its 8-bit components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// OutOfRangeError reports a normalized color component (or other bounded
// value) outside its required range.
type OutOfRangeError struct {
	What string
	Got  float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range %s %v", e.What, e.Got)
}

// ColorFromNormalized builds a Color from components in [0, 1], quantizing
// each with round(c*255). It returns an *OutOfRangeError if any component
// falls outside [0, 1].
func ColorFromNormalized(r, g, b float64) (Color, error) {
	components := [3]float64{r, g, b}
	for _, c := range components {
		if c < 0 || c > 1 {
			return Color{}, &OutOfRangeError{What: "color component", Got: c}
		}
	}
	return NewColor(quantize(r), quantize(g), quantize(b)), nil
}

func quantize(c float64) uint8 {
	return uint8(math.Round(c * 255))
}
