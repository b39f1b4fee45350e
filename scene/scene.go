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

// Fill pairs a shape reference with the color it paints. Order within a
// Scene's Fills slice is significant: later fills take precedence over
// earlier ones wherever their shapes overlap.
type Fill struct {
	Shape Shape
	Color Color
}

// Scene is the complete result of parsing a scene file: the canvas size,
// the color and shape symbol tables, and the ordered fill list. It is
// built entirely during parsing and never mutated afterwards -- the
// rasterizer only reads it.
type Scene struct {
	Width, Height int

	Colors map[string]Color
	Shapes map[string]Shape

	Fills []Fill
}

// New returns an empty Scene with its symbol tables allocated, ready for a
// parser to fill in.
func New() *Scene {
	return &Scene{
		Colors: make(map[string]Color),
		Shapes: make(map[string]Shape),
	}
}
