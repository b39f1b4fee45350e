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

// Package scene holds the algebraic shape model, the color type, and the
// container that a parsed scene file builds up: named colors, named shapes,
// and the ordered list of fills that paint them.
package scene

import (
	"fmt"

	"seehuhn.de/go/paint/geo"
)

// Shape is the capability set every primitive and combinator implements.
// Variants are immutable once constructed; combinators reference their
// inner shapes through this interface, so a shape may be shared by several
// combinators and fills without copying.
type Shape interface {
	// Contains reports whether P lies within the shape, boundary included.
	Contains(p geo.Point) bool

	// Domain returns an axis-aligned box guaranteed to contain the shape.
	// It is tight for the primitives; combinators such as Rotation and
	// Difference may return a larger box.
	Domain() geo.Domain

	// NamedPoint resolves a symbolic location (e.g. "c", "ne", "v0") to a
	// concrete point. It returns a *NamedPointError if name is not defined
	// for this variant.
	NamedPoint(name string) (geo.Point, error)
}

// NamedPointError reports that a named-point tag is not defined for the
// shape variant it was looked up on.
type NamedPointError struct {
	Name string
}

func (e *NamedPointError) Error() string {
	return fmt.Sprintf("invalid named point %s", e.Name)
}

func namedPointError(name string) error {
	return &NamedPointError{Name: name}
}

func midpoint(a, b geo.Point) geo.Point {
	return geo.Div(a.Add(b), 2)
}
