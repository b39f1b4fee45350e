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

// Package geo provides the 2D point and axis-aligned bounding box types
// shared by the shape model and the rasterizer.
package geo

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a location or free vector in scene space. It is an alias for
// vec.Vec2 so that Add, Sub and Mul (scalar) come for free from the geom
// module; the operations the scene language needs beyond those are defined
// below as functions rather than methods, since methods cannot be added to
// a type from another package.
type Point = vec.Vec2

// Domain is an axis-aligned bounding box, inclusive of both corners. It is
// an alias for rect.Rect, using the same lower-left/upper-right, Y-up
// convention the rest of the geom-based ecosystem uses; scene coordinates
// grow upward, matching that convention directly (see ppm.Encode for the
// one place Y is flipped, at file emission).
type Domain = rect.Rect

// NewDomain builds a Domain from its two corners, reordering components so
// that min really is the lower-left and max the upper-right regardless of
// the order the caller supplies them in.
func NewDomain(a, b Point) Domain {
	return Domain{
		LLx: math.Min(a.X, b.X),
		LLy: math.Min(a.Y, b.Y),
		URx: math.Max(a.X, b.X),
		URy: math.Max(a.Y, b.Y),
	}
}

// Min returns the lower-left corner of d.
func Min(d Domain) Point { return Point{X: d.LLx, Y: d.LLy} }

// Max returns the upper-right corner of d.
func Max(d Domain) Point { return Point{X: d.URx, Y: d.URy} }

// UnionDomain returns the smallest Domain containing both a and b.
func UnionDomain(a, b Domain) Domain {
	return Domain{
		LLx: math.Min(a.LLx, b.LLx),
		LLy: math.Min(a.LLy, b.LLy),
		URx: math.Max(a.URx, b.URx),
		URy: math.Max(a.URy, b.URy),
	}
}

// Div divides p by the scalar n component-wise.
func Div(p Point, n float64) Point {
	return Point{X: p.X / n, Y: p.Y / n}
}

// Cross returns the 2D cross product of u and v, u.x*v.y - v.x*u.y.
func Cross(u, v Point) float64 {
	return u.X*v.Y - v.X*u.Y
}

// Rotate rotates p around the origin by the angle whose cosine and sine are
// given.
func Rotate(p Point, cosT, sinT float64) Point {
	return Point{
		X: cosT*p.X - sinT*p.Y,
		Y: sinT*p.X + cosT*p.Y,
	}
}

// RotateTheta rotates p around the origin by theta radians.
func RotateTheta(p Point, theta float64) Point {
	return Rotate(p, math.Cos(theta), math.Sin(theta))
}

// RotateAbout rotates p around the pivot P by the angle whose cosine and
// sine are given.
func RotateAbout(p Point, cosT, sinT float64, pivot Point) Point {
	return Rotate(p.Sub(pivot), cosT, sinT).Add(pivot)
}
