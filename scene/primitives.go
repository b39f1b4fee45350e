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
	"math"

	"seehuhn.de/go/paint/geo"
)

// Ellipse is an axis-aligned ellipse with semi-major axis A and semi-minor
// axis B, A >= B >= 0. The parser is responsible for enforcing that
// ordering before calling NewEllipse; it panics otherwise, since a
// well-formed parse can never construct one out of order.
type Ellipse struct {
	Center geo.Point
	A, B   float64

	a2, b2 float64
}

// NewEllipse constructs an Ellipse. a and b must already satisfy
// a >= b >= 0 (the parser reports a violation as a parse error); NewEllipse
// panics if they do not.
func NewEllipse(center geo.Point, a, b float64) *Ellipse {
	if a < b || b < 0 {
		panic("scene: Ellipse requires a >= b >= 0")
	}
	return &Ellipse{Center: center, A: a, B: b, a2: a * a, b2: b * b}
}

func (e *Ellipse) Contains(p geo.Point) bool {
	q := p.Sub(e.Center)
	return q.X*q.X*e.b2+q.Y*q.Y*e.a2 <= e.a2*e.b2
}

func (e *Ellipse) Domain() geo.Domain {
	offset := geo.Point{X: e.A, Y: e.B}
	return geo.NewDomain(e.Center.Sub(offset), e.Center.Add(offset))
}

// NamedPoint resolves the canonical ellipse anchors. The ordinal points
// ("ne", "nw", "sw", "se") are (A/sqrt(2), B/sqrt(2)) scaled into the
// matching quadrant -- the point cos(45)*A, sin(45)*B, not the point on the
// ellipse boundary at 45 degrees. This mirrors the original implementation
// exactly and is a documented quirk, not a bug.
func (e *Ellipse) NamedPoint(name string) (geo.Point, error) {
	p, err := e.localPoint(name)
	if err != nil {
		return geo.Point{}, err
	}
	return p.Add(e.Center), nil
}

func (e *Ellipse) localPoint(name string) (geo.Point, error) {
	const r2 = math.Sqrt2

	switch name {
	case "c":
		return geo.Point{}, nil
	case "e":
		return geo.Point{X: e.A}, nil
	case "ne":
		return geo.Point{X: e.A / 2 * r2, Y: e.B / 2 * r2}, nil
	case "n":
		return geo.Point{Y: e.B}, nil
	case "nw":
		return geo.Point{X: -e.A / 2 * r2, Y: e.B / 2 * r2}, nil
	case "w":
		return geo.Point{X: -e.A}, nil
	case "sw":
		return geo.Point{X: -e.A / 2 * r2, Y: -e.B / 2 * r2}, nil
	case "s":
		return geo.Point{Y: -e.B}, nil
	case "se":
		return geo.Point{X: e.A / 2 * r2, Y: -e.B / 2 * r2}, nil
	case "f1":
		return geo.Point{X: math.Sqrt(e.a2 - e.b2)}, nil
	case "f2":
		return geo.Point{X: -math.Sqrt(e.a2 - e.b2)}, nil
	default:
		return geo.Point{}, namedPointError(name)
	}
}

// Circle is an Ellipse with equal axes. It is kept as a distinct variant,
// rather than collapsed into Ellipse at parse time, because the scene
// language rejects the "f1"/"f2" foci named points on a circle, which have
// no geometric meaning when A == B.
type Circle struct {
	*Ellipse
}

// NewCircle constructs a Circle of the given radius. radius must be >= 0,
// checked by the parser.
func NewCircle(center geo.Point, radius float64) *Circle {
	return &Circle{Ellipse: NewEllipse(center, radius, radius)}
}

func (c *Circle) NamedPoint(name string) (geo.Point, error) {
	if name == "f1" || name == "f2" {
		return geo.Point{}, namedPointError(name)
	}
	return c.Ellipse.NamedPoint(name)
}

// Rectangle is an axis-aligned rectangle given by its center and half
// extents.
type Rectangle struct {
	Center                geo.Point
	HalfWidth, HalfHeight float64
}

// NewRectangle constructs a Rectangle. width and height must be >= 0,
// checked by the parser.
func NewRectangle(center geo.Point, width, height float64) *Rectangle {
	if width < 0 || height < 0 {
		panic("scene: Rectangle requires width, height >= 0")
	}
	return &Rectangle{Center: center, HalfWidth: width / 2, HalfHeight: height / 2}
}

func (r *Rectangle) Contains(p geo.Point) bool {
	q := p.Sub(r.Center)
	return math.Abs(q.X) <= r.HalfWidth && math.Abs(q.Y) <= r.HalfHeight
}

func (r *Rectangle) Domain() geo.Domain {
	offset := geo.Point{X: r.HalfWidth, Y: r.HalfHeight}
	return geo.NewDomain(r.Center.Sub(offset), r.Center.Add(offset))
}

func (r *Rectangle) corner(dx, dy float64) geo.Point {
	return r.Center.Add(geo.Point{X: dx * r.HalfWidth, Y: dy * r.HalfHeight})
}

func (r *Rectangle) NamedPoint(name string) (geo.Point, error) {
	switch name {
	case "c":
		return r.Center, nil
	case "ne":
		return r.corner(1, 1), nil
	case "se":
		return r.corner(1, -1), nil
	case "sw":
		return r.corner(-1, -1), nil
	case "nw":
		return r.corner(-1, 1), nil
	case "e":
		return midpoint(r.corner(1, 1), r.corner(1, -1)), nil
	case "s":
		return midpoint(r.corner(1, -1), r.corner(-1, -1)), nil
	case "w":
		return midpoint(r.corner(-1, -1), r.corner(-1, 1)), nil
	case "n":
		return midpoint(r.corner(-1, 1), r.corner(1, 1)), nil
	default:
		return geo.Point{}, namedPointError(name)
	}
}

// Triangle is the only polygon the scene language supports, given by its
// three vertices in declaration order.
type Triangle struct {
	V        [3]geo.Point
	centroid geo.Point
}

// NewTriangle constructs a Triangle from its three vertices.
func NewTriangle(v0, v1, v2 geo.Point) *Triangle {
	centroid := geo.Div(v0.Add(v1).Add(v2), 3)
	return &Triangle{V: [3]geo.Point{v0, v1, v2}, centroid: centroid}
}

func (t *Triangle) Domain() geo.Domain {
	d := geo.NewDomain(t.V[0], t.V[0])
	for _, v := range t.V[1:] {
		d = geo.UnionDomain(d, geo.NewDomain(v, v))
	}
	return d
}

func (t *Triangle) NamedPoint(name string) (geo.Point, error) {
	switch name {
	case "c":
		return t.centroid, nil
	case "v0":
		return t.V[0], nil
	case "v1":
		return t.V[1], nil
	case "v2":
		return t.V[2], nil
	case "s01":
		return midpoint(t.V[0], t.V[1]), nil
	case "s12":
		return midpoint(t.V[1], t.V[2]), nil
	case "s02":
		return midpoint(t.V[0], t.V[2]), nil
	default:
		return geo.Point{}, namedPointError(name)
	}
}

// Contains implements the sign-of-cross-product test: P lies inside the
// triangle iff it is on the same side of all three edges. A zero cross
// product means P lies on an edge's supporting line; in that case P is
// inside iff the x components of its offsets from the edge's two endpoints
// do not share a sign. For a non-vertical edge this means P lies between
// the endpoints; for a vertical edge both x components are zero, so every
// point of the supporting line reached at that step counts as inside.
func (t *Triangle) Contains(p geo.Point) bool {
	vect := [3]geo.Point{p.Sub(t.V[0]), p.Sub(t.V[1]), p.Sub(t.V[2])}

	var sign bool
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		c := geo.Cross(vect[i], vect[j])
		if c == 0 {
			return vect[i].X*vect[j].X <= 0
		}
		b := c > 0
		if i > 0 && b != sign {
			return false
		}
		sign = b
	}
	return true
}
