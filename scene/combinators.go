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

// Shift translates an inner shape by Offset.
type Shift struct {
	Offset geo.Point
	Inner  Shape
}

func NewShift(offset geo.Point, inner Shape) *Shift {
	return &Shift{Offset: offset, Inner: inner}
}

func (s *Shift) Contains(p geo.Point) bool {
	return s.Inner.Contains(p.Sub(s.Offset))
}

func (s *Shift) Domain() geo.Domain {
	d := s.Inner.Domain()
	return geo.NewDomain(geo.Min(d).Add(s.Offset), geo.Max(d).Add(s.Offset))
}

func (s *Shift) NamedPoint(name string) (geo.Point, error) {
	p, err := s.Inner.NamedPoint(name)
	if err != nil {
		return geo.Point{}, err
	}
	return p.Add(s.Offset), nil
}

// Rotation rotates an inner shape by Theta radians about Pivot.
type Rotation struct {
	Pivot      geo.Point
	CosT, SinT float64
	Inner      Shape
}

// NewRotation constructs a Rotation. theta is in radians (the parser
// converts the degree literal in a "rot" declaration before calling this).
func NewRotation(theta float64, pivot geo.Point, inner Shape) *Rotation {
	return &Rotation{Pivot: pivot, CosT: math.Cos(theta), SinT: math.Sin(theta), Inner: inner}
}

func (r *Rotation) absolute(p geo.Point) geo.Point {
	return geo.RotateAbout(p, r.CosT, r.SinT, r.Pivot)
}

func (r *Rotation) relative(p geo.Point) geo.Point {
	return geo.RotateAbout(p, r.CosT, -r.SinT, r.Pivot)
}

func (r *Rotation) Contains(p geo.Point) bool {
	return r.Inner.Contains(r.relative(p))
}

// Domain rotates all four corners of the inner shape's bounding box about
// the pivot and returns their component-wise bounding box. Rotating only
// the two opposite corners would produce too tight a box whenever Theta
// isn't a multiple of 90 degrees.
func (r *Rotation) Domain() geo.Domain {
	inner := r.Inner.Domain()
	min, max := geo.Min(inner), geo.Max(inner)
	corners := [4]geo.Point{
		r.absolute(geo.Point{X: min.X, Y: max.Y}),
		r.absolute(geo.Point{X: max.X, Y: min.Y}),
		r.absolute(min),
		r.absolute(max),
	}

	d := geo.NewDomain(corners[0], corners[0])
	for _, c := range corners[1:] {
		d = geo.UnionDomain(d, geo.NewDomain(c, c))
	}
	return d
}

func (r *Rotation) NamedPoint(name string) (geo.Point, error) {
	p, err := r.Inner.NamedPoint(name)
	if err != nil {
		return geo.Point{}, err
	}
	return r.absolute(p), nil
}

// Union is the disjunction of a non-empty, ordered set of shapes.
type Union struct {
	Set []Shape
}

// NewUnion constructs a Union. set must be non-empty, checked by the
// parser.
func NewUnion(set []Shape) *Union {
	if len(set) == 0 {
		panic("scene: Union requires a non-empty set")
	}
	return &Union{Set: set}
}

func (u *Union) Contains(p geo.Point) bool {
	for _, s := range u.Set {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

func (u *Union) Domain() geo.Domain {
	d := u.Set[0].Domain()
	for _, s := range u.Set[1:] {
		d = geo.UnionDomain(d, s.Domain())
	}
	return d
}

// NamedPoint delegates to the first element of the set. Whether this is
// intentional design or a placeholder carried over from draft to draft of
// the original implementation is unclear; it is preserved as-is rather
// than guessed at.
func (u *Union) NamedPoint(name string) (geo.Point, error) {
	return u.Set[0].NamedPoint(name)
}

// Difference is the set difference In \ Out: points inside In and not
// inside Out.
type Difference struct {
	In, Out Shape
}

func NewDifference(in, out Shape) *Difference {
	return &Difference{In: in, Out: out}
}

func (d *Difference) Contains(p geo.Point) bool {
	return d.In.Contains(p) && !d.Out.Contains(p)
}

// Domain is In's domain: the subtracted shape can only remove area, never
// add to it, so it cannot expand the bounding box.
func (d *Difference) Domain() geo.Domain {
	return d.In.Domain()
}

func (d *Difference) NamedPoint(name string) (geo.Point, error) {
	return d.In.NamedPoint(name)
}
