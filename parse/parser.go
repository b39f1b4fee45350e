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

// Package parse implements the recursive-descent parser for the scene
// description language: it turns source lines into a [scene.Scene], or a
// chained diagnostic locating the first malformed construct.
package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/paint/geo"
	"seehuhn.de/go/paint/scene"
	"seehuhn.de/go/paint/token"
)

// Error is the diagnostic returned when a scene fails to parse. Its string
// form is the three-line form described by the language: position, the
// chained message, the offending source line, and a caret under the token
// where the error was detected.
type Error struct {
	Pos   token.Position
	Chain error
	Caret string
}

func (e *Error) Error() string {
	return e.Pos.String() + " error: " + e.Chain.Error() + "\n" + e.Caret
}

func (e *Error) Unwrap() error { return e.Chain }

// invalid appends a grammar-layer suffix to err, building the "inner ->
// invalid outer" chain the diagnostics are built from.
func invalid(err error, layer string) error {
	return fmt.Errorf("%w -> invalid %s", err, layer)
}

// Parse parses a complete scene from lines and returns the resulting Scene.
// On failure it returns a *Error describing the first problem encountered.
func Parse(lines []string) (*scene.Scene, error) {
	if len(lines) == 0 {
		lines = []string{""}
	}

	cur := token.New(lines)
	p := &parser{cur: cur, sc: scene.New()}

	if err := p.run(); err != nil {
		return nil, &Error{
			Pos:   cur.Position(),
			Chain: err,
			Caret: cur.Caret(),
		}
	}
	return p.sc, nil
}

type parser struct {
	cur *token.Cursor
	sc  *scene.Scene
}

func (p *parser) run() error {
	word := p.cur.NextWord()
	if word != "size" {
		return fmt.Errorf("expected size keyword, got %s", word)
	}
	if err := p.size(); err != nil {
		return err
	}

	for {
		word = p.cur.NextWord()
		var err error
		switch word {
		case "":
			return nil
		case "color":
			err = p.color()
		case "elli":
			err = p.ellipse()
		case "circ":
			err = p.circle()
		case "rect":
			err = p.rectangle()
		case "tri":
			err = p.triangle()
		case "shift":
			err = p.shift()
		case "rot":
			err = p.rotation()
		case "union":
			err = p.union()
		case "diff":
			err = p.difference()
		case "fill":
			err = p.fill()
		default:
			return fmt.Errorf("invalid keyword %s", word)
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) size() error {
	w, err := p.number()
	if err != nil {
		return invalid(err, "size declaration")
	}
	intPart, frac := math.Modf(w)
	if intPart < 0 || frac != 0 {
		return invalid(fmt.Errorf("expected positive integer width, got %v", w), "size declaration")
	}

	h, err := p.number()
	if err != nil {
		return invalid(err, "size declaration")
	}
	intPart2, frac2 := math.Modf(h)
	if intPart2 < 0 || frac2 != 0 {
		return invalid(fmt.Errorf("expected positive integer height, got %v", h), "size declaration")
	}

	p.sc.Width = int(intPart)
	p.sc.Height = int(intPart2)
	return nil
}

func (p *parser) color() error {
	name, err := p.colorName()
	if err != nil {
		return invalid(err, "color declaration")
	}
	c, err := p.colorPointer()
	if err != nil {
		return invalid(err, "color declaration")
	}
	p.sc.Colors[name] = c
	return nil
}

func (p *parser) ellipse() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "ellipse declaration")
	}
	center, err := p.point()
	if err != nil {
		return invalid(err, "ellipse declaration")
	}
	a, err := p.number()
	if err != nil {
		return invalid(err, "ellipse declaration")
	}
	if a < 0 {
		return invalid(fmt.Errorf("expected positive semi-major radius, got %v", a), "ellipse declaration")
	}
	b, err := p.number()
	if err != nil {
		return invalid(err, "ellipse declaration")
	}
	if b < 0 {
		return invalid(fmt.Errorf("expected positive semi-minor radius, got %v", b), "ellipse declaration")
	}
	if a < b {
		return invalid(errors.New("semi-minor radius must not exceed semi-major radius"), "ellipse declaration")
	}
	p.sc.Shapes[name] = scene.NewEllipse(center, a, b)
	return nil
}

func (p *parser) circle() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "circle declaration")
	}
	center, err := p.point()
	if err != nil {
		return invalid(err, "circle declaration")
	}
	r, err := p.number()
	if err != nil {
		return invalid(err, "circle declaration")
	}
	if r < 0 {
		return invalid(fmt.Errorf("expected positive radius, got %v", r), "circle declaration")
	}
	p.sc.Shapes[name] = scene.NewCircle(center, r)
	return nil
}

func (p *parser) rectangle() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "rectangle declaration")
	}
	center, err := p.point()
	if err != nil {
		return invalid(err, "rectangle declaration")
	}
	w, err := p.number()
	if err != nil {
		return invalid(err, "rectangle declaration")
	}
	if w < 0 {
		return invalid(fmt.Errorf("expected positive width, got %v", w), "rectangle declaration")
	}
	h, err := p.number()
	if err != nil {
		return invalid(err, "rectangle declaration")
	}
	if h < 0 {
		return invalid(fmt.Errorf("expected positive height, got %v", h), "rectangle declaration")
	}
	p.sc.Shapes[name] = scene.NewRectangle(center, w, h)
	return nil
}

func (p *parser) triangle() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "triangle declaration")
	}
	v0, err := p.point()
	if err != nil {
		return invalid(err, "triangle declaration")
	}
	v1, err := p.point()
	if err != nil {
		return invalid(err, "triangle declaration")
	}
	v2, err := p.point()
	if err != nil {
		return invalid(err, "triangle declaration")
	}
	p.sc.Shapes[name] = scene.NewTriangle(v0, v1, v2)
	return nil
}

func (p *parser) shift() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "shift declaration")
	}
	offset, err := p.point()
	if err != nil {
		return invalid(err, "shift declaration")
	}
	inner, err := p.shapePointer()
	if err != nil {
		return invalid(err, "shift declaration")
	}
	p.sc.Shapes[name] = scene.NewShift(offset, inner)
	return nil
}

func (p *parser) rotation() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "rotation declaration")
	}
	degrees, err := p.number()
	if err != nil {
		return invalid(err, "rotation declaration")
	}
	pivot, err := p.point()
	if err != nil {
		return invalid(err, "rotation declaration")
	}
	inner, err := p.shapePointer()
	if err != nil {
		return invalid(err, "rotation declaration")
	}
	theta := degrees * math.Pi / 180
	p.sc.Shapes[name] = scene.NewRotation(theta, pivot, inner)
	return nil
}

func (p *parser) union() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "union declaration")
	}
	if got := p.cur.NextWord(); got != "{" {
		return invalid(fmt.Errorf("missing {, got %s", got), "union declaration")
	}

	first, err := p.shapePointer()
	if err != nil {
		return invalid(err, "union declaration")
	}
	set := []scene.Shape{first}
	for p.cur.PeekChar() != '}' {
		s, err := p.shapePointer()
		if err != nil {
			return invalid(err, "union declaration")
		}
		set = append(set, s)
	}
	p.cur.NextWord() // consume "}"

	p.sc.Shapes[name] = scene.NewUnion(set)
	return nil
}

func (p *parser) difference() error {
	name, err := p.shapeName()
	if err != nil {
		return invalid(err, "difference declaration")
	}
	in, err := p.shapePointer()
	if err != nil {
		return invalid(err, "difference declaration")
	}
	out, err := p.shapePointer()
	if err != nil {
		return invalid(err, "difference declaration")
	}
	p.sc.Shapes[name] = scene.NewDifference(in, out)
	return nil
}

func (p *parser) fill() error {
	shape, err := p.shapePointer()
	if err != nil {
		return invalid(err, "fill declaration")
	}
	color, err := p.colorPointer()
	if err != nil {
		return invalid(err, "fill declaration")
	}
	p.sc.Fills = append(p.sc.Fills, scene.Fill{Shape: shape, Color: color})
	return nil
}

// colorPointer parses a color_expr: either an inline {r g b} literal or a
// reference to a previously declared color name.
func (p *parser) colorPointer() (scene.Color, error) {
	word := p.cur.NextWord()
	if word == "{" {
		var rgb [3]float64
		for i := range rgb {
			v, err := p.number()
			if err != nil {
				return scene.Color{}, invalid(err, "color")
			}
			if v < 0 || v > 1 {
				return scene.Color{}, invalid(&scene.OutOfRangeError{What: "color component", Got: v}, "color")
			}
			rgb[i] = v
		}
		if got := p.cur.NextWord(); got != "}" {
			return scene.Color{}, invalid(fmt.Errorf("missing }, got %s", got), "color")
		}
		c, err := scene.ColorFromNormalized(rgb[0], rgb[1], rgb[2])
		if err != nil {
			return scene.Color{}, invalid(err, "color")
		}
		return c, nil
	}

	c, ok := p.sc.Colors[word]
	if !ok {
		return scene.Color{}, invalid(fmt.Errorf("unknown color %s", word), "color")
	}
	return c, nil
}

// point parses a point, one of the four grammar alternatives.
func (p *parser) point() (geo.Point, error) {
	pt, err := p.pointInner()
	if err != nil {
		return geo.Point{}, invalid(err, "point")
	}
	return pt, nil
}

func (p *parser) pointInner() (geo.Point, error) {
	word := p.cur.NextWord()
	switch word {
	case "{":
		x, err := p.number()
		if err != nil {
			return geo.Point{}, err
		}
		y, err := p.number()
		if err != nil {
			return geo.Point{}, err
		}
		if got := p.cur.NextWord(); got != "}" {
			return geo.Point{}, fmt.Errorf("missing }, got %s", got)
		}
		return geo.Point{X: x, Y: y}, nil

	case "(":
		op := p.cur.NextWord()
		switch op {
		case "+":
			pt, err := p.point()
			if err != nil {
				return geo.Point{}, err
			}
			for p.cur.PeekChar() != ')' {
				q, err := p.point()
				if err != nil {
					return geo.Point{}, err
				}
				pt = pt.Add(q)
			}
			p.cur.NextWord()
			return pt, nil

		case "-":
			pt, err := p.point()
			if err != nil {
				return geo.Point{}, err
			}
			for p.cur.PeekChar() != ')' {
				q, err := p.point()
				if err != nil {
					return geo.Point{}, err
				}
				pt = pt.Sub(q)
			}
			p.cur.NextWord()
			return pt, nil

		case "*":
			pt, err := p.point()
			if err != nil {
				return geo.Point{}, err
			}
			n, err := p.number()
			if err != nil {
				return geo.Point{}, err
			}
			if got := p.cur.NextWord(); got != ")" {
				return geo.Point{}, fmt.Errorf("missing ), got %s", got)
			}
			return pt.Mul(n), nil

		case "/":
			pt, err := p.point()
			if err != nil {
				return geo.Point{}, err
			}
			n, err := p.number()
			if err != nil {
				return geo.Point{}, err
			}
			if got := p.cur.NextWord(); got != ")" {
				return geo.Point{}, fmt.Errorf("missing ), got %s", got)
			}
			return geo.Div(pt, n), nil

		default:
			return geo.Point{}, fmt.Errorf("expected operator (+, -, * or /), got %s", op)
		}

	default:
		return p.resolveNamedPointString(word)
	}
}

// resolveNamedPointString resolves a "shapeName.pointName" token against the
// shape table, immediately evaluating the named point.
func (p *parser) resolveNamedPointString(s string) (geo.Point, error) {
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return geo.Point{}, fmt.Errorf("expected point, got %s", s)
	}
	name, point := s[:idx], s[idx+1:]

	if err := validateName(name); err != nil {
		return geo.Point{}, err
	}
	shape, ok := p.sc.Shapes[name]
	if !ok {
		return geo.Point{}, fmt.Errorf("unknown shape %s", name)
	}
	return shape.NamedPoint(point)
}

// number parses a number, one of the four grammar alternatives: a literal,
// a signed literal, a point projection, or a named-point projection.
func (p *parser) number() (float64, error) {
	v, err := p.numberInner()
	if err != nil {
		return 0, invalid(err, "number")
	}
	return v, nil
}

func (p *parser) numberInner() (float64, error) {
	op := p.cur.PeekChar()

	switch {
	case isDigit(op) || op == '.':
		word := p.cur.NextWord()
		return parseNumberLiteral(word)

	case op == '+' || op == '-':
		word := p.cur.NextWord()
		v, err := parseNumberLiteral(word[1:])
		if err != nil {
			return 0, err
		}
		if op == '-' {
			v = -v
		}
		return v, nil

	case isLetter(op):
		word := p.cur.NextWord()
		idx := strings.LastIndexByte(word, '.')
		if idx < 0 {
			return 0, fmt.Errorf("expected point coordinate, got %s", word)
		}
		pt, err := p.resolveNamedPointString(word[:idx])
		if err != nil {
			return 0, err
		}
		return projectPoint(pt, word[idx+1:])

	case op == '(' || op == '{':
		pt, err := p.point()
		if err != nil {
			return 0, err
		}
		word := p.cur.NextWord()
		if len(word) < 2 || word[0] != '.' {
			return 0, fmt.Errorf("expected .x or .y, got %s", word)
		}
		return projectPoint(pt, word[1:])

	default:
		word := p.cur.NextWord()
		return 0, fmt.Errorf("expected number, got %s", word)
	}
}

func projectPoint(pt geo.Point, proj string) (float64, error) {
	switch proj {
	case "x":
		return pt.X, nil
	case "y":
		return pt.Y, nil
	default:
		return 0, fmt.Errorf("expected x or y, got %s", proj)
	}
}

// parseNumberLiteral validates and converts a bare digit run, allowing at
// most one decimal point and requiring at least one digit.
func parseNumberLiteral(s string) (float64, error) {
	dots := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isDigit(b) {
			continue
		}
		if b == '.' && dots == 0 {
			dots++
			continue
		}
		return 0, fmt.Errorf("invalid number %s", s)
	}
	if len(s) == dots {
		return 0, errors.New("expected digit(s)")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %s", s)
	}
	return v, nil
}

// shapeName parses a NAME token declaring a new shape; it must be
// syntactically valid and not already used.
func (p *parser) shapeName() (string, error) {
	word := p.cur.NextWord()
	if err := validateName(word); err != nil {
		return "", err
	}
	if _, used := p.sc.Shapes[word]; used {
		return "", fmt.Errorf("already used shape name %s", word)
	}
	return word, nil
}

// colorName parses a NAME token declaring a new color; it must be
// syntactically valid and not already used.
func (p *parser) colorName() (string, error) {
	word := p.cur.NextWord()
	if err := validateName(word); err != nil {
		return "", err
	}
	if _, used := p.sc.Colors[word]; used {
		return "", fmt.Errorf("already used color name %s", word)
	}
	return word, nil
}

// shapePointer parses a shape_ref: a NAME that must already exist.
func (p *parser) shapePointer() (scene.Shape, error) {
	word := p.cur.NextWord()
	if err := validateName(word); err != nil {
		return nil, err
	}
	s, ok := p.sc.Shapes[word]
	if !ok {
		return nil, fmt.Errorf("unknown shape %s", word)
	}
	return s, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isAlnum(b byte) bool { return isLetter(b) || isDigit(b) }

// validateName checks s against the NAME grammar: a letter followed by
// letters, digits, or underscores.
func validateName(s string) error {
	if s == "" {
		return errors.New("expected name, got empty")
	}
	if !isLetter(s[0]) {
		return fmt.Errorf("invalid first character %c", s[0])
	}
	for i := 1; i < len(s); i++ {
		if !isAlnum(s[i]) && s[i] != '_' {
			return fmt.Errorf("invalid character %c", s[i])
		}
	}
	return nil
}
