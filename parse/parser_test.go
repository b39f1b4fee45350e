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

package parse

import (
	"strings"
	"testing"

	"seehuhn.de/go/paint/geo"
)

func TestParseMinimalScene(t *testing.T) {
	sc, err := Parse([]string{"size 10 10"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.Width != 10 || sc.Height != 10 {
		t.Errorf("size = %dx%d, want 10x10", sc.Width, sc.Height)
	}
	if len(sc.Shapes) != 0 || len(sc.Colors) != 0 || len(sc.Fills) != 0 {
		t.Errorf("expected empty scene, got %+v", sc)
	}
}

func TestParseMissingSizeKeyword(t *testing.T) {
	_, err := Parse([]string{"circ C {0 0} 5"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "expected size keyword") {
		t.Errorf("error = %q, want it to mention \"expected size keyword\"", err.Error())
	}
}

func TestParseColorOutOfRange(t *testing.T) {
	lines := []string{"size 10 10", "color c {1.1 0 0}"}
	_, err := Parse(lines)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "invalid color declaration") {
		t.Errorf("error = %q, want chain to end in \"invalid color declaration\"", err.Error())
	}
}

func TestParseForwardReference(t *testing.T) {
	lines := []string{"size 10 10", "fill A white"}
	_, err := Parse(lines)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "unknown shape A") {
		t.Errorf("error = %q, want it to mention \"unknown shape A\"", err.Error())
	}
}

func TestParseEllipseGeometryConstraint(t *testing.T) {
	lines := []string{"size 10 10", "elli E {0 0} 2 5"}
	_, err := Parse(lines)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "semi-minor radius must not exceed semi-major radius") {
		t.Errorf("error = %q, want the a<b geometry constraint message", err.Error())
	}
	if !strings.Contains(err.Error(), "invalid ellipse declaration") {
		t.Errorf("error = %q, want chain to end in \"invalid ellipse declaration\"", err.Error())
	}
}

func TestParseCommentSpanningExpression(t *testing.T) {
	commented := []string{"size 10 10", "circ C {# hi", "5 5} 3"}
	plain := []string{"size 10 10", "circ C {5 5} 3"}

	scA, errA := Parse(commented)
	scB, errB := Parse(plain)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}

	a := scA.Shapes["C"]
	b := scB.Shapes["C"]
	p := geo.Point{X: 5, Y: 5}
	if a.Contains(p) != b.Contains(p) {
		t.Errorf("commented and plain scenes disagree on Contains(%v)", p)
	}
	if a.Domain() != b.Domain() {
		t.Errorf("commented and plain scenes disagree on Domain: %v vs %v", a.Domain(), b.Domain())
	}
}

func TestParseNameAlreadyUsed(t *testing.T) {
	lines := []string{"size 10 10", "circ A {0 0} 1", "circ A {1 1} 2"}
	_, err := Parse(lines)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "already used shape name A") {
		t.Errorf("error = %q, want it to mention the re-declaration", err.Error())
	}
}

func TestParseSeparateColorAndShapeNamespaces(t *testing.T) {
	// A color and a shape may share the same name: the namespaces are
	// separate in the final grammar.
	lines := []string{
		"size 10 10",
		"color A {1 0 0}",
		"circ A {0 0} 5",
		"fill A A",
	}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.Fills) != 1 {
		t.Fatalf("len(Fills) = %d, want 1", len(sc.Fills))
	}
}

func TestParseNamedPointProjection(t *testing.T) {
	lines := []string{"size 10 10", "rect R {0 0} 10 10", "circ C R.ne 1"}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := sc.Shapes["C"]
	if !c.Contains(geo.Point{X: 5, Y: 4}) {
		t.Error("expected circle centered at R.ne = (5, 5) to contain (5, 4)")
	}
	if c.Contains(geo.Point{X: 5, Y: 0}) {
		t.Error("circle of radius 1 centered at (5, 5) should not contain (5, 0)")
	}
}

func TestParseNamedPointCoordinateProjection(t *testing.T) {
	// The "elli" grammar's semi-axis arguments are numbers, which lets a
	// named-point coordinate (NAME.NAME.x) feed straight into them.
	lines := []string{"size 10 10", "rect R {0 0} 10 10", "elli E {0 0} R.ne.x 1"}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e := sc.Shapes["E"]
	if !e.Contains(geo.Point{X: 5, Y: 0}) {
		t.Error("expected ellipse with semi-major axis R.ne.x = 5 to reach (5, 0)")
	}
	if e.Contains(geo.Point{X: 6, Y: 0}) {
		t.Error("ellipse with semi-major axis 5 should not reach (6, 0)")
	}
}

func TestParsePointArithmetic(t *testing.T) {
	lines := []string{
		"size 10 10",
		"rect R (+ {1 1} {2 3}) 2 2",
	}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := sc.Shapes["R"]
	if !r.Contains(geo.Point{X: 3, Y: 4}) {
		t.Error("expected rectangle centered at (3, 4) to contain its own center")
	}
}

func TestParseUnionAndDifference(t *testing.T) {
	lines := []string{
		"size 10 10",
		"circ A {0 0} 5",
		"circ B {20 20} 1",
		"union U { A B }",
		"circ Inner {0 0} 2",
		"diff D A Inner",
	}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	u := sc.Shapes["U"]
	if !u.Contains(geo.Point{X: 0, Y: 0}) {
		t.Error("union should contain a point covered by one of its members")
	}
	d := sc.Shapes["D"]
	if d.Contains(geo.Point{X: 0, Y: 0}) {
		t.Error("difference should not contain the hole's center")
	}
	if !d.Contains(geo.Point{X: 4, Y: 0}) {
		t.Error("difference should contain a point in the annulus")
	}
}

func TestParseRotationDegreesToRadians(t *testing.T) {
	lines := []string{
		"size 10 10",
		"rect inner {0 0} 10 2",
		"rot R 90 {0 0} inner",
	}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := sc.Shapes["R"]
	if !r.Contains(geo.Point{X: 0, Y: 4}) {
		t.Error("90-degree rotation of a 10x2 rectangle should contain (0, 4)")
	}
	if r.Contains(geo.Point{X: 4, Y: 0}) {
		t.Error("90-degree rotation of a 10x2 rectangle should not contain (4, 0)")
	}
}

func TestParseDiagnosticFormat(t *testing.T) {
	lines := []string{"size 10 10", "circ C {0 0} -1"}
	_, err := Parse(lines)
	if err == nil {
		t.Fatal("expected an error")
	}
	got := err.Error()
	linesOut := strings.Split(got, "\n")
	if len(linesOut) != 3 {
		t.Fatalf("diagnostic has %d lines, want 3:\n%s", len(linesOut), got)
	}
	if !strings.HasPrefix(linesOut[0], "2:") {
		t.Errorf("diagnostic first line = %q, want it to start with line 2's position", linesOut[0])
	}
	if !strings.Contains(linesOut[2], "^") {
		t.Errorf("diagnostic last line = %q, want a caret", linesOut[2])
	}
}

func TestParseRejectsInvalidName(t *testing.T) {
	lines := []string{"size 10 10", "circ 9bad {0 0} 1"}
	_, err := Parse(lines)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "invalid first character") {
		t.Errorf("error = %q, want it to mention the invalid first character", err.Error())
	}
}

func TestParseFillOrderPreserved(t *testing.T) {
	lines := []string{
		"size 10 10",
		"color red {1 0 0}",
		"color green {0 1 0}",
		"rect R {5 5} 8 8",
		"circ C {5 5} 3",
		"fill R green",
		"fill C red",
	}
	sc, err := Parse(lines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sc.Fills) != 2 {
		t.Fatalf("len(Fills) = %d, want 2", len(sc.Fills))
	}
	if sc.Fills[0].Color != sc.Colors["green"] || sc.Fills[1].Color != sc.Colors["red"] {
		t.Error("fill order not preserved")
	}
}
