// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/evil-spirit/adjacent-go/expr"
)

func Test_line_length(tst *testing.T) {
	chk.PrintTitle("line_length")
	p0 := NewPoint("p0", 0, 0, 0)
	p1 := NewPoint("p1", 3, 4, 0)
	l := NewLine(p0, p1)
	length, ok := l.Length()
	if !ok {
		tst.Fatalf("Line.Length should be present")
	}
	chk.Scalar(tst, "length", 1e-12, length.Eval(), 5)
}

func Test_line_point_on_midpoint(tst *testing.T) {
	chk.PrintTitle("line_point_on_midpoint")
	p0 := NewPoint("p0", 0, 0, 0)
	p1 := NewPoint("p1", 10, 0, 0)
	l := NewLine(p0, p1)
	mid := l.PointOn(expr.NewConst(0.5))
	chk.Scalar(tst, "mid.x", 1e-12, mid.X.Eval(), 5)
	chk.Scalar(tst, "mid.y", 1e-12, mid.Y.Eval(), 0)
}

func Test_circle_point_on(tst *testing.T) {
	chk.PrintTitle("circle_point_on")
	center := NewPoint("c", 0, 0, 0)
	circ := NewCircle(center, 2)
	p := circ.PointOn(expr.NewConst(0.25))
	chk.Scalar(tst, "quarter-turn x", 1e-9, p.X.Eval(), 0)
	chk.Scalar(tst, "quarter-turn y", 1e-9, p.Y.Eval(), 2)
}

func Test_circle_length(tst *testing.T) {
	chk.PrintTitle("circle_length")
	center := NewPoint("c", 0, 0, 0)
	circ := NewCircle(center, 3)
	length, ok := circ.Length()
	if !ok {
		tst.Fatalf("Circle.Length should be present")
	}
	chk.Scalar(tst, "circumference", 1e-9, length.Eval(), 2*math.Pi*3)
}

func Test_point_has_no_length_or_tangent(tst *testing.T) {
	chk.PrintTitle("point_has_no_length_or_tangent")
	p := NewPoint("p", 1, 1, 0)
	if _, ok := p.Length(); ok {
		tst.Errorf("Point.Length should be absent")
	}
	if _, ok := p.Radius(); ok {
		tst.Errorf("Point.Radius should be absent")
	}
	if _, ok := p.TangentAt(expr.Zero); ok {
		tst.Errorf("Point.TangentAt should be absent")
	}
}
