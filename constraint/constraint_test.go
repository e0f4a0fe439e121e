// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/evil-spirit/adjacent-go/geom"
)

func Test_points_coincident_equations_vanish_when_equal(tst *testing.T) {
	chk.PrintTitle("points_coincident_equations_vanish_when_equal")
	p0 := geom.NewPoint("p0", 1, 2, 0)
	p1 := geom.NewPoint("p1", 1, 2, 0)
	c := NewPointsCoincident(p0, p1)
	for _, e := range c.Equations() {
		chk.Scalar(tst, "residual", 1e-12, e.Eval(), 0)
	}
	if len(c.Parameters()) != 0 {
		tst.Errorf("PointsCoincident should contribute no parameters")
	}
}

func Test_points_distance_defaults_to_fixed_target(tst *testing.T) {
	chk.PrintTitle("points_distance_defaults_to_fixed_target")
	p0 := geom.NewPoint("p0", 0, 0, 0)
	p1 := geom.NewPoint("p1", 3, 4, 0)
	c := NewPointsDistance(p0, p1, 5)
	if c.Reference {
		tst.Errorf("PointsDistance should default reference=false")
	}
	if len(c.Parameters()) != 0 {
		tst.Errorf("non-reference PointsDistance should contribute no parameters")
	}
	eqs := c.Equations()
	chk.Scalar(tst, "residual", 1e-12, eqs[0].Eval(), 0)
}

func Test_length_on_line(tst *testing.T) {
	chk.PrintTitle("length_on_line")
	p0 := geom.NewPoint("p0", 0, 0, 0)
	p1 := geom.NewPoint("p1", 6, 8, 0)
	line := geom.NewLine(p0, p1)
	c := NewLength(line, 10)
	chk.Scalar(tst, "residual", 1e-12, c.Equations()[0].Eval(), 0)
}

func Test_hv_horizontal(tst *testing.T) {
	chk.PrintTitle("hv_horizontal")
	p0 := geom.NewPoint("p0", 0, 5, 0)
	p1 := geom.NewPoint("p1", 9, 5, 0)
	c := NewHV(p0, p1, OX)
	chk.Scalar(tst, "residual", 1e-12, c.Equations()[0].Eval(), 0)
}

func Test_point_on_seeds_closest_t(tst *testing.T) {
	chk.PrintTitle("point_on_seeds_closest_t")
	p0 := geom.NewPoint("p0", 0, 0, 0)
	p1 := geom.NewPoint("p1", 10, 0, 0)
	line := geom.NewLine(p0, p1)
	pt := geom.NewPoint("pt", 5, 0, 0)
	c := NewPointOn(pt, line)
	chk.Scalar(tst, "seeded t", 1e-9, c.Value.Value, 0.5)
}

func Test_parallel_picks_codirected_when_already_aligned(tst *testing.T) {
	chk.PrintTitle("parallel_picks_codirected_when_already_aligned")
	a0 := geom.NewPoint("a0", 0, 0, 0)
	a1 := geom.NewPoint("a1", 1, 0, 0)
	la := geom.NewLine(a0, a1)
	b0 := geom.NewPoint("b0", 0, 5, 0)
	b1 := geom.NewPoint("b1", 1, 5, 0)
	lb := geom.NewLine(b0, b1)
	c := NewParallel(la, lb)
	if c.option != Codirected {
		tst.Errorf("expected Codirected, got %v", c.option)
	}
}

func Test_parallel_picks_antidirected_when_reversed(tst *testing.T) {
	chk.PrintTitle("parallel_picks_antidirected_when_reversed")
	a0 := geom.NewPoint("a0", 0, 0, 0)
	a1 := geom.NewPoint("a1", 1, 0, 0)
	la := geom.NewLine(a0, a1)
	b0 := geom.NewPoint("b0", 1, 5, 0)
	b1 := geom.NewPoint("b1", 0, 5, 0)
	lb := geom.NewLine(b0, b1)
	c := NewParallel(la, lb)
	if c.option != Antidirected {
		tst.Errorf("expected Antidirected, got %v", c.option)
	}
}

func Test_diameter_on_circle(tst *testing.T) {
	chk.PrintTitle("diameter_on_circle")
	center := geom.NewPoint("c", 0, 0, 0)
	circ := geom.NewCircle(center, 3)
	c := NewDiameter(circ, 6)
	chk.Scalar(tst, "residual", 1e-12, c.Equations()[0].Eval(), 0)
}

func Test_angle_supplementary_round_trip(tst *testing.T) {
	chk.PrintTitle("angle_supplementary_round_trip")
	p0 := geom.NewPoint("p0", 0, 0, 0)
	p1 := geom.NewPoint("p1", 1, 0, 0)
	l0 := geom.NewLine(p0, p1)
	p2 := geom.NewPoint("p2", 0, 0, 0)
	p3 := geom.NewPoint("p3", 0, 1, 0)
	l1 := geom.NewLine(p2, p3)
	c := NewAngle(l0, l1, math.Pi/4)
	original := c.Value.Value
	c.SetSupplementary(true)
	c.SetSupplementary(false)
	chk.Scalar(tst, "round trip", 1e-12, c.Value.Value, original)
}

func Test_tangent_seeds_contact_point(tst *testing.T) {
	chk.PrintTitle("tangent_seeds_contact_point")
	center := geom.NewPoint("c", 0, 0, 0)
	circ := geom.NewCircle(center, 1)
	p0 := geom.NewPoint("p0", -1, 1, 0)
	p1 := geom.NewPoint("p1", 1, 1, 0)
	line := geom.NewLine(p0, p1)
	c := NewTangent(circ, line)
	if c.residual() > 0.5 {
		tst.Errorf("expected seeded tangent point to be reasonably close, residual=%v", c.residual())
	}
}
