// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/param"
)

func Test_solve_simple_distance(tst *testing.T) {
	chk.PrintTitle("solve_simple_distance")

	px := param.New("px", 0)
	py := param.New("py", 0)
	qx := param.New("qx", 1)
	qy := param.New("qy", 0)

	p := expr.NewVec2(expr.NewParam(px), expr.NewParam(py))
	q := expr.NewVec2(expr.NewParam(qx), expr.NewParam(qy))

	sys := New()
	sys.AddParameters(param.Set{px, py, qx, qy})
	sys.AddEquation(expr.SubN(q.Sub(p).Magnitude(), expr.NewConst(5)))
	// pin p at the origin so the system is well posed
	sys.AddEquation(expr.NewParam(px))
	sys.AddEquation(expr.NewParam(py))

	res := sys.Solve()
	if res != OKAY {
		tst.Fatalf("expected OKAY, got %v", res)
	}
	dist := q.Sub(p).Magnitude().Eval()
	chk.Scalar(tst, "distance", 1e-6, dist, 5)
}

func Test_revert_on_non_convergence(tst *testing.T) {
	chk.PrintTitle("revert_on_non_convergence")

	px := param.New("px", 0)
	py := param.New("py", 0)
	qx := param.New("qx", 1)
	qy := param.New("qy", 0)

	p := expr.NewVec2(expr.NewParam(px), expr.NewParam(py))
	q := expr.NewVec2(expr.NewParam(qx), expr.NewParam(qy))

	sys := New()
	sys.AddParameters(param.Set{px, py, qx, qy})
	sys.AddEquation(expr.NewParam(px))
	sys.AddEquation(expr.NewParam(py))
	// two incompatible fixed distances: unsatisfiable
	sys.AddEquation(expr.SubN(q.Sub(p).Magnitude(), expr.NewConst(1)))
	sys.AddEquation(expr.SubN(q.Sub(p).Magnitude(), expr.NewConst(2)))

	before := []float64{px.Value, py.Value, qx.Value, qy.Value}
	res := sys.Solve()
	if res != DidntConverge {
		tst.Fatalf("expected DIDNT_CONVERGE, got %v", res)
	}
	after := []float64{px.Value, py.Value, qx.Value, qy.Value}
	for i := range before {
		chk.Scalar(tst, "reverted value", 1e-15, after[i], before[i])
	}
}

func Test_substitution_elimination(tst *testing.T) {
	chk.PrintTitle("substitution_elimination")

	p1x := param.New("p1x", 1)
	p2x := param.New("p2x", 1.0000000001)

	sys := New()
	sys.AddParameters(param.Set{p1x, p2x})
	sys.AddEquation(expr.SubN(expr.NewParam(p1x), expr.NewParam(p2x)))

	sys.Solve()
	chk.Scalar(tst, "p2x == p1x after solve", 0, p2x.Value, p1x.Value)
}

func Test_has_dragged(tst *testing.T) {
	chk.PrintTitle("has_dragged")

	px := param.New("px", 0)
	sys := New()
	sys.AddParameter(px)
	if sys.HasDragged() {
		tst.Errorf("expected no drag equations yet")
	}
	sys.AddEquation(expr.DragTo(expr.NewParam(px), expr.NewConst(3)))
	if !sys.HasDragged() {
		tst.Errorf("expected drag equation to be detected")
	}
}
