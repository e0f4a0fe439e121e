// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/eqsys"
	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
)

// pointOnSweepStep is the resolution of the 1D parameter sweep PointOn
// uses to seed its reference value, over t∈[0,1].
const pointOnSweepStep = 0.125

// PointOn constrains a point to lie somewhere along another entity's
// curve, parameterized by a reference value t∈[0,1]. Unlike every other
// ValueConstraint kind, PointOn defaults reference to true: t is not a
// fixed target the caller names, it's a free unknown the
// solver adjusts as the point slides along the curve.
type PointOn struct {
	ValueConstraint
	Point *geom.Point
	On    geom.Entity
}

// NewPointOn returns a PointOn constraint and immediately seeds its t by
// sweeping t∈[0,1] and keeping whichever minimizes the residual — the
// point's closest position on the curve right now.
func NewPointOn(point *geom.Point, on geom.Entity) *PointOn {
	o := &PointOn{
		ValueConstraint: newValueConstraint(TypePointOn, 0.51, point, on),
		Point:           point,
		On:              on,
	}
	o.Reference = true
	o.satisfy()
	return o
}

func (o *PointOn) Equations() []*expr.Node {
	onPoint := o.On.PointOn(expr.NewParam(o.Value))
	d := onPoint.Sub(o.Point.Expr())
	return []*expr.Node{d.X, d.Y}
}

// satisfy runs the 1D sweep: it tries t = 0, 0.125, ..., 1.0, refines each
// seed with its own small equation system (just {value} and this
// constraint's own two equations), and keeps the t with the smallest total
// |equation| residual after that refinement.
func (o *PointOn) satisfy() {
	bestT := 0.0
	bestResidual := -1.0
	for t := 0.0; t <= 1.0+1e-9; t += pointOnSweepStep {
		o.Value.SetValue(t)

		sys := eqsys.New()
		sys.AddParameter(o.Value)
		sys.AddEquations(o.Equations())
		sys.Solve()

		cur := 0.0
		for _, e := range o.Equations() {
			cur += math.Abs(e.Eval())
		}
		if bestResidual < 0.0 || cur < bestResidual {
			bestResidual = cur
			bestT = o.Value.Value
		}
	}
	o.Value.SetValue(bestT)
}

func (o *PointOn) String() string {
	return io.Sf("PointOn(%s, on:%s, t:%s)", o.Point, o.On, o.Value)
}
