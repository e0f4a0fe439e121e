// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
)

// PointsDistance fixes the distance between two points, or — in its other
// construction form — between a single Line's own endpoints. Both forms
// default reference to false: a fixed target, not a draggable unknown.
type PointsDistance struct {
	ValueConstraint
	p0, p1 *geom.Point // point-pair form; both nil when line is set
	line   *geom.Line  // line form; nil when p0/p1 are set
}

// NewPointsDistance returns a PointsDistance fixing the distance between
// two independent points.
func NewPointsDistance(p0, p1 *geom.Point, d float64) *PointsDistance {
	o := &PointsDistance{
		ValueConstraint: newValueConstraint(TypePointsDistance, d, p0, p1),
		p0:              p0,
		p1:              p1,
	}
	return o
}

// NewLineDistance returns a PointsDistance fixing a Line's own length — an
// alternate surface over the same equation as Length.
func NewLineDistance(line *geom.Line, d float64) *PointsDistance {
	o := &PointsDistance{
		ValueConstraint: newValueConstraint(TypePointsDistance, d, line),
		line:            line,
	}
	return o
}

func (o *PointsDistance) points() (a, b expr.Vec) {
	if o.line != nil {
		return o.line.Source().Expr(), o.line.Target().Expr()
	}
	if o.p0 == nil || o.p1 == nil {
		chk.Panic("PointsDistance: neither point pair nor line was set")
	}
	return o.p0.Expr(), o.p1.Expr()
}

func (o *PointsDistance) Equations() []*expr.Node {
	a, b := o.points()
	return []*expr.Node{
		expr.SubN(b.Sub(a).Magnitude(), expr.NewParam(o.Value)),
	}
}

func (o *PointsDistance) String() string {
	if o.line != nil {
		return io.Sf("PointsDistance(%s, value:%s)", o.line, o.Value)
	}
	return io.Sf("PointsDistance(%s, %s, value:%s)", o.p0, o.p1, o.Value)
}
