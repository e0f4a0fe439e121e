// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
)

// Angle fixes the angle between two lines' direction vectors. Defaults
// reference to false, matching Length and PointsDistance.
type Angle struct {
	ValueConstraint
	L0, L1        *geom.Line
	Supplementary bool
}

// NewAngle returns an Angle constraint fixing the angle between l0 and l1
// (measured source→target on each) to angle radians.
func NewAngle(l0, l1 *geom.Line, angle float64) *Angle {
	return &Angle{
		ValueConstraint: newValueConstraint(TypeAngle, angle, l0, l1),
		L0:              l0,
		L1:              l1,
	}
}

// SetSupplementary flips which direction on l1 the angle is measured
// against, re-deriving the stored value so the solved configuration stays
// continuous across the flip: value ← value - sign(value)·π.
func (o *Angle) SetSupplementary(sup bool) {
	if sup == o.Supplementary {
		return
	}
	o.Supplementary = sup
	v := o.Value.Value
	s := 1.0
	if v < 0 {
		s = -1.0
	}
	o.Value.SetValue(v - s*math.Pi)
}

func (o *Angle) points() (p0, p1, p2, p3 expr.Vec) {
	p0, p1 = o.L0.Source().Expr(), o.L0.Target().Expr()
	p2, p3 = o.L1.Source().Expr(), o.L1.Target().Expr()
	if o.Supplementary {
		p2, p3 = p3, p2
	}
	return
}

func (o *Angle) Equations() []*expr.Node {
	p0, p1, p2, p3 := o.points()
	d0 := p0.Sub(p1)
	d1 := p2.Sub(p3)
	angle := angle2D(d0, d1, false)
	return []*expr.Node{expr.SubN(angle, expr.NewParam(o.Value))}
}

func (o *Angle) String() string {
	return io.Sf("Angle(%s, %s, value:%s)", o.L0, o.L1, o.Value)
}
