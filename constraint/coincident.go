// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
	"github.com/evil-spirit/adjacent-go/param"
)

// PointsCoincident forces two points to occupy the same location. It
// carries no reference parameter of its own — both x and y equalities are
// pure entity-to-entity equations.
type PointsCoincident struct {
	P0, P1 *geom.Point
}

// NewPointsCoincident returns a PointsCoincident between p0 and p1.
func NewPointsCoincident(p0, p1 *geom.Point) *PointsCoincident {
	return &PointsCoincident{P0: p0, P1: p1}
}

func (o *PointsCoincident) Type() Type { return TypePointsCoincident }

func (o *PointsCoincident) Entities() []geom.Entity {
	return []geom.Entity{o.P0, o.P1}
}

func (o *PointsCoincident) Parameters() param.Set { return nil }

func (o *PointsCoincident) Equations() []*expr.Node {
	return []*expr.Node{
		expr.SubN(expr.NewParam(o.P0.X), expr.NewParam(o.P1.X)),
		expr.SubN(expr.NewParam(o.P0.Y), expr.NewParam(o.P1.Y)),
	}
}

// OtherPoint returns P1 when p is P0, and P0 otherwise (including when p is
// neither point of the pair).
func (o *PointsCoincident) OtherPoint(p *geom.Point) *geom.Point {
	if o.P0 == p {
		return o.P1
	}
	return o.P0
}

func (o *PointsCoincident) String() string {
	return io.Sf("PointsCoincident(%s, %s)", o.P0, o.P1)
}
