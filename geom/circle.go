// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/param"
)

// Circle owns a center Point and a radius parameter.
type Circle struct {
	Center *Point
	R      *param.Parameter
}

// NewCircle returns a Circle about center with the given radius.
func NewCircle(center *Point, radius float64) *Circle {
	return &Circle{Center: center, R: param.New("r", radius)}
}

// Parameters returns the center's x/y and the radius parameter.
func (o *Circle) Parameters() param.Set {
	return append(o.Center.Parameters(), o.R)
}

// Radius returns abs(r): radius is always taken as non-negative, since a
// Newton step can momentarily drive the solved parameter negative.
func (o *Circle) Radius() (*expr.Node, bool) {
	return expr.Abs(expr.NewParam(o.R)), true
}

// Length returns the circumference 2π·radius().
func (o *Circle) Length() (*expr.Node, bool) {
	r, _ := o.Radius()
	return expr.MulN(expr.TwoPi, r), true
}

// PointOn returns center + radius·(cos 2πt, sin 2πt).
func (o *Circle) PointOn(t *expr.Node) expr.Vec {
	angle := expr.MulN(t, expr.TwoPi)
	r, _ := o.Radius()
	dir := expr.NewVec2(expr.Cos(angle), expr.Sin(angle))
	return o.Center.Expr().Add(dir.Scale(r))
}

// TangentAt returns the unit tangent direction (-sin 2πt, cos 2πt).
func (o *Circle) TangentAt(t *expr.Node) (expr.Vec, bool) {
	angle := expr.MulN(t, expr.TwoPi)
	return expr.NewVec2(expr.Neg(expr.Sin(angle)), expr.Cos(angle)), true
}

func (o *Circle) String() string {
	return io.Sf("Circle(%s, %s)", o.Center, o.R)
}
