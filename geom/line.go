// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/param"
)

// Line aggregates two owned Points.
type Line struct {
	P0, P1 *Point
}

// NewLine returns a Line between p0 and p1.
func NewLine(p0, p1 *Point) *Line {
	return &Line{P0: p0, P1: p1}
}

// Source returns the line's first endpoint.
func (o *Line) Source() *Point { return o.P0 }

// Target returns the line's second endpoint.
func (o *Line) Target() *Point { return o.P1 }

// Parameters returns both endpoints' x/y parameters.
func (o *Line) Parameters() param.Set {
	return append(o.P0.Parameters(), o.P1.Parameters()...)
}

// PointOn linearly interpolates between the two endpoints: p0 + (p1-p0)*t.
func (o *Line) PointOn(t *expr.Node) expr.Vec {
	return o.P0.Expr().Add(o.P1.Expr().Sub(o.P0.Expr()).Scale(t))
}

// TangentAt returns the (constant) direction p1 - p0.
func (o *Line) TangentAt(t *expr.Node) (expr.Vec, bool) {
	return o.P1.Expr().Sub(o.P0.Expr()), true
}

// Length returns ‖p1 - p0‖.
func (o *Line) Length() (*expr.Node, bool) {
	return o.P1.Expr().Sub(o.P0.Expr()).Magnitude(), true
}

// Radius returns (nil, false): a Line has no radius.
func (o *Line) Radius() (*expr.Node, bool) { return nil, false }

func (o *Line) String() string {
	return io.Sf("Line(%s -> %s)", o.P0, o.P1)
}
