// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/param"
)

// Point owns three coordinate parameters. Z is present as data (so a future
// 3D frame composition layer has somewhere to put it) but is never exposed
// to the solver in 2D use — only X and Y are.
type Point struct {
	X, Y, Z *param.Parameter
}

// NewPoint returns a Point with freshly-allocated x/y/z parameters.
func NewPoint(name string, x, y, z float64) *Point {
	return &Point{
		X: param.New(name+".x", x),
		Y: param.New(name+".y", y),
		Z: param.New(name+".z", z),
	}
}

// Expr returns the vector expression (X, Y, Z) for this point.
func (o *Point) Expr() expr.Vec {
	return expr.Vec{X: expr.NewParam(o.X), Y: expr.NewParam(o.Y), Z: expr.NewParam(o.Z)}
}

// Eval returns the current numeric [x, y] of the point.
func (o *Point) Eval() [2]float64 {
	return [2]float64{o.X.Value, o.Y.Value}
}

// Parameters returns [X, Y] — the 2D-visible parameters.
func (o *Point) Parameters() param.Set {
	return param.Set{o.X, o.Y}
}

// PointOn ignores t: a Point is a degenerate curve.
func (o *Point) PointOn(t *expr.Node) expr.Vec {
	return o.Expr()
}

// TangentAt returns (zero value, false): a Point has no tangent.
func (o *Point) TangentAt(t *expr.Node) (expr.Vec, bool) {
	return expr.Vec{}, false
}

// Length returns (nil, false): a Point has no length.
func (o *Point) Length() (*expr.Node, bool) { return nil, false }

// Radius returns (nil, false): a Point has no radius.
func (o *Point) Radius() (*expr.Node, bool) { return nil, false }

func (o *Point) String() string {
	return io.Sf("Point(%s, %s, %s)", o.X, o.Y, o.Z)
}
