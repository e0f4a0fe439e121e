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

// Orientation selects which axis an HV constraint aligns a segment to.
type Orientation int

const (
	OX Orientation = iota
	OY
)

// HV forces two points (or, equivalently, a Line's endpoints) to share an
// x or y coordinate — horizontal or vertical alignment.
type HV struct {
	P0, P1      *geom.Point
	Orientation Orientation
	line        *geom.Line
}

// NewHV returns an HV constraint between two independent points.
func NewHV(p0, p1 *geom.Point, o Orientation) *HV {
	return &HV{P0: p0, P1: p1, Orientation: o}
}

// NewLineHV returns an HV constraint aligning a Line's own endpoints.
func NewLineHV(line *geom.Line, o Orientation) *HV {
	return &HV{P0: line.Source(), P1: line.Target(), Orientation: o, line: line}
}

func (o *HV) Type() Type { return TypeHV }

func (o *HV) Entities() []geom.Entity {
	if o.line != nil {
		return []geom.Entity{o.line}
	}
	return []geom.Entity{o.P0, o.P1}
}

func (o *HV) Parameters() param.Set { return nil }

func (o *HV) Equations() []*expr.Node {
	switch o.Orientation {
	case OY:
		return []*expr.Node{expr.SubN(expr.NewParam(o.P0.X), expr.NewParam(o.P1.X))}
	default:
		return []*expr.Node{expr.SubN(expr.NewParam(o.P0.Y), expr.NewParam(o.P1.Y))}
	}
}

func (o *HV) String() string {
	return io.Sf("HV(%s, %s, axis:%v)", o.P0, o.P1, o.Orientation)
}
