// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements the sketch's constraint kinds: each one
// contributes zero or more equations (and, for the value-carrying kinds, a
// reference parameter) to the owning eqsys.System.
package constraint

import (
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
	"github.com/evil-spirit/adjacent-go/param"
)

// Type identifies a constraint kind.
type Type int

const (
	Invalid Type = iota
	TypePointOn
	TypePointsCoincident
	TypeParallel
	TypeLength
	TypePointsDistance
	TypeHV
	TypeAngle
	TypeDiameter
	TypeTangent
)

func (t Type) String() string {
	switch t {
	case TypePointOn:
		return "PointOn"
	case TypePointsCoincident:
		return "PointsCoincident"
	case TypeParallel:
		return "Parallel"
	case TypeLength:
		return "Length"
	case TypePointsDistance:
		return "PointsDistance"
	case TypeHV:
		return "HV"
	case TypeAngle:
		return "Angle"
	case TypeDiameter:
		return "Diameter"
	case TypeTangent:
		return "Tangent"
	}
	return "Invalid"
}

// Constraint is implemented by every constraint kind the sketch can hold.
type Constraint interface {
	Type() Type
	Entities() []geom.Entity
	Parameters() param.Set
	Equations() []*expr.Node
	String() string
}

// ValueConstraint is embedded by constraint kinds that carry a reference
// value — a parameter the solver is free to adjust (e.g. a dragged length)
// when reference is true, or a fixed numeric target when false.
type ValueConstraint struct {
	kind      Type
	entities  []geom.Entity
	Value     *param.Parameter
	Reference bool
}

func newValueConstraint(kind Type, v float64, entities ...geom.Entity) ValueConstraint {
	return ValueConstraint{
		kind:     kind,
		entities: entities,
		Value:    param.New("c_value", v),
	}
}

func (o *ValueConstraint) Type() Type              { return o.kind }
func (o *ValueConstraint) Entities() []geom.Entity { return o.entities }
func (o *ValueConstraint) SetValue(v float64)      { o.Value.SetValue(v) }
func (o *ValueConstraint) SetReference(ref bool)   { o.Reference = ref }

// Parameters returns {value} when the constraint is acting as a reference
// (the solver may move it), or no parameters when it is a fixed target.
func (o *ValueConstraint) Parameters() param.Set {
	if !o.Reference {
		return nil
	}
	return param.Set{o.Value}
}

func (o *ValueConstraint) String() string {
	return io.Sf("%s(value:%s, reference:%v)", o.kind, o.Value, o.Reference)
}

// angle2D returns the signed angle between directions d0 and d1 (or, when
// angle360 is set, the supplementary reflex form used by 360°-capable
// constraints).
func angle2D(d0, d1 expr.Vec, angle360 bool) *expr.Node {
	nu := expr.AddN(expr.MulN(d1.X, d0.X), expr.MulN(d1.Y, d0.Y))
	nv := expr.SubN(expr.MulN(d0.X, d1.Y), expr.MulN(d0.Y, d1.X))
	if angle360 {
		return expr.SubN(expr.Pi, expr.Atan2(nv, expr.Neg(nu)))
	}
	return expr.Atan2(nv, nu)
}
