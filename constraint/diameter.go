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

// Diameter fixes a Circle's diameter (2·radius) to a target value.
// Defaults reference to false.
type Diameter struct {
	ValueConstraint
	Entity geom.Entity
}

// NewDiameter returns a Diameter constraint on e. Panics if e has no
// radius (e.g. a Line).
func NewDiameter(e geom.Entity, d float64) *Diameter {
	if _, ok := e.Radius(); !ok {
		chk.Panic("Diameter: entity %v has no radius", e)
	}
	return &Diameter{
		ValueConstraint: newValueConstraint(TypeDiameter, d, e),
		Entity:          e,
	}
}

func (o *Diameter) Equations() []*expr.Node {
	radius, _ := o.Entity.Radius()
	return []*expr.Node{expr.SubN(expr.MulN(radius, expr.Two), expr.NewParam(o.Value))}
}

func (o *Diameter) String() string {
	return io.Sf("Diameter(%s, value:%s)", o.Entity, o.Value)
}
