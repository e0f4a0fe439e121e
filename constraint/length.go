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

// Length fixes an entity's own length (e.g. a Line's span, a Circle's
// circumference) to a target value. Defaults reference to false: a
// Length constraint names a fixed target, not a draggable unknown.
type Length struct {
	ValueConstraint
	Entity geom.Entity
}

// NewLength returns a Length constraint fixing e's length to l. Panics if
// e has no length (e.g. a bare Point).
func NewLength(e geom.Entity, l float64) *Length {
	if _, ok := e.Length(); !ok {
		chk.Panic("Length: entity %v has no length", e)
	}
	return &Length{
		ValueConstraint: newValueConstraint(TypeLength, l, e),
		Entity:          e,
	}
}

func (o *Length) Equations() []*expr.Node {
	length, _ := o.Entity.Length()
	return []*expr.Node{expr.SubN(length, expr.NewParam(o.Value))}
}

func (o *Length) String() string {
	return io.Sf("Length(%s, value:%s)", o.Entity, o.Value)
}
