// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
	"github.com/evil-spirit/adjacent-go/param"
)

// ParallelOption selects which of the two equally-valid parallel relations
// — same direction or opposite direction — the constraint enforces.
type ParallelOption int

const (
	Codirected ParallelOption = iota
	Antidirected
)

// Parallel forces two curves' directions, each taken as PointOn(0) minus
// PointOn(1), to be parallel. At construction time it tries
// both orientations against the entities' current placement and keeps
// whichever is already closer to satisfied.
type Parallel struct {
	L0, L1 geom.Entity
	option ParallelOption
}

// NewParallel returns a Parallel constraint between two curve entities,
// choosing its orientation by evaluating both candidates now.
func NewParallel(l0, l1 geom.Entity) *Parallel {
	o := &Parallel{L0: l0, L1: l1}
	o.chooseBestOption()
	return o
}

func (o *Parallel) Type() Type { return TypeParallel }

func (o *Parallel) Entities() []geom.Entity { return []geom.Entity{o.L0, o.L1} }

func (o *Parallel) Parameters() param.Set { return nil }

func (o *Parallel) directions() (d0, d1 expr.Vec) {
	d0 = o.L0.PointOn(expr.Zero).Sub(o.L0.PointOn(expr.One))
	d1 = o.L1.PointOn(expr.Zero).Sub(o.L1.PointOn(expr.One))
	return
}

func (o *Parallel) angle() *expr.Node {
	d0, d1 := o.directions()
	return angle2D(d0, d1, false)
}

func (o *Parallel) Equations() []*expr.Node {
	switch o.option {
	case Antidirected:
		return []*expr.Node{expr.SubN(expr.Abs(o.angle()), expr.Pi)}
	default:
		return []*expr.Node{o.angle()}
	}
}

func (o *Parallel) chooseBestOption() {
	bestValue := -1.0
	best := Codirected
	for _, candidate := range []ParallelOption{Codirected, Antidirected} {
		o.option = candidate
		cur := 0.0
		for _, e := range o.Equations() {
			cur += math.Abs(e.Eval())
		}
		if bestValue < 0.0 || cur < bestValue {
			bestValue = cur
			best = candidate
		}
	}
	o.option = best
}

func (o *Parallel) String() string {
	return io.Sf("Parallel(%s, %s, option:%v)", o.L0, o.L1, o.option)
}
