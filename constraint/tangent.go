// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/geom"
	"github.com/evil-spirit/adjacent-go/param"
)

// tangentSweepStep is the resolution of the 2D (t0, t1) grid search used
// to seed a Tangent constraint's free parameters.
const tangentSweepStep = 0.1

// Tangent forces two curves to touch at a single shared point with
// parallel tangent directions there: a shared-point equality plus a
// parallel-tangent-direction equality, each entity parameterized by its
// own free t∈[0,1].
type Tangent struct {
	E0, E1 geom.Entity
	T0, T1 *param.Parameter
	option ParallelOption
}

// NewTangent returns a Tangent constraint between e0 and e1, seeding t0
// and t1 by a coarse grid search over [0,1]×[0,1] for the pair that
// minimizes the combined shared-point and parallel-direction residual,
// then choosing whichever tangent orientation (co- or anti-directed) is
// closest to satisfied at that pair.
func NewTangent(e0, e1 geom.Entity) *Tangent {
	if _, ok := e0.TangentAt(expr.Zero); !ok {
		chk.Panic("Tangent: entity %v has no tangent", e0)
	}
	if _, ok := e1.TangentAt(expr.Zero); !ok {
		chk.Panic("Tangent: entity %v has no tangent", e1)
	}
	o := &Tangent{
		E0: e0,
		E1: e1,
		T0: param.New("t0", 0.0),
		T1: param.New("t1", 0.0),
	}
	o.seed()
	return o
}

func (o *Tangent) Type() Type { return TypeTangent }

func (o *Tangent) Entities() []geom.Entity { return []geom.Entity{o.E0, o.E1} }

// Parameters returns t0 and t1 — both are free unknowns the solver
// positions along each entity's curve to bring them into tangency.
func (o *Tangent) Parameters() param.Set { return param.Set{o.T0, o.T1} }

func (o *Tangent) tangents() (dir0, dir1 expr.Vec) {
	dir0, _ = o.E0.TangentAt(expr.NewParam(o.T0))
	dir1, _ = o.E1.TangentAt(expr.NewParam(o.T1))
	return
}

func (o *Tangent) Equations() []*expr.Node {
	p0 := o.E0.PointOn(expr.NewParam(o.T0))
	p1 := o.E1.PointOn(expr.NewParam(o.T1))
	shared := p0.Sub(p1)

	dir0, dir1 := o.tangents()
	angle := angle2D(dir0, dir1, false)
	var directionEq *expr.Node
	if o.option == Antidirected {
		directionEq = expr.SubN(expr.Abs(angle), expr.Pi)
	} else {
		directionEq = angle
	}

	return []*expr.Node{shared.X, shared.Y, directionEq}
}

func (o *Tangent) residual() float64 {
	total := 0.0
	for _, e := range o.Equations() {
		total += math.Abs(e.Eval())
	}
	return total
}

// seed grid-searches (t0, t1) and the orientation option jointly, keeping
// the combination with the smallest total residual — the natural
// generalization of PointOn's 1D sweep and Parallel's option choice to a
// constraint with two free curve parameters.
func (o *Tangent) seed() {
	bestResidual := -1.0
	bestT0, bestT1 := 0.0, 0.0
	bestOption := Codirected
	for t0 := 0.0; t0 <= 1.0+1e-9; t0 += tangentSweepStep {
		for t1 := 0.0; t1 <= 1.0+1e-9; t1 += tangentSweepStep {
			o.T0.SetValue(t0)
			o.T1.SetValue(t1)
			for _, option := range []ParallelOption{Codirected, Antidirected} {
				o.option = option
				cur := o.residual()
				if bestResidual < 0.0 || cur < bestResidual {
					bestResidual = cur
					bestT0, bestT1 = t0, t1
					bestOption = option
				}
			}
		}
	}
	o.T0.SetValue(bestT0)
	o.T1.SetValue(bestT1)
	o.option = bestOption
}

func (o *Tangent) String() string {
	return io.Sf("Tangent(%s, %s, t0:%s, t1:%s)", o.E0, o.E1, o.T0, o.T1)
}
