// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/linalg"
	"github.com/evil-spirit/adjacent-go/param"
)

// Solver tunables. These are plain struct fields, not a configuration
// file — the core solver has no externally-facing config surface.
const (
	defaultMaxSteps  = 20
	defaultDragSteps = 3
	// Epsilon is the residual-convergence and substitution-match tolerance.
	Epsilon = 1e-10
)

// System holds the source equations/parameters a caller adds, and the
// working copies the solver actually iterates over after substitution.
type System struct {
	MaxSteps               int
	DragSteps              int
	RevertWhenNotConverged bool

	sourceEquations []*expr.Node
	parameters      param.Set

	// working state, rebuilt by updateDirty whenever dirty is set
	dirty         bool
	equations     []*expr.Node
	currentParams param.Set
	subs          map[*param.Parameter]*param.Parameter

	j         [][]*expr.Node
	a         [][]float64
	aat       [][]float64
	b         []float64
	x         []float64
	z         []float64
	oldValues []float64
}

// New returns an empty System with the library's default tunables.
func New() *System {
	return &System{
		MaxSteps:               defaultMaxSteps,
		DragSteps:              defaultDragSteps,
		RevertWhenNotConverged: true,
		dirty:                  true,
	}
}

// AddEquation registers eq, which must evaluate to zero at a solution.
func (o *System) AddEquation(eq *expr.Node) {
	o.sourceEquations = append(o.sourceEquations, eq)
	o.dirty = true
}

// AddEquations registers every equation in eqs.
func (o *System) AddEquations(eqs []*expr.Node) {
	for _, eq := range eqs {
		o.AddEquation(eq)
	}
}

// AddVecXY registers the x and y components of v as equations; z is not
// contributed.
func (o *System) AddVecXY(v expr.Vec) {
	o.AddEquation(v.X)
	o.AddEquation(v.Y)
}

// RemoveEquation removes eq from the source set. Removing an equation
// that was never added is programmer error and panics.
func (o *System) RemoveEquation(eq *expr.Node) {
	for i, e := range o.sourceEquations {
		if e == eq {
			o.sourceEquations = append(o.sourceEquations[:i], o.sourceEquations[i+1:]...)
			o.dirty = true
			return
		}
	}
	chk.Panic("eqsys: cannot remove equation, it doesn't exist in source_equations")
}

// AddParameter registers p as a solver unknown. Adding a parameter that is
// already present is a no-op (AddEquation, by contrast, does not check for
// duplicates).
func (o *System) AddParameter(p *param.Parameter) {
	if o.parameters.Index(p) >= 0 {
		return
	}
	o.parameters = append(o.parameters, p)
	o.dirty = true
}

// AddParameters registers every parameter in ps.
func (o *System) AddParameters(ps param.Set) {
	for _, p := range ps {
		o.AddParameter(p)
	}
}

// RemoveParameter removes p from the parameter set. Removing a parameter
// that was never added is programmer error and panics.
func (o *System) RemoveParameter(p *param.Parameter) {
	i := o.parameters.Index(p)
	if i < 0 {
		chk.Panic("eqsys: cannot remove parameter, it doesn't exist in parameters")
	}
	o.parameters = append(o.parameters[:i], o.parameters[i+1:]...)
	o.dirty = true
}

// Clear drops every equation and parameter and immediately rebuilds the
// (now empty) working state, leaving the system clean.
func (o *System) Clear() {
	o.parameters = nil
	o.currentParams = nil
	o.equations = nil
	o.sourceEquations = nil
	o.dirty = true
	o.updateDirty()
}

// HasDragged reports whether any working equation is a Drag node — the
// sketch uses this to force solving even when nothing else looks dirty.
func (o *System) HasDragged() bool {
	o.updateDirty()
	for _, e := range o.equations {
		if e.IsDrag() {
			return true
		}
	}
	return false
}

// TestRank evaluates the Jacobian numerically at the current point and
// returns the degrees of freedom (columns − rank); wellPosed is true iff
// the rank equals the row count. The rank itself is not returned.
func (o *System) TestRank() (dof int, wellPosed bool) {
	o.updateDirty()
	o.evalJacobian(false)
	rank := linalg.Rank(o.a)
	dof = len(o.currentParams) - rank
	wellPosed = rank == len(o.equations)
	return
}

// updateDirty rebuilds the working equations/parameters from the source
// bodies, eliminates trivial equalities via substitution, builds the
// symbolic Jacobian, and allocates numeric buffers. It is a no-op unless
// dirty is set.
func (o *System) updateDirty() {
	if !o.dirty {
		return
	}
	o.equations = append([]*expr.Node(nil), o.sourceEquations...)
	o.currentParams = append(param.Set(nil), o.parameters...)

	o.subs = o.solveBySubstitution()

	o.j = writeJacobian(o.equations, o.currentParams)
	o.a = la.MatAlloc(len(o.equations), len(o.currentParams))
	o.aat = la.MatAlloc(len(o.equations), len(o.equations))
	o.b = make([]float64, len(o.equations))
	o.x = make([]float64, len(o.currentParams))
	o.z = make([]float64, len(o.equations))
	o.oldValues = make([]float64, len(o.parameters))
	o.dirty = false
}

// writeJacobian returns the R×C grid of partial derivatives of each
// equation with respect to each working parameter. Nodes are shared with
// existing subtrees wherever Diff doesn't need to rebuild them.
func writeJacobian(equations []*expr.Node, params param.Set) [][]*expr.Node {
	j := make([][]*expr.Node, len(equations))
	for r, eq := range equations {
		row := make([]*expr.Node, len(params))
		for c, p := range params {
			row[c] = eq.Diff(p)
		}
		j[r] = row
	}
	return j
}
