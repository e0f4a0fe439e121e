// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sketch aggregates entities and constraints into the owning
// equation system and drives when it needs to be regenerated or re-solved.
package sketch

import (
	"github.com/evil-spirit/adjacent-go/constraint"
	"github.com/evil-spirit/adjacent-go/eqsys"
	"github.com/evil-spirit/adjacent-go/geom"
)

// dirty is a bitset of the five independent reasons a Sketch may need
// work, collapsed into one word while keeping each flag individually
// named and testable.
type dirty uint8

const (
	dirtyTopology dirty = 1 << iota
	dirtyConstraintTopology
	dirtyConstraints
	dirtyEntities
	dirtyLoops
)

func (d dirty) has(bit dirty) bool { return d&bit != 0 }

// Sketch owns a set of entities, a set of constraints, and the
// eqsys.System they're compiled into. Entities and constraints are
// inserted once each — re-adding the same pointer is a no-op.
type Sketch struct {
	entities    []geom.Entity
	entitySeen  map[geom.Entity]bool
	constraints []constraint.Constraint
	constrSeen  map[constraint.Constraint]bool

	flags         dirty
	suppressSolve bool

	Sys *eqsys.System

	// LastLoopReport is the result of the most recent loop analysis, run
	// whenever the loops flag is dirty.
	LastLoopReport LoopReport
}

// New returns an empty Sketch, dirty in every respect until entities or
// constraints are added and Update is called.
func New() *Sketch {
	return &Sketch{
		entitySeen: make(map[geom.Entity]bool),
		constrSeen: make(map[constraint.Constraint]bool),
		flags:      dirtyTopology | dirtyConstraintTopology | dirtyConstraints | dirtyEntities | dirtyLoops,
		Sys:        eqsys.New(),
	}
}

// markDirty ORs the given flags into the sketch's dirtiness state. Flags
// once set stay set until the next Update clears them collectively.
func (o *Sketch) markDirty(flags dirty) {
	o.flags |= flags
}

// AddEntity registers e, marking topology and entities dirty (but not
// constraint-topology or constraints — adding a bare entity with no
// constraint on it doesn't change the constraint graph). The loops flag is
// not set either, so LastLoopReport is recomputed for the new entity only
// if that flag is already dirty.
func (o *Sketch) AddEntity(e geom.Entity) {
	if o.entitySeen[e] {
		return
	}
	o.entitySeen[e] = true
	o.entities = append(o.entities, e)
	o.markDirty(dirtyTopology | dirtyEntities)
}

// AddConstraint registers c, marking constraint-topology and constraints
// dirty always, and also topology when c is a PointsCoincident (the only
// constraint kind that can fuse two previously-independent entities into
// one connected component).
func (o *Sketch) AddConstraint(c constraint.Constraint) {
	if o.constrSeen[c] {
		return
	}
	o.constrSeen[c] = true
	o.constraints = append(o.constraints, c)
	flags := dirtyConstraintTopology | dirtyConstraints
	if c.Type() == constraint.TypePointsCoincident {
		flags |= dirtyTopology
	}
	o.markDirty(flags)
}

// Entities returns the sketch's entities in insertion order.
func (o *Sketch) Entities() []geom.Entity { return o.entities }

// Constraints returns the sketch's constraints in insertion order.
func (o *Sketch) Constraints() []constraint.Constraint { return o.constraints }

// IsDirty reports whether any aspect of the sketch needs attention.
func (o *Sketch) IsDirty() bool { return o.flags != 0 }

// IsEntitiesChanged reports whether entities have been added since the
// last Update.
func (o *Sketch) IsEntitiesChanged() bool { return o.flags.has(dirtyEntities) }

// IsConstraintsChanged reports whether constraints have been added since
// the last Update.
func (o *Sketch) IsConstraintsChanged() bool { return o.flags.has(dirtyConstraints) }

// IsTopologyChanged reports whether the entity/coincidence graph has
// changed since the last Update (new entities, or a new coincidence
// fusing two entities together).
func (o *Sketch) IsTopologyChanged() bool { return o.flags.has(dirtyTopology) }

// IsLoopsChanged reports whether the sketch's cycle structure needs
// re-analysis.
func (o *Sketch) IsLoopsChanged() bool { return o.flags.has(dirtyLoops) }

// Update regenerates the equation system if the topology changed, then
// solves it unless solving is currently suppressed (a prior failed solve,
// with nothing relevant to the failure having changed since) — except a
// drag always forces a solve regardless of suppression, since a drag by
// definition means the user is actively changing the configuration.
func (o *Sketch) Update() eqsys.Outcome {
	if o.IsConstraintsChanged() || o.IsEntitiesChanged() {
		o.suppressSolve = false
	}
	if o.IsTopologyChanged() {
		o.Sys.Clear()
		o.generateEquations()
	}
	if o.IsLoopsChanged() {
		o.LastLoopReport = o.analyzeLoops()
	}

	var outcome eqsys.Outcome
	if !o.suppressSolve || o.Sys.HasDragged() {
		outcome = o.Sys.Solve()
	} else {
		outcome = eqsys.Postpone
	}
	if outcome == eqsys.DidntConverge {
		o.suppressSolve = true
	}
	o.flags = 0
	return outcome
}

// generateEquations rebuilds Sys from every entity's and constraint's own
// parameters and equations. Entities contribute only parameters (their
// coordinates/radii are free unknowns); only constraints contribute
// equations.
func (o *Sketch) generateEquations() {
	for _, e := range o.entities {
		o.Sys.AddParameters(e.Parameters())
	}
	for _, c := range o.constraints {
		o.Sys.AddParameters(c.Parameters())
		o.Sys.AddEquations(c.Equations())
	}
}
