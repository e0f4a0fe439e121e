// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eqsys implements the equation system: it holds equations and
// parameters contributed by entities and constraints, eliminates trivial
// equalities by substitution, builds a symbolic Jacobian, and drives a
// damped-free Newton iteration layered on a least-squares normal-equation
// solve.
package eqsys

// Outcome is the result of one Solve call.
type Outcome int

const (
	// OKAY means Newton converged within MaxSteps.
	OKAY Outcome = iota
	// DidntConverge means Newton exhausted MaxSteps without reaching the
	// residual tolerance on every non-drag row.
	DidntConverge
	// Redundant is reserved for equations that become tautologies under
	// substitution.
	Redundant
	// Postpone is reserved for future multi-phase solving.
	Postpone
)

func (o Outcome) String() string {
	switch o {
	case OKAY:
		return "OKAY"
	case DidntConverge:
		return "DIDNT_CONVERGE"
	case Redundant:
		return "REDUNDANT"
	case Postpone:
		return "POSTPONE"
	}
	return "UNKNOWN"
}
