// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package param implements the solver's scalar unknowns.
package param

import (
	"github.com/cpmech/gosl/io"
)

// Parameter is a named, mutable scalar unknown. Identity is by pointer: two
// handles are equal iff they refer to the same underlying Parameter, never
// by comparing Name (two parameters may legitimately share a debug name).
type Parameter struct {
	Name       string  // debug name; not used for identity or hashing
	Value      float64 // current value
	Reduceable bool    // whether constant-folding may inline this parameter once it drops out of every equation
	Changed    bool    // set by SetValue when the value actually changes; cleared by external policy
}

// New returns a new Parameter with Reduceable defaulting to true.
func New(name string, value float64) *Parameter {
	return &Parameter{
		Name:       name,
		Value:      value,
		Reduceable: true,
	}
}

// SetValue updates the parameter's value, setting Changed iff the new value
// differs from the current one.
func (o *Parameter) SetValue(v float64) {
	if v != o.Value {
		o.Changed = true
	}
	o.Value = v
}

// ClearChanged resets the Changed flag. Callers (the sketch's dirtiness
// tracker) own when this happens; Parameter itself never clears it.
func (o *Parameter) ClearChanged() {
	o.Changed = false
}

// String renders the parameter as "(name:value)", matching the debug format
// external collaborators expect.
func (o *Parameter) String() string {
	return io.Sf("(%s:%g)", o.Name, o.Value)
}

// Set is a group of parameter handles, used where a caller needs to refer
// collectively to the parameters an entity or constraint contributes.
type Set []*Parameter

// Values returns a freshly-allocated slice with each parameter's value.
func (s Set) Values() []float64 {
	vals := make([]float64, len(s))
	for i, p := range s {
		vals[i] = p.Value
	}
	return vals
}

// Index returns the position of p within s, or -1 if absent. Comparison is
// by pointer identity, not Name.
func (s Set) Index(p *Parameter) int {
	for i, q := range s {
		if q == p {
			return i
		}
	}
	return -1
}
