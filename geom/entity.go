// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the sketch's geometric entities — Point, Line,
// Circle — each owning its coordinate parameters and exposing the
// expressions constraints are built from.
package geom

import (
	"github.com/evil-spirit/adjacent-go/expr"
	"github.com/evil-spirit/adjacent-go/param"
)

// Entity is implemented by every geometric primitive the sketch can hold.
// TangentAt, Length and Radius may be nullable for a given entity
// kind (a Point has no tangent, length, or radius); callers test the
// accompanying bool.
type Entity interface {
	// Parameters returns the parameters this entity exposes to the solver.
	// For 2D sketches this is x/y only — z is carried as data but never
	// contributed.
	Parameters() param.Set

	// PointOn parameterizes the entity by t∈[0,1]. A Point ignores t.
	PointOn(t *expr.Node) expr.Vec

	// TangentAt returns the direction vector at parameter t. ok is false
	// for a Point.
	TangentAt(t *expr.Node) (v expr.Vec, ok bool)

	// Length returns the entity's length expression, if it has one.
	Length() (e *expr.Node, ok bool)

	// Radius returns the entity's radius expression, if it has one.
	Radius() (e *expr.Node, ok bool)

	String() string
}

// Segmentary is implemented by entities with a distinguishable source and
// target point (currently only Line).
type Segmentary interface {
	Source() *Point
	Target() *Point
}
