// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the symbolic expression DAG: arithmetic and
// transcendental nodes over named parameters, with construction-time
// algebraic simplification, evaluation, symbolic differentiation, and
// in-place substitution.
package expr

import (
	"github.com/cpmech/gosl/chk"

	"github.com/evil-spirit/adjacent-go/param"
)

// Op tags an expression node's operator.
type Op int

// The full operator set the solver's equations are built from.
const (
	OpConst Op = iota
	OpParamRef
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpSin
	OpCos
	OpASin
	OpACos
	OpSqrt
	OpSqr
	OpAbs
	OpSign
	OpAtan2
	OpExp
	OpSinh
	OpCosh
	OpSFres
	OpCFres
	OpDrag
)

// Node is a node in the expression DAG. Nodes are logically immutable after
// construction except for Subst, which rewrites a ParamRef node in place.
//
// Invariant: a Const node has no children and no parameter; a ParamRef node
// has no children and no constant value; unary ops populate only A; binary
// ops populate both A and B. Atan2's operands are (y, x).
type Node struct {
	Op    Op
	A, B  *Node
	Param *param.Parameter
	Value float64
}

// NewConst builds a constant node.
func NewConst(v float64) *Node {
	return &Node{Op: OpConst, Value: v}
}

// NewParam builds a ParamRef node over p.
func NewParam(p *param.Parameter) *Node {
	return &Node{Op: OpParamRef, Param: p}
}

// well-known constants, shared across every equation that needs a bare
// zero/one/-one/two/pi node instead of allocating its own.
var (
	Zero  = NewConst(0)
	One   = NewConst(1)
	MOne  = NewConst(-1)
	Two   = NewConst(2)
	Pi    = NewConst(piValue)
	TwoPi = NewConst(2 * piValue)
)

const piValue = 3.14159265358979323846

// IsZeroConst reports whether n is the constant 0.
func (n *Node) IsZeroConst() bool { return n.Op == OpConst && n.Value == 0 }

// IsOneConst reports whether n is the constant 1.
func (n *Node) IsOneConst() bool { return n.Op == OpConst && n.Value == 1 }

// IsMinusOneConst reports whether n is the constant -1.
func (n *Node) IsMinusOneConst() bool { return n.Op == OpConst && n.Value == -1 }

// IsConst reports whether n is any constant.
func (n *Node) IsConst() bool { return n.Op == OpConst }

// IsDrag reports whether n is a Drag node.
func (n *Node) IsDrag() bool { return n.Op == OpDrag }

// IsUnary reports whether n's operator takes a single operand.
func (n *Node) IsUnary() bool {
	switch n.Op {
	case OpConst, OpParamRef, OpSin, OpCos, OpACos, OpASin, OpSqrt, OpSqr, OpAbs, OpSign, OpNeg, OpExp, OpSinh, OpCosh, OpSFres, OpCFres:
		return true
	}
	return false
}

// IsAdditive reports whether n's operator is Add, Sub, or Drag (used to
// decide parenthesization in String).
func (n *Node) IsAdditive() bool {
	switch n.Op {
	case OpAdd, OpSub, OpDrag:
		return true
	}
	return false
}

// DependsOn reports whether n's subtree references p anywhere.
func (n *Node) DependsOn(p *param.Parameter) bool {
	if n.Op == OpParamRef {
		return n.Param == p
	}
	if n.A != nil {
		if n.B != nil {
			return n.A.DependsOn(p) || n.B.DependsOn(p)
		}
		return n.A.DependsOn(p)
	}
	return false
}

// mustBinary panics (programmer error) if a or b is nil; used by the smart
// constructors to catch misuse loudly.
func mustBinary(a, b *Node) {
	if a == nil || b == nil {
		chk.Panic("expr: binary operator requires two non-nil operands")
	}
}
