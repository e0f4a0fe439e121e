// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gosl/io"

// quoted wraps n.String() in parentheses unless n is a unary (already
// unambiguous) form.
func (n *Node) quoted() string {
	if n.IsUnary() {
		return n.String()
	}
	return "(" + n.String() + ")"
}

// quotedAdd wraps n.String() in parentheses only if n is additive (Add, Sub,
// Drag), to avoid redundant parens around e.g. a product.
func (n *Node) quotedAdd() string {
	if !n.IsAdditive() {
		return n.String()
	}
	return "(" + n.String() + ")"
}

// String renders n for diagnostics, e.g. "x + y * 2".
func (n *Node) String() string {
	switch n.Op {
	case OpConst:
		return io.Sf("%g", n.Value)
	case OpParamRef:
		return n.Param.Name
	case OpAdd:
		return n.A.String() + " + " + n.B.String()
	case OpSub:
		return n.A.String() + " - " + n.B.quotedAdd()
	case OpDrag:
		return n.A.String() + " ~ " + n.B.quotedAdd()
	case OpMul:
		return n.A.quotedAdd() + " * " + n.B.quotedAdd()
	case OpDiv:
		return n.A.quotedAdd() + " / " + n.B.quoted()
	case OpSin:
		return "sin(" + n.A.String() + ")"
	case OpCos:
		return "cos(" + n.A.String() + ")"
	case OpASin:
		return "asin(" + n.A.String() + ")"
	case OpACos:
		return "acos(" + n.A.String() + ")"
	case OpSqrt:
		return "sqrt(" + n.A.String() + ")"
	case OpSqr:
		return n.A.quoted() + "^2"
	case OpAbs:
		return "abs(" + n.A.String() + ")"
	case OpSign:
		return "sign(" + n.A.String() + ")"
	case OpAtan2:
		return "atan2(" + n.A.String() + ", " + n.B.String() + ")"
	case OpNeg:
		return "-" + n.A.quoted()
	case OpExp:
		return "exp(" + n.A.String() + ")"
	case OpSinh:
		return "sinh(" + n.A.String() + ")"
	case OpCosh:
		return "cosh(" + n.A.String() + ")"
	case OpSFres:
		return "sfres(" + n.A.String() + ")"
	case OpCFres:
		return "cfres(" + n.A.String() + ")"
	}
	return ""
}
