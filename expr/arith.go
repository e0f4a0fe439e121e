// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Neg returns -a, folding constants and cancelling double negation.
func Neg(a *Node) *Node {
	if a.IsZeroConst() {
		return a
	}
	if a.IsConst() {
		return NewConst(-a.Value)
	}
	if a.Op == OpNeg {
		return a.A
	}
	return &Node{Op: OpNeg, A: a}
}

// SubN returns a - b, simplifying a-0 to a and 0-a to -a. Other forms,
// including a-a and constant-minus-constant, are built as a Sub node.
func SubN(a, b *Node) *Node {
	mustBinary(a, b)
	if a.IsZeroConst() {
		return Neg(b)
	}
	if b.IsZeroConst() {
		return a
	}
	return &Node{Op: OpSub, A: a, B: b}
}

// AddN returns a + b.
func AddN(a, b *Node) *Node {
	mustBinary(a, b)
	if a.IsZeroConst() {
		return b
	}
	if b.IsZeroConst() {
		return a
	}
	if b.Op == OpNeg {
		return SubN(a, b.A)
	}
	return &Node{Op: OpAdd, A: a, B: b}
}

// MulN returns a * b.
func MulN(a, b *Node) *Node {
	mustBinary(a, b)
	if a.IsZeroConst() || b.IsZeroConst() {
		return Zero
	}
	if a.IsOneConst() {
		return b
	}
	if b.IsOneConst() {
		return a
	}
	if a.IsMinusOneConst() {
		return Neg(b)
	}
	if b.IsMinusOneConst() {
		return Neg(a)
	}
	if a.IsConst() && b.IsConst() {
		return NewConst(a.Value * b.Value)
	}
	return &Node{Op: OpMul, A: a, B: b}
}

// DivN returns a / b.
func DivN(a, b *Node) *Node {
	mustBinary(a, b)
	if b.IsOneConst() {
		return a
	}
	if a.IsZeroConst() {
		return Zero
	}
	if b.IsMinusOneConst() {
		return Neg(a)
	}
	return &Node{Op: OpDiv, A: a, B: b}
}

func unary(op Op, a *Node) *Node {
	if a == nil {
		panic("expr: unary operator requires a non-nil operand")
	}
	return &Node{Op: op, A: a}
}

func Sin(a *Node) *Node   { return unary(OpSin, a) }
func Cos(a *Node) *Node   { return unary(OpCos, a) }
func ASin(a *Node) *Node  { return unary(OpASin, a) }
func ACos(a *Node) *Node  { return unary(OpACos, a) }
func Sqrt(a *Node) *Node  { return unary(OpSqrt, a) }
func Sqr(a *Node) *Node   { return unary(OpSqr, a) }
func Abs(a *Node) *Node   { return unary(OpAbs, a) }
func Sign(a *Node) *Node  { return unary(OpSign, a) }
func Exp(a *Node) *Node   { return unary(OpExp, a) }
func Sinh(a *Node) *Node  { return unary(OpSinh, a) }
func Cosh(a *Node) *Node  { return unary(OpCosh, a) }
func SFres(a *Node) *Node { return unary(OpSFres, a) }
func CFres(a *Node) *Node { return unary(OpCFres, a) }

// Atan2 returns atan2(y, x); operand order matches standard convention.
func Atan2(y, x *Node) *Node {
	mustBinary(y, x)
	return &Node{Op: OpAtan2, A: y, B: x}
}

// DragTo builds a soft equation a ≈ b: arithmetically Sub, but flagged so
// the Newton solver can down-weight it (see eqsys package).
func DragTo(a, b *Node) *Node {
	mustBinary(a, b)
	return &Node{Op: OpDrag, A: a, B: b}
}
