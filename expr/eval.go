// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// divZeroGuard is the magnitude below which a denominator is replaced by 1
// at evaluation time, so a Newton step that momentarily passes through a singular point
// doesn't propagate NaN. This is solver-robustness policy, not a
// mathematical identity.
const divZeroGuard = 1e-10

// Eval walks the DAG and returns its numeric value. No memoization: the DAG
// is small and Jacobian evaluation dominates recomputation cost.
func (n *Node) Eval() float64 {
	switch n.Op {
	case OpConst:
		return n.Value
	case OpParamRef:
		return n.Param.Value
	case OpAdd:
		return n.A.Eval() + n.B.Eval()
	case OpSub, OpDrag:
		return n.A.Eval() - n.B.Eval()
	case OpMul:
		return n.A.Eval() * n.B.Eval()
	case OpDiv:
		bv := n.B.Eval()
		if math.Abs(bv) < divZeroGuard {
			bv = 1.0
		}
		return n.A.Eval() / bv
	case OpNeg:
		return -n.A.Eval()
	case OpSin:
		return math.Sin(n.A.Eval())
	case OpCos:
		return math.Cos(n.A.Eval())
	case OpASin:
		return math.Asin(n.A.Eval())
	case OpACos:
		return math.Acos(n.A.Eval())
	case OpSqrt:
		return math.Sqrt(n.A.Eval())
	case OpSqr:
		av := n.A.Eval()
		return av * av
	case OpAbs:
		return math.Abs(n.A.Eval())
	case OpSign:
		return signOf(n.A.Eval())
	case OpAtan2:
		return math.Atan2(n.A.Eval(), n.B.Eval())
	case OpExp:
		return math.Exp(n.A.Eval())
	case OpSinh:
		return math.Sinh(n.A.Eval())
	case OpCosh:
		return math.Cosh(n.A.Eval())
	case OpSFres:
		return sFres(n.A.Eval())
	case OpCFres:
		return cFres(n.A.Eval())
	}
	return 0
}

func signOf(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
