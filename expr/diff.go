// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/evil-spirit/adjacent-go/param"

// Diff returns d(n)/d(p), a freshly-built expression sharing subtrees with
// n wherever the derivative doesn't need to touch them.
func (n *Node) Diff(p *param.Parameter) *Node {
	switch n.Op {
	case OpConst:
		return Zero
	case OpParamRef:
		if n.Param == p {
			return One
		}
		return Zero
	case OpAdd:
		return AddN(n.A.Diff(p), n.B.Diff(p))
	case OpSub, OpDrag:
		return SubN(n.A.Diff(p), n.B.Diff(p))
	case OpMul:
		return AddN(MulN(n.A.Diff(p), n.B), MulN(n.A, n.B.Diff(p)))
	case OpDiv:
		return DivN(SubN(MulN(n.A.Diff(p), n.B), MulN(n.A, n.B.Diff(p))), Sqr(n.B))
	case OpNeg:
		return Neg(n.A.Diff(p))
	case OpSin:
		return MulN(n.A.Diff(p), Cos(n.A))
	case OpCos:
		return MulN(n.A.Diff(p), Neg(Sin(n.A)))
	case OpASin:
		return DivN(n.A.Diff(p), Sqrt(SubN(One, Sqr(n.A))))
	case OpACos:
		return MulN(n.A.Diff(p), DivN(MOne, Sqrt(SubN(One, Sqr(n.A)))))
	case OpSqrt:
		return DivN(n.A.Diff(p), MulN(Two, Sqrt(n.A)))
	case OpSqr:
		return MulN(n.A.Diff(p), MulN(Two, n.A))
	case OpAbs:
		return MulN(n.A.Diff(p), Sign(n.A))
	case OpSign:
		return Zero
	case OpAtan2:
		// Atan2(y=A, x=B); d/dp = (x*y' - y*x') / (x^2 + y^2)
		return DivN(SubN(MulN(n.B, n.A.Diff(p)), MulN(n.A, n.B.Diff(p))), AddN(Sqr(n.A), Sqr(n.B)))
	case OpExp:
		return MulN(n.A.Diff(p), Exp(n.A))
	case OpSinh:
		return MulN(n.A.Diff(p), Cosh(n.A))
	case OpCosh:
		return MulN(n.A.Diff(p), Sinh(n.A))
	case OpSFres:
		return MulN(n.A.Diff(p), Sin(DivN(MulN(Pi, Sqr(n.A)), Two)))
	case OpCFres:
		return MulN(n.A.Diff(p), Cos(DivN(MulN(Pi, Sqr(n.A)), Two)))
	}
	return Zero
}
