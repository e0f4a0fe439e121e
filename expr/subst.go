// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/evil-spirit/adjacent-go/param"

// SubstParam rewrites every ParamRef(from) node in n's subtree to point at
// to instead. This is the (parameter → parameter) substitution form.
func (n *Node) SubstParam(from, to *param.Parameter) {
	if n.A != nil {
		n.A.SubstParam(from, to)
		if n.B != nil {
			n.B.SubstParam(from, to)
		}
		return
	}
	if n.Op == OpParamRef && n.Param == from {
		n.Param = to
	}
}

// SubstExpr rewrites every ParamRef(p) node in n's subtree in place into a
// copy of e's top-level shape (operator, children, parameter, value). This
// is the (parameter → expression) substitution form; together with
// SubstParam it is the only mutation the engine performs on a node after
// construction.
func (n *Node) SubstExpr(p *param.Parameter, e *Node) {
	if n.A != nil {
		n.A.SubstExpr(p, e)
		if n.B != nil {
			n.B.SubstExpr(p, e)
		}
		return
	}
	if n.Op == OpParamRef && n.Param == p {
		n.Op = e.Op
		n.A = e.A
		n.B = e.B
		n.Param = e.Param
		n.Value = e.Value
	}
}

// IsSubstitutionForm reports whether n is shaped (p_a - p_b): root Sub with
// both children ParamRef. Such equations are cheap to eliminate before
// numeric solving (see eqsys.solveBySubstitution).
func (n *Node) IsSubstitutionForm() bool {
	return n.Op == OpSub && n.A.Op == OpParamRef && n.B.Op == OpParamRef
}

// SubstitutionParamA returns the left parameter of a substitution-form
// equation, or nil if n isn't one.
func (n *Node) SubstitutionParamA() *param.Parameter {
	if !n.IsSubstitutionForm() {
		return nil
	}
	return n.A.Param
}

// SubstitutionParamB returns the right parameter of a substitution-form
// equation, or nil if n isn't one.
func (n *Node) SubstitutionParamB() *param.Parameter {
	if !n.IsSubstitutionForm() {
		return nil
	}
	return n.B.Param
}
