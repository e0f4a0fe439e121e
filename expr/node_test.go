// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/evil-spirit/adjacent-go/param"
)

func Test_simplify_sub_zero(tst *testing.T) {
	chk.PrintTitle("simplify_sub_zero")
	a := NewParam(param.New("a", 3))
	chk.Scalar(tst, "a-0 is a", 0, SubN(a, Zero).Eval(), a.Eval())
	if SubN(a, Zero) != a {
		tst.Errorf("a - 0 should return a itself (sharing preserved)")
	}
}

func Test_simplify_mul_identities(tst *testing.T) {
	chk.PrintTitle("simplify_mul_identities")
	a := NewParam(param.New("a", 5))
	if MulN(a, One) != a {
		tst.Errorf("a * 1 should return a")
	}
	if MulN(One, a) != a {
		tst.Errorf("1 * a should return a")
	}
	if AddN(a, Zero) != a {
		tst.Errorf("a + 0 should return a")
	}
	if AddN(Zero, a) != a {
		tst.Errorf("0 + a should return a")
	}
	if DivN(a, One) != a {
		tst.Errorf("a / 1 should return a")
	}
	neg := MulN(MOne, a)
	if neg.Op != OpNeg || neg.A != a {
		tst.Errorf("(-1) * a should yield Neg(a), got %v", neg.String())
	}
}

func Test_derivative_const_is_zero(tst *testing.T) {
	chk.PrintTitle("derivative_const_is_zero")
	p := param.New("p", 1.23)
	c := NewConst(7)
	chk.Scalar(tst, "d(const)/dp", 1e-15, c.Diff(p).Eval(), 0)
}

func Test_derivative_paramref_is_kronecker(tst *testing.T) {
	chk.PrintTitle("derivative_paramref_is_kronecker")
	p := param.New("p", 1)
	q := param.New("q", 2)
	pr := NewParam(p)
	chk.Scalar(tst, "d(p)/dp", 1e-15, pr.Diff(p).Eval(), 1)
	chk.Scalar(tst, "d(p)/dq", 1e-15, pr.Diff(q).Eval(), 0)
}

func Test_chain_rule_sin(tst *testing.T) {
	chk.PrintTitle("chain_rule_sin")
	p := param.New("p", 0.7)
	q := param.New("q", 1.3)
	e := Sin(MulN(NewParam(p), NewParam(q)))
	ana := e.Diff(p).Eval()

	h := 1e-6
	p.Value += h
	fPlus := e.Eval()
	p.Value -= 2 * h
	fMinus := e.Eval()
	p.Value += h
	num := (fPlus - fMinus) / (2 * h)

	chk.Scalar(tst, "d(sin(p*q))/dp", 1e-6, ana, num)
	chk.Scalar(tst, "d(sin(p*q))/dp analytic form", 1e-9, ana, q.Value*math.Cos(p.Value*q.Value))
}

func Test_substitution_idempotent(tst *testing.T) {
	chk.PrintTitle("substitution_idempotent")
	p := param.New("p", 1)
	q := param.New("q", 2)
	eq := SubN(NewParam(p), NewConst(5))
	eq.SubstParam(p, q)
	firstValue := eq.Eval()
	eq.SubstParam(p, q)
	chk.Scalar(tst, "idempotent substitution", 1e-15, eq.Eval(), firstValue)
}

func Test_substitution_form_detection(tst *testing.T) {
	chk.PrintTitle("substitution_form_detection")
	p := param.New("p", 1)
	q := param.New("q", 1)
	eq := SubN(NewParam(p), NewParam(q))
	if !eq.IsSubstitutionForm() {
		tst.Errorf("p - q should be recognised as substitution form")
	}
	if eq.SubstitutionParamA() != p || eq.SubstitutionParamB() != q {
		tst.Errorf("substitution params mismatch")
	}
	notForm := SubN(NewParam(p), NewConst(1))
	if notForm.IsSubstitutionForm() {
		tst.Errorf("p - 1 should not be substitution form")
	}
}

func Test_vector_magnitude(tst *testing.T) {
	chk.PrintTitle("vector_magnitude")
	v := NewVec2(NewConst(3), NewConst(4))
	chk.Scalar(tst, "|(3,4)|", 1e-12, v.Magnitude().Eval(), 5)
}
