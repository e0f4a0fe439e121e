// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"math"

	"github.com/evil-spirit/adjacent-go/param"
)

// solveBySubstitution scans the working equations for substitution-form
// pairs (p_a − p_b) whose current values already agree to within Epsilon,
// and eliminates one parameter of each pair before the numeric solve. It
// mutates o.equations and o.currentParams in place and returns the
// resulting b→a reduction map.
func (o *System) solveBySubstitution() map[*param.Parameter]*param.Parameter {
	subs := make(map[*param.Parameter]*param.Parameter)
	for i := 0; i < len(o.equations); i++ {
		eq := o.equations[i]
		if !eq.IsSubstitutionForm() {
			continue
		}
		a := eq.SubstitutionParamA()
		b := eq.SubstitutionParamB()
		if math.Abs(a.Value-b.Value) > Epsilon {
			continue
		}
		// the variable eliminated (b) must be the one still present among
		// the working parameters
		if o.currentParams.Index(b) < 0 {
			a, b = b, a
		}

		for k, v := range subs {
			if v == b {
				subs[k] = a
			}
		}
		subs[b] = a

		o.equations = append(o.equations[:i], o.equations[i+1:]...)
		i--

		if idx := o.currentParams.Index(b); idx >= 0 {
			o.currentParams = append(o.currentParams[:idx], o.currentParams[idx+1:]...)
		}
		for _, e := range o.equations {
			e.SubstParam(b, a)
		}
	}
	return subs
}

// backSubstitute writes value(b) := value(a) for every b→a pair the
// reduction map recorded, restoring the eliminated parameters once the
// working system has converged.
func (o *System) backSubstitute() {
	if len(o.subs) == 0 {
		return
	}
	for _, p := range o.parameters {
		if a, ok := o.subs[p]; ok {
			p.SetValue(a.Value)
		}
	}
}
