// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqsys

import (
	"math"

	"github.com/evil-spirit/adjacent-go/linalg"
)

// Solve runs at most MaxSteps damped-free Newton iterations over the
// working equations, stepping with the minimum-norm least-squares solution
// of the normal equations A·Aᵀ·Z = B, X = Aᵀ·Z.
func (o *System) Solve() Outcome {
	o.updateDirty()
	o.storeParams()

	for step := 0; step < o.MaxSteps; step++ {
		isDragStep := step <= o.DragSteps
		o.eval(!isDragStep)

		if o.isConverged(isDragStep) {
			o.backSubstitute()
			return OKAY
		}

		o.evalJacobianRows(!isDragStep)
		o.solveLeastSquares()

		for i, p := range o.currentParams {
			p.SetValue(p.Value - o.x[i])
		}
	}

	if o.RevertWhenNotConverged {
		o.revertParams()
	}
	return DidntConverge
}

// eval fills o.b with each working equation's residual, zeroing drag rows
// when clearDrag is set (i.e. once the solve has moved past DragSteps).
func (o *System) eval(clearDrag bool) {
	for i, e := range o.equations {
		if clearDrag && e.IsDrag() {
			o.b[i] = 0
			continue
		}
		o.b[i] = e.Eval()
	}
}

// isConverged reports whether every residual — every row if checkDrag,
// otherwise every non-drag row — is within Epsilon of zero.
func (o *System) isConverged(checkDrag bool) bool {
	for i, e := range o.equations {
		if !checkDrag && e.IsDrag() {
			continue
		}
		if math.Abs(o.b[i]) >= Epsilon {
			return false
		}
	}
	return true
}

// evalJacobianRows numerically evaluates the symbolic Jacobian into o.a,
// zeroing drag rows when clearDrag is set.
func (o *System) evalJacobianRows(clearDrag bool) {
	o.evalJacobian(clearDrag)
}

func (o *System) evalJacobian(clearDrag bool) {
	for r, row := range o.j {
		if clearDrag && o.equations[r].IsDrag() {
			for c := range row {
				o.a[r][c] = 0
			}
			continue
		}
		for c, node := range row {
			o.a[r][c] = node.Eval()
		}
	}
}

// solveLeastSquares forms the normal equations AAT·Z = B and recovers
// X = Aᵀ·Z, the minimum-norm least-squares step for under-determined
// systems and the ordinary least-squares step for over-determined ones.
func (o *System) solveLeastSquares() {
	rows := len(o.equations)
	cols := len(o.currentParams)

	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			sum := 0.0
			for i := 0; i < cols; i++ {
				if o.a[c][i] == 0 || o.a[r][i] == 0 {
					continue
				}
				sum += o.a[r][i] * o.a[c][i]
			}
			o.aat[r][c] = sum
		}
	}

	o.z = linalg.Solve(o.aat, o.b)

	for c := 0; c < cols; c++ {
		sum := 0.0
		for r := 0; r < rows; r++ {
			sum += o.z[r] * o.a[r][c]
		}
		o.x[c] = sum
	}
}

// storeParams snapshots every source parameter's value, for revertParams.
func (o *System) storeParams() {
	for i, p := range o.parameters {
		o.oldValues[i] = p.Value
	}
}

// revertParams restores every source parameter from the last storeParams
// snapshot.
func (o *System) revertParams() {
	for i, p := range o.parameters {
		p.SetValue(o.oldValues[i])
	}
}
