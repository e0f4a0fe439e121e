// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_solve_full_rank_square(tst *testing.T) {
	chk.PrintTitle("solve_full_rank_square")
	A := [][]float64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 4},
	}
	B := []float64{3, 5, 6}
	X := Solve(A, B)

	// residual ‖A·X − B‖ should be tiny
	var resid float64
	for r := 0; r < 3; r++ {
		row := 0.0
		for c := 0; c < 3; c++ {
			row += A[r][c] * X[c]
		}
		d := row - B[r]
		resid += d * d
	}
	resid = math.Sqrt(resid)
	if resid > 1e-8 {
		tst.Errorf("residual too large: %g", resid)
	}
}

func Test_solve_does_not_mutate_input(tst *testing.T) {
	chk.PrintTitle("solve_does_not_mutate_input")
	A := [][]float64{{1, 0}, {0, 1}}
	B := []float64{1, 2}
	Acopy := [][]float64{{1, 0}, {0, 1}}
	Bcopy := []float64{1, 2}
	Solve(A, B)
	for r := range A {
		for c := range A[r] {
			chk.Scalar(tst, "A unchanged", 1e-15, A[r][c], Acopy[r][c])
		}
	}
	for i := range B {
		chk.Scalar(tst, "B unchanged", 1e-15, B[i], Bcopy[i])
	}
}

func Test_rank_full(tst *testing.T) {
	chk.PrintTitle("rank_full")
	A := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	if r := Rank(A); r != 3 {
		tst.Errorf("expected rank 3, got %d", r)
	}
}

func Test_rank_deficient(tst *testing.T) {
	chk.PrintTitle("rank_deficient")
	A := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 0},
	}
	if r := Rank(A); r != 2 {
		tst.Errorf("expected rank 2, got %d", r)
	}
}
