// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg implements the dense linear solver the equation system
// drives its Newton normal-equation step with: Gaussian elimination with
// partial pivoting, and a Gram-Schmidt rank estimate.
package linalg

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Epsilon is the pivot-rejection threshold for Solve: a pivot magnitude
// below this is treated as a dependent (skipped) row.
const Epsilon = 1e-10

// RankEpsilon is the squared-row-norm threshold for Rank: a row whose
// residual norm after orthogonalization is at or below this does not add
// to the rank.
const RankEpsilon = 1e-8

// Rank returns the numerical rank of A via Gram-Schmidt row
// orthogonalization. A is not modified; a working copy is made.
func Rank(a [][]float64) int {
	rows := len(a)
	if rows == 0 {
		return 0
	}
	cols := len(a[0])
	work := la.MatAlloc(rows, cols)
	for r := 0; r < rows; r++ {
		copy(work[r], a[r])
	}

	rank := 0
	rowLen := make([]float64, rows)
	for i := 0; i < rows; i++ {
		for ii := 0; ii < i; ii++ {
			if rowLen[ii] <= RankEpsilon {
				continue
			}
			sum := 0.0
			for j := 0; j < cols; j++ {
				sum += work[ii][j] * work[i][j]
			}
			for j := 0; j < cols; j++ {
				work[i][j] -= work[ii][j] * sum / rowLen[ii]
			}
		}
		length := 0.0
		for j := 0; j < cols; j++ {
			length += work[i][j] * work[i][j]
		}
		if length > RankEpsilon {
			rank++
		}
		rowLen[i] = length
	}
	return rank
}

// Solve solves A·X = B for X via Gaussian elimination with partial pivoting
// by column absolute value, skipping rows whose pivot falls below Epsilon
// (treated as a dependent row; that row's variable is left at zero), then
// back-substituting from the last row to the first. A and B are copied
// before elimination; the caller's slices are untouched.
//
// Solve is not responsible for detecting inconsistency — the equation
// system's caller reports non-convergence instead.
func Solve(a [][]float64, b []float64) []float64 {
	rows := len(a)
	if rows == 0 {
		return nil
	}
	cols := len(a[0])

	A := la.MatAlloc(rows, cols)
	for r := 0; r < rows; r++ {
		copy(A[r], a[r])
	}
	B := make([]float64, rows)
	copy(B, b)
	X := make([]float64, cols)

	for r := 0; r < rows; r++ {
		mr := r
		max := 0.0
		for rr := r; rr < rows; rr++ {
			if math.Abs(A[rr][r]) <= max {
				continue
			}
			max = math.Abs(A[rr][r])
			mr = rr
		}
		if max < Epsilon {
			continue
		}
		A[r], A[mr] = A[mr], A[r]
		B[r], B[mr] = B[mr], B[r]

		for rr := r + 1; rr < rows; rr++ {
			coef := A[rr][r] / A[r][r]
			for c := 0; c < cols; c++ {
				A[rr][c] -= A[r][c] * coef
			}
			B[rr] -= B[r] * coef
		}
	}

	// Back-substitution from the last row to the first row, skipping any
	// row whose pivot was rejected above (its variable stays at zero).
	for r := rows - 1; r >= 0; r-- {
		if r >= cols || math.Abs(A[r][r]) < Epsilon {
			continue
		}
		xx := B[r]
		for c := r + 1; c < cols; c++ {
			xx -= X[c] * A[r][c]
		}
		X[r] = xx / A[r][r]
	}
	return X
}
