// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const numericalZero = 1e-9

// Symmetrize returns 0.5*(A+A^T).
func Symmetrize(a [][]float64) [][]float64 {
	n := len(a)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = 0.5 * (a[i][j] + a[j][i])
		}
	}
	return out
}

// IsSymmetric reports whether a equals its transpose to within
// numericalZero.
func IsSymmetric(a [][]float64) bool {
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(a[i][j]-a[j][i]) > numericalZero {
				return false
			}
		}
	}
	return true
}

// IsPD reports whether the symmetric matrix a is positive definite, via
// a Cholesky factorization attempt.
func IsPD(a [][]float64) bool {
	if !IsSymmetric(a) {
		return false
	}
	var chol mat.Cholesky
	return chol.Factorize(toSymDense(a))
}

// Invert returns the inverse of the small symmetric positive-definite
// tensor a (elastic stiffness or transport permittivity, up to 6x6),
// via its Cholesky factorization.
func Invert(a [][]float64) ([][]float64, bool) {
	n := len(a)
	var chol mat.Cholesky
	if !chol.Factorize(toSymDense(a)) {
		return nil, false
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, false
	}
	return fromSymDense(&inv, n), true
}

func toSymDense(a [][]float64) *mat.SymDense {
	n := len(a)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = a[i][j]
		}
	}
	return mat.NewSymDense(n, data)
}

func fromSymDense(m *mat.SymDense, n int) [][]float64 {
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
