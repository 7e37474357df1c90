// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

// JacobiPreconditioner is the diagonal preconditioner diag[g] = sum
// over (element i, local dof j) mapping to reduced dof g of
// rho_i*Kr[j][j], computed once at construction time.
type JacobiPreconditioner struct {
	diag []float64
}

// NewJacobiPreconditioner assembles the diagonal from the operator's
// element reference stiffness and density array.
func NewJacobiPreconditioner(o *Operator) *JacobiPreconditioner {
	diag := make([]float64, o.numReduced)
	numElements := o.g.NumElements()
	for i := 0; i < numElements; i++ {
		dofs := o.elementDofs[i]
		rho := o.g.Density(i)
		for j, g := range dofs {
			if g >= 0 {
				diag[g] += rho * o.Kr[j][j]
			}
		}
	}
	return &JacobiPreconditioner{diag: diag}
}

// Solve applies the elementwise inverse: out[i] = b[i]/diag[i].
func (p *JacobiPreconditioner) Solve(b []float64) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		out[i] = v / p.diag[i]
	}
	return out
}
