// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operator

import (
	"sync"

	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/internal/merr"
)

// Operator represents the action y = K.x of the global reduced
// stiffness on the reduced unconstrained-dof vector, without ever
// assembling the sparse matrix. Kr is the element reference stiffness
// at unit density, shared by every element of the grid; per-element
// scaling comes from the grid's own density array.
type Operator struct {
	g           grid.Grid
	traits      Traits
	Kr          [][]float64
	elementDofs [][]int
	numReduced  int
	numWorkers  int
}

// New precomputes, for every element, the reduced dof index (or -1 for
// a dof pinned to zero) at each local position of Kr, following the
// traits' dof layout and fixed-dof predicate.
func New(g grid.Grid, traits Traits, Kr [][]float64, numWorkers int) (*Operator, error) {
	const op = "operator.New"
	numPeriodic := g.NumPeriodicNodes()
	numReduced := traits.NumNodeDofs()*numPeriodic - traits.NumFixedDofs()
	if numReduced <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "reduced dimension %d is not positive", numReduced)
	}
	numElements := g.NumElements()
	elementDofs := make([][]int, numElements)
	for i := 0; i < numElements; i++ {
		pn := g.PeriodicElement(i)
		dofs := traits.Dofs(pn, numPeriodic)
		reduced := make([]int, len(dofs))
		for j, d := range dofs {
			if traits.IsFixedDof(d, numPeriodic) {
				reduced[j] = -1
			} else {
				reduced[j] = traits.ReducedDof(d, numPeriodic)
			}
		}
		elementDofs[i] = reduced
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Operator{g: g, traits: traits, Kr: Kr, elementDofs: elementDofs, numReduced: numReduced, numWorkers: numWorkers}, nil
}

// Dim returns the reduced dof count, i.e. the size of the vectors
// Apply operates on.
func (o *Operator) Dim() int { return o.numReduced }

// ElementDofs returns the reduced dof indices for element i, -1 where
// the local dof is pinned to zero.
func (o *Operator) ElementDofs(i int) []int { return o.elementDofs[i] }

// Grid returns the grid the operator was built against.
func (o *Operator) Grid() grid.Grid { return o.g }

// Apply computes y = K.x by gathering each element's local vector from
// x, applying rho_i*Kr, and scattering into y. Elements are partitioned
// across a bounded worker pool; each worker accumulates into its own
// buffer, which are summed after all workers finish, so the hot path
// never touches an atomic or a shared lock.
func (o *Operator) Apply(x []float64) []float64 {
	numElements := o.g.NumElements()
	workers := o.numWorkers
	if workers > numElements {
		workers = numElements
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (numElements + workers - 1) / workers
	partials := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > numElements {
			end = numElements
		}
		if start >= end {
			continue
		}
		partials[w] = make([]float64, o.numReduced)
		wg.Add(1)
		go func(start, end int, y []float64) {
			defer wg.Done()
			for i := start; i < end; i++ {
				dofs := o.elementDofs[i]
				n := len(dofs)
				xl := make([]float64, n)
				for j, g := range dofs {
					if g >= 0 {
						xl[j] = x[g]
					}
				}
				rho := o.g.Density(i)
				yl := make([]float64, n)
				la.MatVecMul(yl, 1, o.Kr, xl) // yl = Kr . xl
				for j, g := range dofs {
					if g >= 0 {
						y[g] += rho * yl[j]
					}
				}
			}
		}(start, end, partials[w])
	}
	wg.Wait()
	y := make([]float64, o.numReduced)
	for _, p := range partials {
		if p == nil {
			continue
		}
		for g, v := range p {
			y[g] += v
		}
	}
	return y
}
