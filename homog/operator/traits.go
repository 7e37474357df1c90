// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operator implements the matrix-free global reduced-stiffness
// action K.x, its Jacobi preconditioner, and the per-physics traits
// that map element-local dofs onto the reduced (fixed-dof-eliminated)
// index space.
package operator

// Traits is the per-physics contract that turns a periodic element's
// node list into global dofs, predicates which dofs are pinned to zero
// to remove the rigid-body/constant-mode nullspace, and provides the
// bijection between the full periodic dof space and the reduced
// (non-fixed) dof space the operator and solver actually work in.
type Traits interface {
	NumNodeDofs() int
	NumFixedDofs() int
	Dofs(periodicElement []int, numPeriodicNodes int) []int
	IsFixedDof(dof, numPeriodicNodes int) bool
	ReducedDof(dof, numPeriodicNodes int) int
	ExpandedDof(reduced, numPeriodicNodes int) int
}

// ElasticTraits fixes the origin node's Dim displacement dofs.
type ElasticTraits struct {
	Dim int
}

func (t ElasticTraits) NumNodeDofs() int  { return t.Dim }
func (t ElasticTraits) NumFixedDofs() int { return t.Dim }

func (t ElasticTraits) Dofs(periodicElement []int, numPeriodicNodes int) []int {
	dofs := make([]int, len(periodicElement)*t.Dim)
	for n, pn := range periodicElement {
		for k := 0; k < t.Dim; k++ {
			dofs[n*t.Dim+k] = pn*t.Dim + k
		}
	}
	return dofs
}

func (t ElasticTraits) IsFixedDof(dof, _ int) bool { return dof < t.Dim }

func (t ElasticTraits) ReducedDof(dof, _ int) int { return dof - t.Dim }

func (t ElasticTraits) ExpandedDof(reduced, _ int) int { return reduced + t.Dim }

// TransportTraits fixes the scalar potential at the origin node.
type TransportTraits struct{}

func (t TransportTraits) NumNodeDofs() int  { return 1 }
func (t TransportTraits) NumFixedDofs() int { return 1 }

func (t TransportTraits) Dofs(periodicElement []int, _ int) []int {
	dofs := make([]int, len(periodicElement))
	copy(dofs, periodicElement)
	return dofs
}

func (t TransportTraits) IsFixedDof(dof, _ int) bool { return dof == 0 }

func (t TransportTraits) ReducedDof(dof, _ int) int { return dof - 1 }

func (t TransportTraits) ExpandedDof(reduced, _ int) int { return reduced + 1 }

// PiezoTraits lays out global dofs as a mechanical block of size
// Dim*numPeriodicNodes (interleaved per node, as ElasticTraits) followed
// by an electrical block of size numPeriodicNodes (as TransportTraits),
// offset by Dim*numPeriodicNodes. It fixes the origin node's mechanical
// dofs and the origin node's electrical dof.
type PiezoTraits struct {
	Dim int
}

func (t PiezoTraits) NumNodeDofs() int  { return t.Dim + 1 }
func (t PiezoTraits) NumFixedDofs() int { return t.Dim + 1 }

func (t PiezoTraits) Dofs(periodicElement []int, numPeriodicNodes int) []int {
	k := len(periodicElement)
	dofs := make([]int, t.Dim*k+k)
	for n, pn := range periodicElement {
		for d := 0; d < t.Dim; d++ {
			dofs[n*t.Dim+d] = pn*t.Dim + d
		}
	}
	for n, pn := range periodicElement {
		dofs[t.Dim*k+n] = t.Dim*numPeriodicNodes + pn
	}
	return dofs
}

func (t PiezoTraits) IsFixedDof(dof, numPeriodicNodes int) bool {
	return dof < t.Dim || dof == t.Dim*numPeriodicNodes
}

func (t PiezoTraits) ReducedDof(dof, numPeriodicNodes int) int {
	if dof < t.Dim*numPeriodicNodes {
		return dof - t.Dim
	}
	return dof - t.Dim - 1
}

func (t PiezoTraits) ExpandedDof(reduced, numPeriodicNodes int) int {
	mechFree := t.Dim * (numPeriodicNodes - 1)
	if reduced < mechFree {
		return reduced + t.Dim
	}
	return reduced + t.Dim + 1
}
