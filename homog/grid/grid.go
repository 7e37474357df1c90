// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the four structured periodic unit-cell
// grids (Quad4Grid, Quad8Grid, Hex8Grid, Hex20Grid). Each grid owns a
// per-element density array and exposes both the standard (unique
// geometric node) and periodic (lattice-identified node) views of its
// element connectivity, following the numbering conventions of the
// reference element catalogue in package elem.
package grid

import (
	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// NumericalZero is the density floor and the tolerance used by
// symmetry/PD checks throughout the homogenization engine.
const NumericalZero = 1e-9

// Grid is the contract shared by all four structured grids.
type Grid interface {
	Dim() int
	ElementKind() elem.Element
	Resolution() []int
	Size() []float64
	NumElements() int
	NumNodes() int
	NumPeriodicNodes() int
	Node(i int) []float64
	Element(i int) []int
	PeriodicElement(i int) []int
	ElementNodes(i int) [][]float64
	Density(i int) float64
	SetDensity(i int, rho float64) error
	Densities() []float64
	Measure() float64
}

// density is embedded by every concrete grid to share the validated
// per-element density array and its setters.
type density struct {
	rho []float64
}

func newDensity(n int) density {
	d := density{rho: make([]float64, n)}
	return d
}

func (d *density) get(i int) float64 { return d.rho[i] }

func (d *density) set(op string, i int, rho float64) error {
	if i < 0 || i >= len(d.rho) {
		return merr.New(merr.OutOfRange, op, "element index %d out of range [0,%d)", i, len(d.rho))
	}
	if rho < 0 || rho > 1 {
		return merr.New(merr.InvalidArgument, op, "density %g must be in [0,1]", rho)
	}
	if rho < NumericalZero {
		rho = NumericalZero
	}
	d.rho[i] = rho
	return nil
}

func (d *density) setAll(op string, values []float64) error {
	if len(values) != len(d.rho) {
		return merr.New(merr.InvalidArgument, op, "expected %d densities, got %d", len(d.rho), len(values))
	}
	for i, v := range values {
		if err := d.set(op, i, v); err != nil {
			return err
		}
	}
	return nil
}

func (d *density) setConstant(value float64) {
	for i := range d.rho {
		v := value
		if v < NumericalZero {
			v = NumericalZero
		}
		d.rho[i] = v
	}
}

func (d *density) values() []float64 {
	out := make([]float64, len(d.rho))
	copy(out, d.rho)
	return out
}
