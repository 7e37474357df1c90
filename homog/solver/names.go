// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/dorival/monad/homog/kernel"
	"github.com/dorival/monad/homog/material"
)

// NewElasticitySolver builds the policy+solver pair for a linear
// elastic homogenization.
func NewElasticitySolver(dim int, mat *material.LinearElastic, numWorkers int) *PeriodicCellSolver {
	return &PeriodicCellSolver{Policy: &ElasticPolicy{Dim: dim, Material: mat}, NumWorkers: numWorkers}
}

// NewPiezoelectricitySolver builds the policy+solver pair for a
// coupled linear piezoelectric homogenization.
func NewPiezoelectricitySolver(dim int, mat *material.LinearPiezoelectric, numWorkers int) *PeriodicCellSolver {
	return &PeriodicCellSolver{Policy: &PiezoPolicy{Dim: dim, Material: mat}, NumWorkers: numWorkers}
}

// The six physically-named scalar-transport solvers mirror
// material.LinearTransport's own naming aliases, each fixing the
// GradientConvention appropriate to its physical law.

func NewDielectricSolver(dim int, mat *material.LinearDielectric, numWorkers int) *PeriodicCellSolver {
	return transportSolver(dim, mat, kernel.GradientNegative, numWorkers)
}

func NewElectricalConductiveSolver(dim int, mat *material.LinearElectricalConductive, numWorkers int) *PeriodicCellSolver {
	return transportSolver(dim, mat, kernel.GradientNegative, numWorkers)
}

func NewMagneticSolver(dim int, mat *material.LinearMagnetic, numWorkers int) *PeriodicCellSolver {
	return transportSolver(dim, mat, kernel.GradientNegative, numWorkers)
}

func NewMassDiffusiveSolver(dim int, mat *material.LinearMassDiffusive, numWorkers int) *PeriodicCellSolver {
	return transportSolver(dim, mat, kernel.GradientPositive, numWorkers)
}

func NewPorousSolver(dim int, mat *material.LinearPorous, numWorkers int) *PeriodicCellSolver {
	return transportSolver(dim, mat, kernel.GradientPositive, numWorkers)
}

func NewThermalConductiveSolver(dim int, mat *material.LinearThermalConductive, numWorkers int) *PeriodicCellSolver {
	return transportSolver(dim, mat, kernel.GradientPositive, numWorkers)
}

func transportSolver(dim int, mat *material.LinearTransport, convention kernel.GradientConvention, numWorkers int) *PeriodicCellSolver {
	return &PeriodicCellSolver{
		Policy:     &TransportPolicy{Dim: dim, Convention: convention, Material: mat},
		NumWorkers: numWorkers,
	}
}
