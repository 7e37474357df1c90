// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gosl/la"

	"github.com/dorival/monad/internal/merr"
)

// LinearTransport is an immutable DxD symmetric positive-definite
// tensor K relating a gradient field to a flux: J = -K.grad(phi) (or
// +K.grad(phi), depending on the paired solver's gradient-sign
// convention).
type LinearTransport struct {
	Dim int
	K   [][]float64
}

// NewLinearTransportIsotropic builds K = k*Identity.
func NewLinearTransportIsotropic(dim int, k float64) (*LinearTransport, error) {
	const op = "NewLinearTransportIsotropic"
	if k <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "k (%g) must be positive", k)
	}
	K := la.MatAlloc(dim, dim)
	for i := range K {
		K[i][i] = k
	}
	return &LinearTransport{Dim: dim, K: K}, nil
}

// NewLinearTransportFull builds a transport material from a full
// symmetric PD tensor K.
func NewLinearTransportFull(K [][]float64) (*LinearTransport, error) {
	const op = "NewLinearTransportFull"
	if !IsPD(K) {
		return nil, merr.New(merr.InvalidArgument, op, "K must be symmetric positive definite")
	}
	return &LinearTransport{Dim: len(K), K: K}, nil
}

func (m *LinearTransport) Voigt(densities []float64) ([][]float64, error) {
	mean, err := ArithmeticMean(densities)
	if err != nil {
		return nil, err
	}
	return scaleMatrix(m.K, mean), nil
}

func (m *LinearTransport) Reuss(densities []float64) ([][]float64, error) {
	mean, err := HarmonicMean(densities)
	if err != nil {
		return nil, err
	}
	return scaleMatrix(m.K, mean), nil
}

// The generic scalar-transport tensor K above is the same object
// under every physical law of the form flux = +-K.grad(potential);
// these aliases restore the reference library's physically-named
// solver targets so each is independently constructible and testable
// under its own name rather than the generic "transport" label.
//
//   - LinearDielectric:           D = -K.grad(phi)   (Gauss's law)
//   - LinearElectricalConductive: J = -K.grad(phi)   (Ohm's law)
//   - LinearMagnetic:             B = -K.grad(phi)    (magnetic scalar potential)
//   - LinearMassDiffusive:        J = +K.grad(phi)   (Fick's law)
//   - LinearPorous:               q = +K.grad(phi)    (Darcy's law)
//   - LinearThermalConductive:    q = +K.grad(phi)    (Fourier's law)
type (
	LinearDielectric           = LinearTransport
	LinearElectricalConductive = LinearTransport
	LinearMagnetic              = LinearTransport
	LinearMassDiffusive          = LinearTransport
	LinearPorous                 = LinearTransport
	LinearThermalConductive       = LinearTransport
)
