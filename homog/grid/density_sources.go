// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/rnd"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// FillRandom draws densities in [NumericalZero, 1] using a seeded RNG.
// The reference library seeds std::mt19937; Go has no portable
// equivalent, so this draws from gosl/rnd seeded the same way the
// reference seeds its own generator, and the testable properties of
// the result (symmetry, PD, Voigt/Reuss bounds, translational
// invariance of the homogenized tensor) are what must hold — not any
// specific decimal sequence.
func FillRandom(d []float64, seed int) {
	if seed >= 0 {
		rnd.Init(seed)
	} else {
		rnd.Init(0)
	}
	for i := range d {
		d[i] = NumericalZero + rnd.Float64(0, 1)*(1-NumericalZero)
	}
}

// FillFunction samples f at the physical location of each quadrature
// point of element i, integrates f(x)*|detJ| over the reference
// element and divides by the element's measure. Returns an
// InvalidArgument error if any sampled value lies outside [0,1].
func FillFunction(e elem.Element, elementNodes func(i int) [][]float64, n int, f fun.Func) ([]float64, error) {
	out := make([]float64, n)
	rule := e.QuadratureRule()
	dim := e.Dim()
	for i := 0; i < n; i++ {
		nodes := elementNodes(i)
		var integral float64
		for k, xi := range rule.Points {
			gradN := e.GradShapeFunctions(xi)
			J := elem.Jacobian(gradN, nodes)
			var detJ float64
			if dim == 2 {
				detJ = elem.Det2(J)
			} else {
				detJ = elem.Det3(J)
			}
			if detJ < 0 {
				detJ = -detJ
			}
			x := elem.PhysicalPoint(e, xi, nodes)
			v := f.F(0, x)
			if v < 0 || v > 1 {
				return nil, merr.New(merr.InvalidArgument, "SetDensitiesFunction", "sampled value %g at x=%v out of range [0,1]", v, x)
			}
			integral += rule.Weights[k] * v * detJ
		}
		measure := elem.Measure(e, nodes)
		out[i] = integral / measure
	}
	return out, nil
}
