// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_quad4grid_counts(tst *testing.T) {
	chk.PrintTitle("quad4grid counts and measure")

	g, err := NewQuad4Grid([2]int{3, 2}, [2]float64{3, 2})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	if g.NumElements() != 6 {
		tst.Errorf("NumElements: got %d, want 6\n", g.NumElements())
	}
	if g.NumNodes() != 12 {
		tst.Errorf("NumNodes: got %d, want 12\n", g.NumNodes())
	}
	if g.NumPeriodicNodes() != 6 {
		tst.Errorf("NumPeriodicNodes: got %d, want 6\n", g.NumPeriodicNodes())
	}
	chk.Scalar(tst, "Measure", 1e-13, g.Measure(), 6.0)

	// every standard node referenced by Element must have coordinates
	// consistent with Node(index).
	for e := 0; e < g.NumElements(); e++ {
		nodes := g.Element(e)
		coords := g.ElementNodes(e)
		for k, n := range nodes {
			want := g.Node(n)
			chk.Vector(tst, "node coords", 1e-13, coords[k], want)
		}
	}
}

func Test_quad4grid_periodic_wrap(tst *testing.T) {
	chk.PrintTitle("quad4grid periodic index wraps around")

	g, err := NewQuad4Grid([2]int{2, 2}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	// the last element's top-right periodic node must coincide with the
	// first element's bottom-left periodic node (cell wraps onto itself).
	last := g.PeriodicElement(g.NumElements() - 1)
	first := g.PeriodicElement(0)
	if last[2] != first[0] {
		tst.Errorf("periodic wrap: last top-right %d != first bottom-left %d\n", last[2], first[0])
	}
}

func Test_quad4grid_density_bounds(tst *testing.T) {
	chk.PrintTitle("quad4grid density validation")

	g, err := NewQuad4Grid([2]int{2, 2}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	if err := g.SetDensity(0, 1.5); err == nil {
		tst.Errorf("SetDensity should reject values above 1\n")
	}
	if err := g.SetDensity(0, -0.1); err == nil {
		tst.Errorf("SetDensity should reject negative values\n")
	}
	if err := g.SetDensity(100, 0.5); err == nil {
		tst.Errorf("SetDensity should reject out-of-range index\n")
	}
	if err := g.SetDensity(0, 0.0); err != nil {
		tst.Errorf("SetDensity(0,0) should clamp to NumericalZero, not fail: %v\n", err)
	}
	if g.Density(0) <= 0 {
		tst.Errorf("density clamped to zero should still be strictly positive (NumericalZero floor)\n")
	}
}

func Test_quad4grid_translate_preserves_total(tst *testing.T) {
	chk.PrintTitle("quad4grid translate preserves the density sum")

	g, err := NewQuad4Grid([2]int{4, 3}, [2]float64{4, 3})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesRandom(7)
	before := sum(g.Densities())
	g.Translate([2]int{2, 1})
	after := sum(g.Densities())
	chk.Scalar(tst, "sum(densities)", 1e-12, after, before)
}

func sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}
