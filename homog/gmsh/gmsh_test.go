// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmsh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dorival/monad/homog/grid"
)

func Test_save_grid_sections_present_and_ordered(tst *testing.T) {
	chk.PrintTitle("SaveGrid emits the four sections in order")

	g, err := grid.NewQuad4Grid([2]int{2, 2}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesConstant(0.5)

	var buf bytes.Buffer
	if err := SaveGrid(&buf, g); err != nil {
		tst.Errorf("SaveGrid failed: %v\n", err)
		return
	}
	out := buf.String()
	sections := []string{"$MeshFormat", "$EndMeshFormat", "$Nodes", "$EndNodes", "$Elements", "$EndElements", "$ElementData", "$EndElementData"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			tst.Errorf("missing section %q\n", s)
			continue
		}
		if idx < last {
			tst.Errorf("section %q appears out of order\n", s)
		}
		last = idx
	}
}

func Test_save_grid_node_and_element_counts(tst *testing.T) {
	chk.PrintTitle("SaveGrid reports the grid's own node/element counts")

	g, err := grid.NewQuad4Grid([2]int{3, 2}, [2]float64{3, 2})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	g.SetDensitiesConstant(0.5)

	var buf bytes.Buffer
	if err := SaveGrid(&buf, g); err != nil {
		tst.Errorf("SaveGrid failed: %v\n", err)
		return
	}
	out := buf.String()
	if !strings.Contains(out, "2 1 0 12\n") {
		tst.Errorf("$Nodes entity block should report 12 nodes for a 3x2 grid, got:\n%s\n", out)
	}
	if !strings.Contains(out, "2 1 3 6\n") {
		tst.Errorf("$Elements entity block should report 6 Quad4 elements, got:\n%s\n", out)
	}
}

func Test_write_gmsh_densities_floors_numerical_zero(tst *testing.T) {
	chk.PrintTitle("WriteGmshDensities reports the NumericalZero floor as exactly 0")

	g, err := grid.NewQuad4Grid([2]int{1, 1}, [2]float64{1, 1})
	if err != nil {
		tst.Errorf("NewQuad4Grid failed: %v\n", err)
		return
	}
	if err := g.SetDensity(0, 0); err != nil {
		tst.Errorf("SetDensity failed: %v\n", err)
		return
	}

	var buf bytes.Buffer
	if err := WriteGmshDensities(&buf, g); err != nil {
		tst.Errorf("WriteGmshDensities failed: %v\n", err)
		return
	}
	if !strings.Contains(buf.String(), "1 0\n") {
		tst.Errorf("expected element 1 density to print as exactly 0, got:\n%s\n", buf.String())
	}
}

func Test_write_gmsh_nodal_field_rejects_bad_width(tst *testing.T) {
	chk.PrintTitle("WriteGmshNodalField rejects a field with an unsupported column count")

	field := [][]float64{{1, 2, 3, 4}}
	var buf bytes.Buffer
	if err := WriteGmshNodalField(&buf, field, "bad"); err == nil {
		tst.Errorf("expected an error for a 4-column field\n")
	}
}

func Test_write_gmsh_nodal_field_pads_2d_vectors(tst *testing.T) {
	chk.PrintTitle("WriteGmshNodalField pads a 2-column vector field with a zero z-component")

	field := [][]float64{{1, 2}, {3, 4}}
	var buf bytes.Buffer
	if err := WriteGmshNodalField(&buf, field, "u"); err != nil {
		tst.Errorf("WriteGmshNodalField failed: %v\n", err)
		return
	}
	if !strings.Contains(buf.String(), "1 1 2 0\n") {
		tst.Errorf("expected node 1 row padded with a zero z-component, got:\n%s\n", buf.String())
	}
}
