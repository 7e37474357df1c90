// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gmsh writes periodic unit-cell grids and nodal fields in the
// Gmsh 4.1 ASCII mesh format, for external visualization only; nothing
// in the homogenization engine reads this format back in.
package gmsh

import (
	"fmt"
	"io"

	"github.com/dorival/monad/homog/grid"
	"github.com/dorival/monad/internal/merr"
)

// WriteGmshHeader writes the $MeshFormat section for format version
// 4.1, ASCII, 8-byte size tag.
func WriteGmshHeader(w io.Writer) error {
	_, err := fmt.Fprint(w, "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n")
	return err
}

// WriteGmshNodes writes the $Nodes section: one entity block covering
// every standard node of g, tagged 1..NumNodes.
func WriteGmshNodes(w io.Writer, g grid.Grid) error {
	n := g.NumNodes()
	dim := g.Dim()
	if _, err := fmt.Fprintf(w, "$Nodes\n1 %d 1 %d\n%d 1 0 %d\n", n, n, dim, n); err != nil {
		return err
	}
	for tag := 1; tag <= n; tag++ {
		if _, err := fmt.Fprintf(w, "%d\n", tag); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		node := g.Node(i)
		x, y, z := node[0], node[1], 0.0
		if dim == 3 {
			z = node[2]
		}
		if _, err := fmt.Fprintf(w, "%g %g %g\n", x, y, z); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "$EndNodes\n")
	return err
}

// WriteGmshElements writes the $Elements section, reordering each
// element's standard node list per the element kind's Gmsh node
// convention.
func WriteGmshElements(w io.Writer, g grid.Grid) error {
	n := g.NumElements()
	kind := g.ElementKind()
	gmshType := kind.GmshType()
	order := kind.GmshOrder()
	if _, err := fmt.Fprintf(w, "$Elements\n1 %d 1 %d\n%d 1 %d %d\n", n, n, g.Dim(), gmshType, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		element := g.Element(i)
		if _, err := fmt.Fprintf(w, "%d", i+1); err != nil {
			return err
		}
		for _, j := range order {
			if _, err := fmt.Fprintf(w, " %d", element[j]+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "$EndElements\n")
	return err
}

// WriteGmshDensities writes the $ElementData section carrying one
// scalar per element, its density; densities at the floor
// grid.NumericalZero are reported as exactly 0 for cleaner output.
func WriteGmshDensities(w io.Writer, g grid.Grid) error {
	n := g.NumElements()
	if _, err := fmt.Fprintf(w, "$ElementData\n1\n\"Density\"\n0\n3\n0\n1\n%d\n", n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		value := g.Density(i)
		if value <= grid.NumericalZero {
			value = 0
		}
		if _, err := fmt.Fprintf(w, "%d %g\n", i+1, value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "$EndElementData\n")
	return err
}

// WriteGmshNodalField writes the $NodeData section for a scalar (1
// column) or vector (2 or 3 column) nodal field, with an optional name
// tag. 2-column vectors are padded with a zero z-component.
func WriteGmshNodalField(w io.Writer, field [][]float64, name string) error {
	const op = "WriteGmshNodalField"
	if len(field) == 0 {
		return merr.New(merr.InvalidArgument, op, "field has no rows")
	}
	cols := len(field[0])
	if cols != 1 && cols != 2 && cols != 3 {
		return merr.New(merr.InvalidArgument, op, "field number of columns (%d) must be 1, 2, or 3", cols)
	}

	numStringTags := 0
	if name != "" {
		numStringTags = 1
	}
	if _, err := fmt.Fprintf(w, "$NodeData\n%d\n", numStringTags); err != nil {
		return err
	}
	if numStringTags == 1 {
		if _, err := fmt.Fprintf(w, "%q\n", name); err != nil {
			return err
		}
	}
	dataDim := 3
	if cols == 1 {
		dataDim = 1
	}
	if _, err := fmt.Fprintf(w, "0\n3\n0\n%d\n%d\n", dataDim, len(field)); err != nil {
		return err
	}
	for i, row := range field {
		if _, err := fmt.Fprintf(w, "%d", i+1); err != nil {
			return err
		}
		for _, v := range row {
			if _, err := fmt.Fprintf(w, " %g", v); err != nil {
				return err
			}
		}
		if cols == 2 {
			if _, err := fmt.Fprint(w, " 0"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "$EndNodeData\n")
	return err
}

// SaveGrid writes header, nodes, elements and densities, in that
// order, composing the four section writers above.
func SaveGrid(w io.Writer, g grid.Grid) error {
	if err := WriteGmshHeader(w); err != nil {
		return err
	}
	if err := WriteGmshNodes(w, g); err != nil {
		return err
	}
	if err := WriteGmshElements(w, g); err != nil {
		return err
	}
	return WriteGmshDensities(w, g)
}

// SaveGridAndField composes SaveGrid with one or more named nodal
// field sections, for visualizing solver results on top of the grid.
func SaveGridAndField(w io.Writer, g grid.Grid, fields map[string][][]float64) error {
	if err := SaveGrid(w, g); err != nil {
		return err
	}
	for name, field := range fields {
		if err := WriteGmshNodalField(w, field, name); err != nil {
			return err
		}
	}
	return nil
}
