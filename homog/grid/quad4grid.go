// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// Quad4Grid is a structured grid of Quad4 elements.
type Quad4Grid struct {
	density
	nx, ny int
	lx, ly float64
}

// NewQuad4Grid builds a grid of resolution (nx,ny) spanning size
// (lx,ly), with densities initialized to the floor NumericalZero.
func NewQuad4Grid(resolution [2]int, size [2]float64) (*Quad4Grid, error) {
	const op = "NewQuad4Grid"
	nx, ny := resolution[0], resolution[1]
	lx, ly := size[0], size[1]
	if nx <= 0 || ny <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "resolution (%d,%d) must be positive", nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "size (%g,%g) must be positive", lx, ly)
	}
	g := &Quad4Grid{density: newDensity(nx * ny), nx: nx, ny: ny, lx: lx, ly: ly}
	g.setConstant(0)
	return g, nil
}

func (g *Quad4Grid) Dim() int               { return 2 }
func (g *Quad4Grid) ElementKind() elem.Element { return elem.Quad4{} }
func (g *Quad4Grid) Resolution() []int      { return []int{g.nx, g.ny} }
func (g *Quad4Grid) Size() []float64        { return []float64{g.lx, g.ly} }
func (g *Quad4Grid) NumElements() int       { return g.nx * g.ny }
func (g *Quad4Grid) NumNodes() int          { return (g.nx + 1) * (g.ny + 1) }
func (g *Quad4Grid) NumPeriodicNodes() int  { return g.nx * g.ny }

func (g *Quad4Grid) dx() float64 { return g.lx / float64(g.nx) }
func (g *Quad4Grid) dy() float64 { return g.ly / float64(g.ny) }

func (g *Quad4Grid) Node(index int) []float64 {
	i := index % (g.nx + 1)
	j := index / (g.nx + 1)
	return []float64{float64(i) * g.dx(), float64(j) * g.dy()}
}

func (g *Quad4Grid) standardNodeIndex(i, j int) int { return j*(g.nx+1) + i }

func (g *Quad4Grid) Element(index int) []int {
	i := index % g.nx
	j := index / g.nx
	return []int{
		g.standardNodeIndex(i, j),
		g.standardNodeIndex(i+1, j),
		g.standardNodeIndex(i+1, j+1),
		g.standardNodeIndex(i, j+1),
	}
}

func (g *Quad4Grid) periodicNodeIndex(i, j int) int {
	return (j%g.ny)*g.nx + (i % g.nx)
}

func (g *Quad4Grid) PeriodicElement(index int) []int {
	i := index % g.nx
	j := index / g.nx
	return []int{
		g.periodicNodeIndex(i, j),
		g.periodicNodeIndex(i+1, j),
		g.periodicNodeIndex(i+1, j+1),
		g.periodicNodeIndex(i, j+1),
	}
}

func (g *Quad4Grid) ElementNodes(index int) [][]float64 {
	nodes := g.Element(index)
	out := make([][]float64, len(nodes))
	for k, n := range nodes {
		i := n % (g.nx + 1)
		j := n / (g.nx + 1)
		out[k] = []float64{float64(i) * g.dx(), float64(j) * g.dy()}
	}
	return out
}

func (g *Quad4Grid) Density(i int) float64 { return g.get(i) }

func (g *Quad4Grid) SetDensity(i int, rho float64) error {
	return g.set("Quad4Grid.SetDensity", i, rho)
}

func (g *Quad4Grid) SetDensities(values []float64) error {
	return g.setAll("Quad4Grid.SetDensities", values)
}

func (g *Quad4Grid) SetDensitiesConstant(value float64) { g.setConstant(value) }
func (g *Quad4Grid) SetDensitiesZeros()                 { g.setConstant(0) }
func (g *Quad4Grid) SetDensitiesOnes()                  { g.setConstant(1) }

func (g *Quad4Grid) SetDensitiesRandom(seed int) {
	FillRandom(g.rho, seed)
}

func (g *Quad4Grid) SetDensitiesFunction(f fun.Func) error {
	values, err := FillFunction(elem.Quad4{}, g.ElementNodes, g.NumElements(), f)
	if err != nil {
		return err
	}
	return g.setAll("Quad4Grid.SetDensitiesFunction", values)
}

func (g *Quad4Grid) SetDensitiesFile(path string) error {
	values, err := LoadCSV2D(path, g.nx, g.ny)
	if err != nil {
		return err
	}
	return g.setAll("Quad4Grid.SetDensitiesFile", values)
}

func (g *Quad4Grid) Densities() []float64 { return g.values() }

// Translate circularly shifts the density array by shift element
// counts along each axis.
func (g *Quad4Grid) Translate(shift [2]int) {
	g.rho = Translate2D(g.rho, g.nx, g.ny, shift)
}

func (g *Quad4Grid) Measure() float64 {
	return elem.Measure(elem.Quad4{}, g.ElementNodes(0)) * float64(g.NumElements())
}

// Area is the 2D measure, named per the reference library's
// Grid2dBase::area().
func (g *Quad4Grid) Area() float64 { return g.Measure() }
