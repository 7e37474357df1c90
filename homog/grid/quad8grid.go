// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// Quad8Grid is a structured grid of Quad8 elements. Standard nodes
// are corner nodes, then x-direction edge midpoints, then y-direction
// edge midpoints; periodic nodes are three families of size nx*ny:
// corners, x-mids, y-mids.
type Quad8Grid struct {
	density
	nx, ny int
	lx, ly float64
}

func NewQuad8Grid(resolution [2]int, size [2]float64) (*Quad8Grid, error) {
	const op = "NewQuad8Grid"
	nx, ny := resolution[0], resolution[1]
	lx, ly := size[0], size[1]
	if nx <= 0 || ny <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "resolution (%d,%d) must be positive", nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "size (%g,%g) must be positive", lx, ly)
	}
	g := &Quad8Grid{density: newDensity(nx * ny), nx: nx, ny: ny, lx: lx, ly: ly}
	g.setConstant(0)
	return g, nil
}

func (g *Quad8Grid) Dim() int                  { return 2 }
func (g *Quad8Grid) ElementKind() elem.Element { return elem.Quad8{} }
func (g *Quad8Grid) Resolution() []int         { return []int{g.nx, g.ny} }
func (g *Quad8Grid) Size() []float64           { return []float64{g.lx, g.ly} }
func (g *Quad8Grid) NumElements() int          { return g.nx * g.ny }

func (g *Quad8Grid) cornerNodes() int { return (g.nx + 1) * (g.ny + 1) }
func (g *Quad8Grid) xMidNodes() int   { return g.nx * (g.ny + 1) }
func (g *Quad8Grid) yMidNodes() int   { return (g.nx + 1) * g.ny }

func (g *Quad8Grid) NumNodes() int         { return g.cornerNodes() + g.xMidNodes() + g.yMidNodes() }
func (g *Quad8Grid) NumPeriodicNodes() int { return 3 * g.NumElements() }

func (g *Quad8Grid) dx() float64 { return g.lx / float64(g.nx) }
func (g *Quad8Grid) dy() float64 { return g.ly / float64(g.ny) }

func (g *Quad8Grid) Node(index int) []float64 {
	corner := g.cornerNodes()
	xmid := g.xMidNodes()
	switch {
	case index < corner:
		i := index % (g.nx + 1)
		j := index / (g.nx + 1)
		return []float64{float64(i) * g.dx(), float64(j) * g.dy()}
	case index < corner+xmid:
		idx := index - corner
		i := idx % g.nx
		j := idx / g.nx
		return []float64{(float64(i) + 0.5) * g.dx(), float64(j) * g.dy()}
	default:
		idx := index - corner - xmid
		i := idx % (g.nx + 1)
		j := idx / (g.nx + 1)
		return []float64{float64(i) * g.dx(), (float64(j) + 0.5) * g.dy()}
	}
}

func (g *Quad8Grid) cornerIndex(i, j int) int { return j*(g.nx+1) + i }
func (g *Quad8Grid) xMidIndex(i, j int) int   { return g.cornerNodes() + j*g.nx + i }
func (g *Quad8Grid) yMidIndex(i, j int) int   { return g.cornerNodes() + g.xMidNodes() + j*(g.nx+1) + i }

func (g *Quad8Grid) Element(index int) []int {
	i := index % g.nx
	j := index / g.nx
	return []int{
		g.cornerIndex(i, j), g.cornerIndex(i+1, j), g.cornerIndex(i+1, j+1), g.cornerIndex(i, j+1),
		g.xMidIndex(i, j), g.yMidIndex(i+1, j), g.xMidIndex(i, j+1), g.yMidIndex(i, j),
	}
}

func (g *Quad8Grid) cornerPeriodic(i, j int) int {
	return (j%g.ny)*g.nx + (i % g.nx)
}
func (g *Quad8Grid) xMidPeriodic(i, j int) int {
	return g.NumElements() + (j%g.ny)*g.nx + (i % g.nx)
}
func (g *Quad8Grid) yMidPeriodic(i, j int) int {
	return 2*g.NumElements() + (j%g.ny)*g.nx + (i % g.nx)
}

func (g *Quad8Grid) PeriodicElement(index int) []int {
	i := index % g.nx
	j := index / g.nx
	return []int{
		g.cornerPeriodic(i, j), g.cornerPeriodic(i+1, j), g.cornerPeriodic(i+1, j+1), g.cornerPeriodic(i, j+1),
		g.xMidPeriodic(i, j), g.yMidPeriodic(i+1, j), g.xMidPeriodic(i, j+1), g.yMidPeriodic(i, j),
	}
}

func (g *Quad8Grid) ElementNodes(index int) [][]float64 {
	nodes := g.Element(index)
	out := make([][]float64, len(nodes))
	for k, n := range nodes {
		out[k] = g.Node(n)
	}
	return out
}

func (g *Quad8Grid) Density(i int) float64          { return g.get(i) }
func (g *Quad8Grid) SetDensity(i int, rho float64) error { return g.set("Quad8Grid.SetDensity", i, rho) }
func (g *Quad8Grid) SetDensities(values []float64) error { return g.setAll("Quad8Grid.SetDensities", values) }
func (g *Quad8Grid) SetDensitiesConstant(value float64)  { g.setConstant(value) }
func (g *Quad8Grid) SetDensitiesZeros()                  { g.setConstant(0) }
func (g *Quad8Grid) SetDensitiesOnes()                   { g.setConstant(1) }
func (g *Quad8Grid) SetDensitiesRandom(seed int)          { FillRandom(g.rho, seed) }

func (g *Quad8Grid) SetDensitiesFunction(f fun.Func) error {
	values, err := FillFunction(elem.Quad8{}, g.ElementNodes, g.NumElements(), f)
	if err != nil {
		return err
	}
	return g.setAll("Quad8Grid.SetDensitiesFunction", values)
}

func (g *Quad8Grid) SetDensitiesFile(path string) error {
	values, err := LoadCSV2D(path, g.nx, g.ny)
	if err != nil {
		return err
	}
	return g.setAll("Quad8Grid.SetDensitiesFile", values)
}

func (g *Quad8Grid) Densities() []float64 { return g.values() }

func (g *Quad8Grid) Translate(shift [2]int) {
	g.rho = Translate2D(g.rho, g.nx, g.ny, shift)
}

func (g *Quad8Grid) Measure() float64 {
	return elem.Measure(elem.Quad8{}, g.ElementNodes(0)) * float64(g.NumElements())
}

func (g *Quad8Grid) Area() float64 { return g.Measure() }
