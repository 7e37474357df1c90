// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// Hex8Grid is a structured grid of Hex8 elements.
type Hex8Grid struct {
	density
	nx, ny, nz int
	lx, ly, lz float64
}

func NewHex8Grid(resolution [3]int, size [3]float64) (*Hex8Grid, error) {
	const op = "NewHex8Grid"
	nx, ny, nz := resolution[0], resolution[1], resolution[2]
	lx, ly, lz := size[0], size[1], size[2]
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "resolution (%d,%d,%d) must be positive", nx, ny, nz)
	}
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "size (%g,%g,%g) must be positive", lx, ly, lz)
	}
	g := &Hex8Grid{density: newDensity(nx * ny * nz), nx: nx, ny: ny, nz: nz, lx: lx, ly: ly, lz: lz}
	g.setConstant(0)
	return g, nil
}

func (g *Hex8Grid) Dim() int                  { return 3 }
func (g *Hex8Grid) ElementKind() elem.Element { return elem.Hex8{} }
func (g *Hex8Grid) Resolution() []int         { return []int{g.nx, g.ny, g.nz} }
func (g *Hex8Grid) Size() []float64           { return []float64{g.lx, g.ly, g.lz} }
func (g *Hex8Grid) NumElements() int          { return g.nx * g.ny * g.nz }
func (g *Hex8Grid) NumNodes() int             { return (g.nx + 1) * (g.ny + 1) * (g.nz + 1) }
func (g *Hex8Grid) NumPeriodicNodes() int     { return g.nx * g.ny * g.nz }

func (g *Hex8Grid) dx() float64 { return g.lx / float64(g.nx) }
func (g *Hex8Grid) dy() float64 { return g.ly / float64(g.ny) }
func (g *Hex8Grid) dz() float64 { return g.lz / float64(g.nz) }

func (g *Hex8Grid) nodesPerPlane() int { return (g.nx + 1) * (g.ny + 1) }

func (g *Hex8Grid) Node(index int) []float64 {
	npp := g.nodesPerPlane()
	k := index / npp
	rem := index % npp
	j := rem / (g.nx + 1)
	i := rem % (g.nx + 1)
	return []float64{float64(i) * g.dx(), float64(j) * g.dy(), float64(k) * g.dz()}
}

func (g *Hex8Grid) standardNodeIndex(i, j, k int) int {
	return k*g.nodesPerPlane() + j*(g.nx+1) + i
}

func (g *Hex8Grid) elementIJK(index int) (i, j, k int) {
	i = index % g.nx
	j = (index / g.nx) % g.ny
	k = index / (g.nx * g.ny)
	return
}

func (g *Hex8Grid) Element(index int) []int {
	i, j, k := g.elementIJK(index)
	return []int{
		g.standardNodeIndex(i, j, k), g.standardNodeIndex(i+1, j, k),
		g.standardNodeIndex(i+1, j+1, k), g.standardNodeIndex(i, j+1, k),
		g.standardNodeIndex(i, j, k+1), g.standardNodeIndex(i+1, j, k+1),
		g.standardNodeIndex(i+1, j+1, k+1), g.standardNodeIndex(i, j+1, k+1),
	}
}

func (g *Hex8Grid) periodicNodeIndex(i, j, k int) int {
	return (k%g.nz)*(g.nx*g.ny) + (j%g.ny)*g.nx + (i % g.nx)
}

func (g *Hex8Grid) PeriodicElement(index int) []int {
	i, j, k := g.elementIJK(index)
	return []int{
		g.periodicNodeIndex(i, j, k), g.periodicNodeIndex(i+1, j, k),
		g.periodicNodeIndex(i+1, j+1, k), g.periodicNodeIndex(i, j+1, k),
		g.periodicNodeIndex(i, j, k+1), g.periodicNodeIndex(i+1, j, k+1),
		g.periodicNodeIndex(i+1, j+1, k+1), g.periodicNodeIndex(i, j+1, k+1),
	}
}

func (g *Hex8Grid) ElementNodes(index int) [][]float64 {
	nodes := g.Element(index)
	out := make([][]float64, len(nodes))
	for k, n := range nodes {
		out[k] = g.Node(n)
	}
	return out
}

func (g *Hex8Grid) Density(i int) float64               { return g.get(i) }
func (g *Hex8Grid) SetDensity(i int, rho float64) error { return g.set("Hex8Grid.SetDensity", i, rho) }
func (g *Hex8Grid) SetDensities(values []float64) error { return g.setAll("Hex8Grid.SetDensities", values) }
func (g *Hex8Grid) SetDensitiesConstant(value float64)  { g.setConstant(value) }
func (g *Hex8Grid) SetDensitiesZeros()                  { g.setConstant(0) }
func (g *Hex8Grid) SetDensitiesOnes()                   { g.setConstant(1) }
func (g *Hex8Grid) SetDensitiesRandom(seed int)         { FillRandom(g.rho, seed) }

func (g *Hex8Grid) SetDensitiesFunction(f fun.Func) error {
	values, err := FillFunction(elem.Hex8{}, g.ElementNodes, g.NumElements(), f)
	if err != nil {
		return err
	}
	return g.setAll("Hex8Grid.SetDensitiesFunction", values)
}

func (g *Hex8Grid) Densities() []float64 { return g.values() }

func (g *Hex8Grid) Translate(shift [3]int) {
	g.rho = Translate3D(g.rho, g.nx, g.ny, g.nz, shift)
}

func (g *Hex8Grid) Measure() float64 {
	return elem.Measure(elem.Hex8{}, g.ElementNodes(0)) * float64(g.NumElements())
}

func (g *Hex8Grid) Volume() float64 { return g.Measure() }
