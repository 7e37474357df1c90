// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dorival/monad/homog/elem"
	"github.com/dorival/monad/internal/merr"
)

// Hex20Grid is a structured grid of Hex20 elements. Standard nodes
// are corners, then x/y/z-direction edge midpoints in that order;
// periodic nodes are four families of size nx*ny*nz.
type Hex20Grid struct {
	density
	nx, ny, nz int
	lx, ly, lz float64
}

func NewHex20Grid(resolution [3]int, size [3]float64) (*Hex20Grid, error) {
	const op = "NewHex20Grid"
	nx, ny, nz := resolution[0], resolution[1], resolution[2]
	lx, ly, lz := size[0], size[1], size[2]
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "resolution (%d,%d,%d) must be positive", nx, ny, nz)
	}
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, merr.New(merr.InvalidArgument, op, "size (%g,%g,%g) must be positive", lx, ly, lz)
	}
	g := &Hex20Grid{density: newDensity(nx * ny * nz), nx: nx, ny: ny, nz: nz, lx: lx, ly: ly, lz: lz}
	g.setConstant(0)
	return g, nil
}

func (g *Hex20Grid) Dim() int                  { return 3 }
func (g *Hex20Grid) ElementKind() elem.Element { return elem.Hex20{} }
func (g *Hex20Grid) Resolution() []int         { return []int{g.nx, g.ny, g.nz} }
func (g *Hex20Grid) Size() []float64           { return []float64{g.lx, g.ly, g.lz} }
func (g *Hex20Grid) NumElements() int          { return g.nx * g.ny * g.nz }

func (g *Hex20Grid) cornerNodes() int { return (g.nx + 1) * (g.ny + 1) * (g.nz + 1) }
func (g *Hex20Grid) xMidNodes() int   { return g.nx * (g.ny + 1) * (g.nz + 1) }
func (g *Hex20Grid) yMidNodes() int   { return (g.nx + 1) * g.ny * (g.nz + 1) }
func (g *Hex20Grid) zMidNodes() int   { return (g.nx + 1) * (g.ny + 1) * g.nz }

func (g *Hex20Grid) NumNodes() int {
	return g.cornerNodes() + g.xMidNodes() + g.yMidNodes() + g.zMidNodes()
}
func (g *Hex20Grid) NumPeriodicNodes() int { return 4 * g.NumElements() }

func (g *Hex20Grid) dx() float64 { return g.lx / float64(g.nx) }
func (g *Hex20Grid) dy() float64 { return g.ly / float64(g.ny) }
func (g *Hex20Grid) dz() float64 { return g.lz / float64(g.nz) }

func (g *Hex20Grid) Node(index int) []float64 {
	corner := g.cornerNodes()
	xmid := g.xMidNodes()
	ymid := g.yMidNodes()
	switch {
	case index < corner:
		npp := (g.nx + 1) * (g.ny + 1)
		k := index / npp
		rem := index % npp
		j := rem / (g.nx + 1)
		i := rem % (g.nx + 1)
		return []float64{float64(i) * g.dx(), float64(j) * g.dy(), float64(k) * g.dz()}
	case index < corner+xmid:
		idx := index - corner
		k := idx / (g.nx * (g.ny + 1))
		rem := idx % (g.nx * (g.ny + 1))
		j := rem / g.nx
		i := rem % g.nx
		return []float64{(float64(i) + 0.5) * g.dx(), float64(j) * g.dy(), float64(k) * g.dz()}
	case index < corner+xmid+ymid:
		idx := index - corner - xmid
		k := idx / ((g.nx + 1) * g.ny)
		rem := idx % ((g.nx + 1) * g.ny)
		j := rem / (g.nx + 1)
		i := rem % (g.nx + 1)
		return []float64{float64(i) * g.dx(), (float64(j) + 0.5) * g.dy(), float64(k) * g.dz()}
	default:
		idx := index - corner - xmid - ymid
		npp := (g.nx + 1) * (g.ny + 1)
		k := idx / npp
		rem := idx % npp
		j := rem / (g.nx + 1)
		i := rem % (g.nx + 1)
		return []float64{float64(i) * g.dx(), float64(j) * g.dy(), (float64(k) + 0.5) * g.dz()}
	}
}

func (g *Hex20Grid) cornerIndex(i, j, k int) int {
	return k*(g.nx+1)*(g.ny+1) + j*(g.nx+1) + i
}
func (g *Hex20Grid) xMidIndex(i, j, k int) int {
	return g.cornerNodes() + i + g.nx*(j+(g.ny+1)*k)
}
func (g *Hex20Grid) yMidIndex(i, j, k int) int {
	return g.cornerNodes() + g.xMidNodes() + i + (g.nx+1)*(j+g.ny*k)
}
func (g *Hex20Grid) zMidIndex(i, j, k int) int {
	return g.cornerNodes() + g.xMidNodes() + g.yMidNodes() + i + (g.nx+1)*(j+(g.ny+1)*k)
}

func (g *Hex20Grid) elementIJK(index int) (i, j, k int) {
	i = index % g.nx
	j = (index / g.nx) % g.ny
	k = index / (g.nx * g.ny)
	return
}

func (g *Hex20Grid) Element(index int) []int {
	i, j, k := g.elementIJK(index)
	return []int{
		g.cornerIndex(i, j, k), g.cornerIndex(i+1, j, k), g.cornerIndex(i+1, j+1, k), g.cornerIndex(i, j+1, k),
		g.cornerIndex(i, j, k+1), g.cornerIndex(i+1, j, k+1), g.cornerIndex(i+1, j+1, k+1), g.cornerIndex(i, j+1, k+1),
		g.xMidIndex(i, j, k), g.yMidIndex(i+1, j, k), g.xMidIndex(i, j+1, k), g.yMidIndex(i, j, k),
		g.xMidIndex(i, j, k+1), g.yMidIndex(i+1, j, k+1), g.xMidIndex(i, j+1, k+1), g.yMidIndex(i, j, k+1),
		g.zMidIndex(i, j, k), g.zMidIndex(i+1, j, k), g.zMidIndex(i+1, j+1, k), g.zMidIndex(i, j+1, k),
	}
}

func (g *Hex20Grid) numElements3() int { return g.nx * g.ny * g.nz }

func (g *Hex20Grid) wrapIdx(i, j, k int) int {
	return (k%g.nz)*(g.nx*g.ny) + (j%g.ny)*g.nx + (i % g.nx)
}

func (g *Hex20Grid) cornerPeriodic(i, j, k int) int { return g.wrapIdx(i, j, k) }
func (g *Hex20Grid) xMidPeriodic(i, j, k int) int   { return g.numElements3() + g.wrapIdx(i, j, k) }
func (g *Hex20Grid) yMidPeriodic(i, j, k int) int   { return 2*g.numElements3() + g.wrapIdx(i, j, k) }
func (g *Hex20Grid) zMidPeriodic(i, j, k int) int   { return 3*g.numElements3() + g.wrapIdx(i, j, k) }

func (g *Hex20Grid) PeriodicElement(index int) []int {
	i, j, k := g.elementIJK(index)
	return []int{
		g.cornerPeriodic(i, j, k), g.cornerPeriodic(i+1, j, k), g.cornerPeriodic(i+1, j+1, k), g.cornerPeriodic(i, j+1, k),
		g.cornerPeriodic(i, j, k+1), g.cornerPeriodic(i+1, j, k+1), g.cornerPeriodic(i+1, j+1, k+1), g.cornerPeriodic(i, j+1, k+1),
		g.xMidPeriodic(i, j, k), g.yMidPeriodic(i+1, j, k), g.xMidPeriodic(i, j+1, k), g.yMidPeriodic(i, j, k),
		g.xMidPeriodic(i, j, k+1), g.yMidPeriodic(i+1, j, k+1), g.xMidPeriodic(i, j+1, k+1), g.yMidPeriodic(i, j, k+1),
		g.zMidPeriodic(i, j, k), g.zMidPeriodic(i+1, j, k), g.zMidPeriodic(i+1, j+1, k), g.zMidPeriodic(i, j+1, k),
	}
}

func (g *Hex20Grid) ElementNodes(index int) [][]float64 {
	nodes := g.Element(index)
	out := make([][]float64, len(nodes))
	for k, n := range nodes {
		out[k] = g.Node(n)
	}
	return out
}

func (g *Hex20Grid) Density(i int) float64                { return g.get(i) }
func (g *Hex20Grid) SetDensity(i int, rho float64) error   { return g.set("Hex20Grid.SetDensity", i, rho) }
func (g *Hex20Grid) SetDensities(values []float64) error   { return g.setAll("Hex20Grid.SetDensities", values) }
func (g *Hex20Grid) SetDensitiesConstant(value float64)    { g.setConstant(value) }
func (g *Hex20Grid) SetDensitiesZeros()                    { g.setConstant(0) }
func (g *Hex20Grid) SetDensitiesOnes()                      { g.setConstant(1) }
func (g *Hex20Grid) SetDensitiesRandom(seed int)            { FillRandom(g.rho, seed) }

func (g *Hex20Grid) SetDensitiesFunction(f fun.Func) error {
	values, err := FillFunction(elem.Hex20{}, g.ElementNodes, g.NumElements(), f)
	if err != nil {
		return err
	}
	return g.setAll("Hex20Grid.SetDensitiesFunction", values)
}

func (g *Hex20Grid) Densities() []float64 { return g.values() }

func (g *Hex20Grid) Translate(shift [3]int) {
	g.rho = Translate3D(g.rho, g.nx, g.ny, g.nz, shift)
}

func (g *Hex20Grid) Measure() float64 {
	return elem.Measure(elem.Hex20{}, g.ElementNodes(0)) * float64(g.NumElements())
}

func (g *Hex20Grid) Volume() float64 { return g.Measure() }
