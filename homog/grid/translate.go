// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// Translate2D circularly shifts a row-major nx*ny density array by
// shift (in element counts), relabeling the lattice origin.
func Translate2D(rho []float64, nx, ny int, shift [2]int) []float64 {
	out := make([]float64, len(rho))
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			oldIndex := j*nx + i
			ni := ((i+shift[0])%nx + nx) % nx
			nj := ((j+shift[1])%ny + ny) % ny
			newIndex := nj*nx + ni
			out[newIndex] = rho[oldIndex]
		}
	}
	return out
}

// Translate3D circularly shifts a row-major nx*ny*nz density array.
func Translate3D(rho []float64, nx, ny, nz int, shift [3]int) []float64 {
	elementsPerPlane := nx * ny
	out := make([]float64, len(rho))
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				oldIndex := k*elementsPerPlane + j*nx + i
				ni := ((i+shift[0])%nx + nx) % nx
				nj := ((j+shift[1])%ny + ny) % ny
				nk := ((k+shift[2])%nz + nz) % nz
				newIndex := nk*elementsPerPlane + nj*nx + ni
				out[newIndex] = rho[oldIndex]
			}
		}
	}
	return out
}
