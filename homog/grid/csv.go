// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/dorival/monad/internal/merr"
)

// LoadCSV2D reads a ny x nx rectangular grid of comma-separated
// densities from path. Row 0 of the file is the TOP row of the grid
// (origin at the bottom-left), so the returned row-major density
// slice maps file row i to grid row (ny-1-i). This convention is
// documented for 2D grids only; 3D grids have no CSV loader.
func LoadCSV2D(path string, nx, ny int) ([]float64, error) {
	const op = "LoadCSV2D"

	f, err := os.Open(path)
	if err != nil {
		return nil, merr.New(merr.IOError, op, "cannot open %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, merr.New(merr.ParseError, op, "cannot parse %q: %v", path, err)
	}

	if len(records) != ny {
		return nil, merr.New(merr.InvalidArgument, op, "expected %d rows, got %d", ny, len(records))
	}

	out := make([]float64, nx*ny)
	for fileRow, record := range records {
		if len(record) != nx {
			return nil, merr.New(merr.InvalidArgument, op, "row %d: expected %d columns, got %d", fileRow, nx, len(record))
		}
		gridRow := ny - 1 - fileRow
		for col, field := range record {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, merr.New(merr.ParseError, op, "row %d col %d: %q is not numeric", fileRow, col, field)
			}
			if v < 0 || v > 1 {
				return nil, merr.New(merr.InvalidArgument, op, "row %d col %d: density %g out of range [0,1]", fileRow, col, v)
			}
			out[gridRow*nx+col] = v
		}
	}
	return out, nil
}
