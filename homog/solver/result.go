// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// Result carries the homogenized tensor, split into the named blocks
// the active Policy reports (e.g. {"C": ...} for elastic, {"C": ...,
// "eps": ..., "d": ...} for piezoelectric), plus whichever nodal field
// snapshots Options.Fields requested, one map per macroscopic loading
// column.
type Result struct {
	Tensors map[string][][]float64
	Total   []map[string][][]float64
	Macro   []map[string][][]float64
	Micro   []map[string][][]float64
}
