// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "gonum.org/v1/gonum/mat"

// CSC is a column-compressed sparse matrix conforming to a fixed Pattern:
// column j's entries occupy Data[ColPtr[j]:ColPtr[j+1]] with parallel row
// indices in RowIdx[ColPtr[j]:ColPtr[j+1]].
//
// A CSC never changes its own ColPtr/RowIdx after creation; only Data is
// mutated, in place, once per evaluation. This is what makes repeated
// residual/Jacobian evaluation allocation-free: the same CSC (and its
// Pattern) is reused for the lifetime of a compiled problem.
type CSC struct {
	Rows, Cols int
	ColPtr     []int
	RowIdx     []int
	Data       []float64
}

// Zero clears every value, leaving the structural pattern untouched. Called
// at the top of a Jacobian evaluator so constraints that don't touch every
// row on every code path leave the untouched slots at zero.
func (c *CSC) Zero() {
	for i := range c.Data {
		c.Data[i] = 0
	}
}

// DenseInto scatters c into dst, which must already be sized Rows×Cols.
// dst is zeroed first. DenseInto performs no allocation when dst's backing
// array is already the right size (i.e. when dst has been reused across
// calls via mat.Dense.Reset/ReuseAs semantics upstream).
func (c *CSC) DenseInto(dst *mat.Dense) {
	dst.Zero()
	for j := 0; j < c.Cols; j++ {
		for k := c.ColPtr[j]; k < c.ColPtr[j+1]; k++ {
			dst.Set(c.RowIdx[k], j, c.Data[k])
		}
	}
}
