// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "math"

// Augmented is the CSC pattern of the (m+n)×n Levenberg-Marquardt augmented
// system [J; √λ·I], built once from J's m×n pattern by appending one
// diagonal entry per column at row m+col.
type Augmented struct {
	*CSC
	m       int
	DiagIdx []int // DiagIdx[col] is the position of column col's diagonal entry in Data.
}

// NewAugmented builds the augmented pattern for an m×n Jacobian pattern jp.
func NewAugmented(jp *Pattern) *Augmented {
	m, n := jp.Rows, jp.Cols
	colPtr := make([]int, n+1)
	rowIdx := make([]int, 0, jp.NNZ()+n)
	diagIdx := make([]int, n)

	for j := 0; j < n; j++ {
		lo, hi := jp.ColPtr[j], jp.ColPtr[j+1]
		rowIdx = append(rowIdx, jp.RowIdx[lo:hi]...)
		rowIdx = append(rowIdx, m+j)
		colPtr[j+1] = len(rowIdx)
		diagIdx[j] = colPtr[j+1] - 1
	}

	return &Augmented{
		CSC: &CSC{
			Rows:   m + n,
			Cols:   n,
			ColPtr: colPtr,
			RowIdx: rowIdx,
			Data:   make([]float64, len(rowIdx)),
		},
		m:       m,
		DiagIdx: diagIdx,
	}
}

// Assemble copies jData (J's current nzval array, in the same column-major
// order as the pattern it was built from) into the top block of each
// column and writes √λ into the diagonal slot. It performs no allocation.
func (a *Augmented) Assemble(jData []float64, lambda float64) {
	sqrtLambda := math.Sqrt(lambda)
	for j := 0; j < a.Cols; j++ {
		lo, hi := a.ColPtr[j], a.ColPtr[j+1]
		// Column j holds J's rows followed by one diagonal entry; every
		// earlier column contributed exactly one extra (diagonal) slot, so
		// jData's column j sits at [lo-j : hi-1-j) in J's own layout.
		copy(a.Data[lo:hi-1], jData[lo-j:hi-1-j])
		a.Data[a.DiagIdx[j]] = sqrtLambda
	}
}
