// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lm

import "sketchsolve/sparse"

// Problem describes a sparse nonlinear least squares problem: minimize
// ½·r(x)ᵀr(x) over x ∈ Rⁿ.
//
// Residual must write exactly M values into out. Jacobian must write into
// dst's Data array only at positions consistent with dst's Pattern (which
// is Pattern); it must not change dst's ColPtr/RowIdx. Both callbacks are
// invoked with the same x repeatedly across Solve iterations and must be
// side-effect free with respect to anything but their output arguments.
type Problem struct {
	M, N int

	// Pattern is the fixed Jacobian sparsity pattern. It is declared once
	// and never changes for the lifetime of a Problem.
	Pattern *sparse.Pattern

	// Residual evaluates r(x) into out (len(out) == M).
	Residual func(x, out []float64)

	// Jacobian evaluates J(x) into dst, whose structure must match
	// Pattern. Implementations should call dst.Zero() first unless every
	// structural nonzero is written unconditionally.
	Jacobian func(x []float64, dst *sparse.CSC)
}
