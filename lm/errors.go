// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lm

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch signifies that an initial parameter vector's length
// does not match the problem's declared dimension.
var ErrDimensionMismatch = errors.New("lm: len(x0) does not match problem.N")

// ErrZeroDimensional signifies a problem was declared with zero rows or
// zero columns.
var ErrZeroDimensional = errors.New("lm: zero-dimensional problem")

// ErrFactorization signifies that the dense QR factorization of the
// augmented system [J; √λ·I] (assembled from the fixed sparsity pattern,
// then densified into ws.denseA) failed. Per the engine's design, the
// augmented system has full column rank for any λ > 0, so this should
// only occur if LambdaMin was configured to 0 or the problem itself is
// malformed (e.g. NaN entries).
type ErrFactorization struct {
	Iter int
	Err  error
}

func (e *ErrFactorization) Error() string {
	return fmt.Sprintf("lm: QR factorization failed at iteration %d: %v", e.Iter, e.Err)
}

func (e *ErrFactorization) Unwrap() error { return e.Err }
