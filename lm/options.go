// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lm

// Options controls the Levenberg-Marquardt iteration. The zero value is not
// usable directly; callers should start from DefaultOptions.
type Options struct {
	// MaxIters bounds the number of outer iterations. Required so that
	// interactive callers (e.g. dragging a point) can cap worst-case
	// latency.
	MaxIters int

	// ATol and RTol bound the pre-step convergence test on the residual
	// norm: converged once √(2·cost) ≤ ATol + RTol·r_norm_0.
	ATol, RTol float64

	// GTol bounds the infinity norm of the gradient g = Jᵀr.
	GTol float64

	// StepTol bounds the 2-norm of a proposed step; a step at or below
	// StepTol terminates the solve without being applied.
	StepTol float64

	// LambdaInit, LambdaMin, and LambdaMax control the trust-region
	// damping parameter. λ is clamped to [LambdaMin, LambdaMax] after
	// every update.
	LambdaInit, LambdaMin, LambdaMax float64
}

// DefaultOptions returns the engine's default tolerances.
func DefaultOptions() Options {
	return Options{
		MaxIters:   50,
		ATol:       1e-8,
		RTol:       1e-8,
		GTol:       1e-8,
		StepTol:    1e-12,
		LambdaInit: 1e-3,
		LambdaMin:  1e-12,
		LambdaMax:  1e12,
	}
}
