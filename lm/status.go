// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lm

// Status reports why a Solve call terminated.
type Status int

const (
	// NotTerminated is the zero value; a Stats with this status was never
	// returned by Solve.
	NotTerminated Status = iota
	// Converged indicates the pre-step convergence test (gradient or
	// residual norm) was satisfied.
	Converged
	// StepTolerance indicates the proposed step's 2-norm was at or below
	// Options.StepTol and the step was not applied.
	StepTolerance
	// MaxIterations indicates the iteration budget was exhausted without
	// satisfying either convergence test.
	MaxIterations
)

func (s Status) String() string {
	switch s {
	case NotTerminated:
		return "NotTerminated"
	case Converged:
		return "Converged"
	case StepTolerance:
		return "StepTolerance"
	case MaxIterations:
		return "MaxIterations"
	default:
		return "Status(unknown)"
	}
}

// Stats summarizes a completed Solve call.
type Stats struct {
	Iters    int
	Cost     float64
	GradNorm float64
	StepNorm float64
	Status   Status
}
