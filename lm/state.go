// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lm

import (
	"gonum.org/v1/gonum/mat"

	"sketchsolve/sparse"
)

// State holds the parameter vector across Solve calls. Solve updates X in
// place; a caller may also overwrite X between Solve calls (the Sketch
// Controller does so to mirror value-only edits).
type State struct {
	X []float64
}

// Workspace holds every buffer the engine needs for one problem pattern.
// It is allocated once by Initialize and reused by every subsequent Solve
// call against the same pattern; Solve performs no allocation beyond what
// gonum's mat.QR amortizes internally across identically-shaped
// factorizations.
type Workspace struct {
	m, n int

	j   *sparse.CSC
	aug *sparse.Augmented

	r, rTrial       []float64
	g, step, xTrial []float64
	bAug            []float64

	denseA  *mat.Dense
	stepVec *mat.Dense
	rhsVec  *mat.Dense
	qr      mat.QR
}

// Initialize allocates a State and Workspace for problem, seeded at x0.
// The returned pair may be reused across Solve calls as long as
// problem.Pattern is unchanged; a structural change (different pattern)
// requires a fresh Initialize call.
func Initialize(problem Problem, x0 []float64, opt Options) (*State, *Workspace, error) {
	if problem.M == 0 || problem.N == 0 {
		return nil, nil, ErrZeroDimensional
	}
	if len(x0) != problem.N {
		return nil, nil, ErrDimensionMismatch
	}

	state := &State{X: append([]float64(nil), x0...)}

	ws := &Workspace{
		m: problem.M,
		n: problem.N,

		j:   problem.Pattern.NewCSC(),
		aug: sparse.NewAugmented(problem.Pattern),

		r:      make([]float64, problem.M),
		rTrial: make([]float64, problem.M),
		g:      make([]float64, problem.N),
		step:   make([]float64, problem.N),
		xTrial: make([]float64, problem.N),
		bAug:   make([]float64, problem.M+problem.N),

		denseA: mat.NewDense(problem.M+problem.N, problem.N, nil),
	}
	ws.stepVec = mat.NewDense(problem.N, 1, ws.step)
	ws.rhsVec = mat.NewDense(problem.M+problem.N, 1, ws.bAug)

	return state, ws, nil
}
