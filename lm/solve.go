// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"sketchsolve/sparse"
)

// Solve runs the Levenberg-Marquardt iteration to convergence, a step-size
// floor, or the iteration budget, updating state.X in place.
//
// The damping parameter λ always starts fresh from opt.LambdaInit; only the
// parameter vector itself (state.X) and the Workspace's buffers/factorization
// object persist warm-started across calls.
func Solve(state *State, problem Problem, ws *Workspace, opt Options) (Stats, error) {
	x := state.X
	n := problem.N

	problem.Residual(x, ws.r)
	problem.Jacobian(x, ws.j)
	cost := 0.5 * floats.Dot(ws.r, ws.r)
	jacTVec(ws.j, ws.r, ws.g)
	rNorm0 := math.Sqrt(2 * cost)

	lambda := opt.LambdaInit
	gradNorm := floats.Norm(ws.g, math.Inf(1))

	var stepNorm float64
	status := MaxIterations
	iter := 0
	for ; iter < opt.MaxIters; iter++ {
		if gradNorm <= opt.GTol || math.Sqrt(2*cost) <= opt.ATol+opt.RTol*rNorm0 {
			status = Converged
			break
		}

		ws.aug.Assemble(ws.j.Data, lambda)
		for i := 0; i < problem.M; i++ {
			ws.bAug[i] = -ws.r[i]
		}
		for i := problem.M; i < problem.M+n; i++ {
			ws.bAug[i] = 0
		}
		ws.aug.DenseInto(ws.denseA)
		ws.qr.Factorize(ws.denseA)
		if err := ws.qr.SolveTo(ws.stepVec, false, ws.rhsVec); err != nil {
			return Stats{Iters: iter, Cost: cost, GradNorm: gradNorm, StepNorm: stepNorm, Status: status},
				&ErrFactorization{Iter: iter, Err: err}
		}

		stepNorm = floats.Norm(ws.step, 2)
		if stepNorm <= opt.StepTol {
			status = StepTolerance
			break
		}

		for i := 0; i < n; i++ {
			ws.xTrial[i] = x[i] + ws.step[i]
		}
		problem.Residual(ws.xTrial, ws.rTrial)
		costTrial := 0.5 * floats.Dot(ws.rTrial, ws.rTrial)

		pred := 0.0
		for i := 0; i < n; i++ {
			pred += ws.step[i] * (lambda*ws.step[i] - ws.g[i])
		}
		pred *= 0.5

		if pred <= 0 {
			lambda = math.Min(2*lambda, opt.LambdaMax)
			continue
		}

		rho := (cost - costTrial) / pred
		if costTrial < cost {
			copy(x, ws.xTrial)
			copy(ws.r, ws.rTrial)
			problem.Jacobian(x, ws.j)
			jacTVec(ws.j, ws.r, ws.g)
			cost = costTrial
			gradNorm = floats.Norm(ws.g, math.Inf(1))

			switch {
			case rho > 0.75:
				lambda = math.Max(lambda/2, opt.LambdaMin)
			case rho < 0.25:
				lambda = math.Min(2*lambda, opt.LambdaMax)
			}
		} else {
			lambda = math.Min(2*lambda, opt.LambdaMax)
		}
	}

	return Stats{Iters: iter, Cost: cost, GradNorm: gradNorm, StepNorm: stepNorm, Status: status}, nil
}

// jacTVec computes g = Jᵀr for a sparse CSC Jacobian, zeroing g first.
func jacTVec(j *sparse.CSC, r, g []float64) {
	for i := range g {
		g[i] = 0
	}
	for col := 0; col < j.Cols; col++ {
		for k := j.ColPtr[col]; k < j.ColPtr[col+1]; k++ {
			g[col] += j.Data[k] * r[j.RowIdx[k]]
		}
	}
}
