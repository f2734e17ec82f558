// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"sketchsolve/constraint"
	"sketchsolve/lm"
)

// Sketch owns a parameter vector, the shape and constraint lists that
// define it, and the compiled solver state needed to re-solve it.
//
// structureDirty is set by any of AddPoint, AddShape, or AddConstraint and
// cleared only by Solve, which must recompile the Problem and reallocate
// the LM State/Workspace before running. valueDirty is set by SetPoint and
// cleared by Solve, which only needs to mirror the parameter vector into
// the existing LM State in that case.
type Sketch struct {
	points      []float64
	shapes      []constraint.Shape
	constraints []constraint.Constraint

	rowSpans []constraint.RowSpan
	problem  lm.Problem
	state    *lm.State
	ws       *lm.Workspace

	structureDirty bool
	valueDirty     bool
}

// NewSketch returns an empty Sketch.
func NewSketch() *Sketch {
	return &Sketch{}
}

// AddPoint appends a new point at (x, y) and returns its index.
func (s *Sketch) AddPoint(x, y float64) int {
	s.points = append(s.points, x, y)
	s.structureDirty = true
	return len(s.points)/2 - 1
}

// AddShape appends sh and returns its index.
func (s *Sketch) AddShape(sh constraint.Shape) int {
	s.shapes = append(s.shapes, sh)
	s.structureDirty = true
	return len(s.shapes) - 1
}

// AddConstraint normalizes c (applying the degenerate-constraint rewrites)
// and appends the result(s) to the constraint list. It returns the index
// of the last constraint actually appended, or -1 if c was rewritten away
// entirely (a Coincident of a point with itself).
func (s *Sketch) AddConstraint(c constraint.Constraint) (int, error) {
	rewritten := constraint.NormalizeOne(s.shapes, c)
	s.structureDirty = true
	idx := -1
	for _, nc := range rewritten {
		s.constraints = append(s.constraints, nc)
		idx = len(s.constraints) - 1
	}
	return idx, nil
}

// SetPoint overwrites point p's coordinates. It marks valueDirty only and
// performs no allocation.
func (s *Sketch) SetPoint(p int, x, y float64) {
	s.points[2*p] = x
	s.points[2*p+1] = y
	s.valueDirty = true
}

// Point returns point p's current coordinates.
func (s *Sketch) Point(p int) (x, y float64) {
	return s.points[2*p], s.points[2*p+1]
}

// PointCount returns the number of points in the sketch.
func (s *Sketch) PointCount() int { return len(s.points) / 2 }

// Solve recompiles (if structureDirty) or remirrors (if valueDirty) the
// cached Problem and LM buffers as needed, runs the LM engine to
// completion, and copies the result back into the Sketch's own parameter
// vector. Both dirty flags are cleared once the recompile or remirror
// succeeds; if Compile or lm.Initialize fails, structureDirty stays set.
func (s *Sketch) Solve(opt lm.Options) (lm.Stats, error) {
	if s.structureDirty {
		layout := constraint.Layout{PointCount: s.PointCount()}
		problem, spans, err := constraint.Compile(s.shapes, s.constraints, layout)
		if err != nil {
			return lm.Stats{}, err
		}
		state, ws, err := lm.Initialize(problem, s.points, opt)
		if err != nil {
			return lm.Stats{}, err
		}
		s.problem = problem
		s.rowSpans = spans
		s.state = state
		s.ws = ws
		s.structureDirty = false
		s.valueDirty = false
	} else if s.valueDirty {
		copy(s.state.X, s.points)
		s.valueDirty = false
	}

	stats, err := lm.Solve(s.state, s.problem, s.ws, opt)
	if err != nil {
		return stats, err
	}
	copy(s.points, s.state.X)
	return stats, nil
}

// ResidualNorm returns √(2·stats.Cost), the Euclidean norm of the residual
// vector at the point stats describes.
func (s *Sketch) ResidualNorm(stats lm.Stats) float64 {
	return residualNorm(stats.Cost)
}

// HasConflict reports whether stats' residual norm exceeds tol.
func (s *Sketch) HasConflict(stats lm.Stats, tol float64) bool {
	return s.ResidualNorm(stats) > tol
}
