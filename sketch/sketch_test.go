// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"sketchsolve/constraint"
	"sketchsolve/lm"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// TestSolvePointsAndAxes exercises a polyline fixed at both ends and bent
// into a right angle by Horizontal/Vertical constraints on its two
// segments (spec scenario: p1-p2 horizontal, p2-p3 vertical).
func TestSolvePointsAndAxes(t *testing.T) {
	s := NewSketch()
	p1 := s.AddPoint(0, 0)
	p2 := s.AddPoint(0.4, 0.2)
	p3 := s.AddPoint(2, 1)
	l1 := s.AddShape(constraint.NewLine(p1, p2))
	l2 := s.AddShape(constraint.NewLine(p2, p3))

	addConstraint(t, s, constraint.NewFixedPoint(p1, 0, 0))
	addConstraint(t, s, constraint.NewFixedPoint(p3, 2, 1))
	addConstraint(t, s, constraint.NewHorizontal(l1))
	addConstraint(t, s, constraint.NewVertical(l2))

	stats, err := s.Solve(lm.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Status != lm.Converged {
		t.Fatalf("status = %v, want Converged (stats=%+v)", stats.Status, stats)
	}

	x, y := s.Point(p2)
	if !approx(x, 2, 1e-6) || !approx(y, 0, 1e-6) {
		t.Errorf("p2 = (%g, %g), want (2, 0)", x, y)
	}
}

// TestSolveDistance exercises a fixed point, a Horizontal line, and a
// Distance constraint together pinning the free endpoint to one of two
// symmetric solutions.
func TestSolveDistance(t *testing.T) {
	s := NewSketch()
	p1 := s.AddPoint(0, 0)
	p2 := s.AddPoint(4, 0.1)
	line := s.AddShape(constraint.NewLine(p1, p2))

	addConstraint(t, s, constraint.NewFixedPoint(p1, 0, 0))
	addConstraint(t, s, constraint.NewHorizontal(line))
	addConstraint(t, s, constraint.NewDistance(p1, p2, 5))

	stats, err := s.Solve(lm.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Status != lm.Converged {
		t.Fatalf("status = %v, want Converged (stats=%+v)", stats.Status, stats)
	}

	x, y := s.Point(p2)
	if !approx(math.Abs(x), 5, 1e-6) {
		t.Errorf("p2.x = %g, want |p2.x| ~= 5", x)
	}
	if !approx(y, 0, 1e-6) {
		t.Errorf("p2.y = %g, want 0", y)
	}
}

// TestSolveCircleDiameter mirrors TestSolveDistance one layer up: the
// auxiliary "line" between a circle's center and rim is itself a Line
// shape, so Horizontal/Diameter compose exactly the way Horizontal/
// Distance did above.
func TestSolveCircleDiameter(t *testing.T) {
	s := NewSketch()
	center := s.AddPoint(0.2, -0.1)
	rim := s.AddPoint(4.2, 1)
	circle := s.AddShape(constraint.NewCircle(center, rim))
	radial := s.AddShape(constraint.NewLine(center, rim))

	addConstraint(t, s, constraint.NewFixedPoint(center, 0, 0))
	addConstraint(t, s, constraint.NewHorizontal(radial))
	addConstraint(t, s, constraint.NewDiameter(circle, 10))

	stats, err := s.Solve(lm.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Status != lm.Converged {
		t.Fatalf("status = %v, want Converged (stats=%+v)", stats.Status, stats)
	}

	x, y := s.Point(rim)
	if !approx(math.Abs(x), 5, 1e-6) {
		t.Errorf("rim.x = %g, want |rim.x| ~= 5", x)
	}
	if !approx(y, 0, 1e-6) {
		t.Errorf("rim.y = %g, want 0", y)
	}
}

// TestSolvePointOnCircle constrains a free point onto a fixed circle's rim
// via CircleCoincident, with a Vertical constraint pinning it to the
// circle's vertical diameter, picking out one of the two intersection
// points.
func TestSolvePointOnCircle(t *testing.T) {
	s := NewSketch()
	center := s.AddPoint(0, 0)
	rim := s.AddPoint(0, 2)
	p1 := s.AddPoint(0.2, 1.6)
	circle := s.AddShape(constraint.NewCircle(center, rim))
	axis := s.AddShape(constraint.NewLine(p1, center))

	addConstraint(t, s, constraint.NewFixedPoint(center, 0, 0))
	addConstraint(t, s, constraint.NewFixedPoint(rim, 0, 2))
	addConstraint(t, s, constraint.NewVertical(axis))
	addConstraint(t, s, constraint.NewCircleCoincident(circle, p1))

	stats, err := s.Solve(lm.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Status != lm.Converged {
		t.Fatalf("status = %v, want Converged (stats=%+v)", stats.Status, stats)
	}

	x, y := s.Point(p1)
	if !approx(x, 0, 1e-6) || !approx(y, 2, 1e-6) {
		t.Errorf("p1 = (%g, %g), want (0, 2)", x, y)
	}
}

// TestSolveNormalThroughCenter exercises the Normal constraint between a
// circle and a line with one endpoint fixed off-center and the other
// free. The constraint is under-determined by itself (one residual row
// over two free unknowns), so rather than asserting a single literal
// fixed point, this checks the invariant the constraint actually encodes:
// after convergence, the free endpoint, the fixed endpoint, and the
// circle's center are collinear.
func TestSolveNormalThroughCenter(t *testing.T) {
	s := NewSketch()
	center := s.AddPoint(0, 0)
	rim := s.AddPoint(1, 0)
	p1 := s.AddPoint(2, 1)
	p2 := s.AddPoint(0, 2)
	circle := s.AddShape(constraint.NewCircle(center, rim))
	line := s.AddShape(constraint.NewLine(p1, p2))

	addConstraint(t, s, constraint.NewFixedPoint(center, 0, 0))
	addConstraint(t, s, constraint.NewFixedPoint(p1, 2, 1))
	addConstraint(t, s, constraint.NewNormal(circle, line))

	stats, err := s.Solve(lm.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Status != lm.Converged {
		t.Fatalf("status = %v, want Converged (stats=%+v)", stats.Status, stats)
	}
	if !approx(stats.Cost, 0, 1e-9) {
		t.Fatalf("Cost = %g, want ~= 0", stats.Cost)
	}

	cx, cy := s.Point(center)
	x1, y1 := s.Point(p1)
	x2, y2 := s.Point(p2)
	cross := (x1-cx)*(y2-cy) - (y1-cy)*(x2-cx)
	if !approx(cross, 0, 1e-6) {
		t.Errorf("center/p1/p2 not collinear: cross = %g (center=(%g,%g) p1=(%g,%g) p2=(%g,%g))",
			cross, cx, cy, x1, y1, x2, y2)
	}
}

// TestSolveConflictingFixedPoints pins a single point to two different
// locations: the system has no solution, but the engine must still
// terminate (on GTol, not diverge), and the Sketch must report the
// resulting residual as a conflict.
func TestSolveConflictingFixedPoints(t *testing.T) {
	s := NewSketch()
	p1 := s.AddPoint(0.3, 0.1)
	addConstraint(t, s, constraint.NewFixedPoint(p1, 0, 0))
	addConstraint(t, s, constraint.NewFixedPoint(p1, 1, 0))

	stats, err := s.Solve(lm.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if stats.Status != lm.Converged {
		t.Fatalf("status = %v, want Converged (stats=%+v)", stats.Status, stats)
	}

	norm := s.ResidualNorm(stats)
	if norm < 0.5 {
		t.Errorf("ResidualNorm = %g, want >= 0.5", norm)
	}
	if !s.HasConflict(stats, 1e-3) {
		t.Errorf("HasConflict(1e-3) = false, want true")
	}

	report, err := s.Conflicts(1e-3, 10)
	if err != nil {
		t.Fatalf("Conflicts: %v", err)
	}
	if !report.Conflicted {
		t.Errorf("report.Conflicted = false, want true")
	}
	if len(report.Entries) != 2 {
		t.Fatalf("len(report.Entries) = %d, want 2", len(report.Entries))
	}
	for _, e := range report.Entries {
		if e.Kind != constraint.FixedPoint {
			t.Errorf("entry kind = %v, want FixedPoint", e.Kind)
		}
	}
}

// TestConflictsRequiresCleanStructure ensures Conflicts refuses to answer
// against a stale compiled Problem: adding a constraint after Solve marks
// structureDirty, and Conflicts must surface that rather than silently
// evaluating row spans that no longer match the constraint list.
func TestConflictsRequiresCleanStructure(t *testing.T) {
	s := NewSketch()
	p1 := s.AddPoint(0, 0)
	addConstraint(t, s, constraint.NewFixedPoint(p1, 1, 1))
	if _, err := s.Solve(lm.DefaultOptions()); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	p2 := s.AddPoint(5, 5)
	addConstraint(t, s, constraint.NewFixedPoint(p2, 2, 2))

	if _, err := s.Conflicts(1e-6, 10); err != ErrDirty {
		t.Errorf("Conflicts after structural edit = %v, want ErrDirty", err)
	}
}

// TestSolveReusesCompiledProblemAcrossValueEdits checks the dirty-flag
// contract directly: SetPoint alone must not trigger recompilation, so
// the Problem's Pattern (and therefore the *sparse.Pattern pointer) is
// unchanged across a value-only edit and re-solve.
func TestSolveReusesCompiledProblemAcrossValueEdits(t *testing.T) {
	s := NewSketch()
	p1 := s.AddPoint(0, 0)
	p2 := s.AddPoint(9, 9)
	addConstraint(t, s, constraint.NewFixedPoint(p1, 0, 0))
	addConstraint(t, s, constraint.NewDistance(p1, p2, 3))

	if _, err := s.Solve(lm.DefaultOptions()); err != nil {
		t.Fatalf("first Solve: %v", err)
	}
	pattern := s.problem.Pattern

	s.SetPoint(p2, 10, 10)
	if !s.valueDirty || s.structureDirty {
		t.Fatalf("after SetPoint: valueDirty=%v structureDirty=%v, want true,false", s.valueDirty, s.structureDirty)
	}

	if _, err := s.Solve(lm.DefaultOptions()); err != nil {
		t.Fatalf("second Solve: %v", err)
	}
	if s.problem.Pattern != pattern {
		t.Errorf("Problem.Pattern changed across a value-only edit; compiler re-ran unnecessarily")
	}
	if s.valueDirty || s.structureDirty {
		t.Errorf("dirty flags not cleared after Solve")
	}
}

// TestSetPointZeroAlloc enforces the zero-allocation contract on the hot
// value-edit path: once a Sketch has a compiled Problem, SetPoint must do
// nothing but overwrite two float64 slots.
func TestSetPointZeroAlloc(t *testing.T) {
	s := NewSketch()
	p1 := s.AddPoint(0, 0)
	p2 := s.AddPoint(1, 1)
	addConstraint(t, s, constraint.NewFixedPoint(p1, 0, 0))
	addConstraint(t, s, constraint.NewDistance(p1, p2, 2))
	if _, err := s.Solve(lm.DefaultOptions()); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	allocs := testing.AllocsPerRun(100, func() {
		s.SetPoint(p2, 1.5, 0.5)
	})
	if allocs != 0 {
		t.Errorf("SetPoint allocates %v times per call, want 0", allocs)
	}
}

// TestSolveDeterministicAcrossIndependentSketches checks that two Sketches
// built identically and solved independently land on bit-identical
// results: the LM engine and the constraint compiler must not depend on
// map iteration order, time, or any other nondeterministic input.
func TestSolveDeterministicAcrossIndependentSketches(t *testing.T) {
	build := func() (lm.Stats, []float64) {
		s := NewSketch()
		p1 := s.AddPoint(0, 0)
		p2 := s.AddPoint(0.4, 0.2)
		p3 := s.AddPoint(2, 1)
		l1 := s.AddShape(constraint.NewLine(p1, p2))
		l2 := s.AddShape(constraint.NewLine(p2, p3))
		addConstraint(t, s, constraint.NewFixedPoint(p1, 0, 0))
		addConstraint(t, s, constraint.NewFixedPoint(p3, 2, 1))
		addConstraint(t, s, constraint.NewHorizontal(l1))
		addConstraint(t, s, constraint.NewVertical(l2))
		stats, err := s.Solve(lm.DefaultOptions())
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		return stats, append([]float64(nil), s.points...)
	}

	stats1, points1 := build()
	stats2, points2 := build()
	if stats1 != stats2 {
		t.Errorf("Stats diverged: %+v vs %+v", stats1, stats2)
	}
	if !floats.Equal(points1, points2) {
		t.Errorf("points diverged: %v vs %v", points1, points2)
	}
}

func addConstraint(t *testing.T, s *Sketch, c constraint.Constraint) {
	t.Helper()
	if _, err := s.AddConstraint(c); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
}
