// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"sketchsolve/lm"
	"sketchsolve/sparse"
)

// RowSpan records the residual rows a single (post-normalization)
// constraint owns in the compiled problem, for conflict reporting.
type RowSpan struct {
	Offset int
	Count  int
	Kind   Kind
}

// patternEntry is a structural nonzero a constraint contributes, with Row
// local to the constraint's own row span (0 or, for 2-row kinds, 0 or 1).
type patternEntry struct{ Row, Col int }

// compiled is the resolved, row-assigned form of a Constraint used by the
// residual and Jacobian evaluators. Shape indices are resolved to the
// underlying point indices once, at compile time, since shapes never
// change after being added.
type compiled struct {
	kind  Kind
	row   int
	pts   [4]int
	val   [2]float64
	slots []int // Jacobian write targets, parallel to patternEntries(kind, pts)
}

// resolvePoints extracts the point indices and scalar payload a
// constraint's residual/Jacobian need, dereferencing any shape index into
// the shape's own point indices.
func resolvePoints(shapes []Shape, c Constraint) (pts [4]int, val [2]float64) {
	switch c.Kind {
	case FixedPoint:
		pts[0] = c.Points[0]
		val = c.Values
	case Coincident:
		pts[0], pts[1] = c.Points[0], c.Points[1]
	case Horizontal, Vertical:
		p1, p2 := shapes[c.Points[0]].Line()
		pts[0], pts[1] = p1, p2
	case Parallel:
		p1, p2 := shapes[c.Points[0]].Line()
		p3, p4 := shapes[c.Points[1]].Line()
		pts = [4]int{p1, p2, p3, p4}
	case Distance:
		pts[0], pts[1] = c.Points[0], c.Points[1]
		val[0] = c.Values[0]
	case Diameter:
		center, rim := shapes[c.Points[0]].Circle()
		pts[0], pts[1] = center, rim
		val[0] = c.Values[0]
	case Normal:
		center, _ := shapes[c.Points[0]].Circle()
		p1, p2 := shapes[c.Points[1]].Line()
		pts[0], pts[1], pts[2] = p1, p2, center
	case CircleCoincident:
		center, rim := shapes[c.Points[0]].Circle()
		pts[0], pts[1], pts[2] = center, rim, c.Points[1]
	default:
		panic("constraint: unknown Kind")
	}
	return pts, val
}

// patternEntries returns, in the fixed order the Jacobian evaluator writes
// partial derivatives, every (local row, column) structural nonzero a
// constraint of kind kind with resolved points pts may touch.
func patternEntries(layout Layout, kind Kind, pts [4]int) []patternEntry {
	ix, iy := layout.IX, layout.IY
	switch kind {
	case FixedPoint:
		p := pts[0]
		return []patternEntry{{0, ix(p)}, {1, iy(p)}}
	case Coincident:
		p1, p2 := pts[0], pts[1]
		return []patternEntry{{0, ix(p1)}, {0, ix(p2)}, {1, iy(p1)}, {1, iy(p2)}}
	case Horizontal:
		p1, p2 := pts[0], pts[1]
		return []patternEntry{{0, iy(p1)}, {0, iy(p2)}}
	case Vertical:
		p1, p2 := pts[0], pts[1]
		return []patternEntry{{0, ix(p1)}, {0, ix(p2)}}
	case Parallel:
		p1, p2, p3, p4 := pts[0], pts[1], pts[2], pts[3]
		return []patternEntry{
			{0, ix(p1)}, {0, iy(p1)}, {0, ix(p2)}, {0, iy(p2)},
			{0, ix(p3)}, {0, iy(p3)}, {0, ix(p4)}, {0, iy(p4)},
		}
	case Distance:
		p1, p2 := pts[0], pts[1]
		return []patternEntry{{0, ix(p1)}, {0, iy(p1)}, {0, ix(p2)}, {0, iy(p2)}}
	case Diameter:
		center, rim := pts[0], pts[1]
		return []patternEntry{{0, ix(center)}, {0, iy(center)}, {0, ix(rim)}, {0, iy(rim)}}
	case Normal:
		p1, p2, center := pts[0], pts[1], pts[2]
		return []patternEntry{
			{0, ix(p1)}, {0, iy(p1)}, {0, ix(p2)}, {0, iy(p2)},
			{0, ix(center)}, {0, iy(center)},
		}
	case CircleCoincident:
		center, rim, p := pts[0], pts[1], pts[2]
		return []patternEntry{
			{0, ix(center)}, {0, iy(center)}, {0, ix(rim)}, {0, iy(rim)},
			{0, ix(p)}, {0, iy(p)},
		}
	default:
		panic("constraint: unknown Kind")
	}
}

// Compile lowers shapes and (already-normalized) constraints into an
// lm.Problem over layout's parameter vector, plus the row span each
// constraint owns in the compiled residual/Jacobian.
func Compile(shapes []Shape, constraints []Constraint, layout Layout) (lm.Problem, []RowSpan, error) {
	if layout.PointCount == 0 || len(constraints) == 0 {
		return lm.Problem{}, nil, ErrEmptyProblem
	}

	spans := make([]RowSpan, len(constraints))
	compiledList := make([]compiled, len(constraints))
	offset := 0
	for i, c := range constraints {
		rows := Rows(c.Kind)
		spans[i] = RowSpan{Offset: offset, Count: rows, Kind: c.Kind}
		pts, val := resolvePoints(shapes, c)
		compiledList[i] = compiled{kind: c.Kind, row: offset, pts: pts, val: val}
		offset += rows
	}
	m := offset
	n := layout.N()

	bld := sparse.NewBuilder(m, n)
	for i := range compiledList {
		cc := &compiledList[i]
		for _, e := range patternEntries(layout, cc.kind, cc.pts) {
			bld.Add(cc.row+e.Row, e.Col)
		}
	}
	pattern := bld.Build()

	for i := range compiledList {
		cc := &compiledList[i]
		entries := patternEntries(layout, cc.kind, cc.pts)
		cc.slots = make([]int, len(entries))
		for j, e := range entries {
			slot, ok := pattern.Slot(cc.row+e.Row, e.Col)
			if !ok {
				panic("constraint: pattern missing declared entry")
			}
			cc.slots[j] = slot
		}
	}

	problem := lm.Problem{
		M:       m,
		N:       n,
		Pattern: pattern,
		Residual: func(x, out []float64) {
			for i := range out {
				out[i] = 0
			}
			for i := range compiledList {
				evalResidual(&compiledList[i], x, out)
			}
		},
		Jacobian: func(x []float64, dst *sparse.CSC) {
			dst.Zero()
			for i := range compiledList {
				evalJacobian(&compiledList[i], x, dst)
			}
		},
	}
	return problem, spans, nil
}
