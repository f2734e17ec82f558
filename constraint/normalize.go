// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// NormalizeOne rewrites a single constraint at insert time, applying the
// degenerate-constraint rules so the compiled Jacobian never carries an
// ill-posed axis, parallelism or normal row:
//
//   - Horizontal/Vertical/Normal on a zero-length line (its two endpoints
//     are the same point) downgrades to a Coincident on that line's
//     endpoints, which is trivially satisfied; no axis residual is emitted.
//   - Parallel where either line is degenerate emits only the degenerate
//     line(s)' Coincident and drops the Parallel residual entirely.
//   - Coincident(p, p) is dropped; it is trivially satisfied and would
//     contribute an all-zero Jacobian row.
//
// It returns the zero or more constraints that should replace c in the
// Sketch's constraint list.
func NormalizeOne(shapes []Shape, c Constraint) []Constraint {
	switch c.Kind {
	case Horizontal, Vertical:
		p1, p2 := shapes[c.Points[0]].Line()
		if p1 == p2 {
			return []Constraint{NewCoincident(p1, p2)}
		}
		return []Constraint{c}

	case Normal:
		p1, p2 := shapes[c.Points[1]].Line()
		if p1 == p2 {
			return []Constraint{NewCoincident(p1, p2)}
		}
		return []Constraint{c}

	case Parallel:
		a1, a2 := shapes[c.Points[0]].Line()
		b1, b2 := shapes[c.Points[1]].Line()
		degA, degB := a1 == a2, b1 == b2
		if !degA && !degB {
			return []Constraint{c}
		}
		var out []Constraint
		if degA {
			out = append(out, NewCoincident(a1, a2))
		}
		if degB {
			out = append(out, NewCoincident(b1, b2))
		}
		return out

	case Coincident:
		return coincidentOrNothing(c.Points[0], c.Points[1])

	default:
		return []Constraint{c}
	}
}

func coincidentOrNothing(p1, p2 int) []Constraint {
	if p1 == p2 {
		return nil
	}
	return []Constraint{NewCoincident(p1, p2)}
}
