// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// Constraint is a tagged geometric constraint. The meaning of Points and
// Values depends on Kind:
//
//	FixedPoint:       Points={p};        Values={x0, y0}
//	Coincident:       Points={p1, p2}
//	Horizontal:       Points={line}
//	Vertical:         Points={line}
//	Parallel:         Points={line1, line2}
//	Distance:         Points={p1, p2};   Values={d}
//	Diameter:         Points={circle};   Values={d}
//	Normal:           Points={circle, line}
//	CircleCoincident: Points={circle, p}
//
// Points holding a "line" or "circle" entry stores a shape index (into the
// Sketch's shape list); all other Points entries store a point index.
type Constraint struct {
	Kind   Kind
	Points [4]int
	Values [2]float64
}

// NewFixedPoint pins point p to (x0, y0).
func NewFixedPoint(p int, x0, y0 float64) Constraint {
	return Constraint{Kind: FixedPoint, Points: [4]int{p}, Values: [2]float64{x0, y0}}
}

// NewCoincident forces points p1 and p2 to the same location.
func NewCoincident(p1, p2 int) Constraint {
	return Constraint{Kind: Coincident, Points: [4]int{p1, p2}}
}

// NewHorizontal forces line (a shape index) to be horizontal.
func NewHorizontal(line int) Constraint {
	return Constraint{Kind: Horizontal, Points: [4]int{line}}
}

// NewVertical forces line (a shape index) to be vertical.
func NewVertical(line int) Constraint {
	return Constraint{Kind: Vertical, Points: [4]int{line}}
}

// NewParallel forces line1 and line2 (shape indices) to share a direction.
func NewParallel(line1, line2 int) Constraint {
	return Constraint{Kind: Parallel, Points: [4]int{line1, line2}}
}

// NewDistance forces the Euclidean distance between p1 and p2 to d.
func NewDistance(p1, p2 int, d float64) Constraint {
	return Constraint{Kind: Distance, Points: [4]int{p1, p2}, Values: [2]float64{d}}
}

// NewDiameter forces circle's (a shape index) diameter to d.
func NewDiameter(circle int, d float64) Constraint {
	return Constraint{Kind: Diameter, Points: [4]int{circle}, Values: [2]float64{d}}
}

// NewNormal forces line (a shape index) to be normal to circle (a shape
// index) at circle's center.
func NewNormal(circle, line int) Constraint {
	return Constraint{Kind: Normal, Points: [4]int{circle, line}}
}

// NewCircleCoincident forces point p onto circle's (a shape index) rim.
func NewCircleCoincident(circle, p int) Constraint {
	return Constraint{Kind: CircleCoincident, Points: [4]int{circle, p}}
}
