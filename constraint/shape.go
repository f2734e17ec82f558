// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// ShapeKind identifies the geometric kind of a Shape.
type ShapeKind int

const (
	LineShape ShapeKind = iota
	CircleShape
	ArcShape
)

func (k ShapeKind) String() string {
	switch k {
	case LineShape:
		return "Line"
	case CircleShape:
		return "Circle"
	case ArcShape:
		return "Arc"
	default:
		return "ShapeKind(unknown)"
	}
}

// Shape is a geometric primitive that carries only point indices; it has
// no coordinate state of its own; geometry is always read back through the
// parameter vector via its referenced points.
//
// The meaning of Points depends on Kind:
//
//	Line:   {P1, P2}
//	Circle: {Center, Rim}      (radius implied by ‖Rim−Center‖)
//	Arc:    {Center, Start, End}
type Shape struct {
	Kind   ShapeKind
	Points [3]int
}

// NewLine returns a Line shape through points p1 and p2.
func NewLine(p1, p2 int) Shape {
	return Shape{Kind: LineShape, Points: [3]int{p1, p2}}
}

// NewCircle returns a Circle shape with the given center and a point on its
// rim.
func NewCircle(center, rim int) Shape {
	return Shape{Kind: CircleShape, Points: [3]int{center, rim}}
}

// NewArc returns an Arc shape. Arcs contribute no residuals of their own
// (see package constraint's compiler); callers that need the endpoints
// fixed relative to the center add Distance or CircleCoincident
// constraints referencing the same points.
func NewArc(center, start, end int) Shape {
	return Shape{Kind: ArcShape, Points: [3]int{center, start, end}}
}

// Line returns the shape's two endpoints. It panics if Kind != LineShape.
func (s Shape) Line() (p1, p2 int) {
	if s.Kind != LineShape {
		panic("constraint: Line called on non-Line shape")
	}
	return s.Points[0], s.Points[1]
}

// Circle returns the shape's center and rim point. It panics if
// Kind != CircleShape.
func (s Shape) Circle() (center, rim int) {
	if s.Kind != CircleShape {
		panic("constraint: Circle called on non-Circle shape")
	}
	return s.Points[0], s.Points[1]
}
