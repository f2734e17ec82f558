// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// Kind identifies a constraint's variant and therefore its fixed residual
// row count, payload interpretation, and residual/Jacobian formulas.
type Kind int

const (
	FixedPoint Kind = iota
	Coincident
	Horizontal
	Vertical
	Parallel
	Distance
	Diameter
	Normal
	CircleCoincident
)

func (k Kind) String() string {
	switch k {
	case FixedPoint:
		return "FixedPoint"
	case Coincident:
		return "Coincident"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Parallel:
		return "Parallel"
	case Distance:
		return "Distance"
	case Diameter:
		return "Diameter"
	case Normal:
		return "Normal"
	case CircleCoincident:
		return "CircleCoincident"
	default:
		return "Kind(unknown)"
	}
}

// Rows returns the fixed number of residual rows a constraint of kind k
// contributes.
func Rows(k Kind) int {
	switch k {
	case FixedPoint, Coincident:
		return 2
	case Horizontal, Vertical, Parallel, Distance, Diameter, Normal, CircleCoincident:
		return 1
	default:
		panic("constraint: unknown Kind")
	}
}
