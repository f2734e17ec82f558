// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "sketchsolve/sparse"

// evalResidual writes cc's contribution into out at its assigned row
// offset. out is assumed already zeroed by the caller.
func evalResidual(cc *compiled, x, out []float64) {
	switch cc.kind {
	case FixedPoint:
		p := cc.pts[0]
		out[cc.row] = x[2*p] - cc.val[0]
		out[cc.row+1] = x[2*p+1] - cc.val[1]

	case Coincident:
		p1, p2 := cc.pts[0], cc.pts[1]
		out[cc.row] = x[2*p1] - x[2*p2]
		out[cc.row+1] = x[2*p1+1] - x[2*p2+1]

	case Horizontal:
		p1, p2 := cc.pts[0], cc.pts[1]
		out[cc.row] = x[2*p1+1] - x[2*p2+1]

	case Vertical:
		p1, p2 := cc.pts[0], cc.pts[1]
		out[cc.row] = x[2*p1] - x[2*p2]

	case Parallel:
		p1, p2, p3, p4 := cc.pts[0], cc.pts[1], cc.pts[2], cc.pts[3]
		dx12 := x[2*p2] - x[2*p1]
		dy12 := x[2*p2+1] - x[2*p1+1]
		dx34 := x[2*p4] - x[2*p3]
		dy34 := x[2*p4+1] - x[2*p3+1]
		out[cc.row] = dx12*dy34 - dy12*dx34

	case Distance:
		p1, p2 := cc.pts[0], cc.pts[1]
		dx := x[2*p2] - x[2*p1]
		dy := x[2*p2+1] - x[2*p1+1]
		d := cc.val[0]
		out[cc.row] = dx*dx + dy*dy - d*d

	case Diameter:
		center, rim := cc.pts[0], cc.pts[1]
		dx := x[2*rim] - x[2*center]
		dy := x[2*rim+1] - x[2*center+1]
		d := cc.val[0]
		out[cc.row] = dx*dx + dy*dy - (d/2)*(d/2)

	case Normal:
		p1, p2, center := cc.pts[0], cc.pts[1], cc.pts[2]
		dx := x[2*p2] - x[2*p1]
		dy := x[2*p2+1] - x[2*p1+1]
		cx, cy := x[2*center], x[2*center+1]
		y1, x1 := x[2*p1+1], x[2*p1]
		out[cc.row] = dx*(cy-y1) - dy*(cx-x1)

	case CircleCoincident:
		center, rim, p := cc.pts[0], cc.pts[1], cc.pts[2]
		cx, cy := x[2*center], x[2*center+1]
		dxp := x[2*p] - cx
		dyp := x[2*p+1] - cy
		dxr := x[2*rim] - cx
		dyr := x[2*rim+1] - cy
		out[cc.row] = dxp*dxp + dyp*dyp - dxr*dxr - dyr*dyr

	default:
		panic("constraint: unknown Kind")
	}
}

// evalJacobian writes cc's partial derivatives into dst at its precomputed
// slots, in the same order patternEntries declared them. Writes accumulate
// (+=) rather than assign, since two slots of the same constraint can
// coincide if it references the same point through more than one role
// (e.g. Parallel on two lines sharing an endpoint).
func evalJacobian(cc *compiled, x []float64, dst *sparse.CSC) {
	s := cc.slots
	d := dst.Data

	switch cc.kind {
	case FixedPoint:
		d[s[0]] += 1
		d[s[1]] += 1

	case Coincident:
		d[s[0]] += 1
		d[s[1]] += -1
		d[s[2]] += 1
		d[s[3]] += -1

	case Horizontal, Vertical:
		d[s[0]] += 1
		d[s[1]] += -1

	case Parallel:
		p1, p2, p3, p4 := cc.pts[0], cc.pts[1], cc.pts[2], cc.pts[3]
		dx12 := x[2*p2] - x[2*p1]
		dy12 := x[2*p2+1] - x[2*p1+1]
		dx34 := x[2*p4] - x[2*p3]
		dy34 := x[2*p4+1] - x[2*p3+1]
		// ∂r/∂{x1,y1,x2,y2,x3,y3,x4,y4}
		d[s[0]] += -dy34
		d[s[1]] += dx34
		d[s[2]] += dy34
		d[s[3]] += -dx34
		d[s[4]] += dy12
		d[s[5]] += -dx12
		d[s[6]] += -dy12
		d[s[7]] += dx12

	case Distance:
		p1, p2 := cc.pts[0], cc.pts[1]
		dx := x[2*p2] - x[2*p1]
		dy := x[2*p2+1] - x[2*p1+1]
		d[s[0]] += -2 * dx
		d[s[1]] += -2 * dy
		d[s[2]] += 2 * dx
		d[s[3]] += 2 * dy

	case Diameter:
		center, rim := cc.pts[0], cc.pts[1]
		dx := x[2*rim] - x[2*center]
		dy := x[2*rim+1] - x[2*center+1]
		d[s[0]] += -2 * dx
		d[s[1]] += -2 * dy
		d[s[2]] += 2 * dx
		d[s[3]] += 2 * dy

	case Normal:
		p1, p2, center := cc.pts[0], cc.pts[1], cc.pts[2]
		x1, y1 := x[2*p1], x[2*p1+1]
		x2, y2 := x[2*p2], x[2*p2+1]
		cx, cy := x[2*center], x[2*center+1]
		// ∂r/∂{x1,y1,x2,y2,cx,cy}
		d[s[0]] += y2 - cy
		d[s[1]] += cx - x2
		d[s[2]] += cy - y1
		d[s[3]] += x1 - cx
		d[s[4]] += y1 - y2
		d[s[5]] += x2 - x1

	case CircleCoincident:
		center, rim, p := cc.pts[0], cc.pts[1], cc.pts[2]
		cx, cy := x[2*center], x[2*center+1]
		dxp := x[2*p] - cx
		dyp := x[2*p+1] - cy
		dxr := x[2*rim] - cx
		dyr := x[2*rim+1] - cy
		// ∂r/∂{cx,cy,rimx,rimy,px,py}
		d[s[0]] += 2 * (dxr - dxp)
		d[s[1]] += 2 * (dyr - dyp)
		d[s[2]] += -2 * dxr
		d[s[3]] += -2 * dyr
		d[s[4]] += 2 * dxp
		d[s[5]] += 2 * dyp

	default:
		panic("constraint: unknown Kind")
	}
}
