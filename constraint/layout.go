// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// Layout maps point indices to their slots in the parameter vector. Points
// are 0-based and append-only; a point's slot pair is stable for the
// lifetime of the Layout.
type Layout struct {
	PointCount int
}

// N returns the parameter vector length, 2*PointCount.
func (l Layout) N() int { return 2 * l.PointCount }

// IX returns point p's x slot.
func (l Layout) IX(p int) int { return 2 * p }

// IY returns point p's y slot.
func (l Layout) IY(p int) int { return 2*p + 1 }
