// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "errors"

// ErrEmptyProblem signifies Compile was called with no points or no
// constraints, which leaves the Jacobian pattern with zero columns or zero
// rows.
var ErrEmptyProblem = errors.New("constraint: empty point set or empty constraint list")
