// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparse implements fixed-pattern column-compressed (CSC) sparse
// matrix assembly.
//
// Unlike a general-purpose sparse linear algebra package, sparse never
// discovers structure at runtime: a Pattern is declared once by a caller
// that already knows every nonzero slot a value matrix may ever need, and
// value writes go to Data positions resolved once against that fixed
// layout (Pattern.Slot); Data itself is a plain slice and writes to it are
// not checked. This
// matches the access pattern of a Jacobian whose sparsity is a static
// function of a problem's structure (which rows/columns a constraint can
// touch) rather than of its current numeric values.
package sparse
