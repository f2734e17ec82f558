// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint lowers typed geometric constraints on points and
// shapes into an lm.Problem: a fixed Jacobian sparsity pattern plus the
// residual and Jacobian evaluators that write into it.
//
// Shapes and constraints are both stored as small tagged structs rather
// than boxed interface values; the set of kinds is closed and the
// residual/Jacobian dispatch loops switch on the tag, avoiding the heap
// fragmentation a slice of interface values would cause for what is, in
// practice, a short and frequently re-evaluated list.
package constraint
