// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sketch implements the Sketch Controller: it owns a parameter
// vector, a shape/constraint list, and a cached compiled lm.Problem, and
// arbitrates between recompiling (on structural edits) and reusing (on
// value-only edits) across repeated Solve calls.
//
// A Sketch is not safe for concurrent use; callers coordinate access the
// same way they would around a gonum/mat.Dense shared across goroutines.
package sketch
