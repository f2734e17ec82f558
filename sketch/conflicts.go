// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"
	"sort"

	"sketchsolve/constraint"
)

// ConflictEntry identifies one constraint whose own residual norm exceeds
// the reporting tolerance.
type ConflictEntry struct {
	ConstraintIndex int
	Kind            constraint.Kind
	ResidualNorm    float64
}

// ConflictReport summarizes how well a solved Sketch satisfies its
// constraints.
type ConflictReport struct {
	ResidualNorm float64
	Conflicted   bool
	Entries      []ConflictEntry
}

func residualNorm(cost float64) float64 {
	return math.Sqrt(2 * cost)
}

// Conflicts re-evaluates the residual at the Sketch's current parameter
// vector and returns, for every constraint whose own residual norm exceeds
// tol, its index and norm, sorted descending and capped at maxItems.
//
// Conflicts returns ErrDirty if the Sketch's structure has changed since
// the last Solve: the cached row spans would no longer describe the
// current constraint list.
func (s *Sketch) Conflicts(tol float64, maxItems int) (ConflictReport, error) {
	if s.structureDirty {
		return ConflictReport{}, ErrDirty
	}

	out := make([]float64, s.problem.M)
	s.problem.Residual(s.points, out)

	total := 0.0
	for _, v := range out {
		total += v * v
	}
	total = math.Sqrt(total)

	var entries []ConflictEntry
	for i, span := range s.rowSpans {
		norm := 0.0
		for _, v := range out[span.Offset : span.Offset+span.Count] {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm > tol {
			entries = append(entries, ConflictEntry{ConstraintIndex: i, Kind: span.Kind, ResidualNorm: norm})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ResidualNorm > entries[j].ResidualNorm })
	if len(entries) > maxItems {
		entries = entries[:maxItems]
	}

	return ConflictReport{ResidualNorm: total, Conflicted: total > tol, Entries: entries}, nil
}
