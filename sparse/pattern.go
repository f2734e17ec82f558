// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "sort"

// Pattern is the fixed structural nonzero layout of an m×n sparse matrix in
// column-compressed form: column j's row indices live in
// RowIdx[ColPtr[j]:ColPtr[j+1]], sorted ascending within the column.
//
// A Pattern carries no values; it is declared once (typically by a
// constraint compiler) and shared by every CSC built from it.
type Pattern struct {
	Rows, Cols int
	ColPtr     []int
	RowIdx     []int
}

// NNZ returns the number of structural nonzeros in the pattern.
func (p *Pattern) NNZ() int { return len(p.RowIdx) }

// NewCSC allocates a value matrix conforming to p, with all entries zero.
func (p *Pattern) NewCSC() *CSC {
	return &CSC{
		Rows:   p.Rows,
		Cols:   p.Cols,
		ColPtr: p.ColPtr,
		RowIdx: p.RowIdx,
		Data:   make([]float64, p.NNZ()),
	}
}

// Slot returns the index into a conforming CSC's Data array at which (row,
// col) is stored, and whether that structural nonzero exists. Slot performs
// a binary search within the column and is intended for use at compile
// time, not in the hot evaluation loop.
func (p *Pattern) Slot(row, col int) (int, bool) {
	lo, hi := p.ColPtr[col], p.ColPtr[col+1]
	rows := p.RowIdx[lo:hi]
	i := sort.SearchInts(rows, row)
	if i == len(rows) || rows[i] != row {
		return 0, false
	}
	return lo + i, true
}

// entry is a single (row, col) triplet gathered by a Builder before
// compression.
type entry struct{ row, col int }

// Builder accumulates (row, col) triplets and compresses them into a
// Pattern. Duplicate triplets (a slot touched by more than one constraint,
// e.g. two constraints sharing a point) are coalesced into a single
// structural nonzero.
type Builder struct {
	rows, cols int
	entries    []entry
}

// NewBuilder returns a Builder for an m×n pattern.
func NewBuilder(rows, cols int) *Builder {
	return &Builder{rows: rows, cols: cols}
}

// Add records that (row, col) may be a structural nonzero.
func (b *Builder) Add(row, col int) {
	b.entries = append(b.entries, entry{row, col})
}

// Build compresses the accumulated triplets into a Pattern in column-major,
// row-ascending order.
func (b *Builder) Build() *Pattern {
	sort.Slice(b.entries, func(i, j int) bool {
		if b.entries[i].col != b.entries[j].col {
			return b.entries[i].col < b.entries[j].col
		}
		return b.entries[i].row < b.entries[j].row
	})

	colPtr := make([]int, b.cols+1)
	rowIdx := make([]int, 0, len(b.entries))
	last := entry{row: -1, col: -1}
	for _, e := range b.entries {
		if e == last {
			continue
		}
		rowIdx = append(rowIdx, e.row)
		colPtr[e.col+1]++
		last = e
	}
	for j := 0; j < b.cols; j++ {
		colPtr[j+1] += colPtr[j]
	}

	return &Pattern{Rows: b.rows, Cols: b.cols, ColPtr: colPtr, RowIdx: rowIdx}
}
