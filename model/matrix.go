// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model implements the mutation-count matrix accumulated for a pair
// of sequences and the evolutionary distance estimators derived from it, as
// described in §4.6. It is grounded on andi's model.c, generalized from a
// flat 16-entry mutation-type enum to a symmetric 4x4 matrix: a pairwise
// alignment cannot tell which of two mismatched bases is ancestral, so a
// mismatch between base i and base j is always folded into the cell
// [min(i,j)][max(i,j)].
package model

// Nucleotide codes used to index Matrix.Counts.
const (
	codeA = iota
	codeC
	codeG
	codeT
)

func code(b byte) int {
	switch b {
	case 'A':
		return codeA
	case 'C':
		return codeC
	case 'G':
		return codeG
	case 'T':
		return codeT
	default:
		return -1
	}
}

// Matrix accumulates the mutation counts and alignment length observed
// between a subject and a query. Counts[i][j] for i <= j holds the number
// of aligned positions where one sequence carried nucleotide i and the
// other carried j (i == j for a match); cells with i > j are always zero.
type Matrix struct {
	Counts [4][4]uint64
	SeqLen uint64
}

// AddEqual records a run of len(s) aligned, matching nucleotides. Non-ACGT
// bytes are silently skipped. The match engine compares the join byte '!'
// like any other byte, so a run taken from an anchor can contain it.
func (m *Matrix) AddEqual(s []byte) {
	for _, b := range s {
		c := code(b)
		if c < 0 {
			continue
		}
		m.Counts[c][c]++
	}
}

// Add records a single aligned pair (s, q), folding direction so that
// Add('A','C') and Add('C','A') update the same cell.
func (m *Matrix) Add(s, q byte) {
	cs, cq := code(s), code(q)
	if cs < 0 || cq < 0 {
		return
	}
	if cs > cq {
		cs, cq = cq, cs
	}
	m.Counts[cs][cq]++
}

// Merge adds other's counts and sequence length into m, used to combine the
// two one-directional passes (subject-as-reference and query-as-reference)
// of a single pairwise comparison into one matrix, per §4.5.
func (m *Matrix) Merge(other Matrix) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Counts[i][j] += other.Counts[i][j]
		}
	}
	m.SeqLen += other.SeqLen
}

// Total reports the number of aligned positions counted in m.
func (m Matrix) Total() uint64 {
	var total uint64
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			total += m.Counts[i][j]
		}
	}
	return total
}

// SNPs reports the number of mismatched aligned positions counted in m.
func (m Matrix) SNPs() uint64 {
	var total uint64
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			total += m.Counts[i][j]
		}
	}
	return total
}

// Coverage reports the fraction of SeqLen that was actually aligned.
func (m Matrix) Coverage() float64 {
	if m.SeqLen == 0 {
		return 0
	}
	return float64(m.Total()) / float64(m.SeqLen)
}

// IdentityMatrix returns the canonical marker for a sequence compared with
// itself. The counts are split evenly across all four diagonal cells rather
// than piled onto one base: a single-base run makes LOGDET's frequency
// matrix singular (det == 0, distance NaN), whereas an even split keeps it
// invertible and yields distance 0 under every estimator, per design note 9.
func IdentityMatrix() Matrix {
	var m Matrix
	m.Counts[codeA][codeA] = 2
	m.Counts[codeC][codeC] = 2
	m.Counts[codeG][codeG] = 2
	m.Counts[codeT][codeT] = 2
	m.SeqLen = 8
	return m
}
