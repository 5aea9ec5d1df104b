// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"testing"

	"github.com/EvolBioInf/andi/config"
)

func TestMatrixFoldsDirection(t *testing.T) {
	var a, b Matrix
	a.Add('A', 'C')
	b.Add('C', 'A')

	if a.Counts != b.Counts {
		t.Fatalf("Add('A','C') = %v, Add('C','A') = %v, want equal", a.Counts, b.Counts)
	}
	if a.Counts[codeA][codeC] != 1 {
		t.Fatalf("expected the mismatch folded into [A][C], got %v", a.Counts)
	}
}

func TestMatrixNonACGTIgnored(t *testing.T) {
	var m Matrix
	m.Add('A', '#')
	m.AddEqual([]byte("A#C"))

	if m.Total() != 2 {
		t.Fatalf("Total() = %d, want 2 (non-ACGT ignored)", m.Total())
	}
}

func TestIdentityMatrixIsExactMatch(t *testing.T) {
	m := IdentityMatrix()
	if m.Coverage() != 1 {
		t.Fatalf("IdentityMatrix coverage = %v, want 1", m.Coverage())
	}
	for _, kind := range []config.Model{config.RAW, config.JC, config.KIMURA, config.LOGDET} {
		if d := Distance(m, kind); d != 0 {
			t.Fatalf("IdentityMatrix distance under %v = %v, want 0", kind, d)
		}
	}
}

func TestRawDistanceRequiresSignificantAlignment(t *testing.T) {
	var m Matrix
	m.AddEqual([]byte("AA"))
	if d := Distance(m, config.RAW); !math.IsNaN(d) {
		t.Fatalf("Distance with 2 aligned bases = %v, want NaN", d)
	}
}

func TestJCMonotonicInRawDistance(t *testing.T) {
	var low, high Matrix
	low.AddEqual([]byte("AAAAAAAAAA"))
	low.Add('A', 'C')

	high.AddEqual([]byte("AAAAAAAA"))
	high.Add('A', 'C')
	high.Add('G', 'T')

	dLow := Distance(low, config.JC)
	dHigh := Distance(high, config.JC)
	if !(dLow < dHigh) {
		t.Fatalf("expected JC distance to increase with SNP rate: %v >= %v", dLow, dHigh)
	}
}

func TestKimuraZeroForIdentity(t *testing.T) {
	m := IdentityMatrix()
	if d := Distance(m, config.KIMURA); d != 0 {
		t.Fatalf("Kimura distance of an identity matrix = %v, want 0", d)
	}
}

func TestLogdetZeroForBalancedMatch(t *testing.T) {
	// A balanced all-match alignment across all four bases, independent of
	// IdentityMatrix, should also give a finite (zero) LOGDET distance.
	var m Matrix
	m.AddEqual([]byte("AACCGGTT"))

	if d := Distance(m, config.LOGDET); d != 0 {
		t.Fatalf("Logdet distance of a balanced exact match = %v, want 0", d)
	}
}

func TestMergeSumsCounts(t *testing.T) {
	var a, b Matrix
	a.AddEqual([]byte("AAAA"))
	b.AddEqual([]byte("CCCC"))
	a.Merge(b)

	if got := a.Counts[codeA][codeA]; got != 4 {
		t.Fatalf("Counts[A][A] after merge = %d, want 4", got)
	}
	if got := a.Counts[codeC][codeC]; got != 4 {
		t.Fatalf("Counts[C][C] after merge = %d, want 4", got)
	}
}
