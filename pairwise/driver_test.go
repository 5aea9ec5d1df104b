// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairwise

import (
	"context"
	"strings"
	"testing"

	"github.com/EvolBioInf/andi/config"
	"github.com/EvolBioInf/andi/seq"
)

func sequences(t *testing.T) []seq.Sequence {
	t.Helper()
	bodies := []string{
		strings.Repeat("ACGTACGTTGCA", 40),
		strings.Repeat("ACGTACGTTGCC", 40),
		strings.Repeat("TTTTGGGGCCCC", 40),
	}
	names := []string{"one", "two", "three"}

	out := make([]seq.Sequence, len(bodies))
	for i, b := range bodies {
		s, err := seq.New(names[i], []byte(b), nil)
		if err != nil {
			t.Fatalf("seq.New(%q): %v", names[i], err)
		}
		out[i] = s
	}
	return out
}

func TestBuildRejectsFewerThanTwoSequences(t *testing.T) {
	cfg := config.Default()
	seqs := sequences(t)[:1]
	if _, err := Build(context.Background(), cfg, seqs, nil, &config.DiagnosticFlags{}); err == nil {
		t.Fatal("Build with 1 sequence: want error, got nil")
	}
}

func TestBuildDiagonalIsIdentity(t *testing.T) {
	cfg := config.Default()
	seqs := sequences(t)
	flags := &config.DiagnosticFlags{}

	table, err := Build(context.Background(), cfg, seqs, nil, flags)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range seqs {
		if table.Cell[i][i].Total() == 0 {
			t.Fatalf("Cell[%d][%d].Total() = 0, want the identity matrix's fixed total", i)
		}
	}
}

func TestOuterAndInnerParallelAgree(t *testing.T) {
	seqs := sequences(t)

	outerCfg := config.Default()
	outerCfg.Threads = 2
	outerCfg.LowMemory = false

	innerCfg := outerCfg
	innerCfg.LowMemory = true

	outerTable, err := Build(context.Background(), outerCfg, seqs, nil, &config.DiagnosticFlags{})
	if err != nil {
		t.Fatalf("Build (outer-parallel): %v", err)
	}
	innerTable, err := Build(context.Background(), innerCfg, seqs, nil, &config.DiagnosticFlags{})
	if err != nil {
		t.Fatalf("Build (inner-parallel): %v", err)
	}

	for i := range seqs {
		for j := range seqs {
			a := outerTable.Cell[i][j]
			b := innerTable.Cell[i][j]
			if a.Total() != b.Total() || a.SNPs() != b.SNPs() {
				t.Fatalf("cell[%d][%d]: outer = %+v, inner = %+v, want equal", i, j, a, b)
			}
		}
	}
}

func TestSymmetricFoldsDirectionalCells(t *testing.T) {
	cfg := config.Default()
	seqs := sequences(t)

	table, err := Build(context.Background(), cfg, seqs, nil, &config.DiagnosticFlags{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	sym := table.Symmetric()
	for i := range seqs {
		for j := range seqs {
			if i == j {
				continue
			}
			want := table.Cell[i][j].Total() + table.Cell[j][i].Total()
			if sym[i][j].Total() != want {
				t.Fatalf("Symmetric()[%d][%d].Total() = %d, want %d", i, j, sym[i][j].Total(), want)
			}
			if sym[i][j] != sym[j][i] {
				t.Fatalf("Symmetric() is not symmetric at [%d][%d]", i, j)
			}
		}
	}
}
