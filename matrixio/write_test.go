// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrixio

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestFormatNamePadsAndTruncates(t *testing.T) {
	if got := formatName("seq1", false); got != "seq1      " {
		t.Fatalf("formatName(%q, false) = %q, want padded to 10 bytes", "seq1", got)
	}
	long := "averylongsequencename"
	if got := formatName(long, true); got != long[:nameWidth] {
		t.Fatalf("formatName(%q, true) = %q, want truncated to %d bytes", long, got, nameWidth)
	}
	if got := formatName(long, false); got != long {
		t.Fatalf("formatName(%q, false) = %q, want unchanged when truncate is false", long, got)
	}
}

func TestUseScientificTriggersOnSmallValues(t *testing.T) {
	d := [][]float64{
		{0, 0.0001},
		{0.0001, 0},
	}
	if !useScientific(d) {
		t.Fatal("useScientific: want true for a matrix with an entry in (0, 1e-3)")
	}

	d2 := [][]float64{
		{0, 0.5},
		{0.5, 0},
	}
	if useScientific(d2) {
		t.Fatal("useScientific: want false when no off-diagonal entry is in (0, 1e-3)")
	}
}

func TestUseScientificIgnoresDiagonalAndNonFinite(t *testing.T) {
	d := [][]float64{
		{0.0001, math.NaN()},
		{math.Inf(1), 0},
	}
	if useScientific(d) {
		t.Fatal("useScientific: want false, a small diagonal entry and NaN/Inf off-diagonal entries should not trigger it")
	}
}

func TestWriteMatrixFormatsNaNAsLiteral(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"a", "b"}
	d := [][]float64{{0, math.NaN()}, {math.NaN(), 0}}
	if err := WriteMatrix(&buf, names, d, false); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	if !strings.Contains(buf.String(), "nan") {
		t.Fatalf("output %q does not contain the nan literal", buf.String())
	}
}

func TestWriteMatrixLeadsWithCount(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"a", "b", "c"}
	d := make([][]float64, 3)
	for i := range d {
		d[i] = make([]float64, 3)
	}
	if err := WriteMatrix(&buf, names, d, false); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "3" {
		t.Fatalf("first line = %q, want the sequence count %q", lines[0], "3")
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (count + 3 rows)", len(lines))
	}
}

func TestWriteCoverageHasHeaderLine(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"a"}
	cov := [][]float64{{1}}
	if err := WriteCoverage(&buf, names, cov, false); err != nil {
		t.Fatalf("WriteCoverage: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Coverage:\n") {
		t.Fatalf("output %q does not start with the Coverage: header", buf.String())
	}
}
