// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrixio writes distance and coverage matrices in the
// PHYLIP-style full-matrix format described in §6: a leading sequence
// count, then one line per sequence with its (optionally truncated) name
// and N space-separated values.
package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

const nameWidth = 10

// formatName pads name to nameWidth with trailing spaces. A longer name is
// truncated to nameWidth bytes when truncate is set and kept whole otherwise.
func formatName(name string, truncate bool) string {
	if len(name) > nameWidth {
		if truncate {
			name = name[:nameWidth]
		}
	}
	if len(name) < nameWidth {
		name = name + spaces(nameWidth-len(name))
	}
	return name
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// useScientific reports whether any finite, non-diagonal entry of d falls
// in (0, 1e-3), which per §6 forces %1.4e formatting for the whole matrix.
func useScientific(d [][]float64) bool {
	for i := range d {
		for j := range d[i] {
			if i == j {
				continue
			}
			v := d[i][j]
			if !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 && v < 1e-3 {
				return true
			}
		}
	}
	return false
}

func formatValue(v float64, scientific bool) string {
	switch {
	case math.IsNaN(v):
		return "     nan"
	case scientific:
		return fmt.Sprintf("%1.4e", v)
	default:
		return fmt.Sprintf("%1.4f", v)
	}
}

// WriteMatrix writes d (an N x N distance matrix) in PHYLIP-style format
// with the given row names.
func WriteMatrix(w io.Writer, names []string, d [][]float64, truncate bool) error {
	bw := bufio.NewWriter(w)

	n := len(d)
	if _, err := fmt.Fprintf(bw, "%d\n", n); err != nil {
		return err
	}

	scientific := useScientific(d)

	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%s", formatName(names[i], truncate)); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(bw, " %s", formatValue(d[i][j], scientific)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteCoverage writes the "Coverage:" section: the literal header line
// followed by the same shape as WriteMatrix, always in %1.4e.
func WriteCoverage(w io.Writer, names []string, cov [][]float64, truncate bool) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "Coverage:"); err != nil {
		return err
	}
	n := len(cov)
	if _, err := fmt.Fprintf(bw, "%d\n", n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%s", formatName(names[i], truncate)); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(bw, " %1.4e", cov[i][j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
