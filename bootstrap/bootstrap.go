// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap implements the multinomial resampling of §4.8: each
// replicate redraws every pair's pooled mutation counts from a multinomial
// distribution with the same total and empirical frequencies, then lets the
// caller re-apply the chosen distance estimator. It is grounded on andi's
// model_bootstrap, which draws a single gsl_ran_multinomial per pair; Gonum
// has no direct multinomial distribution, so the draw is decomposed into
// the standard sequence of conditional binomial draws.
package bootstrap

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/EvolBioInf/andi/model"
)

// cell enumerates the ten distinct (unordered) nucleotide-pair cells of a
// symmetric mutation matrix, in a fixed order used to build and unpack the
// multinomial probability vector.
type cell struct{ i, j int }

var cells = []cell{
	{0, 0}, {0, 1}, {0, 2}, {0, 3},
	{1, 1}, {1, 2}, {1, 3},
	{2, 2}, {2, 3},
	{3, 3},
}

// Resample draws a new mutation matrix from base's empirical cell
// frequencies, preserving base's total count and sequence length.
func Resample(base model.Matrix) model.Matrix {
	n := base.Total()

	var out model.Matrix
	out.SeqLen = base.SeqLen
	if n == 0 {
		return out
	}

	p := make([]float64, len(cells))
	for k, c := range cells {
		p[k] = float64(base.Counts[c.i][c.j]) / float64(n)
	}

	counts := multinomial(n, p)
	for k, c := range cells {
		out.Counts[c.i][c.j] = counts[k]
	}
	return out
}

// multinomial draws n trials over len(p) categories with probabilities p,
// via the standard reduction to a sequence of conditional binomial draws:
// category k is drawn Binomial(remaining trials, p[k] / remaining mass),
// then both the remaining trial count and probability mass are reduced.
// The final category absorbs whatever remains, guaranteeing the counts sum
// to exactly n regardless of floating-point drift.
func multinomial(n uint64, p []float64) []uint64 {
	counts := make([]uint64, len(p))

	remaining := n
	remainingMass := 1.0

	for k := 0; k < len(p)-1; k++ {
		if remaining == 0 {
			break
		}

		var pk float64
		if remainingMass > 0 {
			pk = p[k] / remainingMass
		}
		switch {
		case math.IsNaN(pk), pk < 0:
			pk = 0
		case pk > 1:
			pk = 1
		}

		b := distuv.Binomial{N: float64(remaining), P: pk}
		drawn := uint64(math.Round(b.Rand()))
		if drawn > remaining {
			drawn = remaining
		}

		counts[k] = drawn
		remaining -= drawn
		remainingMass -= p[k]
	}
	counts[len(p)-1] = remaining

	return counts
}

// Table builds one bootstrap replicate of a full symmetric pair table: the
// diagonal is the canonical identity, and every off-diagonal pair (i, j)
// and its mirror (j, i) share one resampled matrix, matching the
// symmetric-before-bootstrap convention of §4.8.
func Table(symmetric [][]model.Matrix) [][]model.Matrix {
	n := len(symmetric)
	out := make([][]model.Matrix, n)
	for i := range out {
		out[i] = make([]model.Matrix, n)
	}

	for i := 0; i < n; i++ {
		out[i][i] = model.IdentityMatrix()
		for j := i + 1; j < n; j++ {
			b := Resample(symmetric[i][j])
			out[i][j] = b
			out[j][i] = b
		}
	}
	return out
}
