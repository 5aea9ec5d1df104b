// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probability implements the shustring length distribution used to
// pick the minimal anchor length for a subject, as described in §4.9.
package probability

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Shuprop computes P{shustring length <= x} for random DNA of length l with
// per-base match probability p (== gc/2 for a subject with GC content gc).
// The running sum is clamped to 1 as soon as it would exceed 1, matching the
// original implementation's early-exit behaviour.
func Shuprop(x int, p float64, l int) float64 {
	if x < 0 {
		return 0
	}

	q := 0.5 - p
	sum := 0.0
	for k := 0; k <= x; k++ {
		choose := combin.Binomial(x, k)
		term := choose * math.Pow(2, float64(x)) * math.Pow(p, float64(k)) * math.Pow(q, float64(x-k))
		inner := 1 - math.Pow(p, float64(k))*math.Pow(q, float64(x-k))
		term *= math.Pow(inner, float64(l))

		sum += term
		if sum >= 1 {
			return 1
		}
	}
	return sum
}

// maxAnchorSearch bounds the search in MinAnchorLength; the distribution
// converges to 1 well before this for any biologically plausible sequence
// length, so hitting the bound indicates a degenerate (p, l) pair.
const maxAnchorSearch = 1 << 16

// MinAnchorLength returns the smallest x for which
// Shuprop(x, gc/2, l) >= 1 - pValue, i.e. the shortest match length that is
// unlikely to have arisen by chance with probability pValue.
func MinAnchorLength(pValue, gc float64, l int) int {
	p := gc / 2
	target := 1 - pValue

	for x := 1; x < maxAnchorSearch; x++ {
		if Shuprop(x, p, l) >= target {
			return x
		}
	}
	return maxAnchorSearch
}
