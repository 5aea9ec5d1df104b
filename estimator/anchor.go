// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package estimator implements the anchor-based divergence estimator of
// §4.5: it sweeps a query against a subject's enhanced suffix array,
// promotes sufficiently long unique matches to anchors, pairs consecutive
// colinear anchors into homologous segments, and tallies nucleotide
// (mis)matches into a mutation matrix. It generalizes andi's process.c
// dist_anchor from a scalar SNP/homology ratio into a full 4x4 matrix, and
// adds the "lucky anchor" shortcut that predicts a follow-up anchor's
// subject position arithmetically instead of re-querying the suffix array.
package estimator

import (
	"github.com/EvolBioInf/andi/esa"
	"github.com/EvolBioInf/andi/model"
)

// anchor is a maximal unique match between a query position and a subject
// position, of the given length. The zero value denotes "no anchor yet".
type anchor struct {
	valid bool
	posQ  int
	posS  int
	length int
}

func lcpLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// Estimate runs the anchor sweep of query against the subject ESA e, whose
// threshold is the minimal accepted anchor length, and returns the
// resulting mutation matrix.
func Estimate(e *esa.ESA, query []byte, threshold int) model.Matrix {
	var ret model.Matrix
	ret.SeqLen = uint64(len(query))

	var last anchor
	lastWasRight := false

	posQ := 0
	for posQ < len(query) {
		this, accepted := nextAnchor(e, query, posQ, threshold, last)

		if !accepted {
			posQ += this.length + 1
			continue
		}

		endS := last.posS + last.length
		endQ := last.posQ + last.length

		if last.valid && this.posS > endS && this.posQ-endQ == this.posS-endS {
			ret.AddEqual(query[last.posQ : last.posQ+last.length])

			bridgeS := e.S[endS:this.posS]
			bridgeQ := query[endQ:this.posQ]
			for k := range bridgeS {
				ret.Add(bridgeS[k], bridgeQ[k])
			}

			lastWasRight = true
		} else {
			if lastWasRight {
				ret.AddEqual(query[last.posQ : last.posQ+last.length])
			} else if last.valid && last.length >= 2*threshold {
				ret.AddEqual(query[last.posQ : last.posQ+last.length])
			}
			lastWasRight = false
		}

		last = this
		posQ += this.length + 1
	}

	if last.valid && last.length >= len(query) {
		ret.AddEqual(query)
		return ret
	}

	if lastWasRight || (last.valid && last.length >= 2*threshold) {
		ret.AddEqual(query[last.posQ : last.posQ+last.length])
	}

	return ret
}

// nextAnchor produces the candidate anchor starting at posQ, trying the
// lucky-anchor shortcut before falling back to a full longest-match query.
// The second return value reports whether the candidate qualifies as an
// anchor (singleton match of length >= threshold); when it does not, the
// returned anchor still carries the match length needed to advance posQ.
func nextAnchor(e *esa.ESA, query []byte, posQ, threshold int, last anchor) (anchor, bool) {
	if last.valid {
		gap := posQ - (last.posQ + last.length)
		if gap <= threshold {
			tryPosS := last.posS + (posQ - last.posQ)
			if tryPosS >= 0 && tryPosS < len(e.S) {
				length := lcpLen(query[posQ:], e.S[tryPosS:])
				if length >= threshold {
					return anchor{valid: true, posQ: posQ, posS: tryPosS, length: length}, true
				}
			}
		}
	}

	ij := e.LongestMatchCached(query[posQ:])
	if ij.Empty() {
		return anchor{length: 0}, false
	}

	if ij.Singleton() && ij.L >= threshold {
		return anchor{valid: true, posQ: posQ, posS: int(e.SA[ij.I]), length: ij.L}, true
	}

	return anchor{length: ij.L}, false
}
