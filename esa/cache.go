// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esa

// buildFVC fills e.FVC, the first-variant-character array: FVC[i] is the
// byte that follows the common prefix of length LCP[i] at rank i, i.e.
// S[SA[i]+LCP[i]]. Precomputing it saves a level of indirection inside the
// hot loop of get_interval.
func (e *ESA) buildFVC() {
	n := len(e.SA)
	fvc := make([]byte, n)
	if n > 0 {
		fvc[0] = 0
	}
	for i := 1; i < n; i++ {
		fvc[i] = e.S[int(e.SA[i])+int(e.LCP[i])]
	}
	e.FVC = fvc
}

// rootInterval returns the lcp-interval spanning the whole suffix array.
func (e *ESA) rootInterval() Interval {
	n := int32(len(e.SA))
	m := l(e.CLD, int(n))
	return Interval{I: 0, J: n - 1, M: m, L: int(e.LCP[m])}
}

// buildCache performs a depth-first traversal of the virtual suffix tree up
// to cacheDepth and stores the resulting lcp-interval for every possible
// prefix of that length, so that longest-match queries can skip straight
// past the shallow, high-fan-out part of the tree.
func (e *ESA) buildCache() {
	cache := make([]Interval, cacheSize)
	e.cache = cache

	buf := make([]byte, cacheDepth)
	e.cacheDFS(buf, 0, e.rootInterval())
}

var code2char = [4]byte{'A', 'C', 'G', 'T'}

func char2code(c byte) int {
	switch c {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

func (e *ESA) cacheDFS(str []byte, pos int, in Interval) {
	if pos < cacheDepth && in.Empty() {
		e.cacheFill(str, pos, in)
		return
	}
	if pos >= cacheDepth {
		e.cacheFill(str, pos, in)
		return
	}

	for code := 0; code < 4; code++ {
		str[pos] = code2char[code]
		ij := e.descend(in, str[pos])

		if ij.Empty() {
			e.cacheFill(str, pos+1, ij)
			continue
		}

		if ij.L <= pos+1 {
			e.cacheDFS(str, pos+1, ij)
			continue
		}

		if ij.L >= cacheDepth {
			e.cacheFill(str, pos+1, in)
			continue
		}

		// The interval is deeper than expected but still fits the cache:
		// fill up to pos+1 with the pre-match value, then fast-forward
		// along the single remaining path to the deeper interval.
		e.cacheFill(str, pos+1, in)

		k := pos + 1
		nonACGT := false
		for ; k < ij.L; k++ {
			c := e.S[int(e.SA[ij.I])+k]
			if char2code(c) < 0 {
				nonACGT = true
				break
			}
			str[k] = c
		}

		if nonACGT {
			e.cacheFill(str, k, ij)
		} else {
			e.cacheDFS(str, k, ij)
		}
	}
}

func (e *ESA) cacheFill(str []byte, pos int, in Interval) {
	if pos < cacheDepth {
		for code := 0; code < 4; code++ {
			str[pos] = code2char[code]
			e.cacheFill(str, pos+1, in)
		}
		return
	}

	code := 0
	for i := 0; i < cacheDepth; i++ {
		code <<= 2
		code |= char2code(str[i])
	}
	e.cache[code] = in
}
