// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package esa implements the enhanced suffix array that underlies the
// longest-match engine: the suffix array itself (SA), the longest-common-
// prefix array (LCP), the child table (CLD), the first-variant-character
// array (FVC), and a fixed-depth lcp-interval cache. The algorithms follow
// Ohlebusch's "Bioinformatics Algorithms" (2013), as realized in andi's
// esa.c.
package esa

import "fmt"

// Interval is an lcp-interval [i, j] of depth l, together with the index m
// of its first child's representative in LCP. An empty interval (no match)
// is represented by I == J == -1. A singleton interval has I == J.
type Interval struct {
	I, J int32
	M    int32
	L    int
}

// Empty reports whether ij denotes "no match".
func (ij Interval) Empty() bool { return ij.I == -1 && ij.J == -1 }

// Singleton reports whether ij denotes a single suffix.
func (ij Interval) Singleton() bool { return ij.I == ij.J }

// cacheDepth is the prefix length up to which lcp-intervals are cached. A
// depth of 10 means 4^10 (~1M) cached entries, each 24 bytes on a 64-bit
// platform.
const cacheDepth = 10

const cacheSize = 1 << (2 * cacheDepth)

// SAOracle builds a suffix array for s: SA[i] is the starting offset of the
// suffix ranked i-th in lexicographic order. It is a pluggable collaborator
// so the construction algorithm can be swapped independently of the rest of
// the ESA machinery (§4.10).
type SAOracle func(s []byte) ([]int32, error)

// ESA is the enhanced suffix array of a subject's RS buffer.
type ESA struct {
	S   []byte
	SA  []int32
	LCP []int32
	CLD []int32
	FVC []byte

	cache []Interval
}

// Build constructs the full enhanced suffix array for s using oracle to
// obtain the raw suffix array. If oracle is nil, SortOracle is used.
func Build(s []byte, oracle SAOracle) (*ESA, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("esa: empty subject")
	}
	if oracle == nil {
		oracle = SortOracle
	}

	sa, err := oracle(s)
	if err != nil {
		return nil, fmt.Errorf("esa: building suffix array: %w", err)
	}
	if len(sa) != len(s) {
		return nil, fmt.Errorf("esa: oracle returned %d entries for a %d byte subject", len(sa), len(s))
	}

	e := &ESA{S: s, SA: sa}
	e.buildLCP()
	e.buildCLD()
	e.buildFVC()
	e.buildCache()

	return e, nil
}

// Len reports the number of suffixes (== len(S)).
func (e *ESA) Len() int { return len(e.SA) }
