// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esa

import (
	"bytes"
	"sort"
)

// SortOracle is the default SAOracle: it builds the suffix array by sorting
// every suffix of s with a comparison sort. It is the simplest correct
// realization of the SA collaborator, grounded on the tagged-suffix sort
// used for the longest-common-substring search in this corpus; a faster
// construction (e.g. a linear-time or divsufsort-style algorithm) can be
// substituted later without touching the rest of the ESA.
func SortOracle(s []byte) ([]int32, error) {
	n := len(s)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}

	sort.Slice(idx, func(a, b int) bool {
		return bytes.Compare(s[idx[a]:], s[idx[b]:]) < 0
	})

	return idx, nil
}
