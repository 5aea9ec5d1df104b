// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esa

// buildLCP fills e.LCP using the PHI/PLCP algorithm: first the permuted LCP
// values are computed in text order via the psi-predecessor trick, then
// un-permuted into suffix-array order. This avoids the repeated rank lookups
// of the textbook Kasai algorithm.
func (e *ESA) buildLCP() {
	s := e.S
	sa := e.SA
	n := len(sa)

	lcp := make([]int32, n+1)
	lcp[0] = -1
	lcp[n] = -1

	phi := make([]int32, n)
	plcp := phi // PLCP is computed in place over the PHI array, as in esa.c

	phi[sa[0]] = -1
	for i := 1; i < n; i++ {
		phi[sa[i]] = sa[i-1]
	}

	l := 0
	for i := 0; i < n; i++ {
		k := phi[i]
		if k != -1 {
			for int(k)+l < n && i+l < n && s[int(k)+l] == s[i+l] {
				l++
			}
			plcp[i] = int32(l)
			l--
			if l < 0 {
				l = 0
			}
		} else {
			plcp[i] = -1
		}
	}

	for i := 1; i < n; i++ {
		lcp[i] = plcp[sa[i]]
	}

	e.LCP = lcp
}
