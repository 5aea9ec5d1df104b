// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esa

// descend computes the lcp-interval for `wa` given the lcp-interval for `w`,
// by walking the child-table chain over the current interval's children and
// comparing against FVC/S until a matching branch is found, narrowed, or
// ruled out. This is get_interval in the reference implementation.
func (e *ESA) descend(ij Interval, a byte) Interval {
	i, j := ij.I, ij.J

	if i == j {
		if e.byteAt(i, ij.L) != a {
			ij.I, ij.J = -1, -1
		}
		return ij
	}

	m := ij.M
	depth := ij.L

	c := e.byteAt(i, depth)
	for {
		if c == a {
			if m-1 == i {
				// The matching child is a single suffix: it has no child-table
				// entry of its own, and depth+1 bytes of it are now matched.
				return Interval{I: i, J: i, M: m, L: depth + 1}
			}
			n := l(e.CLD, int(m))
			return Interval{I: i, J: m - 1, M: n, L: int(e.LCP[n])}
		}
		if c > a {
			break
		}

		i = m
		if i == j {
			break
		}
		m = r(e.CLD, int(m))
		if e.LCP[m] != int32(depth) {
			break
		}
		c = e.FVC[i]
	}

	var matched bool
	if i != ij.I {
		matched = e.FVC[i] == a
	} else {
		matched = e.byteAt(i, depth) == a
	}

	if matched {
		return Interval{I: i, J: j, M: m, L: int(e.LCP[m])}
	}
	return Interval{I: -1, J: -1}
}

// byteAt returns the byte at depth within the suffix ranked rank, or a
// sentinel below any valid nucleotide when the suffix is shorter than depth.
func (e *ESA) byteAt(rank int32, depth int) byte {
	p := int(e.SA[rank]) + depth
	if p >= len(e.S) {
		return 0
	}
	return e.S[p]
}

// LongestMatchFrom extends the match for an lcp-interval ij already known to
// correspond to query[:k], returning the lcp-interval of the longest prefix
// of query that occurs in the subject. This is get_match_from.
func (e *ESA) LongestMatchFrom(query []byte, k int, ij Interval) Interval {
	if ij.Empty() {
		return ij
	}

	if ij.Singleton() {
		p := int(e.SA[ij.I])
		kk := ij.L
		for kk < len(query) && p+kk < len(e.S) {
			if e.S[p+kk] != query[kk] {
				ij.L = kk
				return ij
			}
			kk++
		}
		ij.L = kk
		return ij
	}

	res := ij
	qlen := len(query)

	for {
		ij = e.descend(ij, query[k])

		if ij.Empty() {
			res.L = k
			return res
		}

		res.I, res.J = ij.I, ij.J

		k++

		p := int(e.SA[ij.I])
		limit := qlen
		if ij.I < ij.J && ij.L < limit {
			limit = ij.L
		}
		if p+limit > len(e.S) {
			limit = len(e.S) - p
		}

		for ; k < limit; k++ {
			if e.S[p+k] != query[k] {
				res.L = k
				return res
			}
		}

		if k >= qlen {
			break
		}
		if ij.Singleton() {
			// The single remaining suffix ended before the query did.
			res.L = k
			return res
		}
	}

	res.L = qlen
	return res
}

// LongestMatch finds the longest prefix of query that occurs anywhere in the
// subject, searching from the root of the virtual suffix tree. This is
// get_match.
func (e *ESA) LongestMatch(query []byte) Interval {
	if len(e.SA) == 0 {
		return Interval{I: -1, J: -1, L: -1}
	}
	return e.LongestMatchFrom(query, 0, e.rootInterval())
}

// LongestMatchCached is LongestMatch accelerated by the depth-cacheDepth
// lcp-interval cache: when query's first cacheDepth characters are plain
// nucleotides, the lookup of their interval is O(1) instead of O(cacheDepth)
// tree descents. This is get_match_cached.
func (e *ESA) LongestMatchCached(query []byte) Interval {
	if len(query) <= cacheDepth {
		return e.LongestMatch(query)
	}

	offset := 0
	ok := true
	for i := 0; i < cacheDepth; i++ {
		code := char2code(query[i])
		if code < 0 {
			ok = false
			break
		}
		offset <<= 2
		offset |= code
	}
	if !ok {
		return e.LongestMatch(query)
	}

	ij := e.cache[offset]
	if ij.Empty() {
		return e.LongestMatch(query)
	}

	return e.LongestMatchFrom(query, ij.L, ij)
}
