// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package esa

// R and L are the child-table accessors of Ohlebusch's construction: R(i)
// is the "down" pointer stored at i, L(i) is the same value read as if it
// were stored at i-1.
func r(cld []int32, i int) int32 { return cld[i] }
func l(cld []int32, i int) int32 { return cld[i-1] }

type cldFrame struct {
	idx int32
	lcp int32
}

// buildCLD fills e.CLD with the child table, computed from LCP with the
// single stack-based pass of Ohlebusch's algorithm.
func (e *ESA) buildCLD() {
	lcp := e.LCP
	n := len(e.SA)

	cld := make([]int32, n+1)
	cld[0] = int32(n + 1)

	stack := make([]cldFrame, 0, n+1)
	stack = append(stack, cldFrame{idx: 0, lcp: -1})
	top := func() cldFrame { return stack[len(stack)-1] }

	for k := 1; k < n+1; k++ {
		for lcp[k] < top().lcp {
			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for top().lcp == last.lcp {
				cld[top().idx] = last.idx // R(CLD, top.idx) = last.idx
				last = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}

			if lcp[k] < top().lcp {
				cld[top().idx] = last.idx // R(CLD, top.idx) = last.idx
			} else {
				cld[k-1] = last.idx // L(CLD, k) = last.idx
			}
		}

		stack = append(stack, cldFrame{idx: int32(k), lcp: lcp[k]})
	}

	e.CLD = cld
}
