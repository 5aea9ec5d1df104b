// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairwise

import "github.com/EvolBioInf/andi/model"

// Symmetric folds the directional table into the symmetric matrix used for
// normal output: M(i,j) = M(i,j) + M(j,i), diagonal left as the identity.
func (t *Table) Symmetric() [][]model.Matrix {
	n := len(t.Cell)
	out := make([][]model.Matrix, n)
	for i := range out {
		out[i] = make([]model.Matrix, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				out[i][j] = t.Cell[i][j]
				continue
			}
			var m model.Matrix
			m.Merge(t.Cell[i][j])
			m.Merge(t.Cell[j][i])
			out[i][j] = m
		}
	}
	return out
}
