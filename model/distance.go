// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"github.com/EvolBioInf/andi/config"
)

// Distance converts m into a scalar evolutionary distance under the given
// model. It returns NaN for matrices with too few aligned positions to be
// significant (§4.6's nucl <= 3 guard).
func Distance(m Matrix, kind config.Model) float64 {
	switch kind {
	case config.RAW:
		return rawDistance(m)
	case config.KIMURA:
		return kimuraDistance(m)
	case config.LOGDET:
		return logdetDistance(m)
	default:
		return jcDistance(m)
	}
}

func clampNeg(d float64) float64 {
	if d <= 0 {
		return 0
	}
	return d
}

func rawDistance(m Matrix) float64 {
	nucl := m.Total()
	if nucl <= 3 {
		return math.NaN()
	}
	return float64(m.SNPs()) / float64(nucl)
}

func jcDistance(m Matrix) float64 {
	raw := rawDistance(m)
	if math.IsNaN(raw) {
		return raw
	}
	arg := 1.0 - (4.0/3.0)*raw
	if arg <= 0 {
		return math.NaN()
	}
	dist := -0.75 * math.Log(arg)
	return clampNeg(dist)
}

func kimuraDistance(m Matrix) float64 {
	nucl := m.Total()
	if nucl <= 3 {
		return math.NaN()
	}

	transitions := m.Counts[codeA][codeG] + m.Counts[codeC][codeT]
	transversions := m.Counts[codeA][codeC] + m.Counts[codeA][codeT] +
		m.Counts[codeC][codeG] + m.Counts[codeG][codeT]

	p := float64(transitions) / float64(nucl)
	q := float64(transversions) / float64(nucl)

	tmp := 1.0 - 2.0*p - q
	arg := (1.0 - 2.0*q) * tmp * tmp
	if arg <= 0 {
		return math.NaN()
	}
	dist := -0.25 * math.Log(arg)
	return clampNeg(dist)
}

// logdetDistance implements the Lake (1994) paralinear/LogDet distance.
// Gonum's linear algebra package is deliberately not used here: the matrix
// is always exactly 4x4 and symmetric, so the determinant is cheaper and
// clearer to expand by hand than to build a *mat.Dense for.
func logdetDistance(m Matrix) float64 {
	nucl := m.Total()
	if nucl <= 3 {
		return math.NaN()
	}
	n := float64(nucl)

	// Counts[i][j] for i<j folds both directions of that mismatch into one
	// cell, so mirroring it onto f[i][j] and f[j][i] undivided would double
	// its mass; halve it so the entries of F still sum to 1.
	var f [4][4]float64
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			v := float64(m.Counts[i][j]) / n
			if i != j {
				v /= 2
			}
			f[i][j] = v
			f[j][i] = v
		}
	}

	det := det4(f)
	if det <= 0 {
		return math.NaN()
	}

	// F is built symmetric above, so its row and column marginals coincide;
	// one product stands in for both halves of Lake's sqrt(rowProd*colProd).
	var rowProd float64 = 1
	for i := 0; i < 4; i++ {
		var rowSum float64
		for j := 0; j < 4; j++ {
			rowSum += f[i][j]
		}
		rowProd *= rowSum
	}

	if rowProd <= 0 {
		return math.NaN()
	}

	dist := -0.25 * math.Log(det/rowProd)
	return clampNeg(dist)
}

// det4 computes the determinant of a 4x4 matrix by cofactor expansion along
// the first row.
func det4(f [4][4]float64) float64 {
	minor := func(skipRow, skipCol int) float64 {
		var rows, cols [3]int
		r, c := 0, 0
		for i := 0; i < 4; i++ {
			if i != skipRow {
				rows[r] = i
				r++
			}
			if i != skipCol {
				cols[c] = i
				c++
			}
		}
		return det3([3][3]float64{
			{f[rows[0]][cols[0]], f[rows[0]][cols[1]], f[rows[0]][cols[2]]},
			{f[rows[1]][cols[0]], f[rows[1]][cols[1]], f[rows[1]][cols[2]]},
			{f[rows[2]][cols[0]], f[rows[2]][cols[1]], f[rows[2]][cols[2]]},
		})
	}

	var det float64
	sign := 1.0
	for j := 0; j < 4; j++ {
		det += sign * f[0][j] * minor(0, j)
		sign = -sign
	}
	return det
}

func det3(a [3][3]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}
