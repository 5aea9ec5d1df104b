// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

import "github.com/EvolBioInf/andi/probability"

// Subject is the derived form of a Sequence needed to serve as the subject
// of a pairwise comparison: its reverse-complement concatenation RS, its GC
// content, and the per-subject minimal anchor length threshold computed
// from the shustring distribution (§4.9).
type Subject struct {
	Name      string
	RS        []byte
	GC        float64
	Threshold int
}

// NewSubject derives RS, GC and the anchor-length threshold for s, given the
// probability floor pValue used for the random-anchor test.
func NewSubject(s Sequence, pValue float64) Subject {
	gc := GCContent(s.Data)
	rs := ConcatWithComplement(s.Data)
	threshold := probability.MinAnchorLength(pValue, gc, len(rs))

	return Subject{
		Name:      s.Name,
		RS:        rs,
		GC:        gc,
		Threshold: threshold,
	}
}
