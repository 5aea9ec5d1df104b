// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq implements the sequence model of the distance estimator: the
// forward-strand representation, normalization to the ACGT(+!) alphabet,
// and the reverse-complement concatenation a sequence gets before it can
// serve as a subject.
package seq

import (
	"fmt"

	"github.com/EvolBioInf/andi/config"
)

// Join is the byte used by the upstream FASTA collaborator to glue multiple
// records from one file into a single genome in join mode.
const Join = '!'

// joinRC is the reverse-complement image of Join; it never appears except
// inside a subject's RS buffer.
const joinRC = ';'

// Sep is the separator placed between a subject's reverse complement and its
// forward strand inside RS. It sorts before every nucleotide byte.
const Sep = '#'

// Sequence is a single normalized genome or join-mode concatenation.
type Sequence struct {
	Name string
	Data []byte
}

// Len reports the number of bytes in the normalized sequence.
func (s Sequence) Len() int { return len(s.Data) }

// maxLen mirrors the original's recommended (INT_MAX-1)/2 limit on |S| so
// that |RS| = 2|S|+1 fits a 32 bit suffix-array index.
const maxLen = (1<<31 - 1 - 1) / 2

// New normalizes raw bytes into a Sequence, uppercasing acgt, keeping '!'
// verbatim, and dropping every other byte. It reports a non-ACGT flag via
// flags when any byte was dropped, and a short-sequence flag when the
// normalized length is below 1000. An empty result after normalization is a
// fatal input error, per §4.1.
func New(name string, raw []byte, flags *config.DiagnosticFlags) (Sequence, error) {
	if name == "" {
		return Sequence{}, fmt.Errorf("seq: empty sequence name")
	}

	out := make([]byte, 0, len(raw))
	dropped := false
	for _, b := range raw {
		switch {
		case b == 'A' || b == 'C' || b == 'G' || b == 'T' || b == Join:
			out = append(out, b)
		case b == 'a':
			out = append(out, 'A')
		case b == 'c':
			out = append(out, 'C')
		case b == 'g':
			out = append(out, 'G')
		case b == 't':
			out = append(out, 'T')
		default:
			dropped = true
		}
	}

	if dropped && flags != nil {
		flags.SetNonACGT()
	}

	if len(out) == 0 {
		return Sequence{}, fmt.Errorf("seq: %q has zero length after normalization", name)
	}
	if len(out) > maxLen {
		return Sequence{}, fmt.Errorf("seq: %q exceeds the maximum supported length %d", name, maxLen)
	}
	if len(out) < 1000 && flags != nil {
		flags.SetShortSequence()
	}

	return Sequence{Name: name, Data: out}, nil
}

// ReverseComplement returns the reverse complement of s, mapping A<->T,
// C<->G and '!' to ';'; every other byte (';' included) is copied unchanged.
// The result has the same length as s; ConcatWithComplement builds RS from it.
func ReverseComplement(s []byte) []byte {
	rc := make([]byte, len(s))
	for i, b := range s {
		var c byte
		switch b {
		case 'A':
			c = 'T'
		case 'T':
			c = 'A'
		case 'G':
			c = 'C'
		case 'C':
			c = 'G'
		case Join:
			c = joinRC
		default:
			c = b
		}
		rc[len(s)-1-i] = c
	}
	return rc
}

// ConcatWithComplement builds RS = rc(S) . '#' . S.
func ConcatWithComplement(s []byte) []byte {
	rc := ReverseComplement(s)
	rs := make([]byte, 0, 2*len(s)+1)
	rs = append(rs, rc...)
	rs = append(rs, Sep)
	rs = append(rs, s...)
	return rs
}

// GCContent returns the fraction of {G,C} bytes over the length of s.
func GCContent(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	var gc int
	for _, b := range s {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}
