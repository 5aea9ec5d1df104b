// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastaio reads FASTA genome files into normalized sequences,
// using biogo's seqio/fasta reader the way loopy.go's writeFlankSeqs does.
// Multi-record files can optionally be joined into a single genome per
// file, gluing records with seq.Join, for comparisons that treat a draft
// assembly's contigs as one genome.
package fastaio

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/EvolBioInf/andi/config"
	"github.com/EvolBioInf/andi/seq"
)

// ReadFile reads every FASTA record in path. In join mode, all records are
// concatenated into a single genome named after the file, glued with
// seq.Join; otherwise each record becomes its own Sequence.
func ReadFile(path string, join bool, flags *config.DiagnosticFlags) ([]seq.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastaio: %w", err)
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	var out []seq.Sequence
	var joined []byte
	first := true

	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("fastaio: %s: unexpected record type", path)
		}

		raw := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			raw[i] = byte(l)
		}

		if join {
			if !first {
				joined = append(joined, seq.Join)
			}
			joined = append(joined, raw...)
			first = false
			continue
		}

		normalized, err := seq.New(s.Name(), raw, flags)
		if err != nil {
			return nil, fmt.Errorf("fastaio: %w", err)
		}
		out = append(out, normalized)
	}
	if err := sc.Error(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("fastaio: %s: %w", path, err)
	}

	if join {
		normalized, err := seq.New(path, joined, flags)
		if err != nil {
			return nil, fmt.Errorf("fastaio: %w", err)
		}
		return []seq.Sequence{normalized}, nil
	}

	return out, nil
}

// ReadFiles reads every path in order; in join mode each file contributes
// exactly one genome, so N input files yield N sequences.
func ReadFiles(paths []string, join bool, flags *config.DiagnosticFlags) ([]seq.Sequence, error) {
	var out []seq.Sequence
	for _, p := range paths {
		seqs, err := ReadFile(p, join, flags)
		if err != nil {
			return nil, err
		}
		out = append(out, seqs...)
	}
	return out, nil
}
