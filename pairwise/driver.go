// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairwise implements the all-against-all driver of §4.7: for every
// sequence in turn it builds an enhanced suffix array and runs the anchor
// estimator against every other sequence, then reduces the resulting
// directional mutation matrices into a symmetric distance table. It mirrors
// the #pragma omp parallel for outer loop of andi's process.c distMatrix,
// realized with golang.org/x/sync/errgroup instead of OpenMP.
package pairwise

import (
	"context"
	"fmt"
	"log"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/EvolBioInf/andi/config"
	"github.com/EvolBioInf/andi/esa"
	"github.com/EvolBioInf/andi/estimator"
	"github.com/EvolBioInf/andi/model"
	"github.com/EvolBioInf/andi/seq"
)

// Table is the full N x N directional mutation-matrix table: Cell[i][j]
// holds the matrix obtained by running the estimator with sequence i as
// subject and sequence j as query.
type Table struct {
	Names []string
	Cell  [][]model.Matrix
}

// Build runs the driver over sequences under cfg, reporting fatal input and
// allocation errors and recording recoverable ones in flags. oracle may be
// nil to use esa.SortOracle.
func Build(ctx context.Context, cfg config.Config, sequences []seq.Sequence, oracle esa.SAOracle, flags *config.DiagnosticFlags) (*Table, error) {
	n := len(sequences)
	if n < 2 {
		return nil, fmt.Errorf("pairwise: need at least 2 sequences, got %d", n)
	}

	// Guard against an N*N*sizeof(matrix) allocation that would overflow.
	const matrixSize = 8 * 17 // bytes, [4][4]uint64 counts plus a uint64 seq_len
	if n > 0 && matrixSize*n > (1<<62)/n {
		return nil, fmt.Errorf("pairwise: %d sequences would overflow the mutation-matrix table", n)
	}

	names := make([]string, n)
	for i, s := range sequences {
		names[i] = s.Name
	}

	cell := make([][]model.Matrix, n)
	for i := range cell {
		cell[i] = make([]model.Matrix, n)
	}

	buildRow := func(i int) (*esa.ESA, seq.Subject, bool) {
		subject := seq.NewSubject(sequences[i], cfg.AnchorPValue)
		e, err := esa.Build(subject.RS, oracle)
		if err != nil {
			log.Printf("pairwise: subject %q: %v; marking row as degenerate", sequences[i].Name, err)
			flags.SetSoftError()
			return nil, subject, false
		}
		return e, subject, true
	}

	fillQuery := func(e *esa.ESA, subject seq.Subject, i, j int) {
		if j == i {
			cell[i][j] = model.IdentityMatrix()
			return
		}
		if cfg.Verbose {
			log.Printf("comparing %q and %q", sequences[i].Name, sequences[j].Name)
		}
		cell[i][j] = estimator.Estimate(e, sequences[j].Data, subject.Threshold)
	}

	var err error
	if cfg.LowMemory {
		err = runInnerParallel(ctx, n, cfg.Threads, buildRow, fillQuery)
	} else {
		err = runOuterParallel(ctx, n, cfg.Threads, buildRow, fillQuery)
	}
	if err != nil {
		return nil, err
	}

	warnCells(names, cell, flags)

	return &Table{Names: names, Cell: cell}, nil
}

// runOuterParallel parallelizes the subject loop: each worker builds and
// owns one ESA at a time, then runs the full query loop against it
// sequentially. Memory scales with (threads x one ESA).
func runOuterParallel(ctx context.Context, n, threads int, buildRow func(int) (*esa.ESA, seq.Subject, bool), fillQuery func(*esa.ESA, seq.Subject, int, int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, subject, ok := buildRow(i)
			if !ok {
				return nil
			}
			for j := 0; j < n; j++ {
				fillQuery(e, subject, i, j)
			}
			return nil
		})
	}
	return g.Wait()
}

// runInnerParallel keeps the subject loop sequential, so only one ESA is
// ever resident, and parallelizes the query loop against it instead.
func runInnerParallel(ctx context.Context, n, threads int, buildRow func(int) (*esa.ESA, seq.Subject, bool), fillQuery func(*esa.ESA, seq.Subject, int, int)) error {
	for i := 0; i < n; i++ {
		e, subject, ok := buildRow(i)
		if !ok {
			continue
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(threads)
		for j := 0; j < n; j++ {
			j := j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fillQuery(e, subject, i, j)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// warnCells scans the finished table for the degenerate and low-homology
// conditions of §7 and logs a single summary line for each.
func warnCells(names []string, cell [][]model.Matrix, flags *config.DiagnosticFlags) {
	n := len(cell)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var avg model.Matrix
			avg.Merge(cell[i][j])
			avg.Merge(cell[j][i])

			if avg.Total() <= 3 {
				log.Printf("warning: %q vs %q: degenerate alignment (aligned length %d)", names[i], names[j], avg.Total())
				flags.SetSoftError()
				continue
			}

			covI := cell[i][j].Coverage()
			covJ := cell[j][i].Coverage()
			if math.Min(covI, covJ) < 0.2 {
				log.Printf("warning: %q vs %q: low homology (coverage %.4f / %.4f)", names[i], names[j], covI, covJ)
				flags.SetSoftError()
			}
		}
	}
}
