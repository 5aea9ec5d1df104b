// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// andi estimates pairwise evolutionary distances between whole genomes
// directly from unaligned FASTA sequences, using an anchor-based divergence
// estimator over an enhanced suffix array instead of a multiple sequence
// alignment.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/EvolBioInf/andi/bootstrap"
	"github.com/EvolBioInf/andi/config"
	"github.com/EvolBioInf/andi/fastaio"
	"github.com/EvolBioInf/andi/matrixio"
	"github.com/EvolBioInf/andi/model"
	"github.com/EvolBioInf/andi/pairwise"
)

var (
	join          = flag.Bool("j", false, "join: treat each input file's records as one genome")
	pValue        = flag.Float64("p", 0.025, "anchor p-value")
	modelFlag     = flag.String("m", "jc", "evolutionary model: raw|jc|kimura|logdet")
	bootstrapN    = flag.Int("b", 0, "number of bootstrap replicates")
	lowMemory     = flag.Bool("low-memory", false, "inner-parallel, low-memory scheduling")
	threads       = flag.Int("t", 1, "number of worker threads")
	truncateNames = flag.Bool("truncate-names", false, "clip printed sequence names to 10 bytes")
	verbose       = flag.Bool("v", false, "verbose: also print the coverage matrix (see -vv for extra-verbose)")
	veryVerbose   = flag.Bool("vv", false, "extra-verbose: print raw asymmetric distances")
)

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("andi: %v", err)
	}

	paths := flag.Args()
	if len(paths) < 1 {
		fmt.Fprintln(os.Stderr, "usage: andi [options] genome.fasta ...")
		flag.Usage()
		os.Exit(1)
	}

	flags := &config.DiagnosticFlags{}

	sequences, err := fastaio.ReadFiles(paths, cfg.Join, flags)
	if err != nil {
		log.Fatalf("andi: %v", err)
	}
	if len(sequences) < 2 {
		log.Fatalf("andi: need at least 2 sequences, got %d", len(sequences))
	}

	table, err := pairwise.Build(context.Background(), cfg, sequences, nil, flags)
	if err != nil {
		log.Fatalf("andi: %v", err)
	}

	symmetric := table.Symmetric()

	display := symmetric
	if cfg.ExtraVerbose {
		display = table.Cell
	}

	if err := printDistances(os.Stdout, table.Names, display, cfg); err != nil {
		log.Fatalf("andi: writing distance matrix: %v", err)
	}

	for r := 0; r < cfg.BootstrapCount; r++ {
		rep := bootstrap.Table(symmetric)
		if err := printDistances(os.Stdout, table.Names, rep, cfg); err != nil {
			log.Fatalf("andi: writing bootstrap replicate %d: %v", r, err)
		}
	}

	if cfg.Verbose {
		if err := printCoverage(os.Stdout, table.Names, symmetric, cfg.TruncateNames); err != nil {
			log.Fatalf("andi: writing coverage matrix: %v", err)
		}
	}

	if flags.NonACGT() {
		log.Print("warning: one or more sequences contained non-ACGT bytes, which were dropped")
	}
	if flags.ShortSequence() {
		log.Print("warning: one or more sequences were shorter than 1000 bytes")
	}

	os.Exit(flags.ExitCode())
}

func buildConfig() (config.Config, error) {
	m, err := config.ParseModel(*modelFlag)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		AnchorPValue:  *pValue,
		Model:         m,
		BootstrapCount: *bootstrapN,
		LowMemory:     *lowMemory,
		Threads:       *threads,
		TruncateNames: *truncateNames,
		Join:          *join,
		Verbose:       *verbose || *veryVerbose,
		ExtraVerbose:  *veryVerbose,
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// printDistances renders one PHYLIP-style distance matrix from a symmetric
// (or, in extra-verbose mode, raw directional) mutation-matrix table.
func printDistances(w io.Writer, names []string, pairs [][]model.Matrix, cfg config.Config) error {
	n := len(pairs)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			d[i][j] = model.Distance(pairs[i][j], cfg.Model)
		}
	}
	return matrixio.WriteMatrix(w, names, d, cfg.TruncateNames)
}

func printCoverage(w io.Writer, names []string, pairs [][]model.Matrix, truncate bool) error {
	n := len(pairs)
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, n)
		for j := range c[i] {
			c[i][j] = pairs[i][j].Coverage()
		}
	}
	return matrixio.WriteCoverage(w, names, c, truncate)
}
