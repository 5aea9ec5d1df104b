// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "sync/atomic"

// DiagnosticFlags collects the monotonic, run-wide warning booleans that the
// original C implementation updated with "#pragma omp atomic" from inside
// the parallel compute region. Every field is safe to set concurrently from
// any goroutine; once set a flag is never cleared for the lifetime of a run.
type DiagnosticFlags struct {
	nonACGT       atomic.Bool
	shortSequence atomic.Bool
	softError     atomic.Bool
}

// SetNonACGT records that normalization stripped at least one non-ACGT byte.
func (f *DiagnosticFlags) SetNonACGT() { f.nonACGT.Store(true) }

// SetShortSequence records that some sequence was shorter than 1000 bytes.
func (f *DiagnosticFlags) SetShortSequence() { f.shortSequence.Store(true) }

// SetSoftError records a recoverable failure: a degenerate pair, a failed
// subject index, or low homology between a pair.
func (f *DiagnosticFlags) SetSoftError() { f.softError.Store(true) }

func (f *DiagnosticFlags) NonACGT() bool       { return f.nonACGT.Load() }
func (f *DiagnosticFlags) ShortSequence() bool { return f.shortSequence.Load() }
func (f *DiagnosticFlags) SoftError() bool     { return f.softError.Load() }

// ExitCode returns 1 once the soft-error flag is set (some pair's computation
// was surfaced as a warning) and 0 otherwise. A rejected input sequence never
// reaches this point: main aborts the run on it with log.Fatalf.
func (f *DiagnosticFlags) ExitCode() int {
	if f.softError.Load() {
		return 1
	}
	return 0
}
