// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the immutable run configuration and the mutable,
// concurrency-safe diagnostic flags that replace andi's original
// module-level globals (FLAGS, MODEL, THREADS, BOOTSTRAP, ANCHOR_P_VALUE).
package config

import "fmt"

// Model selects the evolutionary model used to convert a mutation matrix
// into a scalar distance.
type Model int

const (
	RAW Model = iota
	JC
	KIMURA
	LOGDET
)

func (m Model) String() string {
	switch m {
	case RAW:
		return "raw"
	case JC:
		return "jc"
	case KIMURA:
		return "kimura"
	case LOGDET:
		return "logdet"
	default:
		return "unknown"
	}
}

// ParseModel maps a command-line string onto a Model.
func ParseModel(s string) (Model, error) {
	switch s {
	case "raw":
		return RAW, nil
	case "jc", "":
		return JC, nil
	case "kimura":
		return KIMURA, nil
	case "logdet":
		return LOGDET, nil
	default:
		return JC, fmt.Errorf("config: unknown model %q", s)
	}
}

// Config is the immutable set of options that govern a single run. It is
// built once from CLI flags and then passed by value into the driver; no
// goroutine ever mutates it.
type Config struct {
	AnchorPValue  float64
	Model         Model
	BootstrapCount int
	LowMemory     bool
	Threads       int
	TruncateNames bool
	Join          bool
	Verbose       bool
	ExtraVerbose  bool
}

// Validate checks the invariants the spec places on configuration values.
func (c Config) Validate() error {
	if c.AnchorPValue <= 0 || c.AnchorPValue >= 1 {
		return fmt.Errorf("config: anchor p-value %v must lie in (0, 1)", c.AnchorPValue)
	}
	if c.BootstrapCount < 0 {
		return fmt.Errorf("config: bootstrap count %d must be non-negative", c.BootstrapCount)
	}
	if c.Threads < 1 {
		return fmt.Errorf("config: threads %d must be >= 1", c.Threads)
	}
	return nil
}

// Default returns the configuration matching andi's documented defaults.
func Default() Config {
	return Config{
		AnchorPValue: 0.025,
		Model:        JC,
		Threads:      1,
	}
}
