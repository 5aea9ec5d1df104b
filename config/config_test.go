// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "testing"

func TestParseModel(t *testing.T) {
	cases := map[string]Model{
		"raw":    RAW,
		"jc":     JC,
		"":       JC,
		"kimura": KIMURA,
		"logdet": LOGDET,
	}
	for in, want := range cases {
		got, err := ParseModel(in)
		if err != nil {
			t.Fatalf("ParseModel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseModel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseModelRejectsUnknown(t *testing.T) {
	if _, err := ParseModel("bogus"); err == nil {
		t.Fatal("ParseModel(\"bogus\"): want error, got nil")
	}
}

func TestModelString(t *testing.T) {
	if RAW.String() != "raw" || JC.String() != "jc" || KIMURA.String() != "kimura" || LOGDET.String() != "logdet" {
		t.Fatal("Model.String() does not round-trip through ParseModel's vocabulary")
	}
}

func TestValidateRejectsPValueOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.AnchorPValue = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate with AnchorPValue=0: want error, got nil")
	}
	cfg.AnchorPValue = 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate with AnchorPValue=1: want error, got nil")
	}
}

func TestValidateRejectsNegativeBootstrap(t *testing.T) {
	cfg := Default()
	cfg.BootstrapCount = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate with BootstrapCount=-1: want error, got nil")
	}
}

func TestValidateRejectsZeroThreads(t *testing.T) {
	cfg := Default()
	cfg.Threads = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate with Threads=0: want error, got nil")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
}

func TestDiagnosticFlagsExitCode(t *testing.T) {
	var f DiagnosticFlags
	if f.ExitCode() != 0 {
		t.Fatalf("ExitCode() on a fresh DiagnosticFlags = %d, want 0", f.ExitCode())
	}
	f.SetSoftError()
	if f.ExitCode() != 1 {
		t.Fatalf("ExitCode() after SetSoftError = %d, want 1", f.ExitCode())
	}
}

func TestDiagnosticFlagsIndependent(t *testing.T) {
	var f DiagnosticFlags
	f.SetNonACGT()
	if !f.NonACGT() {
		t.Fatal("NonACGT() = false after SetNonACGT")
	}
	if f.ShortSequence() || f.SoftError() {
		t.Fatal("setting NonACGT should not set the other flags")
	}
}
