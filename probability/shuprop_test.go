// Copyright ©2026 The andi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probability

import "testing"

func TestShupropIsMonotonicInX(t *testing.T) {
	p, l := 0.25, 1_000_000
	prev := 0.0
	for x := 1; x <= 20; x++ {
		v := Shuprop(x, p, l)
		if v < prev {
			t.Fatalf("Shuprop(%d, %v, %v) = %v, want >= previous value %v", x, p, l, v, prev)
		}
		prev = v
	}
}

func TestShupropNegativeXIsZero(t *testing.T) {
	if Shuprop(-1, 0.25, 1000) != 0 {
		t.Fatal("Shuprop with x < 0 should be 0")
	}
}

func TestShupropConvergesToOne(t *testing.T) {
	v := Shuprop(60, 0.25, 1_000_000)
	if v < 0.999 {
		t.Fatalf("Shuprop(60, 0.25, 1e6) = %v, want close to 1", v)
	}
}

func TestMinAnchorLengthIsSufficient(t *testing.T) {
	pValue, gc, l := 0.025, 0.5, 1_000_000
	x := MinAnchorLength(pValue, gc, l)
	if x <= 0 {
		t.Fatalf("MinAnchorLength = %d, want > 0", x)
	}
	got := Shuprop(x, gc/2, l)
	if got < 1-pValue {
		t.Fatalf("Shuprop(MinAnchorLength(...), ...) = %v, want >= %v", got, 1-pValue)
	}
	if x > 1 {
		prevOK := Shuprop(x-1, gc/2, l)
		if prevOK >= 1-pValue {
			t.Fatalf("MinAnchorLength returned %d, but %d already satisfies the threshold", x, x-1)
		}
	}
}

func TestMinAnchorLengthGrowsWithSequenceLength(t *testing.T) {
	short := MinAnchorLength(0.025, 0.5, 1_000)
	long := MinAnchorLength(0.025, 0.5, 1_000_000)
	if long < short {
		t.Fatalf("MinAnchorLength(l=1e6) = %d, want >= MinAnchorLength(l=1e3) = %d", long, short)
	}
}
