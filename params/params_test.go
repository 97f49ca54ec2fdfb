// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import "testing"

func TestPrefixSplit(t *testing.T) {
	// The testnet prefix doubles as the head-byte range threshold; the
	// offset between the networks is part of the wire format.
	if TestNetPrefix != MainNetPrefix+16 {
		t.Fatalf("testnet prefix %d is not mainnet prefix %d + 16",
			TestNetPrefix, MainNetPrefix)
	}
}

func TestFromName(t *testing.T) {
	for _, want := range []*Params{&MainNetParams, &TestNetParams} {
		got, err := FromName(want.Name)
		if err != nil {
			t.Errorf("FromName(%q) failed: %v", want.Name, err)
			continue
		}
		if got != want {
			t.Errorf("FromName(%q) returned the wrong params", want.Name)
		}
	}
	if _, err := FromName("privnet"); err == nil {
		t.Error("FromName of an unknown network unexpectedly succeeded")
	}
}
