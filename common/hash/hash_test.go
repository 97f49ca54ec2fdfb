// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"encoding/hex"
	"testing"
)

func TestHashB(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{"abc", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{"hello world", "256c83b297114d201b30179f3f0ef0cace9783622da5974326b436178aeef610"},
	}
	for _, test := range tests {
		if got := hex.EncodeToString(HashB([]byte(test.in))); got != test.want {
			t.Errorf("HashB(%q) got %s, want %s", test.in, got, test.want)
		}
	}
}

func TestHashH(t *testing.T) {
	in := []byte("abc")
	h := HashH(in)
	if len(h) != HashSize {
		t.Fatalf("HashH returned %d bytes, want %d", len(h), HashSize)
	}
	b := HashB(in)
	for i := range h {
		if h[i] != b[i] {
			t.Fatal("HashH and HashB disagree")
		}
	}
}
