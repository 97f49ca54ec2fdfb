// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"golang.org/x/crypto/blake2b"
)

// HashSize of array used to store hashes.
const HashSize = 32

// Hash is a blake2b-256 digest.
type Hash [HashSize]byte

// HashB calculates the blake2b-256 digest of b and returns the digest bytes.
func HashB(b []byte) []byte {
	h := blake2b.Sum256(b)
	return h[:]
}

// HashH calculates the blake2b-256 digest of b and returns it as a Hash.
func HashH(b []byte) Hash {
	return Hash(blake2b.Sum256(b))
}
