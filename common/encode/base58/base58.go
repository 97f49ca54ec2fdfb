// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"github.com/mr-tron/base58"
)

// Encode returns the base58 text form of b, using the Bitcoin alphabet.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode parses a base58 string back into bytes. It fails on the empty
// string and on any character outside the 58-letter alphabet.
func Decode(s string) ([]byte, error) {
	return base58.Decode(s)
}
