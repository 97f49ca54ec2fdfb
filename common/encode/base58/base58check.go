// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/kushti/ergo-simple-addresses/common/hash"
)

// ChecksumSize is the number of checksum bytes appended to every
// check-encoded string.
const ChecksumSize = 4

// ErrChecksum indicates that the checksum of a check-encoded string does not
// verify against the checksum.
var ErrChecksum = errors.New("checksum error")

// ErrInvalidFormat indicates that the check-encoded string has an invalid
// format.
var ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")

// ChecksumFunc derives the checksum bytes appended by CheckEncode.
type ChecksumFunc func([]byte) []byte

// Blake2b256Checksum returns the first four bytes of the blake2b-256 digest
// of input.
func Blake2b256Checksum(input []byte) []byte {
	h := hash.HashB(input)
	return h[:ChecksumSize]
}

// CheckEncode prepends the version byte, appends the checksum derived by
// cksumFn over version plus input, and base58-encodes the whole.
func CheckEncode(input []byte, version byte, cksumFn ChecksumFunc) string {
	b := make([]byte, 0, 1+len(input)+ChecksumSize)
	b = append(b, version)
	b = append(b, input...)
	b = append(b, cksumFn(b)...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode, verifies
// the checksum, and returns the payload together with the leading version
// byte.
func CheckDecode(input string, cksumFn ChecksumFunc) (result []byte, version byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < 1+ChecksumSize {
		return nil, 0, ErrInvalidFormat
	}
	body := decoded[:len(decoded)-ChecksumSize]
	cksum := decoded[len(decoded)-ChecksumSize:]
	if !bytes.Equal(cksumFn(body), cksum) {
		return nil, 0, ErrChecksum
	}
	return body[1:], body[0], nil
}
