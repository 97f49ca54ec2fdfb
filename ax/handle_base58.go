// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ax

import (
	"encoding/hex"
	"fmt"

	"github.com/kushti/ergo-simple-addresses/common/encode/base58"
)

// Base58Encode encodes a base16 string to a base58 string.
func Base58Encode(input string) (string, error) {
	data, err := hex.DecodeString(input)
	if err != nil {
		return "", err
	}
	return base58.Encode(data), nil
}

// Base58Decode decodes a base58 string to a base16 string.
func Base58Decode(input string) (string, error) {
	data, err := base58.Decode(input)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// Base58CheckEncode check-encodes a base16 string under the given version
// byte (itself in base16), using the blake2b-256 checksum.
func Base58CheckEncode(version, input string) (string, error) {
	ver, err := hex.DecodeString(version)
	if err != nil {
		return "", err
	}
	if len(ver) != 1 {
		return "", fmt.Errorf("invalid version byte size %d, required 1", len(ver))
	}
	data, err := hex.DecodeString(input)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(data, ver[0], base58.Blake2b256Checksum), nil
}

// Base58CheckDecode decodes a check-encoded string, verifies its blake2b-256
// checksum, and returns the version byte and payload in base16.
func Base58CheckDecode(input string) (string, error) {
	payload, version, err := base58.CheckDecode(input, base58.Blake2b256Checksum)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02x %x", version, payload), nil
}
