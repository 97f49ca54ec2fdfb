// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ax

import (
	"encoding/hex"

	"github.com/kushti/ergo-simple-addresses/common/hash"
)

// Blake2b256 calculates the blake2b-256 digest of a base16 string and
// returns it in base16.
func Blake2b256(input string) (string, error) {
	data, err := hex.DecodeString(input)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.HashB(data)), nil
}
