// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/kushti/ergo-simple-addresses/common/encode/base58"
	"github.com/kushti/ergo-simple-addresses/params"
)

// Encoder serializes addresses for a single network.
//
// The serialized layout is
//
//	[1 byte: networkPrefix + typeTag] [content bytes] [4 byte checksum]
//
// base58-encoded as a whole, where the checksum is the first four bytes of
// the blake2b-256 digest of everything preceding it. Network and type share
// the head byte by byte-wise addition mod 256 rather than occupying separate
// fields; the scheme is a wire compatibility constraint and must not be
// reshaped into cleaner fields.
//
// An Encoder holds no mutable state and is safe to share across goroutines.
type Encoder struct {
	prefix params.NetworkPrefix
}

// NewEncoder returns an Encoder for an arbitrary network prefix.
func NewEncoder(prefix params.NetworkPrefix) *Encoder {
	return &Encoder{prefix: prefix}
}

// NewMainnetEncoder returns an Encoder for the main network.
func NewMainnetEncoder() *Encoder {
	return NewEncoder(params.MainNetParams.NetworkPrefix)
}

// NewTestnetEncoder returns an Encoder for the test network.
func NewTestnetEncoder() *Encoder {
	return NewEncoder(params.TestNetParams.NetworkPrefix)
}

// NetworkPrefix returns the network prefix the encoder was built with.
func (e *Encoder) NetworkPrefix() params.NetworkPrefix {
	return e.prefix
}

// Encode returns the string form of addr on this encoder's network. Any
// valid Address encodes successfully.
func (e *Encoder) Encode(addr Address) string {
	head := byte(e.prefix) + byte(addr.Type())
	return base58.CheckEncode(addr.Content(), head, base58.Blake2b256Checksum)
}

// Decode parses the string form of an address and returns the corresponding
// Address value. Every returned error wraps one of the sentinels in this
// package.
//
// The head-byte network check is a range test against the testnet prefix
// value, not an equality test, because the type tag is folded into the same
// byte: mainnet head bytes lie strictly below the testnet prefix, testnet
// head bytes strictly above. The split only accommodates the two canonical
// networks; a third prefix would need a format revision.
func (e *Encoder) Decode(encoded string) (Address, error) {
	decoded, err := base58.Decode(encoded)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedEncoding, err.Error())
	}
	if len(decoded) < 1+base58.ChecksumSize {
		return nil, errors.Wrapf(ErrTooShort,
			"%d bytes cannot hold a head byte and a checksum", len(decoded))
	}

	head := decoded[0]
	if e.prefix == params.TestNetPrefix {
		if head <= byte(params.TestNetPrefix) {
			return nil, errors.Wrap(ErrNetworkMismatch,
				"mainnet address decoded on testnet")
		}
	} else {
		if head >= byte(params.TestNetPrefix) {
			return nil, errors.Wrap(ErrNetworkMismatch,
				"testnet address decoded on mainnet")
		}
	}

	addrType := AddressType(head - byte(e.prefix))
	switch addrType {
	case PubKeyAddrID, ScriptHashAddrID, ScriptAddrID:
	default:
		return nil, errors.Wrapf(ErrUnsupportedAddressType, "type %d", addrType)
	}

	body := decoded[:len(decoded)-base58.ChecksumSize]
	cksum := decoded[len(decoded)-base58.ChecksumSize:]
	if !bytes.Equal(base58.Blake2b256Checksum(body), cksum) {
		return nil, errors.Wrapf(ErrChecksumMismatch, "in %q", encoded)
	}

	content := body[1:]
	switch addrType {
	case PubKeyAddrID:
		return NewPubKeyAddress(content), nil
	case ScriptHashAddrID:
		sh, err := NewScriptHashAddress(content)
		if err != nil {
			return nil, err
		}
		return sh, nil
	default:
		return NewScriptAddress(content), nil
	}
}
