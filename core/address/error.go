// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/pkg/errors"
)

// Decode failures. Every error returned by Encoder.Decode and by the address
// constructors wraps exactly one of these sentinels, so callers can dispatch
// with errors.Is. This is the complete enumeration; there is no other way
// for decoding to fail.
var (
	// ErrMalformedEncoding indicates the input string is not valid base58.
	ErrMalformedEncoding = errors.New("malformed base58 encoding")

	// ErrTooShort indicates the decoded bytes cannot hold even the head
	// byte and the checksum.
	ErrTooShort = errors.New("decoded address too short")

	// ErrNetworkMismatch indicates the head byte belongs to the other
	// network's range.
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrUnsupportedAddressType indicates the type tag derived from the
	// head byte is not one of the known address types.
	ErrUnsupportedAddressType = errors.New("unsupported address type")

	// ErrChecksumMismatch indicates the recomputed checksum differs from
	// the embedded one.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidContentLength indicates a script hash address whose
	// content is not exactly ScriptHashSize bytes.
	ErrInvalidContentLength = errors.New("invalid content length")
)
