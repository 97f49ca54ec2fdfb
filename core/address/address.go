// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/pkg/errors"

	"github.com/kushti/ergo-simple-addresses/common/hash"
)

// AddressType is the single-byte tag distinguishing the serialized address
// variants. The set is closed; adding a value is a wire-format break.
type AddressType byte

const (
	// PubKeyAddrID is the tag of pay-to-public-key addresses.
	PubKeyAddrID AddressType = 1

	// ScriptHashAddrID is the tag of pay-to-script-hash addresses.
	ScriptHashAddrID AddressType = 2

	// ScriptAddrID is the tag of pay-to-script addresses.
	ScriptAddrID AddressType = 3
)

// String returns the conventional short name of the address type.
func (t AddressType) String() string {
	switch t {
	case PubKeyAddrID:
		return "p2pk"
	case ScriptHashAddrID:
		return "p2sh"
	case ScriptAddrID:
		return "p2s"
	}
	return "unknown"
}

// ScriptHashSize is the exact content length of a script hash address, the
// 192-bit truncation of the script digest.
const ScriptHashSize = 24

// Address is a structured payment destination identifier. Content returns
// the variant payload only: the head byte and the checksum of the serialized
// form are managed by the Encoder and are never part of the content.
//
// Address values are immutable once constructed and safe for concurrent use.
type Address interface {
	// Type returns the tag folded into the head byte of the serialized
	// form.
	Type() AddressType

	// Content returns the variant payload bytes.
	Content() []byte
}

// PubKeyAddress is an Address paying directly to a serialized public key.
type PubKeyAddress struct {
	pubKey []byte
}

// NewPubKeyAddress returns a new PubKeyAddress wrapping the given serialized
// public key. The key bytes are not validated here; whether they parse as a
// point on some curve is the caller's concern.
func NewPubKeyAddress(serializedPubKey []byte) *PubKeyAddress {
	return &PubKeyAddress{pubKey: cloneBytes(serializedPubKey)}
}

// Type returns PubKeyAddrID. Part of the Address interface.
func (a *PubKeyAddress) Type() AddressType {
	return PubKeyAddrID
}

// Content returns the serialized public key. Part of the Address interface.
func (a *PubKeyAddress) Content() []byte {
	return a.pubKey
}

// ScriptHashAddress is an Address paying to the truncated digest of a
// script.
type ScriptHashAddress struct {
	hash [ScriptHashSize]byte
}

// NewScriptHashAddress returns a new ScriptHashAddress. scriptHash must be
// exactly ScriptHashSize bytes.
func NewScriptHashAddress(scriptHash []byte) (*ScriptHashAddress, error) {
	if len(scriptHash) != ScriptHashSize {
		return nil, errors.Wrapf(ErrInvalidContentLength,
			"script hash must be %d bytes, got %d", ScriptHashSize, len(scriptHash))
	}
	addr := &ScriptHashAddress{}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// NewScriptHashAddressOfScript returns the ScriptHashAddress paying to the
// given serialized script, hashing it with blake2b-256 and keeping the first
// ScriptHashSize bytes.
func NewScriptHashAddressOfScript(script []byte) *ScriptHashAddress {
	addr := &ScriptHashAddress{}
	copy(addr.hash[:], hash.HashB(script)[:ScriptHashSize])
	return addr
}

// Type returns ScriptHashAddrID. Part of the Address interface.
func (a *ScriptHashAddress) Type() AddressType {
	return ScriptHashAddrID
}

// Content returns the truncated script digest. Part of the Address
// interface.
func (a *ScriptHashAddress) Content() []byte {
	return a.hash[:]
}

// ScriptHash returns the underlying array of the script hash. This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *ScriptHashAddress) ScriptHash() *[ScriptHashSize]byte {
	return &a.hash
}

// ScriptAddress is an Address carrying a full serialized script.
type ScriptAddress struct {
	script []byte
}

// NewScriptAddress returns a new ScriptAddress wrapping the given serialized
// script. The script bytes are not interpreted here.
func NewScriptAddress(script []byte) *ScriptAddress {
	return &ScriptAddress{script: cloneBytes(script)}
}

// Type returns ScriptAddrID. Part of the Address interface.
func (a *ScriptAddress) Type() AddressType {
	return ScriptAddrID
}

// Content returns the serialized script. Part of the Address interface.
func (a *ScriptAddress) Content() []byte {
	return a.script
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
