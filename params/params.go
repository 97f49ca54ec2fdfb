// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import "fmt"

// NetworkPrefix identifies the deployment network an address belongs to.
//
// The prefix is not a standalone field on the wire: it is folded into the
// first serialized byte by byte-wise addition with the address type tag.
// Mainnet and testnet therefore split the head-byte range at the testnet
// prefix value, and that split is part of the wire contract.
type NetworkPrefix byte

const (
	// MainNetPrefix is the mainnet network prefix.
	MainNetPrefix NetworkPrefix = 0

	// TestNetPrefix is the testnet network prefix. It is also the
	// threshold byte value separating mainnet head bytes (strictly
	// below) from testnet head bytes (strictly above).
	TestNetPrefix NetworkPrefix = MainNetPrefix + 16
)

// Params defines an address network.
type Params struct {
	// Name is the human-readable network name used by tools to select
	// a network.
	Name string

	// NetworkPrefix is added to the address type tag to form the first
	// byte of a serialized address.
	NetworkPrefix NetworkPrefix
}

// FromName returns the parameters of the named network.
func FromName(name string) (*Params, error) {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams, nil
	case TestNetParams.Name:
		return &TestNetParams, nil
	}
	return nil, fmt.Errorf("unknown network %q", name)
}
