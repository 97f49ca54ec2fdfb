// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ax

import (
	"encoding/hex"
	"fmt"

	"github.com/kushti/ergo-simple-addresses/core/address"
	"github.com/kushti/ergo-simple-addresses/params"
)

func encoderForNetwork(network string) (*address.Encoder, error) {
	p, err := params.FromName(network)
	if err != nil {
		return nil, err
	}
	return address.NewEncoder(p.NetworkPrefix), nil
}

// AddrEncode builds an address of the given type from hex content bytes and
// returns its string form on the named network. addrType is one of "p2pk",
// "p2sh" and "p2s".
func AddrEncode(network, addrType, contentHex string) (string, error) {
	content, err := hex.DecodeString(contentHex)
	if err != nil {
		return "", err
	}
	enc, err := encoderForNetwork(network)
	if err != nil {
		return "", err
	}
	var addr address.Address
	switch addrType {
	case "p2pk":
		addr = address.NewPubKeyAddress(content)
	case "p2sh":
		addr, err = address.NewScriptHashAddress(content)
		if err != nil {
			return "", err
		}
	case "p2s":
		addr = address.NewScriptAddress(content)
	default:
		return "", fmt.Errorf("unknown address type %q", addrType)
	}
	return enc.Encode(addr), nil
}

// AddrDecode parses an address string on the named network and returns its
// type followed by the content bytes in hex.
func AddrDecode(network, encoded string) (string, error) {
	enc, err := encoderForNetwork(network)
	if err != nil {
		return "", err
	}
	addr, err := enc.Decode(encoded)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %x", addr.Type(), addr.Content()), nil
}

// P2SHAddrFromScript hashes a hex-encoded serialized script and returns the
// resulting pay-to-script-hash address on the named network.
func P2SHAddrFromScript(network, scriptHex string) (string, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return "", err
	}
	enc, err := encoderForNetwork(network)
	if err != nil {
		return "", err
	}
	return enc.Encode(address.NewScriptHashAddressOfScript(script)), nil
}
