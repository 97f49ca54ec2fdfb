// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const pubKeyHex = "02764ea2b0b9b06b5730a4257bba71fd7797eb1ec12bc3ae6025a01d7fba53830e"

func TestAddrEncode(t *testing.T) {
	s, err := AddrEncode("mainnet", "p2pk", pubKeyHex)
	assert.NoError(t, err)
	assert.Equal(t, s, "9fRAWhdxEsTcdb8PhGNrZfwqa65zfkuYHAMmkQLcic1gdLSV5vA")

	s, err = AddrEncode("testnet", "p2pk", pubKeyHex)
	assert.NoError(t, err)
	assert.Equal(t, s, "3WwWK6U2khXfCuoREuafbMBjpXJXMN6Y9M8Sj1wrUNfQBvaF4gBo")

	s, err = AddrEncode("mainnet", "p2sh", "000102030405060708090a0b0c0d0e0f1011121314151617")
	assert.NoError(t, err)
	assert.Equal(t, s, "6GS98t87ruNBxnYQfooXMcMhQQVza9LnWVprPW4")

	_, err = AddrEncode("mainnet", "p2sh", "0001020304")
	assert.Error(t, err)

	_, err = AddrEncode("mainnet", "p2pkh", pubKeyHex)
	assert.Error(t, err)

	_, err = AddrEncode("privnet", "p2pk", pubKeyHex)
	assert.Error(t, err)
}

func TestAddrDecode(t *testing.T) {
	s, err := AddrDecode("mainnet", "9fRAWhdxEsTcdb8PhGNrZfwqa65zfkuYHAMmkQLcic1gdLSV5vA")
	assert.NoError(t, err)
	assert.Equal(t, s, "p2pk "+pubKeyHex)

	_, err = AddrDecode("testnet", "9fRAWhdxEsTcdb8PhGNrZfwqa65zfkuYHAMmkQLcic1gdLSV5vA")
	assert.Error(t, err)
}

func TestP2SHAddrFromScript(t *testing.T) {
	script := "100204a00b08cd0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798ea02d192a39a8cc7a70173007301"
	s, err := P2SHAddrFromScript("mainnet", script)
	assert.NoError(t, err)
	assert.Equal(t, s, "8HhC7hVSmyGR8RoQPHZ4oejHh37WJgkGepvSFAV")

	d, err := AddrDecode("mainnet", s)
	assert.NoError(t, err)
	assert.Equal(t, d, "p2sh c4917b6b6cfc390939a4f9be71b7b68024dbd4db6acecaeb")
}

func TestBase58(t *testing.T) {
	s, err := Base58Encode("deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, s, "6h8cQN")

	s, err = Base58Decode("6h8cQN")
	assert.NoError(t, err)
	assert.Equal(t, s, "deadbeef")

	_, err = Base58Decode("0OIl")
	assert.Error(t, err)
}

func TestBase58Check(t *testing.T) {
	s, err := Base58CheckEncode("01", "31323334353938373630")
	assert.NoError(t, err)
	assert.Equal(t, s, "2wCdM4kvVC8zV3hHsQZs")

	s, err = Base58CheckDecode("2wCdM4kvVC8zV3hHsQZs")
	assert.NoError(t, err)
	assert.Equal(t, s, "01 31323334353938373630")

	_, err = Base58CheckEncode("0102", "deadbeef")
	assert.Error(t, err)
}

func TestBlake2b256(t *testing.T) {
	s, err := Blake2b256("")
	assert.NoError(t, err)
	assert.Equal(t, s, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")

	_, err = Blake2b256("zz")
	assert.Error(t, err)
}
