// Copyright (c) 2019-2020 The ergo-simple-addresses developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:          "testnet",
	NetworkPrefix: TestNetPrefix,
}
