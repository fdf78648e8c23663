// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNet3Params returns the network parameters for the test currency network.
// This network is sometimes simply called "testnet".
func TestNet3Params() *Params {
	// testNetPowLimit is the highest proof of work value a block can have for
	// the test network.  It is the value 2^232 - 1.
	testNetPowLimit := hexToUint256("000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	return &Params{
		Name:         "testnet3",
		PowLimit:     testNetPowLimit,
		PowLimitBits: 0x1e00ffff,
	}
}
