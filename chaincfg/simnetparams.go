// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// SimNetParams returns the network parameters for the simulation test network.
// This network is similar to the normal test network except it is intended for
// private use within a group of individuals doing simulation testing and full
// integration tests between different applications.  The proof of work limit
// is the difficulty 2 target, so blocks are found almost immediately.
func SimNetParams() *Params {
	// simNetPowLimit is the highest proof of work value a block can have for
	// the simulation test network.  It is the value 2^255 - 1.
	simNetPowLimit := hexToUint256("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	return &Params{
		Name:         "simnet",
		PowLimit:     simNetPowLimit,
		PowLimitBits: 0x207fffff,
	}
}
