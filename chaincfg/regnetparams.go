// Copyright (c) 2018-2022 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network or the simulation
// test network.  The purpose of this network is primarily for unit tests and
// RPC server tests.
func RegNetParams() *Params {
	// regNetPowLimit is the highest proof of work value a block can have for
	// the regression test network.  It is the value 2^255 - 1.
	regNetPowLimit := hexToUint256("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	return &Params{
		Name:         "regnet",
		PowLimit:     regNetPowLimit,
		PowLimitBits: 0x207fffff,
	}
}
