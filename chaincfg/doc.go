// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main network there are three standard test networks:
// testnet, simnet, and regnet.  They differ in the highest proof of work value
// a block can have, so a hash or compact target that is valid on one network
// may be rejected on another.
//
// The parameters of each network are returned by a constructor such as
// MainNetParams and may also be looked up by name with ParamsForName:
//
//	params, err := chaincfg.ParamsForName("simnet")
//	if err != nil {
//		return err
//	}
//	err = standalone.CheckProofOfWork(&hash, bits, params.PowLimit)
package chaincfg
