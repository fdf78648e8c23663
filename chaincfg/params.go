// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/decred/dcrd/math/uint256"
)

// ErrUnknownNet describes an error where the parameters for a network could
// not be looked up because the network name is not registered.
var ErrUnknownNet = errors.New("unknown network")

// Params defines a network by the parameters its proof of work and block
// commitments are checked against.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *uint256.Uint256

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32
}

// hexToUint256 converts the passed big-endian hex string into a uint256 and
// will panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only (and
// must only) be called with hard-coded values.
func hexToUint256(hexStr string) *uint256.Uint256 {
	if len(hexStr) > 64 {
		panic("hex string exceeds 256 bits: " + hexStr)
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return new(uint256.Uint256).SetByteSlice(b)
}

// registeredNets houses the parameters of the standard networks keyed by
// their names.
var registeredNets = make(map[string]*Params)

// mustRegister registers the parameters of the provided network and panics
// when a network with the same name is already registered.
func mustRegister(params *Params) {
	if _, ok := registeredNets[params.Name]; ok {
		panic(fmt.Sprintf("network %q is already registered", params.Name))
	}
	registeredNets[params.Name] = params
}

// ParamsForName returns the parameters of the standard network with the
// provided name.
func ParamsForName(name string) (*Params, error) {
	params, ok := registeredNets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	return params, nil
}

// NetNames returns the sorted names of the standard networks.
func NetNames() []string {
	names := make([]string, 0, len(registeredNets))
	for name := range registeredNets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	mustRegister(MainNetParams())
	mustRegister(TestNet3Params())
	mustRegister(SimNetParams())
	mustRegister(RegNetParams())
}
