// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

// Method is the type used to register method and parameter pairs with dcrjson.
type Method string
