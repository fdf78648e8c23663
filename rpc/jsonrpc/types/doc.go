// Copyright (c) 2019-2020 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package types implements concrete types for marshalling to and from the celld
JSON-RPC commands and return values that operate on merkle trees and compact
targets.

All commands are registered with dcrjson
(https://pkg.go.dev/github.com/decred/dcrd/dcrjson/v4) when the package is
loaded, so dcrjson.NewCmd, dcrjson.MarshalCmd, and dcrjson.ParseParams all
recognize them by their Method.

# Marshalling and Unmarshalling

The types in this package map to the required parts of the protocol as
discussed in the dcrjson documentation

  - Request Objects (type Request)
  - Commands (type <Foo>Cmd)
  - Response Objects (type Response)
  - Result (type <Foo>Result)

Unmarshalling a received Request object is a two step process:
 1. Unmarshal the raw bytes into a dcrjson.Request struct instance via
    json.Unmarshal
 2. Use dcrjson.ParseParams on the Method and Params fields of the unmarshalled
    Request to create a concrete command instance with all struct fields set
    accordingly

# Hexadecimal values

Compact targets, targets, difficulties, and work values are represented in
results as 0x prefixed hexadecimal strings via HexUint32 and HexUint256.
Hashes use the plain hexadecimal encoding of chainhash.Hash.
*/
package types
