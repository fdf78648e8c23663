// Copyright (c) 2019-2022 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package standalone provides standalone functions useful for working with the
consensus rules of the chain.

The functions are pure and have no dependencies on the rest of the node, which
makes them ideal for applications such as lightweight clients that need to
ensure basic security properties hold.  For example, some things a light client
needs to prove are that block headers satisfy the proof of work requirements
and that a given set of transactions is committed to by a header.

# Function categories

The provided functions fall into the following categories:

  - Complete binary merkle trees
  - Merkle root calculation and block commitments
  - Compact target and difficulty conversion
  - Proof-of-work

# Complete binary merkle trees

  - Building a tree or only its root over leaves of any comparable type using
    a caller provided Merger
  - Generating a compact inclusion proof for any subset of the leaves
  - Recomputing the root from a proof and verifying it against a known root

The tree is stored as a 1-indexed heap over 2n slots with the leaves in slots
[n, 2n), so it never duplicates leaves to reach a power of two.  The root of an
empty tree is the zero value of the leaf type.

# Merkle root calculation and block commitments

  - Calculation from individual leaf hashes using BLAKE-256 or BLAKE3
  - Calculation of the transactions root committed to by a block header from
    the transaction and witness hashes
  - Generation and verification of transaction inclusion proofs against a
    transactions root

# Compact target and difficulty conversion

  - Converting to and from the compact target representation
  - Converting between difficulties and targets through the anchor target,
    which is the maximum unsigned 256-bit value

# Proof-of-work

  - Calculating work values based on the compact target
  - Checking a hash satisfies a target and that the target is within a valid
    range

# Errors

Errors returned by the proof-of-work checks are of type standalone.RuleError.
The specific rule violation can be determined by using errors.Is with one of
the ErrorKind constants.  The merkle tree and conversion functions never return
errors.  Instead, they report malformed input via a nil result or a boolean.
*/
package standalone
