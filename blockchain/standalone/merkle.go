// Copyright (c) 2019-2023 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"github.com/cellchain/celld/chaincfg/chainhash"
)

// hashMerger is the Merger for hashes.  It concatenates the two child hashes
// and hashes the result with the configured hash function.
type hashMerger func(b []byte) chainhash.Hash

// Merge returns the hash of left || right.
func (f hashMerger) Merge(left, right *chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return f(buf[:])
}

var (
	// HashMerger combines hashes with BLAKE-256 and is the merger used by the
	// block commitments.
	HashMerger Merger[chainhash.Hash] = hashMerger(chainhash.HashH)

	// Blake3Merger combines hashes with BLAKE3.
	Blake3Merger Merger[chainhash.Hash] = hashMerger(chainhash.HashBlake3)
)

// CalcMerkleRoot calculates and returns the merkle root of the complete binary
// merkle tree over the provided leaves using HashMerger.
//
// The root of an empty tree is the zero hash and the root of a tree with a
// single leaf is that leaf.  The leaves are not modified.
func CalcMerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	return BuildRoot(leaves, HashMerger)
}

// BuildMerkleTree builds the complete binary merkle tree over the provided
// leaves using HashMerger.
func BuildMerkleTree(leaves []chainhash.Hash) *Tree[chainhash.Hash] {
	return BuildTree(leaves, HashMerger)
}

// GenerateMerkleProof creates an inclusion proof for the leaves at the provided
// indices of the merkle tree built over the given leaves using HashMerger.
//
// It returns nil when no indices are provided or any of them is out of range.
func GenerateMerkleProof(leaves []chainhash.Hash, indices []uint32) *Proof[chainhash.Hash] {
	return BuildProof(leaves, indices, HashMerger)
}

// VerifyMerkleProof returns whether the proof proves the provided leaves are
// members of the merkle tree with the given root and number of leaves built
// using HashMerger.
func VerifyMerkleProof(proof *Proof[chainhash.Hash], proven []chainhash.Hash, root *chainhash.Hash, leafCount uint32) bool {
	return proof.Verify(proven, *root, leafCount, HashMerger)
}

// CalcTransactionsRoot calculates the transactions root committed to by a block
// header.  It commits to both the transaction hashes and the witness hashes of
// the block, in block order, by merging the merkle roots of each of them.
func CalcTransactionsRoot(txHashes, witnessHashes []chainhash.Hash) chainhash.Hash {
	txRoot := CalcMerkleRoot(txHashes)
	witnessesRoot := CalcMerkleRoot(witnessHashes)
	return HashMerger.Merge(&txRoot, &witnessesRoot)
}

// TransactionProof proves that a set of transactions are included in a block
// with a given transactions root.
type TransactionProof struct {
	// WitnessesRoot is the merkle root of the witness hashes of the block.
	WitnessesRoot chainhash.Hash

	// Proof is the inclusion proof of the proven transaction hashes in the
	// merkle tree of the transaction hashes of the block.
	Proof *Proof[chainhash.Hash]
}

// GenerateTransactionProof creates a proof that the transactions at the
// provided indices are included in a block with the given transaction and
// witness hashes.
//
// It returns nil when no indices are provided or any of them is out of range.
func GenerateTransactionProof(txHashes, witnessHashes []chainhash.Hash, indices []uint32) *TransactionProof {
	proof := GenerateMerkleProof(txHashes, indices)
	if proof == nil {
		return nil
	}
	return &TransactionProof{
		WitnessesRoot: CalcMerkleRoot(witnessHashes),
		Proof:         proof,
	}
}

// VerifyTransactionProof returns whether the proof proves the provided
// transaction hashes are included in a block with the given transactions root
// and number of transactions.
func VerifyTransactionProof(proof *TransactionProof, txHashes []chainhash.Hash, txRoot *chainhash.Hash, txCount uint32) bool {
	if proof == nil {
		return false
	}
	calcTxRoot, ok := proof.Proof.CalcRoot(txHashes, txCount, HashMerger)
	if !ok {
		return false
	}
	calcRoot := HashMerger.Merge(&calcTxRoot, &proof.WitnessesRoot)
	return calcRoot == *txRoot
}
