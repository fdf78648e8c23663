// Copyright (c) 2019-2023 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"reflect"
	"testing"

	"github.com/cellchain/celld/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

// hashLeaves returns the BLAKE-256 hashes of the provided strings.
func hashLeaves(data ...string) []chainhash.Hash {
	leaves := make([]chainhash.Hash, 0, len(data))
	for _, d := range data {
		leaves = append(leaves, chainhash.HashH([]byte(d)))
	}
	return leaves
}

// mergeHashes is an independent rendition of HashMerger used to calculate the
// expected results by hand.
func mergeHashes(left, right chainhash.Hash) chainhash.Hash {
	return chainhash.HashH(append(left[:], right[:]...))
}

// TestCalcMerkleRoot ensures the expected merkle roots are produced for trees
// of known shapes.
func TestCalcMerkleRoot(t *testing.T) {
	t.Parallel()

	h := hashLeaves("alpha", "beta", "gamma", "delta", "epsilon")
	tests := []struct {
		name   string           // test description
		leaves []chainhash.Hash // leaves to test
		want   chainhash.Hash   // expected result
	}{{
		name:   "no leaves",
		leaves: nil,
		want:   chainhash.Hash{},
	}, {
		name:   "single leaf",
		leaves: h[:1],
		want:   h[0],
	}, {
		name:   "two leaves",
		leaves: h[:2],
		want:   mergeHashes(h[0], h[1]),
	}, {
		name:   "three leaves",
		leaves: h[:3],
		want:   mergeHashes(mergeHashes(h[1], h[2]), h[0]),
	}, {
		name:   "four leaves",
		leaves: h[:4],
		want:   mergeHashes(mergeHashes(h[0], h[1]), mergeHashes(h[2], h[3])),
	}, {
		name:   "five leaves",
		leaves: h,
		want: mergeHashes(mergeHashes(mergeHashes(h[3], h[4]), h[0]),
			mergeHashes(h[1], h[2])),
	}}

	for _, test := range tests {
		leavesCopy := append([]chainhash.Hash(nil), test.leaves...)

		result := CalcMerkleRoot(test.leaves)
		if result != test.want {
			t.Errorf("%q: mismatched result -- got %v, want %v", test.name,
				result, test.want)
			continue
		}
		if tree := BuildMerkleTree(test.leaves); tree.Root() != test.want {
			t.Errorf("%q: mismatched tree root -- got %v, want %v",
				test.name, tree.Root(), test.want)
			continue
		}

		// Ensure the leaves were not mutated.
		if !reflect.DeepEqual(test.leaves, leavesCopy) {
			t.Errorf("%q: leaves were mutated", test.name)
		}
	}
}

// TestMergers ensures the hash mergers are order sensitive and produce
// distinct results.
func TestMergers(t *testing.T) {
	t.Parallel()

	h := hashLeaves("left", "right")
	blake256 := HashMerger.Merge(&h[0], &h[1])
	if blake256 != mergeHashes(h[0], h[1]) {
		t.Fatalf("unexpected BLAKE-256 merge result %v", blake256)
	}
	if HashMerger.Merge(&h[1], &h[0]) == blake256 {
		t.Fatal("BLAKE-256 merge is not order sensitive")
	}

	blake3 := Blake3Merger.Merge(&h[0], &h[1])
	want := chainhash.HashBlake3(append(h[0][:], h[1][:]...))
	if blake3 != want {
		t.Fatalf("mismatched BLAKE3 merge result -- got %v, want %v", blake3,
			want)
	}
	if Blake3Merger.Merge(&h[1], &h[0]) == blake3 {
		t.Fatal("BLAKE3 merge is not order sensitive")
	}
	if blake3 == blake256 {
		t.Fatal("BLAKE3 and BLAKE-256 merges match")
	}
}

// TestMerkleProofEndToEnd ensures a proof for the first and last leaves of a
// balanced tree of four leaves contains exactly the two inner leaves as lemmas
// and verifies against the root calculated by hand.
func TestMerkleProofEndToEnd(t *testing.T) {
	t.Parallel()

	h := hashLeaves("alpha", "beta", "gamma", "delta")
	root := CalcMerkleRoot(h)
	want := mergeHashes(mergeHashes(h[0], h[1]), mergeHashes(h[2], h[3]))
	if root != want {
		t.Fatalf("mismatched root -- got %v, want %v", root, want)
	}

	proof := GenerateMerkleProof(h, []uint32{0, 3})
	if proof == nil {
		t.Fatal("unexpected nil proof")
	}
	wantLemmas := []chainhash.Hash{h[1], h[2]}
	if !reflect.DeepEqual(proof.Lemmas, wantLemmas) {
		t.Fatalf("mismatched lemmas -- got %s, want %s",
			spew.Sdump(proof.Lemmas), spew.Sdump(wantLemmas))
	}

	proven := []chainhash.Hash{h[0], h[3]}
	if !VerifyMerkleProof(proof, proven, &root, 4) {
		t.Fatal("valid proof rejected")
	}

	// Flipping a single bit of any lemma or proven leaf must fail.
	for i := range proof.Lemmas {
		proof.Lemmas[i][0] ^= 0x01
		if VerifyMerkleProof(proof, proven, &root, 4) {
			t.Fatalf("tampered lemma %d accepted", i)
		}
		proof.Lemmas[i][0] ^= 0x01
	}
	for i := range proven {
		proven[i][31] ^= 0x80
		if VerifyMerkleProof(proof, proven, &root, 4) {
			t.Fatalf("tampered leaf %d accepted", i)
		}
		proven[i][31] ^= 0x80
	}

	// The lemmas are all leaves, so the proof also holds for the tree built
	// with BLAKE3 but only when verified with the same merger.
	blake3Root := BuildRoot(h, Blake3Merger)
	if !proof.Verify(proven, blake3Root, 4, Blake3Merger) {
		t.Fatal("proof rejected by the BLAKE3 tree")
	}
	if VerifyMerkleProof(proof, proven, &blake3Root, 4) {
		t.Fatal("proof verified against a root built with another merger")
	}
}

// TestMerkleProofSoundness ensures proofs for every subset of the leaves of
// trees of various sizes verify.
func TestMerkleProofSoundness(t *testing.T) {
	t.Parallel()

	data := []string{"a", "b", "c", "d", "e", "f", "g"}
	for n := 1; n <= len(data); n++ {
		leaves := hashLeaves(data[:n]...)
		root := CalcMerkleRoot(leaves)

		forEachSubset(n, func(indices []uint32) {
			proof := GenerateMerkleProof(leaves, indices)
			if proof == nil {
				t.Fatalf("%d leaves, indices %v: unexpected nil proof", n,
					indices)
			}
			proven := make([]chainhash.Hash, len(indices))
			for i, index := range indices {
				proven[i] = leaves[index]
			}
			if !VerifyMerkleProof(proof, proven, &root, uint32(n)) {
				t.Fatalf("%d leaves, indices %v: valid proof rejected", n,
					indices)
			}
		})
	}

	if proof := GenerateMerkleProof(hashLeaves("a"), []uint32{1}); proof != nil {
		t.Fatalf("unexpected proof for out of range index: %s",
			spew.Sdump(proof))
	}
}

// TestTransactionProof ensures transaction proofs verify against the
// transactions root committed to by the transaction and witness hashes and
// fail for any other root.
func TestTransactionProof(t *testing.T) {
	t.Parallel()

	txHashes := hashLeaves("tx0", "tx1", "tx2")
	witnessHashes := hashLeaves("wit0", "wit1", "wit2")
	txRoot := CalcTransactionsRoot(txHashes, witnessHashes)

	want := mergeHashes(CalcMerkleRoot(txHashes), CalcMerkleRoot(witnessHashes))
	if txRoot != want {
		t.Fatalf("mismatched transactions root -- got %v, want %v", txRoot,
			want)
	}

	// An empty block commits to two zero roots.
	var zero chainhash.Hash
	if got := CalcTransactionsRoot(nil, nil); got != mergeHashes(zero, zero) {
		t.Fatalf("mismatched empty transactions root -- got %v", got)
	}

	proof := GenerateTransactionProof(txHashes, witnessHashes, []uint32{2, 0})
	if proof == nil {
		t.Fatal("unexpected nil proof")
	}
	if proof.WitnessesRoot != CalcMerkleRoot(witnessHashes) {
		t.Fatalf("mismatched witnesses root -- got %v", proof.WitnessesRoot)
	}
	proven := []chainhash.Hash{txHashes[0], txHashes[2]}
	if !VerifyTransactionProof(proof, proven, &txRoot, 3) {
		t.Fatal("valid transaction proof rejected")
	}

	tests := []struct {
		name    string            // test description
		proof   *TransactionProof // proof to verify
		proven  []chainhash.Hash  // proven transaction hashes
		txCount uint32            // number of transactions
	}{{
		name:    "nil proof",
		proof:   nil,
		proven:  proven,
		txCount: 3,
	}, {
		name: "wrong witnesses root",
		proof: &TransactionProof{
			WitnessesRoot: CalcMerkleRoot(txHashes),
			Proof:         proof.Proof,
		},
		proven:  proven,
		txCount: 3,
	}, {
		name:    "wrong transaction",
		proof:   proof,
		proven:  []chainhash.Hash{txHashes[0], txHashes[1]},
		txCount: 3,
	}, {
		name:    "wrong transaction count",
		proof:   proof,
		proven:  proven,
		txCount: 4,
	}}

	for _, test := range tests {
		if VerifyTransactionProof(test.proof, test.proven, &txRoot,
			test.txCount) {

			t.Errorf("%q: invalid proof accepted", test.name)
		}
	}

	if GenerateTransactionProof(txHashes, witnessHashes, nil) != nil {
		t.Fatal("unexpected proof without indices")
	}
}
