// Copyright (c) 2019-2023 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/bits"

	"github.com/jrick/bitset"
)

// Merger combines two child nodes of a complete binary merkle tree into their
// parent node.  Implementations must be pure and are expected to be order
// sensitive, meaning Merge(a, b) and Merge(b, a) generally differ.
type Merger[T any] interface {
	Merge(left, right *T) T
}

// MergeFunc is an adapter to allow the use of an ordinary function as a
// Merger.
type MergeFunc[T any] func(left, right *T) T

// Merge calls f(left, right).
func (f MergeFunc[T]) Merge(left, right *T) T {
	return f(left, right)
}

// Tree is a complete binary merkle tree.
//
// The tree is stored as an implicit 1-indexed heap backed by a flat slice of
// 2n nodes where n is the number of leaves.  Slot 0 is unused, the leaves
// occupy slots [n, 2n) in their original order, and every internal slot i in
// [1, n) commits to its children at slots 2i and 2i+1.  Slot 1 is the root.
//
// Since the leaf range always starts at slot n, every internal slot has both
// children and therefore no leaf is ever duplicated to pad the tree.  For
// leaf counts that are not a power of two, the leftmost leaves sit one level
// closer to the root than the rightmost ones.  For example, the tree for the
// three leaves h0, h1, and h2 is:
//
//	        root = M(M(h1, h2), h0)
//	       /                    \
//	  M(h1, h2)                  h0
//	  /       \
//	h1         h2
//
// A Tree must not be modified after it is built and is safe for concurrent
// read access.
type Tree[T comparable] struct {
	nodes []T
}

// BuildTree creates a complete binary merkle tree from the provided leaves
// using the given merger to produce the parent of every pair of nodes.
//
// The leaves are not modified and may contain duplicates.  Their order is
// significant.
func BuildTree[T comparable](leaves []T, merger Merger[T]) *Tree[T] {
	n := len(leaves)
	if n == 0 {
		return &Tree[T]{}
	}

	nodes := make([]T, 2*n)
	copy(nodes[n:], leaves)
	for i := n - 1; i > 0; i-- {
		nodes[i] = merger.Merge(&nodes[2*i], &nodes[2*i+1])
	}
	return &Tree[T]{nodes: nodes}
}

// BuildRoot calculates the root of the complete binary merkle tree for the
// provided leaves without retaining the full tree.
//
// The root of an empty tree is the zero value of T and the root of a tree with
// a single leaf is that leaf.
func BuildRoot[T comparable](leaves []T, merger Merger[T]) T {
	n := len(leaves)
	switch n {
	case 0:
		var zero T
		return zero
	case 1:
		return leaves[0]
	}

	// Only the internal nodes are stored.  Children that lie in the leaf
	// range are read directly from the provided leaves.
	internal := make([]T, n)
	node := func(slot int) *T {
		if slot >= n {
			return &leaves[slot-n]
		}
		return &internal[slot]
	}
	for i := n - 1; i > 0; i-- {
		internal[i] = merger.Merge(node(2*i), node(2*i+1))
	}
	return internal[1]
}

// LeafCount returns the number of leaves committed to by the tree.
func (t *Tree[T]) LeafCount() uint32 {
	return uint32(len(t.nodes) / 2)
}

// Leaf returns the leaf at the provided index.  It will panic if the index is
// out of range.
func (t *Tree[T]) Leaf(index uint32) T {
	return t.nodes[len(t.nodes)/2+int(index)]
}

// Root returns the root of the tree.  The root of an empty tree is the zero
// value of T.
func (t *Tree[T]) Root() T {
	if len(t.nodes) == 0 {
		var zero T
		return zero
	}
	return t.nodes[1]
}

// Proof is a compact multi-leaf inclusion proof for a complete binary merkle
// tree.
//
// Indices are the ascending unique 0-based positions of the proven leaves and
// Lemmas are the sibling nodes required to recompute the root, in the order
// they are consumed.  Lemmas are ordered by tree level starting from the
// deepest one and by ascending slot within each level.
//
// A proof does not commit to the root or the number of leaves in the tree.
// Both must be provided by the caller when verifying it.
type Proof[T comparable] struct {
	Indices []uint32
	Lemmas  []T
}

// proofNode is a known node during proof construction or verification.
type proofNode[T any] struct {
	slot  int
	value T
}

// depth returns the level of the provided slot in the heap where the root is at
// level 0.
func depth(slot int) int {
	return bits.Len(uint(slot)) - 1
}

// calcProofRoot ascends the tree from the provided known nodes, which must be
// sorted by ascending slot and free of duplicates, until the root is reached.
//
// The sibling function is invoked for each node whose sibling is not already
// known, in lemma order, and must return the value of the requested slot or
// false when it is not available.  The parent function produces the value of
// the given parent slot from its children.
//
// The deepest level is always processed first.  Since the depth of a slot
// never decreases as the slot increases, the known nodes of the deepest level
// are always a suffix of the sorted list.
func calcProofRoot[T comparable](known []proofNode[T],
	sibling func(slot int) (T, bool),
	parent func(slot int, left, right *T) T) (T, bool) {

	var zero T
	if len(known) == 0 {
		return zero, false
	}

	level := make([]proofNode[T], 0, len(known))
	parents := make([]proofNode[T], 0, len(known))
	for known[len(known)-1].slot != 1 {
		// Split off the nodes at the deepest level.
		minSlot := 1 << depth(known[len(known)-1].slot)
		split := len(known)
		for split > 0 && known[split-1].slot >= minSlot {
			split--
		}
		level = append(level[:0], known[split:]...)
		known = known[:split]

		parents = parents[:0]
		for i := 0; i < len(level); i++ {
			node := &level[i]
			var left, right *T
			switch {
			case node.slot&1 == 1:
				// The left sibling would have consumed this node had it
				// been known.
				v, ok := sibling(node.slot - 1)
				if !ok {
					return zero, false
				}
				left, right = &v, &node.value

			case i+1 < len(level) && level[i+1].slot == node.slot+1:
				left, right = &node.value, &level[i+1].value
				i++

			default:
				v, ok := sibling(node.slot + 1)
				if !ok {
					return zero, false
				}
				left, right = &node.value, &v
			}
			parentSlot := node.slot >> 1
			parents = append(parents, proofNode[T]{
				slot:  parentSlot,
				value: parent(parentSlot, left, right),
			})
		}

		known = mergeProofNodes(known, parents)
	}

	// Slots are unique and slot 1 is the smallest one, so it is the only
	// remaining node at this point.
	return known[0].value, true
}

// mergeProofNodes merges the provided lists of nodes sorted by ascending slot
// into a new sorted list.
func mergeProofNodes[T any](a, b []proofNode[T]) []proofNode[T] {
	merged := make([]proofNode[T], 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		if a[0].slot < b[0].slot {
			merged = append(merged, a[0])
			a = a[1:]
		} else {
			merged = append(merged, b[0])
			b = b[1:]
		}
	}
	merged = append(merged, a...)
	return append(merged, b...)
}

// leafProofNodes converts the provided ascending leaf indices of a tree with
// the given number of leaves into known proof nodes sorted by ascending slot.
func leafProofNodes[T comparable](indices []uint32, leafCount int, value func(i int) T) []proofNode[T] {
	nodes := make([]proofNode[T], len(indices))
	for i, index := range indices {
		nodes[i] = proofNode[T]{slot: leafCount + int(index), value: value(i)}
	}
	return nodes
}

// BuildProof creates an inclusion proof for the leaves at the provided indices.
// Duplicate indices are collapsed and the resulting proof lists the indices in
// ascending order.
//
// It returns nil when no indices are provided, the tree is empty, or any of the
// indices is out of range.
func (t *Tree[T]) BuildProof(indices []uint32) *Proof[T] {
	leafCount := len(t.nodes) / 2
	if len(indices) == 0 || leafCount == 0 {
		return nil
	}

	// Collapse and order the requested indices.
	requested := bitset.NewBytes(leafCount)
	for _, index := range indices {
		if uint64(index) >= uint64(leafCount) {
			return nil
		}
		requested.Set(int(index))
	}
	proof := &Proof[T]{Indices: make([]uint32, 0, len(indices))}
	for i := 0; i < leafCount; i++ {
		if requested.Get(i) {
			proof.Indices = append(proof.Indices, uint32(i))
		}
	}

	// The tree already holds every node, so the walk only records the
	// siblings it asks for.
	known := leafProofNodes(proof.Indices, leafCount, func(i int) T {
		return t.nodes[leafCount+int(proof.Indices[i])]
	})
	sibling := func(slot int) (T, bool) {
		proof.Lemmas = append(proof.Lemmas, t.nodes[slot])
		return t.nodes[slot], true
	}
	parent := func(slot int, _, _ *T) T {
		return t.nodes[slot]
	}
	if _, ok := calcProofRoot(known, sibling, parent); !ok {
		return nil
	}
	return proof
}

// BuildProof creates an inclusion proof for the leaves at the provided indices
// of the complete binary merkle tree built from the given leaves.  See
// Tree.BuildProof for details.
func BuildProof[T comparable](leaves []T, indices []uint32, merger Merger[T]) *Proof[T] {
	return BuildTree(leaves, merger).BuildProof(indices)
}

// CalcRoot recomputes the root of a tree with the provided number of leaves
// from the proof and the values of the proven leaves, which must be in the same
// order as the proof indices.
//
// It returns false when the proof is malformed.  That is the case when there
// are no indices, the indices are not strictly ascending or are out of range,
// the number of proven leaves does not match the number of indices, or the
// lemmas are either insufficient or not all consumed.
func (p *Proof[T]) CalcRoot(proven []T, leafCount uint32, merger Merger[T]) (T, bool) {
	var zero T
	if p == nil || len(p.Indices) == 0 || len(p.Indices) != len(proven) ||
		leafCount == 0 {

		return zero, false
	}
	for i, index := range p.Indices {
		if index >= leafCount || (i > 0 && index <= p.Indices[i-1]) {
			return zero, false
		}
	}

	lemmas := p.Lemmas
	known := leafProofNodes(p.Indices, int(leafCount), func(i int) T {
		return proven[i]
	})
	sibling := func(int) (T, bool) {
		if len(lemmas) == 0 {
			return zero, false
		}
		v := lemmas[0]
		lemmas = lemmas[1:]
		return v, true
	}
	parent := func(_ int, left, right *T) T {
		return merger.Merge(left, right)
	}
	root, ok := calcProofRoot(known, sibling, parent)
	if !ok || len(lemmas) != 0 {
		return zero, false
	}
	return root, true
}

// Verify returns whether the proof proves the provided leaves, in the same
// order as the proof indices, are members of the tree with the given root and
// number of leaves.  It returns false for malformed proofs.
func (p *Proof[T]) Verify(proven []T, root T, leafCount uint32, merger Merger[T]) bool {
	calcRoot, ok := p.CalcRoot(proven, leafCount, merger)
	return ok && calcRoot == root
}
