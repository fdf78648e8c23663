// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

// MerkleProofResult models the data returned from the buildmerkleproof
// command.
type MerkleProofResult struct {
	Root      string   `json:"root"`
	LeafCount uint32   `json:"leafcount"`
	Indices   []uint32 `json:"indices"`
	Lemmas    []string `json:"lemmas"`
}

// CompactTargetResult models the data returned from the compacttotarget
// command.  Target is the decoded magnitude which must not be used when
// Overflow is set.
type CompactTargetResult struct {
	Compact  HexUint32  `json:"compact"`
	Target   HexUint256 `json:"target"`
	Overflow bool       `json:"overflow"`
}

// DifficultyResult models the data returned from the compacttodifficulty
// command.
type DifficultyResult struct {
	Compact    HexUint32  `json:"compact"`
	Target     HexUint256 `json:"target"`
	Difficulty HexUint256 `json:"difficulty"`
	Work       HexUint256 `json:"work"`
}

// CheckProofOfWorkResult models the data returned from the checkproofofwork
// command.  Reason describes the violated rule when Valid is false.
type CheckProofOfWorkResult struct {
	Network string `json:"network"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
}
