// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file is intended to house the commands that operate on merkle
// trees and compact targets.

package types

import (
	"github.com/decred/dcrd/dcrjson/v4"
)

// CalcMerkleRootCmd defines the calcmerkleroot JSON-RPC command.
type CalcMerkleRootCmd struct {
	Leaves []string `jsonrpcusage:"[\"leafhash\",...]"`
}

// NewCalcMerkleRootCmd returns a new instance which can be used to issue a
// calcmerkleroot JSON-RPC command.
func NewCalcMerkleRootCmd(leaves []string) *CalcMerkleRootCmd {
	return &CalcMerkleRootCmd{
		Leaves: leaves,
	}
}

// BuildMerkleProofCmd defines the buildmerkleproof JSON-RPC command.
type BuildMerkleProofCmd struct {
	Leaves  []string `jsonrpcusage:"[\"leafhash\",...]"`
	Indices []uint32 `jsonrpcusage:"[n,...]"`
}

// NewBuildMerkleProofCmd returns a new instance which can be used to issue a
// buildmerkleproof JSON-RPC command.
func NewBuildMerkleProofCmd(leaves []string, indices []uint32) *BuildMerkleProofCmd {
	return &BuildMerkleProofCmd{
		Leaves:  leaves,
		Indices: indices,
	}
}

// VerifyMerkleProofCmd defines the verifymerkleproof JSON-RPC command.
type VerifyMerkleProofCmd struct {
	Root      string
	LeafCount uint32
	Indices   []uint32 `jsonrpcusage:"[n,...]"`
	Lemmas    []string `jsonrpcusage:"[\"lemmahash\",...]"`
	Proven    []string `jsonrpcusage:"[\"leafhash\",...]"`
}

// NewVerifyMerkleProofCmd returns a new instance which can be used to issue a
// verifymerkleproof JSON-RPC command.
func NewVerifyMerkleProofCmd(root string, leafCount uint32, indices []uint32,
	lemmas, proven []string) *VerifyMerkleProofCmd {

	return &VerifyMerkleProofCmd{
		Root:      root,
		LeafCount: leafCount,
		Indices:   indices,
		Lemmas:    lemmas,
		Proven:    proven,
	}
}

// CompactToTargetCmd defines the compacttotarget JSON-RPC command.
type CompactToTargetCmd struct {
	Compact string
}

// NewCompactToTargetCmd returns a new instance which can be used to issue a
// compacttotarget JSON-RPC command.
func NewCompactToTargetCmd(compact string) *CompactToTargetCmd {
	return &CompactToTargetCmd{
		Compact: compact,
	}
}

// TargetToCompactCmd defines the targettocompact JSON-RPC command.
type TargetToCompactCmd struct {
	Target string
}

// NewTargetToCompactCmd returns a new instance which can be used to issue a
// targettocompact JSON-RPC command.
func NewTargetToCompactCmd(target string) *TargetToCompactCmd {
	return &TargetToCompactCmd{
		Target: target,
	}
}

// DifficultyToCompactCmd defines the difficultytocompact JSON-RPC command.
// The difficulty is an unsigned 256-bit value in either decimal or 0x prefixed
// hexadecimal form.
type DifficultyToCompactCmd struct {
	Difficulty string
}

// NewDifficultyToCompactCmd returns a new instance which can be used to issue
// a difficultytocompact JSON-RPC command.
func NewDifficultyToCompactCmd(difficulty string) *DifficultyToCompactCmd {
	return &DifficultyToCompactCmd{
		Difficulty: difficulty,
	}
}

// CompactToDifficultyCmd defines the compacttodifficulty JSON-RPC command.
type CompactToDifficultyCmd struct {
	Compact string
}

// NewCompactToDifficultyCmd returns a new instance which can be used to issue
// a compacttodifficulty JSON-RPC command.
func NewCompactToDifficultyCmd(compact string) *CompactToDifficultyCmd {
	return &CompactToDifficultyCmd{
		Compact: compact,
	}
}

// CheckProofOfWorkCmd defines the checkproofofwork JSON-RPC command.
type CheckProofOfWorkCmd struct {
	Hash    string
	Compact string
}

// NewCheckProofOfWorkCmd returns a new instance which can be used to issue a
// checkproofofwork JSON-RPC command.
func NewCheckProofOfWorkCmd(hash, compact string) *CheckProofOfWorkCmd {
	return &CheckProofOfWorkCmd{
		Hash:    hash,
		Compact: compact,
	}
}

func init() {
	// No special flags for commands in this file.
	flags := dcrjson.UsageFlag(0)

	dcrjson.MustRegister(Method("buildmerkleproof"), (*BuildMerkleProofCmd)(nil), flags)
	dcrjson.MustRegister(Method("calcmerkleroot"), (*CalcMerkleRootCmd)(nil), flags)
	dcrjson.MustRegister(Method("checkproofofwork"), (*CheckProofOfWorkCmd)(nil), flags)
	dcrjson.MustRegister(Method("compacttodifficulty"), (*CompactToDifficultyCmd)(nil), flags)
	dcrjson.MustRegister(Method("compacttotarget"), (*CompactToTargetCmd)(nil), flags)
	dcrjson.MustRegister(Method("difficultytocompact"), (*DifficultyToCompactCmd)(nil), flags)
	dcrjson.MustRegister(Method("targettocompact"), (*TargetToCompactCmd)(nil), flags)
	dcrjson.MustRegister(Method("verifymerkleproof"), (*VerifyMerkleProofCmd)(nil), flags)
}
