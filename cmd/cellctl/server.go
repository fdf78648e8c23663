// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/cellchain/celld/blockchain/standalone"
	"github.com/cellchain/celld/chaincfg"
	"github.com/cellchain/celld/chaincfg/chainhash"
	"github.com/cellchain/celld/rpc/jsonrpc/types"
	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/dcrjson/v4"
	"github.com/decred/dcrd/math/uint256"
)

// commandHandler describes a callback function used to handle a specific
// command.
type commandHandler func(*server, interface{}) (interface{}, error)

// rpcHandlers maps command strings to appropriate handler functions.
var rpcHandlers = map[types.Method]commandHandler{
	"buildmerkleproof":    handleBuildMerkleProof,
	"calcmerkleroot":      handleCalcMerkleRoot,
	"checkproofofwork":    handleCheckProofOfWork,
	"compacttodifficulty": handleCompactToDifficulty,
	"compacttotarget":     handleCompactToTarget,
	"difficultytocompact": handleDifficultyToCompact,
	"targettocompact":     handleTargetToCompact,
	"verifymerkleproof":   handleVerifyMerkleProof,
}

// server answers requests for the registered commands locally.
type server struct {
	merger standalone.Merger[chainhash.Hash]
	params *chaincfg.Params
}

// newServer returns a server that merges merkle tree nodes with the named hash
// function and checks proof of work against the limit of the named network.
func newServer(hashFunc, net string) (*server, error) {
	params, err := chaincfg.ParamsForName(net)
	if err != nil {
		return nil, err
	}
	switch hashFunc {
	case "blake256":
		return &server{merger: standalone.HashMerger, params: params}, nil
	case "blake3":
		return &server{merger: standalone.Blake3Merger, params: params}, nil
	}
	return nil, fmt.Errorf("unsupported hash function %q", hashFunc)
}

// rpcInternalError is a convenience function to convert an internal error to
// an RPC error with the appropriate code set.  It also logs the error.
func rpcInternalError(errStr, context string) *dcrjson.RPCError {
	logStr := errStr
	if context != "" {
		logStr = context + ": " + errStr
	}
	log.Error(logStr)
	return dcrjson.NewRPCError(dcrjson.ErrRPCInternal.Code, errStr)
}

// rpcInvalidError is a convenience function to convert an invalid parameter
// error to an RPC error with the appropriate code set.
func rpcInvalidError(fmtStr string, args ...interface{}) *dcrjson.RPCError {
	return dcrjson.NewRPCError(dcrjson.ErrRPCInvalidParameter,
		fmt.Sprintf(fmtStr, args...))
}

// rpcDecodeHexError is a convenience function for returning a nicely formatted
// RPC error which indicates the provided hex string failed to decode.
func rpcDecodeHexError(gotHex string) *dcrjson.RPCError {
	return dcrjson.NewRPCError(dcrjson.ErrRPCDecodeHexString,
		fmt.Sprintf("Argument must be hexadecimal string (not %q)",
			gotHex))
}

// decodeHashes decodes the provided hexadecimal hash strings.
func decodeHashes(strs []string) ([]chainhash.Hash, error) {
	hashes := make([]chainhash.Hash, len(strs))
	for i, str := range strs {
		if err := chainhash.Decode(&hashes[i], str); err != nil {
			return nil, rpcDecodeHexError(str)
		}
	}
	return hashes, nil
}

// hashStrings returns the hexadecimal encoding of the provided hashes.
func hashStrings(hashes []chainhash.Hash) []string {
	strs := make([]string, 0, len(hashes))
	for i := range hashes {
		strs = append(strs, hashes[i].String())
	}
	return strs
}

// parseDifficulty parses a difficulty that is either a decimal or a 0x prefixed
// hexadecimal unsigned 256-bit value.
func parseDifficulty(s string) (uint256.Uint256, error) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		difficulty, err := types.ParseHexUint256(s)
		if err != nil {
			return uint256.Uint256{}, rpcDecodeHexError(s)
		}
		return difficulty, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return uint256.Uint256{}, rpcInvalidError("Invalid difficulty %q: "+
			"not an unsigned 256-bit decimal value", s)
	}
	return *new(uint256.Uint256).SetBig(v), nil
}

// handleCalcMerkleRoot implements the calcmerkleroot command.
func handleCalcMerkleRoot(s *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.CalcMerkleRootCmd)
	leaves, err := decodeHashes(c.Leaves)
	if err != nil {
		return nil, err
	}

	root := standalone.BuildRoot(leaves, s.merger)
	log.Debugf("Calculated merkle root %v over %d leaves", root, len(leaves))
	return root.String(), nil
}

// handleBuildMerkleProof implements the buildmerkleproof command.
func handleBuildMerkleProof(s *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.BuildMerkleProofCmd)
	leaves, err := decodeHashes(c.Leaves)
	if err != nil {
		return nil, err
	}

	tree := standalone.BuildTree(leaves, s.merger)
	proof := tree.BuildProof(c.Indices)
	if proof == nil {
		return nil, rpcInvalidError("Unable to prove indices %v of a tree "+
			"with %d leaves", c.Indices, tree.LeafCount())
	}
	log.Tracef("Merkle proof: %v", newLogClosure(func() string {
		return spew.Sdump(proof)
	}))

	return &types.MerkleProofResult{
		Root:      tree.Root().String(),
		LeafCount: tree.LeafCount(),
		Indices:   proof.Indices,
		Lemmas:    hashStrings(proof.Lemmas),
	}, nil
}

// handleVerifyMerkleProof implements the verifymerkleproof command.
func handleVerifyMerkleProof(s *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.VerifyMerkleProofCmd)
	var root chainhash.Hash
	if err := chainhash.Decode(&root, c.Root); err != nil {
		return nil, rpcDecodeHexError(c.Root)
	}
	lemmas, err := decodeHashes(c.Lemmas)
	if err != nil {
		return nil, err
	}
	proven, err := decodeHashes(c.Proven)
	if err != nil {
		return nil, err
	}

	proof := &standalone.Proof[chainhash.Hash]{
		Indices: c.Indices,
		Lemmas:  lemmas,
	}
	valid := proof.Verify(proven, root, c.LeafCount, s.merger)
	log.Debugf("Merkle proof for indices %v against root %v valid: %v",
		c.Indices, root, valid)
	return valid, nil
}

// handleCompactToTarget implements the compacttotarget command.
func handleCompactToTarget(_ *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.CompactToTargetCmd)
	compact, err := types.ParseHexUint32(c.Compact)
	if err != nil {
		return nil, rpcDecodeHexError(c.Compact)
	}

	target, overflow := standalone.CompactToTarget(compact)
	return &types.CompactTargetResult{
		Compact:  types.HexUint32(compact),
		Target:   types.NewHexUint256(&target),
		Overflow: overflow,
	}, nil
}

// handleTargetToCompact implements the targettocompact command.
func handleTargetToCompact(_ *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.TargetToCompactCmd)
	target, err := types.ParseHexUint256(c.Target)
	if err != nil {
		return nil, rpcDecodeHexError(c.Target)
	}
	return types.HexUint32(standalone.TargetToCompact(&target)), nil
}

// handleDifficultyToCompact implements the difficultytocompact command.
func handleDifficultyToCompact(_ *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.DifficultyToCompactCmd)
	difficulty, err := parseDifficulty(c.Difficulty)
	if err != nil {
		return nil, err
	}

	compact, ok := standalone.DifficultyToCompact(&difficulty)
	if !ok {
		return nil, &dcrjson.RPCError{
			Code:    dcrjson.ErrRPCDifficulty,
			Message: "Difficulty must be greater than zero",
		}
	}
	return types.HexUint32(compact), nil
}

// handleCompactToDifficulty implements the compacttodifficulty command.
func handleCompactToDifficulty(_ *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.CompactToDifficultyCmd)
	compact, err := types.ParseHexUint32(c.Compact)
	if err != nil {
		return nil, rpcDecodeHexError(c.Compact)
	}

	difficulty, ok := standalone.CompactToDifficulty(compact)
	if !ok {
		return nil, &dcrjson.RPCError{
			Code: dcrjson.ErrRPCDifficulty,
			Message: fmt.Sprintf("Compact target %08x overflows or is zero",
				compact),
		}
	}
	target, _ := standalone.CompactToTarget(compact)
	work := standalone.CalcWork(compact)
	return &types.DifficultyResult{
		Compact:    types.HexUint32(compact),
		Target:     types.NewHexUint256(&target),
		Difficulty: types.NewHexUint256(&difficulty),
		Work:       types.NewHexUint256(&work),
	}, nil
}

// handleCheckProofOfWork implements the checkproofofwork command.
func handleCheckProofOfWork(s *server, cmd interface{}) (interface{}, error) {
	c := cmd.(*types.CheckProofOfWorkCmd)
	var hash chainhash.Hash
	if err := chainhash.Decode(&hash, c.Hash); err != nil {
		return nil, rpcDecodeHexError(c.Hash)
	}
	compact, err := types.ParseHexUint32(c.Compact)
	if err != nil {
		return nil, rpcDecodeHexError(c.Compact)
	}

	result := &types.CheckProofOfWorkResult{
		Network: s.params.Name,
		Valid:   true,
	}
	err = standalone.CheckProofOfWork(&hash, compact, s.params.PowLimit)
	if err != nil {
		var rErr standalone.RuleError
		if !errors.As(err, &rErr) {
			return nil, rpcInternalError(err.Error(), "Check proof of work")
		}
		log.Debugf("Proof of work for %v rejected: %v", hash, err)
		result.Valid = false
		result.Reason = rErr.Description
	}
	return result, nil
}

// parsedRPCCmd represents a JSON-RPC request object that has been parsed into
// a known concrete command along with any error that might have happened while
// parsing it.
type parsedRPCCmd struct {
	jsonrpc string
	id      interface{}
	method  types.Method
	params  interface{}
	err     *dcrjson.RPCError
}

// parseCmd parses a JSON-RPC request object into known concrete command.  The
// err field of the returned parsedRPCCmd struct will contain an RPC error that
// is suitable for use in replies if the command is invalid in some way such as
// an unregistered command or invalid parameters.
func parseCmd(request *dcrjson.Request) *parsedRPCCmd {
	method := types.Method(request.Method)
	parsedCmd := parsedRPCCmd{
		jsonrpc: request.Jsonrpc,
		id:      request.ID,
		method:  method,
	}

	params, err := dcrjson.ParseParams(method, request.Params)
	if err != nil {
		if errors.Is(err, dcrjson.ErrUnregisteredMethod) {
			parsedCmd.err = dcrjson.ErrRPCMethodNotFound
			return &parsedCmd
		}

		// Otherwise, some type of invalid parameters is the cause, so
		// produce the equivalent RPC error.
		parsedCmd.err = rpcInvalidError("Failed to parse request: %v", err)
		return &parsedCmd
	}

	parsedCmd.params = params
	return &parsedCmd
}

// createMarshalledReply returns a new marshalled JSON-RPC response given the
// passed parameters.  It will automatically convert errors that are not of the
// type *dcrjson.RPCError to the appropriate type as needed.
func createMarshalledReply(rpcVersion string, id interface{}, result interface{}, replyErr error) ([]byte, error) {
	var jsonErr *dcrjson.RPCError
	if replyErr != nil && !errors.As(replyErr, &jsonErr) {
		jsonErr = rpcInternalError(replyErr.Error(), "")
	}

	return dcrjson.MarshalResponse(rpcVersion, id, result, jsonErr)
}

// processRequest parses the passed request, runs the handler for the command
// it names, and returns the marshalled response.
func (s *server) processRequest(request *dcrjson.Request) []byte {
	var result interface{}
	var jsonErr error

	parsedCmd := parseCmd(request)
	if parsedCmd.err != nil {
		jsonErr = parsedCmd.err
	} else {
		handler, ok := rpcHandlers[parsedCmd.method]
		if !ok {
			jsonErr = dcrjson.ErrRPCMethodNotFound
		} else {
			result, jsonErr = handler(s, parsedCmd.params)
		}
	}

	rpcVersion := parsedCmd.jsonrpc
	if rpcVersion == "" {
		rpcVersion = "1.0"
	}
	reply, err := createMarshalledReply(rpcVersion, parsedCmd.id, result,
		jsonErr)
	if err != nil {
		log.Errorf("Failed to marshal reply for %s command: %v",
			parsedCmd.method, err)
		return nil
	}
	return reply
}

// handleRequest unmarshals a raw JSON-RPC request and returns the marshalled
// response.
func (s *server) handleRequest(body []byte) []byte {
	var req dcrjson.Request
	if err := json.Unmarshal(body, &req); err != nil {
		jsonErr := &dcrjson.RPCError{
			Code:    dcrjson.ErrRPCParse.Code,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		}
		resp, err := dcrjson.MarshalResponse("1.0", nil, nil, jsonErr)
		if err != nil {
			log.Errorf("Failed to create reply: %v", err)
		}
		return resp
	}
	return s.processRequest(&req)
}
