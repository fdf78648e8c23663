// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the fixed-size hash type used for block, header
// and transaction identifiers along with the hash functions that produce it.
package chainhash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// HashSize is the size of the array used to store hashes.  See Hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string, excluding the
// optional 0x prefix.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a hash
// string that does not have the right number of characters.
var ErrHashStrSize = fmt.Errorf("string length must be %v chars",
	MaxHashStringSize)

// Hash is used in several of the messages and common structures.  It
// typically represents the blake256 hash of data.
//
// Unlike the legacy bitcoin convention, hashes are displayed in the same byte
// order they are stored in.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the bytes.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice.
//
// NOTE: It is generally cheaper to just slice the hash directly thereby reusing
// the same bytes rather than calling this method.
func (hash *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash.  An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen,
			HashSize)
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// IsZero returns whether or not every byte of the hash is zero, which is the
// value used for the root of an empty merkle tree.
func (hash *Hash) IsZero() bool {
	return *hash == Hash{}
}

// NewHash returns a new Hash from a byte slice.  An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from a hash string.  The string may carry an
// optional 0x prefix and must otherwise consist of exactly MaxHashStringSize
// hex characters.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the hex encoding of a hash, with or without a 0x prefix, to a
// destination.
func Decode(dst *Hash, src string) error {
	src = strings.TrimPrefix(src, "0x")
	if len(src) != MaxHashStringSize {
		return ErrHashStrSize
	}

	var decoded Hash
	if _, err := hex.Decode(decoded[:], []byte(src)); err != nil {
		var invalidByteErr hex.InvalidByteError
		if errors.As(err, &invalidByteErr) {
			return fmt.Errorf("invalid hash character %q", byte(invalidByteErr))
		}
		return err
	}

	*dst = decoded
	return nil
}
