// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"errors"
	"testing"
)

// mainNetGenesisHash is the hash of the first block in the block chain for the
// main network (genesis block).
var mainNetGenesisHash = Hash([HashSize]byte{
	0x80, 0xd9, 0x21, 0x2b, 0xf4, 0xce, 0xb0, 0x66,
	0xde, 0xd2, 0x86, 0x6b, 0x39, 0xd4, 0xed, 0x89,
	0xe0, 0xab, 0x60, 0xf3, 0x35, 0xc1, 0x1d, 0xf8,
	0xe7, 0xbf, 0x85, 0xd9, 0xc3, 0x5c, 0x8e, 0x29,
})

// TestHash tests the Hash API.
func TestHash(t *testing.T) {
	t.Parallel()

	buf := []byte{
		0x79, 0xa6, 0x1a, 0xdb, 0xc6, 0xe5, 0xa2, 0xe1,
		0x39, 0xd2, 0x71, 0x3a, 0x54, 0x6e, 0xc7, 0xc8,
		0x75, 0x63, 0x2e, 0x75, 0xf1, 0xdf, 0x9c, 0x3f,
		0xa6, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	hash, err := NewHash(buf)
	if err != nil {
		t.Fatalf("NewHash: unexpected error %v", err)
	}

	// Ensure proper size.
	if len(hash) != HashSize {
		t.Fatalf("NewHash: hash length mismatch - got: %v, want: %v",
			len(hash), HashSize)
	}

	// Ensure contents match.
	if !bytes.Equal(hash[:], buf) {
		t.Fatalf("NewHash: hash contents mismatch - got: %v, want: %v",
			hash[:], buf)
	}

	// Ensure contents of hash of block 234440 don't match 234439.
	if hash.IsEqual(&mainNetGenesisHash) {
		t.Fatalf("IsEqual: hash contents should not match - got: %v, "+
			"want: %v", hash, mainNetGenesisHash)
	}

	// Set hash from byte slice and ensure contents match.
	err = hash.SetBytes(mainNetGenesisHash.CloneBytes())
	if err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if !hash.IsEqual(&mainNetGenesisHash) {
		t.Fatalf("IsEqual: hash contents mismatch - got: %v, want: %v",
			hash, mainNetGenesisHash)
	}

	// Ensure nil hashes are handled properly.
	if !(*Hash)(nil).IsEqual(nil) {
		t.Fatal("IsEqual: nil hashes should match")
	}
	if hash.IsEqual(nil) {
		t.Fatal("IsEqual: non-nil hash matches nil hash")
	}

	// Invalid size for SetBytes.
	err = hash.SetBytes([]byte{0x00})
	if err == nil {
		t.Fatal("SetBytes: failed to received expected err - got: nil")
	}

	// Invalid size for NewHash.
	invalidHash := make([]byte, HashSize+1)
	_, err = NewHash(invalidHash)
	if err == nil {
		t.Fatal("NewHash: failed to received expected err - got: nil")
	}

	// The zero hash is the empty merkle root sentinel.
	var zero Hash
	if !zero.IsZero() {
		t.Fatal("IsZero: zero hash reported as nonzero")
	}
	if hash.IsZero() {
		t.Fatal("IsZero: nonzero hash reported as zero")
	}
}

// TestHashString tests the stringized output for hashes.
func TestHashString(t *testing.T) {
	t.Parallel()

	hash := Hash([HashSize]byte{
		0x06, 0xe5, 0x33, 0xfd, 0x1a, 0xda, 0x86, 0x39,
		0x1f, 0x3f, 0x6c, 0x34, 0x32, 0x04, 0xb0, 0xd2,
		0x78, 0xd4, 0xaa, 0xec, 0x1c, 0x0b, 0x20, 0xaa,
		0x27, 0xba, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	})

	const want = "06e533fd1ada86391f3f6c343204b0d278d4aaec1c0b20aa27ba030000000000"
	if got := hash.String(); got != want {
		t.Errorf("String: wrong hash string - got %v, want %v", got, want)
	}
}

// TestHashDecode ensures that the hash string decoding function works as
// intended for both valid and invalid input.
func TestHashDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		in   string // hash string to decode
		want Hash   // expected decoded hash
		err  error  // expected error
	}{{
		name: "genesis hash",
		in:   "80d9212bf4ceb066ded2866b39d4ed89e0ab60f335c11df8e7bf85d9c35c8e29",
		want: mainNetGenesisHash,
	}, {
		name: "genesis hash with 0x prefix",
		in:   "0x80d9212bf4ceb066ded2866b39d4ed89e0ab60f335c11df8e7bf85d9c35c8e29",
		want: mainNetGenesisHash,
	}, {
		name: "all zeros",
		in:   "0000000000000000000000000000000000000000000000000000000000000000",
		want: Hash{},
	}, {
		name: "empty string",
		in:   "",
		err:  ErrHashStrSize,
	}, {
		name: "short string",
		in:   "80d9212bf4ceb066ded2866b39d4ed89",
		err:  ErrHashStrSize,
	}, {
		name: "string too long",
		in:   "0180d9212bf4ceb066ded2866b39d4ed89e0ab60f335c11df8e7bf85d9c35c8e29",
		err:  ErrHashStrSize,
	}}

	for _, test := range tests {
		var got Hash
		err := Decode(&got, test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if got != test.want {
			t.Errorf("%q: mismatched hash -- got %v, want %v", test.name,
				got, test.want)
		}
	}

	// Ensure invalid hex characters are rejected.
	const badHex = "zzd9212bf4ceb066ded2866b39d4ed89e0ab60f335c11df8e7bf85d9c35c8e29"
	if _, err := NewHashFromStr(badHex); err == nil {
		t.Fatal("NewHashFromStr: did not reject invalid hex")
	}
}

// TestHashFuncs ensures the hash functions produce distinct, deterministic
// digests for the same input.
func TestHashFuncs(t *testing.T) {
	t.Parallel()

	data := []byte("celld")
	if HashH(data) != HashH(data) {
		t.Fatal("HashH is not deterministic")
	}
	hash := HashH(data)
	if !bytes.Equal(HashB(data), hash.CloneBytes()) {
		t.Fatal("HashB and HashH disagree")
	}
	if HashBlake3(data) == HashH(data) {
		t.Fatal("blake3 and blake256 digests unexpectedly match")
	}

	h := New()
	h.Write(data)
	if !bytes.Equal(h.Sum(nil), HashB(data)) {
		t.Fatal("streaming hasher and HashB disagree")
	}
}
