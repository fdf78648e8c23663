// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/math/uint256"
)

// ErrMalformedHex indicates a value is not a hexadecimal string of the
// expected size.
var ErrMalformedHex = errors.New("malformed hexadecimal value")

// trimHexPrefix removes an optional 0x or 0X prefix.
func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// ParseHexUint32 parses a hexadecimal string with an optional 0x prefix into a
// uint32.
func ParseHexUint32(s string) (uint32, error) {
	digits := trimHexPrefix(s)
	if digits == "" || len(digits) > 8 {
		return 0, fmt.Errorf("%w: %q is not a 32-bit value", ErrMalformedHex, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedHex, s, err)
	}
	return uint32(v), nil
}

// ParseHexUint256 parses a big-endian hexadecimal string with an optional 0x
// prefix into an unsigned 256-bit integer.
func ParseHexUint256(s string) (uint256.Uint256, error) {
	digits := trimHexPrefix(s)
	if digits == "" || len(digits) > 64 {
		return uint256.Uint256{}, fmt.Errorf("%w: %q is not a 256-bit value",
			ErrMalformedHex, s)
	}
	var buf [32]byte
	padded := strings.Repeat("0", 64-len(digits)) + digits
	if _, err := hex.Decode(buf[:], []byte(padded)); err != nil {
		return uint256.Uint256{}, fmt.Errorf("%w: %q: %v", ErrMalformedHex, s,
			err)
	}
	return *new(uint256.Uint256).SetBytes(&buf), nil
}

// HexUint32 is a uint32 that is represented in JSON as a 0x prefixed
// hexadecimal string padded to 8 digits.
type HexUint32 uint32

// String returns the value as a 0x prefixed hexadecimal string.
func (h HexUint32) String() string {
	return fmt.Sprintf("0x%08x", uint32(h))
}

// MarshalJSON satisfies the json.Marshaler interface.
func (h HexUint32) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON satisfies the json.Unmarshaler interface.
func (h *HexUint32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseHexUint32(s)
	if err != nil {
		return err
	}
	*h = HexUint32(v)
	return nil
}

// HexUint256 is an unsigned 256-bit integer that is represented in JSON as a
// 0x prefixed hexadecimal string without leading zeros.
type HexUint256 uint256.Uint256

// NewHexUint256 returns the provided value as a HexUint256.
func NewHexUint256(n *uint256.Uint256) HexUint256 {
	return HexUint256(*n)
}

// Uint256 returns the value as an unsigned 256-bit integer.
func (h *HexUint256) Uint256() *uint256.Uint256 {
	return (*uint256.Uint256)(h)
}

// String returns the value as a 0x prefixed hexadecimal string.
func (h HexUint256) String() string {
	buf := h.Uint256().Bytes()
	digits := strings.TrimLeft(hex.EncodeToString(buf[:]), "0")
	if digits == "" {
		digits = "0"
	}
	return "0x" + digits
}

// MarshalJSON satisfies the json.Marshaler interface.
func (h HexUint256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON satisfies the json.Unmarshaler interface.
func (h *HexUint256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseHexUint256(s)
	if err != nil {
		return err
	}
	*h = HexUint256(v)
	return nil
}
