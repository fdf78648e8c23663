// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"
	"math/bits"

	"github.com/cellchain/celld/chaincfg/chainhash"
	"github.com/decred/dcrd/math/uint256"
)

const (
	// compactSignBit is the bit of the compact representation that flags a
	// negative value.
	compactSignBit = 0x00800000

	// compactMantissaMask masks the mantissa of the compact representation.
	compactMantissaMask = 0x007fffff

	// maxCompactExponent is the largest exponent of a compact representation
	// that is considered valid.  Larger exponents always overflow.
	maxCompactExponent = 32

	// DiffTwo is the compact representation of the target for a difficulty
	// of 2 which is half of the anchor target.
	DiffTwo uint32 = 0x207fffff
)

// anchorTarget is the target that corresponds to a difficulty of 1 and thus
// pivots every conversion between difficulties and targets.  It is the maximum
// value of an unsigned 256-bit integer.
var anchorTarget = *new(uint256.Uint256).Not()

// CompactToTarget converts the compact representation used to encode target
// difficulties to an unsigned 256-bit integer.  The representation is similar
// to IEEE754 floating point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//  1. the most significant 8 bits represent the unsigned base 256 exponent
//  2. zero-based bit 23 (the 24th bit) represents the sign bit
//  3. the least significant 23 bits represent the mantissa
//
// Diagram:
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	|-----------------------------------------------|
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = mantissa * 256^(exponent-3)
//
// Targets can never be negative, so the overflow flag is set when the sign bit
// is set.  It is also set when the exponent is larger than 32 or the result
// does not fit in 256 bits.  The returned target must not be used when the
// overflow flag is set, however, it still holds the decoded magnitude whenever
// that magnitude fits in 256 bits.
//
// An exponent of zero shifts the entire mantissa out, so it decodes to a zero
// target without the overflow flag unless the sign bit is set.
func CompactToTarget(compact uint32) (target uint256.Uint256, overflow bool) {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & compactMantissaMask
	isNegative := compact&compactSignBit != 0
	exponent := compact >> 24

	// Since the base for the exponent is 256 = 2^8, the exponent is a multiple
	// of 8 and thus the full 256-bit number is computed by shifting the
	// mantissa right or left accordingly.
	if exponent <= 3 {
		target.SetUint64(uint64(mantissa >> (8 * (3 - exponent))))
		return target, isNegative
	}

	// Notice that the encoded exponent is decreased by 3 and then multiplied
	// by 8, so the mantissa only fits when its bit length plus the shift does
	// not exceed 256 bits.
	shift := 8 * (exponent - 3)
	fits := mantissa == 0 || uint32(bits.Len32(mantissa))+shift <= 256
	if fits && mantissa != 0 {
		target.SetUint64(uint64(mantissa))
		target.Lsh(shift)
	}
	overflow = isNegative || exponent > maxCompactExponent || !fits
	return target, overflow
}

// TargetToCompact converts an unsigned 256-bit target to the compact
// representation.  The compact representation only provides 23 bits of
// precision, so targets larger than (2^23 - 1) only encode the most
// significant digits and the remaining bits are discarded.  See
// CompactToTarget for details.
//
// Note that targets that have the most significant bit of their 32nd byte set
// require an exponent of 33 and therefore decode with the overflow flag set.
func TargetToCompact(target *uint256.Uint256) uint32 {
	// No need to do any work if it's zero.
	if target.IsZero() {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated as
	// the number of bytes it takes to represent the value.  So, shift the
	// number right or left accordingly.  This is equivalent to:
	// mantissa = target / 256^(exponent-3)
	var mantissa uint32
	exponent := uint32((target.BitLen() + 7) / 8)
	if exponent <= 3 {
		mantissa = target.Uint32() << (8 * (3 - exponent))
	} else {
		// Use a copy to avoid modifying the caller's original value.
		mantissa = new(uint256.Uint256).RshVal(target, 8*(exponent-3)).Uint32()
	}

	// When the mantissa already has the sign bit set, the number is too large
	// to fit into the available 23-bits, so divide the number by 256 and
	// increment the exponent accordingly.
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	return exponent<<24 | mantissa
}

// DifficultyToTarget converts a difficulty to the target it represents which
// is the anchor target divided by the difficulty.  It returns false when the
// difficulty is zero.
func DifficultyToTarget(difficulty *uint256.Uint256) (uint256.Uint256, bool) {
	if difficulty.IsZero() {
		return uint256.Uint256{}, false
	}
	target := anchorTarget
	target.Div(difficulty)
	return target, true
}

// TargetToDifficulty converts a target to the difficulty it represents which
// is the anchor target divided by the target.  It returns false when the
// target is zero.
func TargetToDifficulty(target *uint256.Uint256) (uint256.Uint256, bool) {
	if target.IsZero() {
		return uint256.Uint256{}, false
	}
	difficulty := anchorTarget
	difficulty.Div(target)
	return difficulty, true
}

// DifficultyToCompact converts a difficulty to the compact representation of
// the target it represents.  It returns false when the difficulty is zero.
func DifficultyToCompact(difficulty *uint256.Uint256) (uint32, bool) {
	target, ok := DifficultyToTarget(difficulty)
	if !ok {
		return 0, false
	}
	return TargetToCompact(&target), true
}

// CompactToDifficulty converts the compact representation of a target to the
// difficulty it represents.  It returns false when the compact representation
// overflows or decodes to a zero target.
func CompactToDifficulty(compact uint32) (uint256.Uint256, bool) {
	target, overflow := CompactToTarget(compact)
	if overflow {
		return uint256.Uint256{}, false
	}
	return TargetToDifficulty(&target)
}

// HashToUint256 converts the provided hash to an unsigned 256-bit integer that
// can be used to perform math comparisons.
func HashToUint256(hash *chainhash.Hash) uint256.Uint256 {
	// Hashes are a stream of bytes that do not have any inherent endianness to
	// them, so they are interpreted as little endian for the purposes of
	// treating them as a uint256.
	return *new(uint256.Uint256).SetBytesLE((*[32]byte)(hash))
}

// CalcWork calculates a work value from the compact representation of a
// target.  A lower target means more work is required to find a hash that
// satisfies it, so the work value is the inverse of the target.  In order to
// avoid really small floating point numbers, the result multiplies the
// numerator by 2^256 and adds 1 to the denominator.  The result is zero when
// the compact representation overflows or decodes to zero.
func CalcWork(compact uint32) uint256.Uint256 {
	target, overflow := CompactToTarget(compact)
	if overflow || target.IsZero() {
		return uint256.Uint256{}
	}

	// The goal is to calculate 2^256 / (target+1) using a fixed-precision
	// uint256.  Since 2^256 can't be represented by a uint256:
	//
	//    work = (2^256 / (target+1))
	// => work = ((2^256-target-1) / (target+1))+1
	//
	// and 2^256-target-1 is the bitwise not of the target.  A target of
	// 2^256-1 would make the divisor wrap to zero, but it can't be decoded
	// without overflow.
	divisor := new(uint256.Uint256).SetUint64(1).Add(&target)
	return *target.Not().Div(divisor).AddUint64(1)
}

// checkProofOfWorkRange ensures the target represented by the provided compact
// representation is in min/max range per the provided proof-of-work limit.
func checkProofOfWorkRange(compact uint32, powLimit *uint256.Uint256) (uint256.Uint256, error) {
	target, overflow := CompactToTarget(compact)
	if compact&compactSignBit != 0 {
		str := fmt.Sprintf("target difficulty bits %08x is a negative value",
			compact)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if overflow {
		str := fmt.Sprintf("target difficulty bits %08x is higher than the "+
			"max limit %064x", compact, powLimit)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if target.IsZero() {
		str := "target difficulty is zero"
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must not exceed the maximum allowed.
	if target.Gt(powLimit) {
		str := fmt.Sprintf("target difficulty %064x is higher than max %064x",
			target, powLimit)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}

	return target, nil
}

// CheckProofOfWorkRange ensures the target represented by the provided compact
// representation is in min/max range per the provided proof-of-work limit.
func CheckProofOfWorkRange(compact uint32, powLimit *uint256.Uint256) error {
	_, err := checkProofOfWorkRange(compact, powLimit)
	return err
}

// CheckProofOfWork ensures the provided hash is not higher than the target
// represented by the given compact representation and that said target is in
// min/max range per the provided proof-of-work limit.
func CheckProofOfWork(powHash *chainhash.Hash, compact uint32, powLimit *uint256.Uint256) error {
	target, err := checkProofOfWorkRange(compact, powLimit)
	if err != nil {
		return err
	}

	hashNum := HashToUint256(powHash)
	if hashNum.Gt(&target) {
		str := fmt.Sprintf("proof of work hash %064x is higher than expected "+
			"max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}
