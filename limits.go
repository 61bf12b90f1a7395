// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

// Numeric limits of the format, as fixed bit patterns. These are the
// counterparts of the constants generic numeric code expects from a
// traits table, queryable without an instance.
const (
	// Zero and NegZero are the two zero patterns. Both satisfy IsZero.
	Zero    = BF16(0x0000)
	NegZero = BF16(0x8000)

	// MinNormal is the smallest positive normal value, 2^-126.
	MinNormal = BF16(0x0080)

	// MaxValue is the largest finite value, (2 - 2^-7) * 2^127.
	MaxValue = BF16(0x7F7F)

	// Lowest is the most negative finite value, -MaxValue.
	Lowest = BF16(0xFF7F)

	// Epsilon is the smallest value e such that 1 + e is representable
	// and distinct from 1: one unit in the last place of 1.0, 2^-7.
	Epsilon = BF16(0x3C00)

	// RoundError is the maximum rounding error, 0.5 ulp.
	RoundError = BF16(0x3F00)

	// Infinity and NegInfinity are the two infinity patterns.
	Infinity    = BF16(0x7F80)
	NegInfinity = BF16(0xFF80)

	// QuietNaN is the canonical NaN pattern, as returned by NaN().
	QuietNaN = BF16(0x7FC0)

	// SmallestNonzero is the smallest positive representable magnitude,
	// the minimum subnormal pattern 2^-133. The format defines it by
	// convention only: arithmetic does not guarantee gradual underflow.
	SmallestNonzero = BF16(0x0001)
)

// Precision and range of the format. The exponent bounds match float32,
// since the two formats share the 8-bit exponent field; the digit
// counts reflect the 7-bit mantissa plus its implicit leading bit.
const (
	Radix         = 2
	Digits        = 8 // mantissa bits including the implicit leading 1
	Digits10      = 2
	MaxDigits10   = 4
	MinExponent   = -126
	MaxExponent   = 127
	MinExponent10 = -38
	MaxExponent10 = 38
)

// Capability flags of the format, for generic code keyed on numeric
// properties.
const (
	IsSigned        = true
	IsInteger       = false
	IsExact         = false
	HasInfinity     = true
	HasQuietNaN     = true
	HasSignalingNaN = false
	HasDenormLoss   = true
	IsIEC559        = false
	IsBounded       = true
	IsModulo        = false
	Traps           = false
	TinynessBefore  = false
)
