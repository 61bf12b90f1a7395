// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bfloat16 implements the 16-bit brain floating point format:
// 1 sign bit, 8 exponent bits (bias 127) and 7 mantissa bits.
//
// The format shares the exponent field of IEEE-754 binary32, so a BF16
// is exactly the upper 16 bits of a float32 bit pattern. Conversion from
// float32 rounds; conversion back to float32 is exact. All operations are
// total: out-of-range or special inputs are absorbed into the usual IEEE
// special values (infinity, NaN) and never reported as errors.
package bfloat16

import (
	"math"
	"strconv"
)

// BF16 is a 16-bit brain floating-point value, represented as raw bits.
//
// The zero value is positive zero. Values are immutable: every operation
// returns a new BF16. Note that == on BF16 compares bit patterns, which
// differs from floating-point equality for NaN and for ±0; use Equal for
// IEEE semantics.
type BF16 uint16

const (
	signMask = 0x8000
	expMask  = 0x7F80
	mantMask = 0x007F
	expShift = 7
	expBias  = 127

	// quietBit is the most significant mantissa bit, set on every NaN
	// produced by this package.
	quietBit = 0x0040
)

// FromFloat32 converts a float32 to the nearest BF16.
//
// Rounding adds 0x7FFF to the float32 bit pattern before truncating the
// low 16 bits: a close approximation of round-to-nearest that, on exact
// halfway cases, truncates instead of rounding to even. A carry out of
// the discarded bits propagates naturally into the exponent field, so
// values that round past the largest finite BF16 become infinity.
//
// NaN inputs stay NaN: the quiet bit is forced into the kept mantissa,
// since a payload living only in the low 16 bits would otherwise
// truncate to the infinity pattern.
func FromFloat32(f float32) BF16 {
	b := math.Float32bits(f)
	if b&^uint32(1<<31) > 0x7F800000 {
		return BF16(b>>16) | quietBit
	}
	return BF16((b + 0x7FFF) >> 16)
}

// FromFloat64 converts a float64 to the nearest BF16, going through
// float32 first.
func FromFloat64(f float64) BF16 {
	return FromFloat32(float32(f))
}

// FromBits returns the BF16 with the given bit pattern. Any 16-bit
// value is a legal pattern; no validation is performed.
func FromBits(b uint16) BF16 {
	return BF16(b)
}

// Bits returns the raw bit pattern.
func (f BF16) Bits() uint16 {
	return uint16(f)
}

// Float32 returns the exact float32 value of f: the bit pattern shifted
// into the upper 16 bits, with the lower 16 bits zero.
func (f BF16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// Float64 returns the exact float64 value of f.
func (f BF16) Float64() float64 {
	return float64(f.Float32())
}

// Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func Inf(sign int) BF16 {
	if sign >= 0 {
		return expMask
	}
	return signMask | expMask
}

// NaN returns the canonical quiet NaN (bit pattern 0x7FC0).
func NaN() BF16 {
	return expMask | quietBit
}

// IsNaN reports whether f is a not-a-number value: exponent field all
// ones with a nonzero mantissa.
func (f BF16) IsNaN() bool {
	return f&expMask == expMask && f&mantMask != 0
}

// IsInf reports whether f is positive or negative infinity.
func (f BF16) IsInf() bool {
	return f&expMask == expMask && f&mantMask == 0
}

// IsZero reports whether f is zero of either sign.
func (f BF16) IsZero() bool {
	return f&^BF16(signMask) == 0
}

// Signbit reports whether the sign bit is set. This is a pure bit test:
// it is true for negative zero and for NaN values carrying the sign bit.
func (f BF16) Signbit() bool {
	return f&signMask != 0
}

// Exponent returns the unbiased exponent of f as a signed integer.
//
// Zero values report exponent 0, and infinities and NaNs report
// math.MaxInt16 as a sentinel, so callers must check IsInf and IsNaN
// before trusting the result as a true exponent. Subnormal values
// report the minimum field value, -127, with no gradual-underflow
// adjustment.
func (f BF16) Exponent() int16 {
	if f.IsZero() {
		return 0
	}
	if f&expMask == expMask {
		return math.MaxInt16
	}
	return int16((f&expMask)>>expShift) - expBias
}

// Mantissa returns the raw 7-bit mantissa field, without the implicit
// leading bit.
func (f BF16) Mantissa() uint16 {
	return uint16(f & mantMask)
}

// Neg returns f with the sign bit flipped. This is exact: no rounding
// or promotion is involved, and NaN payloads are preserved.
func (f BF16) Neg() BF16 {
	return f ^ signMask
}

// Abs returns f with the sign bit cleared. Like Neg it is a pure bit
// operation: negative zero becomes positive zero and a negative NaN
// becomes the same NaN with the sign bit cleared.
func (f BF16) Abs() BF16 {
	return f &^ BF16(signMask)
}

// String formats f as its exact decimal float32 value.
// It satisfies fmt.Stringer.
func (f BF16) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}
