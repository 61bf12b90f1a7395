// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

// Arithmetic decodes both operands to float32, computes at that
// precision, and re-encodes the result. Nothing is computed natively in
// the 16-bit format: the format trades precision for range, and the
// promoted computation keeps each single operation as accurate as the
// wider type allows before the final rounding.

// Add returns x + y.
func (x BF16) Add(y BF16) BF16 {
	return FromFloat32(x.Float32() + y.Float32())
}

// Sub returns x - y.
func (x BF16) Sub(y BF16) BF16 {
	return FromFloat32(x.Float32() - y.Float32())
}

// Mul returns x * y.
func (x BF16) Mul(y BF16) BF16 {
	return FromFloat32(x.Float32() * y.Float32())
}

// Div returns x / y. Division by zero yields an infinity or NaN
// according to the usual float32 rules.
func (x BF16) Div(y BF16) BF16 {
	return FromFloat32(x.Float32() / y.Float32())
}

// Comparisons delegate to float32 comparison of the decoded values, so
// NaN compares unordered against everything (including itself) and
// negative zero equals positive zero, unlike a raw bit comparison.

// Equal reports whether x == y under floating-point semantics.
func (x BF16) Equal(y BF16) bool {
	return x.Float32() == y.Float32()
}

// Less reports whether x < y.
func (x BF16) Less(y BF16) bool {
	return x.Float32() < y.Float32()
}

// LessEqual reports whether x <= y.
func (x BF16) LessEqual(y BF16) bool {
	return x.Float32() <= y.Float32()
}

// Greater reports whether x > y.
func (x BF16) Greater(y BF16) bool {
	return x.Float32() > y.Float32()
}

// GreaterEqual reports whether x >= y.
func (x BF16) GreaterEqual(y BF16) bool {
	return x.Float32() >= y.Float32()
}
