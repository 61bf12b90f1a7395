// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import "math"

// Math functions follow the same promotion contract as the arithmetic
// operators: decode, evaluate with the standard math package, re-encode.
// Special inputs are handled entirely by the underlying function; for
// example Sqrt of a negative finite value yields NaN, which survives
// re-encoding unchanged.

// Sqrt returns the square root of x.
func (x BF16) Sqrt() BF16 {
	return FromFloat64(math.Sqrt(x.Float64()))
}

// Exp returns e**x.
func (x BF16) Exp() BF16 {
	return FromFloat64(math.Exp(x.Float64()))
}

// Log returns the natural logarithm of x.
func (x BF16) Log() BF16 {
	return FromFloat64(math.Log(x.Float64()))
}

// Sin returns the sine of x (in radians).
func (x BF16) Sin() BF16 {
	return FromFloat64(math.Sin(x.Float64()))
}

// Cos returns the cosine of x (in radians).
func (x BF16) Cos() BF16 {
	return FromFloat64(math.Cos(x.Float64()))
}

// Tan returns the tangent of x (in radians).
func (x BF16) Tan() BF16 {
	return FromFloat64(math.Tan(x.Float64()))
}

// Pow returns x**y.
func (x BF16) Pow(y BF16) BF16 {
	return FromFloat64(math.Pow(x.Float64(), y.Float64()))
}
