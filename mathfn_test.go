// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	assert.Equal(t, float32(4), FromFloat32(16).Sqrt().Float32())
	assert.Equal(t, float32(0), FromFloat32(0).Sqrt().Float32())
	assert.InEpsilon(t, math.Sqrt2, FromFloat32(2).Sqrt().Float64(), 0.004)

	assert.True(t, FromFloat32(-1).Sqrt().IsNaN())
	assert.Equal(t, Infinity, Infinity.Sqrt())
}

func TestExp(t *testing.T) {
	assert.Equal(t, float32(1), Zero.Exp().Float32())
	assert.InEpsilon(t, math.E, FromFloat32(1).Exp().Float64(), 0.004)

	// Large inputs overflow to infinity, tiny ones underflow to zero.
	assert.Equal(t, Infinity, FromFloat32(1000).Exp())
	assert.Equal(t, float32(0), FromFloat32(-1000).Exp().Float32())
}

func TestLog(t *testing.T) {
	assert.Equal(t, uint16(0x0000), FromFloat32(1).Log().Bits())
	assert.InEpsilon(t, 1.0, FromFloat64(math.E).Log().Float64(), 0.008)

	assert.Equal(t, NegInfinity, Zero.Log())
	assert.True(t, FromFloat32(-1).Log().IsNaN())
}

func TestTrigonometric(t *testing.T) {
	assert.Equal(t, float32(0), Zero.Sin().Float32())
	assert.Equal(t, float32(1), Zero.Cos().Float32())
	assert.Equal(t, float32(0), Zero.Tan().Float32())

	halfPi := FromFloat64(math.Pi / 2)
	assert.InEpsilon(t, 1.0, halfPi.Sin().Float64(), 0.004)
}

func TestPow(t *testing.T) {
	assert.Equal(t, float32(1024), FromFloat32(2).Pow(FromFloat32(10)).Float32())
	assert.Equal(t, float32(1), FromFloat32(5).Pow(Zero).Float32())
	assert.InEpsilon(t, math.Sqrt2, FromFloat32(2).Pow(FromFloat32(0.5)).Float64(), 0.004)

	assert.True(t, NaN().Pow(FromFloat32(2)).IsNaN())
	assert.Equal(t, Infinity, FromFloat32(2).Pow(Infinity))
}
