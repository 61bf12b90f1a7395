// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides a minimal named, shaped container of BF16
// values, with bulk float32 conversion and a little-endian byte codec
// for interoperability with external tensor layouts.
package tensor

import (
	"fmt"
	"math"

	"github.com/nlpodyssey/bfloat16"
)

// A Tensor of BF16 values, with data fully loaded in memory.
type Tensor struct {
	name  string
	shape []int
	data  []bfloat16.BF16
}

// New performs validity checks over the given properties and returns a
// Tensor with those properties if validation succeeds, otherwise an
// error.
//
// If the error returned is not nil, the Tensor is a zero-value that
// must not be used.
//
// Validation rules:
//   - an empty name ("") is allowed
//   - an empty or nil shape is allowed (a scalar value is implied)
//   - the shape must not contain negative values
//   - the number of data elements must match the shape
//
// The given shape is copied to guarantee later consistency. Since
// "data" can possibly take a large amount of memory, its value is NOT
// copied, and is directly assigned to the Tensor.
func New(name string, shape []int, data []bfloat16.BF16) (Tensor, error) {
	size, err := checkedShapeSize(shape)
	if err != nil {
		return Tensor{}, err
	}
	if size != len(data) {
		return Tensor{}, fmt.Errorf("the size computed from shape (%d) does not match data length (%d)", size, len(data))
	}
	return Tensor{
		name:  name,
		shape: copyShape(shape),
		data:  data,
	}, nil
}

// FromFloat32s encodes the given float32 values to BF16 and returns a
// Tensor holding them, applying the same validation as New.
func FromFloat32s(name string, shape []int, data []float32) (Tensor, error) {
	encoded := make([]bfloat16.BF16, len(data))
	for i, v := range data {
		encoded[i] = bfloat16.FromFloat32(v)
	}
	return New(name, shape, encoded)
}

// The Name of the tensor.
func (t Tensor) Name() string {
	return t.name
}

// The Shape of the tensor.
//
// If the shape is zero-length, it returns nil, otherwise a new slice
// is allocated and returned (the shape is copied to prevent tampering).
func (t Tensor) Shape() []int {
	return copyShape(t.shape)
}

// The Data of the tensor.
//
// The value returned is NOT a copy: any change to its content will
// affect the Tensor too.
func (t Tensor) Data() []bfloat16.BF16 {
	return t.data
}

// NumElements returns the number of elements in the tensor.
func (t Tensor) NumElements() int {
	return len(t.data)
}

// Float32s decodes all elements to a newly allocated float32 slice.
// Decoding is exact, so FromFloat32s followed by Float32s returns each
// value already representable in BF16 unchanged.
func (t Tensor) Float32s() []float32 {
	out := make([]float32, len(t.data))
	for i, v := range t.data {
		out[i] = v.Float32()
	}
	return out
}

func copyShape(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return s
}

func checkedShapeSize(shape []int) (int, error) {
	size := uint64(1)
	for _, v := range shape {
		if v < 0 {
			return 0, fmt.Errorf("shape contains a negative value: %d", v)
		}
		var err error
		size, err = checkedMul(size, uint64(v))
		if err != nil {
			return 0, err
		}
	}
	if size > math.MaxInt32 {
		return 0, fmt.Errorf("shape size %d is too large", size)
	}
	return int(size), nil
}

// checkedMul multiplies a and b and checks for overflow.
func checkedMul(a, b uint64) (uint64, error) {
	c := a * b
	if a > 1 && b > 1 && c/a != b {
		return c, fmt.Errorf("multiplication overflow: %d * %d", a, b)
	}
	return c, nil
}
