// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nlpodyssey/bfloat16"
)

// WriteTo writes the tensor's data as a little-endian stream of 16-bit
// patterns, two bytes per element, writing the result to w.
// It satisfies io.WriterTo interface.
func (t Tensor) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := t.writeTo(bw)
	if e := bw.Flush(); e != nil && err == nil {
		err = e
	}
	return n, err
}

func (t Tensor) writeTo(w io.Writer) (int64, error) {
	var a [2]byte
	b := a[:]

	written := 0
	for _, x := range t.data {
		binary.LittleEndian.PutUint16(b, x.Bits())

		n, err := w.Write(b)
		written += n
		if err != nil {
			return int64(written), err
		}
	}
	return int64(written), nil
}

// Bytes returns the tensor's data as newly allocated little-endian
// bytes, two per element.
func (t Tensor) Bytes() []byte {
	b := make([]byte, len(t.data)*2)
	for i, x := range t.data {
		binary.LittleEndian.PutUint16(b[i*2:], x.Bits())
	}
	return b
}

// FromBytes interprets raw as little-endian 16-bit patterns and returns
// a Tensor holding them, applying the same validation as New. The
// length of raw must be exactly two bytes per shape element. Any bit
// pattern is accepted: no value-level validation exists for BF16.
func FromBytes(name string, shape []int, raw []byte) (Tensor, error) {
	if len(raw)%2 != 0 {
		return Tensor{}, fmt.Errorf("raw data length (%d) is not a multiple of the element size", len(raw))
	}
	data := make([]bfloat16.BF16, len(raw)/2)
	for i := range data {
		data[i] = bfloat16.FromBits(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return New(name, shape, data)
}

// ReadFrom reads exactly two bytes per shape element from r and returns
// the resulting Tensor.
func ReadFrom(r io.Reader, name string, shape []int) (Tensor, error) {
	size, err := checkedShapeSize(shape)
	if err != nil {
		return Tensor{}, err
	}
	raw := make([]byte, size*2)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Tensor{}, fmt.Errorf("failed to read tensor data: %w", err)
	}
	return FromBytes(name, shape, raw)
}
