// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Parse converts the decimal string s to a BF16, rounding the parsed
// value to the nearest representable pattern. It accepts everything
// strconv.ParseFloat accepts, including "NaN", "Inf", "+Inf" and
// "-Inf". Values beyond the float32 range parse to the infinity of the
// corresponding sign without error, matching the conversion's own
// overflow behavior.
func Parse(s string) (BF16, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return FromFloat64(v), nil
		}
		return 0, fmt.Errorf("failed to parse %q as bfloat16: %w", s, err)
	}
	return FromFloat64(v), nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
// The output is the same decimal rendering as String.
func (f BF16) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (f *BF16) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON satisfies json.Marshaler interface.
// Finite values marshal as JSON numbers. Infinities and NaN, which
// JSON numbers cannot express, marshal as the quoted strings "+Inf",
// "-Inf" and "NaN", keeping marshalling total over all bit patterns.
func (f BF16) MarshalJSON() ([]byte, error) {
	v := f.Float64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.AppendQuote(nil, f.String()), nil
	}
	return []byte(f.String()), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface. It accepts both
// JSON numbers and the quoted special-value strings produced by
// MarshalJSON.
func (f *BF16) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("failed to JSON-unmarshal bfloat16 from value %q: %w", s, err)
		}
		s = unquoted
	}
	v, err := Parse(s)
	if err != nil {
		return fmt.Errorf("failed to JSON-unmarshal bfloat16 from value %q: %w", string(b), err)
	}
	*f = v
	return nil
}
