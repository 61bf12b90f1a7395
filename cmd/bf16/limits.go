// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nlpodyssey/bfloat16"
)

func limitsCmd() *cli.Command {
	return &cli.Command{
		Name:  "limits",
		Usage: "Print the numeric limits of the bfloat16 format",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			values := []struct {
				name string
				v    bfloat16.BF16
			}{
				{"min (smallest normal)", bfloat16.MinNormal},
				{"max", bfloat16.MaxValue},
				{"lowest", bfloat16.Lowest},
				{"epsilon", bfloat16.Epsilon},
				{"round error", bfloat16.RoundError},
				{"infinity", bfloat16.Infinity},
				{"quiet NaN", bfloat16.QuietNaN},
				{"smallest nonzero", bfloat16.SmallestNonzero},
			}
			for _, e := range values {
				fmt.Printf("%-22s 0x%04X  %v\n", e.name, e.v.Bits(), e.v.Float32())
			}
			fmt.Printf("%-22s %d\n", "digits (binary)", bfloat16.Digits)
			fmt.Printf("%-22s %d\n", "digits10", bfloat16.Digits10)
			fmt.Printf("%-22s %d\n", "max digits10", bfloat16.MaxDigits10)
			fmt.Printf("%-22s [%d, %d]\n", "exponent range", bfloat16.MinExponent, bfloat16.MaxExponent)
			fmt.Printf("%-22s [%d, %d]\n", "exponent range (dec)", bfloat16.MinExponent10, bfloat16.MaxExponent10)
			return nil
		},
	}
}
