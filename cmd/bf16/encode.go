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

func encodeCmd() *cli.Command {
	var verbose bool

	return &cli.Command{
		Name:      "encode",
		Usage:     "Convert decimal float values to bfloat16",
		ArgsUsage: "<value>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "also print sign, exponent and mantissa fields",
				Destination: &verbose,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("encode requires at least one value")
			}
			for _, arg := range cmd.Args().Slice() {
				v, err := bfloat16.Parse(arg)
				if err != nil {
					return err
				}
				printValue(arg, v, verbose)
			}
			return nil
		},
	}
}

func printValue(input string, v bfloat16.BF16, verbose bool) {
	fmt.Printf("%s -> 0x%04X (%s, %s)\n", input, v.Bits(), v, classify(v))
	if verbose {
		sign := 0
		if v.Signbit() {
			sign = 1
		}
		fmt.Printf("  sign=%d exponent=%d mantissa=0x%02X float32=%v\n",
			sign, v.Exponent(), v.Mantissa(), v.Float32())
	}
}

func classify(v bfloat16.BF16) string {
	switch {
	case v.IsNaN():
		return "NaN"
	case v.IsInf():
		return "infinity"
	case v.IsZero():
		return "zero"
	case v.Abs().Less(bfloat16.MinNormal):
		return "subnormal"
	default:
		return "normal"
	}
}
