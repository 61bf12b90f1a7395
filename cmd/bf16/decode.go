// Copyright 2024 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nlpodyssey/bfloat16"
)

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode raw 16-bit patterns to their float values",
		ArgsUsage: "<bits>...",
		Description: "Each argument is a 16-bit pattern, hexadecimal by default\n" +
			"(an optional 0x prefix is accepted).",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("decode requires at least one bit pattern")
			}
			for _, arg := range cmd.Args().Slice() {
				bits, err := parseBits(arg)
				if err != nil {
					return err
				}
				v := bfloat16.FromBits(bits)
				printValue(arg, v, true)
			}
			return nil
		},
	}
}

func parseBits(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	bits, err := strconv.ParseUint(trimmed, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as a 16-bit pattern: %w", s, err)
	}
	return uint16(bits), nil
}
