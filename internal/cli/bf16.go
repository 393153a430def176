// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nlpodyssey/atom/dtype"
	"github.com/nlpodyssey/atom/float16"
)

// Conversion is the result of converting one value to or from bfloat16.
type Conversion struct {
	Input string `json:"input" yaml:"input"`
	Bits  string `json:"bits" yaml:"bits"`
	Value string `json:"value" yaml:"value"`
	Bytes string `json:"bytes,omitempty" yaml:"bytes,omitempty"`
}

type bf16Options struct {
	byteOrder string
	raw       bool
}

// NewBF16Command creates the bf16 command and its subcommands.
func NewBF16Command(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bf16",
		Short: "Convert values from and to bfloat16",
	}
	cmd.AddCommand(newBF16EncodeCommand(rootOpts))
	cmd.AddCommand(newBF16DecodeCommand(rootOpts))
	return cmd
}

func newBF16EncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &bf16Options{}
	cmd := &cobra.Command{
		Use:   "encode <float>...",
		Short: "Convert float32 values to bfloat16",
		Long: `Convert float32 values to bfloat16, rounding to nearest, ties to even.

With --byteorder, the binary representation of each result is also
printed as hexadecimal bytes in the given order ('<', '>' or '=').`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseByteOrder(opts.byteOrder)
			if err != nil {
				return exitError(err)
			}
			out := make([]Conversion, 0, len(args))
			for _, arg := range args {
				f, err := strconv.ParseFloat(arg, 32)
				if err != nil && !isRangeError(err) {
					return exitError(fmt.Errorf("%w: invalid float32 value %q", dtype.ErrMalformedInput, arg))
				}
				b := float16.FromFloat32(float32(f))
				c := Conversion{Input: arg, Bits: formatBits(b), Value: b.String()}
				if order != nil {
					c.Bytes = hex.EncodeToString(float16.AppendBF16s(order, nil, []float16.BF16{b}))
				}
				rootOpts.Logger.Debug().Str("input", arg).Uint16("bits", b.Bits()).Msg("encoded bfloat16")
				out = append(out, c)
			}
			return rootOpts.formatter(cmd).Print(out, conversionsText(out))
		},
	}
	cmd.Flags().StringVar(&opts.byteOrder, "byteorder", "", "also print the bytes in this order (<, >, =)")
	return cmd
}

func newBF16DecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &bf16Options{}
	cmd := &cobra.Command{
		Use:   "decode <bits>...",
		Short: "Convert bfloat16 values to float32",
		Long: `Convert bfloat16 values, given as hexadecimal bit patterns such as
0x3f80, to float32.

With --raw, each argument is instead a hexadecimal byte string holding
any number of bfloat16 values stored with --byteorder (default '<').`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []Conversion
			if opts.raw {
				if opts.byteOrder == "" {
					opts.byteOrder = string(dtype.LittleEndian)
				}
				order, err := parseByteOrder(opts.byteOrder)
				if err != nil {
					return exitError(err)
				}
				for _, arg := range args {
					data, err := hex.DecodeString(arg)
					if err != nil {
						return exitError(fmt.Errorf("%w: invalid hexadecimal bytes %q", dtype.ErrMalformedInput, arg))
					}
					values, err := float16.DecodeBF16s(order, data)
					if err != nil {
						return exitError(fmt.Errorf("%w: %v", dtype.ErrMalformedInput, err))
					}
					for i, b := range values {
						out = append(out, Conversion{
							Input: arg,
							Bits:  formatBits(b),
							Value: b.String(),
							Bytes: hex.EncodeToString(data[i*2 : i*2+2]),
						})
					}
				}
			} else {
				for _, arg := range args {
					bits, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(arg), "0x"), 16, 16)
					if err != nil {
						return exitError(fmt.Errorf("%w: invalid bfloat16 bit pattern %q", dtype.ErrMalformedInput, arg))
					}
					b := float16.FromBits(uint16(bits))
					out = append(out, Conversion{
						Input: arg,
						Bits:  formatBits(b),
						Value: b.String(),
					})
				}
			}
			rootOpts.Logger.Debug().Int("count", len(out)).Msg("decoded bfloat16")
			return rootOpts.formatter(cmd).Print(out, conversionsText(out))
		},
	}
	cmd.Flags().StringVar(&opts.byteOrder, "byteorder", "", "byte order of --raw input (<, >, =)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "arguments are hexadecimal byte strings")
	return cmd
}

func parseByteOrder(s string) (binary.ByteOrder, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) == 1 {
		if order := dtype.ByteOrder(s[0]).Binary(); order != nil {
			return order, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid byte order %q: must be one of <, >, =", dtype.ErrMalformedInput, s)
}

func isRangeError(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}

func formatBits(b float16.BF16) string {
	return fmt.Sprintf("0x%04X", b.Bits())
}

func conversionsText(out []Conversion) func(w io.Writer) error {
	return func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, c := range out {
			if c.Bytes != "" {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Input, c.Bits, c.Value, c.Bytes)
			} else {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Input, c.Bits, c.Value)
			}
		}
		return tw.Flush()
	}
}
