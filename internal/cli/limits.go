// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nlpodyssey/atom/limits"
)

// NewFinfoCommand creates the finfo command.
func NewFinfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "finfo <name|id>",
		Short: "Show machine limits of a floating point type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDescriptor(rootOpts, args[0])
			if err != nil {
				return exitError(err)
			}
			fi, err := limits.Float(d.ID())
			if err != nil {
				rootOpts.Logger.Debug().Err(err).Str("dtype", d.Name()).Msg("finfo rejected")
				return exitError(err)
			}
			return rootOpts.formatter(cmd).Print(fi, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
				fmt.Fprintf(tw, "dtype:\t%s\n", fi.ID)
				fmt.Fprintf(tw, "bits:\t%d\n", fi.Bits)
				fmt.Fprintf(tw, "eps:\t%g\n", fi.Eps)
				fmt.Fprintf(tw, "epsneg:\t%g\n", fi.EpsNeg)
				fmt.Fprintf(tw, "max:\t%g\n", fi.Max)
				fmt.Fprintf(tw, "min:\t%g\n", fi.Min)
				fmt.Fprintf(tw, "precision:\t%d\n", fi.Precision)
				fmt.Fprintf(tw, "resolution:\t%g\n", fi.Resolution)
				fmt.Fprintf(tw, "nmant:\t%d\n", fi.NMant)
				fmt.Fprintf(tw, "nexp:\t%d\n", fi.NExp)
				fmt.Fprintf(tw, "minexp:\t%d\n", fi.MinExp)
				fmt.Fprintf(tw, "maxexp:\t%d\n", fi.MaxExp)
				fmt.Fprintf(tw, "smallest_normal:\t%g\n", fi.SmallestNormal)
				fmt.Fprintf(tw, "smallest_subnormal:\t%g\n", fi.SmallestSubnormal)
				return tw.Flush()
			})
		},
	}
}

// NewIinfoCommand creates the iinfo command.
func NewIinfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "iinfo <name|id>",
		Short: "Show machine limits of an integer type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDescriptor(rootOpts, args[0])
			if err != nil {
				return exitError(err)
			}
			ii, err := limits.Int(d.ID())
			if err != nil {
				rootOpts.Logger.Debug().Err(err).Str("dtype", d.Name()).Msg("iinfo rejected")
				return exitError(err)
			}
			return rootOpts.formatter(cmd).Print(ii, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
				fmt.Fprintf(tw, "dtype:\t%s\n", ii.ID)
				fmt.Fprintf(tw, "bits:\t%d\n", ii.Bits)
				fmt.Fprintf(tw, "min:\t%d\n", ii.Min)
				fmt.Fprintf(tw, "max:\t%d\n", ii.Max)
				return tw.Flush()
			})
		},
	}
}
