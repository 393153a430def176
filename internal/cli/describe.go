// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nlpodyssey/atom/dtype"
)

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List all data types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := dtype.All()
			rootOpts.Logger.Debug().Int("count", len(all)).Msg("listing data types")
			return rootOpts.formatter(cmd).Print(all, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NUM\tNAME\tKIND\tCHAR\tITEMSIZE\tALIGNMENT\tBYTEORDER\tTYPESTR")
				for _, d := range all {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%c\t%d\t%d\t%s\t%s\n",
						d.ID(), d.Name(), d.Kind(), d.Char(), d.Size(), d.Alignment(), d.ByteOrder(), d.TypeStr())
				}
				return tw.Flush()
			})
		},
	}
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name|id>",
		Short: "Describe one data type",
		Long: `Describe one data type, given its name (such as "int32")
or its numeric identifier.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDescriptor(rootOpts, args[0])
			if err != nil {
				return exitError(err)
			}
			return rootOpts.formatter(cmd).Print(d, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
				fmt.Fprintf(tw, "name:\t%s\n", d.Name())
				fmt.Fprintf(tw, "num:\t%d\n", d.ID())
				fmt.Fprintf(tw, "kind:\t%s\n", d.Kind())
				fmt.Fprintf(tw, "char:\t%c\n", d.Char())
				fmt.Fprintf(tw, "byteorder:\t%s\n", d.ByteOrder())
				fmt.Fprintf(tw, "itemsize:\t%d\n", d.Size())
				fmt.Fprintf(tw, "alignment:\t%d\n", d.Alignment())
				fmt.Fprintf(tw, "typestr:\t%s\n", d.TypeStr())
				return tw.Flush()
			})
		},
	}
}

// resolveDescriptor looks arg up as a display name first, then as a
// numeric ID. Numbers are range-checked by dtype.Lookup.
func resolveDescriptor(rootOpts *RootOptions, arg string) (*dtype.Descriptor, error) {
	if d, err := dtype.LookupName(arg); err == nil {
		rootOpts.Logger.Debug().Str("name", arg).Msg("resolved data type by name")
		return d, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a data type name nor an ID", dtype.ErrNotFound, arg)
	}
	d, err := dtype.Lookup(dtype.ID(n))
	if err != nil {
		return nil, err
	}
	rootOpts.Logger.Debug().Int("id", n).Str("name", d.Name()).Msg("resolved data type by ID")
	return d, nil
}
