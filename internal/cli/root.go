// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the atom command line interface.
package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Environment variables providing flag defaults.
const (
	EnvFormat   = "ATOM_FORMAT"
	EnvLogLevel = "ATOM_LOG_LEVEL"
)

// ValidFormats lists the accepted values of the --format flag.
var ValidFormats = []string{"text", "json", "yaml"}

// RootOptions holds the global flags of all commands.
type RootOptions struct {
	Format   string
	LogLevel string

	// Logger is configured before any subcommand runs.
	Logger zerolog.Logger
}

// NewRootCommand creates the root atom command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "atom",
		Short:         "Inspect scalar data types",
		Long:          "Inspect the atom scalar data types, their numeric limits and bfloat16 conversions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level, err := zerolog.ParseLevel(opts.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}
			opts.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).
				With().Timestamp().Str("cmd", cmd.Name()).
				Logger()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", envOr(EnvFormat, "text"), "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", envOr(EnvLogLevel, "warn"), "log level (trace|debug|info|warn|error|disabled)")

	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewFinfoCommand(opts))
	cmd.AddCommand(NewIinfoCommand(opts))
	cmd.AddCommand(NewBF16Command(opts))

	return cmd
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
