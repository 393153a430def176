// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nlpodyssey/atom/dtype"
)

// Exit codes of the atom command.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitNotFound    = 2 // unknown type, or malformed input
	ExitUnsupported = 3 // operation not available for the type
)

// ExitError is an error carrying the exit code of the process.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// exitError classifies err by the dtype sentinel errors it wraps.
func exitError(err error) error {
	switch {
	case errors.Is(err, dtype.ErrNotFound), errors.Is(err, dtype.ErrMalformedInput):
		return &ExitError{Code: ExitNotFound, Err: err}
	case errors.Is(err, dtype.ErrUnsupported):
		return &ExitError{Code: ExitUnsupported, Err: err}
	}
	return err
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results in the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes data as JSON or YAML, or calls text for the text format.
func (f *OutputFormatter) Print(data any, text func(w io.Writer) error) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return text(f.Writer)
	}
	return fmt.Errorf("unknown output format %q", f.Format)
}
