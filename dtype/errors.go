// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import "errors"

var (
	// ErrNotFound is reported when an ID is out of range, or when no
	// type matches a given name.
	ErrNotFound = errors.New("data type not found")

	// ErrUnsupported is reported when an operation is requested for a
	// type whose Kind it does not apply to.
	ErrUnsupported = errors.New("unsupported data type")

	// ErrMalformedInput is reported when a value cannot be interpreted
	// as a data type at all.
	ErrMalformedInput = errors.New("malformed data type input")
)
