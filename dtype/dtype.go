// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtype provides the fixed catalogue of scalar data types.
//
// Each type is identified by an ID and described by exactly one canonical,
// read-only Descriptor. Descriptors are created once, at package
// initialization, and never mutated afterwards, so they can be shared
// between goroutines without synchronization.
package dtype

import (
	"fmt"
)

// ID identifies a scalar data type.
//
// ID values are stable within a build and only meant to be used as
// indices; they are not a persisted format. The underlying type is signed
// so that any integer coming from untrusted input can be range-checked.
type ID int

const (
	// Bool represents a boolean stored in one byte.
	Bool ID = iota
	// Int8 represents an 8-bit signed integer.
	Int8
	// UInt8 represents an 8-bit unsigned integer.
	UInt8
	// Int16 represents a 16-bit signed integer.
	Int16
	// UInt16 represents a 16-bit unsigned integer.
	UInt16
	// Int32 represents a 32-bit signed integer.
	Int32
	// UInt32 represents a 32-bit unsigned integer.
	UInt32
	// Int64 represents a 64-bit signed integer.
	Int64
	// UInt64 represents a 64-bit unsigned integer.
	UInt64
	// Float32 represents a 32-bit IEEE 754 floating point.
	Float32
	// Float64 represents a 64-bit IEEE 754 floating point.
	Float64
	// LongDouble represents an extended-precision floating point.
	LongDouble
	// CFloat64 represents a complex number made of two Float32.
	CFloat64
	// CFloat128 represents a complex number made of two Float64.
	CFloat128
	// BFloat16 represents a 16-bit brain floating point.
	BFloat16

	// NumIDs is the number of valid ID values.
	NumIDs int = iota
)

// Validate returns an error if the ID is not valid, otherwise nil.
// The error wraps ErrNotFound.
func (id ID) Validate() error {
	if id < 0 || int(id) >= NumIDs {
		return fmt.Errorf("%w: invalid ID(%d)", ErrNotFound, int(id))
	}
	return nil
}

// String returns the display name of the type identified by id.
func (id ID) String() string {
	if id < 0 || int(id) >= NumIDs {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return descriptors[id].name
}

// MarshalJSON satisfies json.Marshaler interface.
func (id ID) MarshalJSON() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + descriptors[id].name + `"`), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("failed to JSON-unmarshal ID from value %q", s)
	}
	d, err := LookupName(s[1 : len(s)-1])
	if err != nil {
		return fmt.Errorf("failed to JSON-unmarshal ID from value %q", s)
	}
	*id = d.id
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (id ID) MarshalText() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return []byte(descriptors[id].name), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (id *ID) UnmarshalText(text []byte) error {
	d, err := LookupName(string(text))
	if err != nil {
		return fmt.Errorf("failed to text-unmarshal ID from value %q", string(text))
	}
	*id = d.id
	return nil
}
