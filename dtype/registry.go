// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"
	"unsafe"
)

// extended models the storage of an extended-precision float, which has
// no Go counterpart, as two 64-bit words.
type extended [2]uint64

// descriptors is indexed by ID. It is filled once at package
// initialization and must never be written afterwards.
var descriptors = [NumIDs]Descriptor{
	Bool: {
		id:        Bool,
		char:      '?',
		kind:      KindBool,
		byteOrder: NotApplicable,
		size:      uint64(unsafe.Sizeof(false)),
		alignment: uint64(unsafe.Alignof(false)),
		name:      "bool",
	},
	Int8: {
		id:        Int8,
		char:      'b',
		kind:      KindSigned,
		byteOrder: NotApplicable,
		size:      uint64(unsafe.Sizeof(int8(0))),
		alignment: uint64(unsafe.Alignof(int8(0))),
		name:      "int8",
	},
	UInt8: {
		id:        UInt8,
		char:      'B',
		kind:      KindUnsigned,
		byteOrder: NotApplicable,
		size:      uint64(unsafe.Sizeof(uint8(0))),
		alignment: uint64(unsafe.Alignof(uint8(0))),
		name:      "uint8",
	},
	Int16: {
		id:        Int16,
		char:      'h',
		kind:      KindSigned,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(int16(0))),
		alignment: uint64(unsafe.Alignof(int16(0))),
		name:      "int16",
	},
	UInt16: {
		id:        UInt16,
		char:      'H',
		kind:      KindUnsigned,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(uint16(0))),
		alignment: uint64(unsafe.Alignof(uint16(0))),
		name:      "uint16",
	},
	Int32: {
		id:        Int32,
		char:      'i',
		kind:      KindSigned,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(int32(0))),
		alignment: uint64(unsafe.Alignof(int32(0))),
		name:      "int32",
	},
	UInt32: {
		id:        UInt32,
		char:      'I',
		kind:      KindUnsigned,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(uint32(0))),
		alignment: uint64(unsafe.Alignof(uint32(0))),
		name:      "uint32",
	},
	Int64: {
		id:        Int64,
		char:      'q',
		kind:      KindSigned,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(int64(0))),
		alignment: uint64(unsafe.Alignof(int64(0))),
		name:      "int64",
	},
	UInt64: {
		id:        UInt64,
		char:      'Q',
		kind:      KindUnsigned,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(uint64(0))),
		alignment: uint64(unsafe.Alignof(uint64(0))),
		name:      "uint64",
	},
	Float32: {
		id:        Float32,
		char:      'f',
		kind:      KindFloat,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(float32(0))),
		alignment: uint64(unsafe.Alignof(float32(0))),
		name:      "float32",
	},
	Float64: {
		id:        Float64,
		char:      'd',
		kind:      KindFloat,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(float64(0))),
		alignment: uint64(unsafe.Alignof(float64(0))),
		name:      "float64",
	},
	LongDouble: {
		id:        LongDouble,
		char:      'g',
		kind:      KindFloat,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(extended{})),
		alignment: uint64(unsafe.Alignof(extended{})),
		name:      "longdouble",
	},
	CFloat64: {
		id:        CFloat64,
		char:      'F',
		kind:      KindComplex,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(complex64(0))),
		alignment: uint64(unsafe.Alignof(float32(0))),
		name:      "cfloat64",
		component: Float32,
	},
	CFloat128: {
		id:        CFloat128,
		char:      'D',
		kind:      KindComplex,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(complex128(0))),
		alignment: uint64(unsafe.Alignof(float64(0))),
		name:      "cfloat128",
		component: Float64,
	},
	BFloat16: {
		id:        BFloat16,
		char:      'E',
		kind:      KindVendor,
		byteOrder: Native,
		size:      uint64(unsafe.Sizeof(uint16(0))),
		alignment: uint64(unsafe.Alignof(uint16(0))),
		name:      "bfloat16",
	},
}

// Lookup returns the canonical descriptor of the type identified by id.
//
// Any value outside [0, NumIDs) is reported with an error wrapping
// ErrNotFound.
func Lookup(id ID) (*Descriptor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &descriptors[id], nil
}

// MustLookup is like Lookup but panics if id is not valid.
// It is meant for the initialization of package-level variables.
func MustLookup(id ID) *Descriptor {
	d, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return d
}

// LookupName returns the canonical descriptor whose display name is
// exactly name, or an error wrapping ErrNotFound.
func LookupName(name string) (*Descriptor, error) {
	for i := range descriptors {
		if descriptors[i].name == name {
			return &descriptors[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not a valid data type name", ErrNotFound, name)
}

// All returns the canonical descriptors of all types, in ID order.
func All() []*Descriptor {
	all := make([]*Descriptor, len(descriptors))
	for i := range descriptors {
		all[i] = &descriptors[i]
	}
	return all
}
