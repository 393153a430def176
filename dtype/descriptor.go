// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"encoding/json"
	"strconv"
)

// Descriptor is the read-only description of one data type.
//
// Only the canonical descriptors returned by Lookup, LookupName and All
// exist: two *Descriptor values describe the same type if, and only if,
// they are the same pointer.
type Descriptor struct {
	id        ID
	char      byte
	kind      Kind
	byteOrder ByteOrder
	size      uint64
	alignment uint64
	name      string
	component ID
}

// ID returns the identifier of the described type.
func (d *Descriptor) ID() ID { return d.id }

// Kind returns the classification of the type.
func (d *Descriptor) Kind() Kind { return d.kind }

// ByteOrder returns the byte order of the type.
func (d *Descriptor) ByteOrder() ByteOrder { return d.byteOrder }

// Size returns the size in bytes of one element of this data type.
func (d *Descriptor) Size() uint64 { return d.size }

// Alignment returns the natural alignment in bytes of one element.
func (d *Descriptor) Alignment() uint64 { return d.alignment }

// Name returns the unique display name of the type, such as "int32".
func (d *Descriptor) Name() string { return d.name }

// Char returns the single-character legacy type code, such as 'i'.
func (d *Descriptor) Char() byte { return d.char }

// String returns the display name of the type.
func (d *Descriptor) String() string { return d.name }

// Component returns the ID of the scalar type underlying each half of a
// complex type. The boolean flag is false for non-complex types.
func (d *Descriptor) Component() (ID, bool) {
	if d.kind != KindComplex {
		return 0, false
	}
	return d.component, true
}

// TypeStr returns the array-interface type string of the type: the
// resolved byte order, the kind and the size, like "<f4" or "|b1".
func (d *Descriptor) TypeStr() string {
	return d.byteOrder.Resolve().String() + d.kind.String() + strconv.FormatUint(d.size, 10)
}

// ByteSize returns the number of bytes needed to store n elements of
// this type, or an error if the result overflows.
func (d *Descriptor) ByteSize(n uint64) (uint64, error) {
	return checkedMul(n, d.size)
}

type jsonDescriptor struct {
	Name      string `json:"name" yaml:"name"`
	Num       int    `json:"num" yaml:"num"`
	Kind      string `json:"kind" yaml:"kind"`
	Char      string `json:"char" yaml:"char"`
	ByteOrder string `json:"byteorder" yaml:"byteorder"`
	ItemSize  uint64 `json:"itemsize" yaml:"itemsize"`
	Alignment uint64 `json:"alignment" yaml:"alignment"`
	TypeStr   string `json:"typestr" yaml:"typestr"`
}

// MarshalJSON satisfies json.Marshaler interface.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.export())
}

// MarshalYAML satisfies yaml.Marshaler interface, with the same fields
// used for JSON.
func (d *Descriptor) MarshalYAML() (any, error) {
	return d.export(), nil
}

func (d *Descriptor) export() jsonDescriptor {
	return jsonDescriptor{
		Name:      d.name,
		Num:       int(d.id),
		Kind:      d.kind.String(),
		Char:      string(rune(d.char)),
		ByteOrder: d.byteOrder.String(),
		ItemSize:  d.size,
		Alignment: d.alignment,
		TypeStr:   d.TypeStr(),
	}
}
