// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

import (
	"encoding/json"
	"fmt"

	"github.com/nlpodyssey/atom/dtype"
	"github.com/nlpodyssey/atom/limits"
)

// DType is a handle to one of the canonical data type descriptors.
//
// Two DType values are equal, with == or Equal, if and only if they
// refer to the same type. The zero DType is not valid.
type DType struct {
	d *dtype.Descriptor
}

// Predeclared handles of every data type.
var (
	Bool       = DType{dtype.MustLookup(dtype.Bool)}
	Int8       = DType{dtype.MustLookup(dtype.Int8)}
	UInt8      = DType{dtype.MustLookup(dtype.UInt8)}
	Int16      = DType{dtype.MustLookup(dtype.Int16)}
	UInt16     = DType{dtype.MustLookup(dtype.UInt16)}
	Int32      = DType{dtype.MustLookup(dtype.Int32)}
	UInt32     = DType{dtype.MustLookup(dtype.UInt32)}
	Int64      = DType{dtype.MustLookup(dtype.Int64)}
	UInt64     = DType{dtype.MustLookup(dtype.UInt64)}
	Float32    = DType{dtype.MustLookup(dtype.Float32)}
	Float64    = DType{dtype.MustLookup(dtype.Float64)}
	LongDouble = DType{dtype.MustLookup(dtype.LongDouble)}
	CFloat64   = DType{dtype.MustLookup(dtype.CFloat64)}
	CFloat128  = DType{dtype.MustLookup(dtype.CFloat128)}
	BFloat16   = DType{dtype.MustLookup(dtype.BFloat16)}
)

// New returns the DType with the given display name, such as "int32".
func New(name string) (DType, error) {
	d, err := dtype.LookupName(name)
	if err != nil {
		return DType{}, err
	}
	return DType{d}, nil
}

// FromID returns the DType identified by id.
func FromID(id dtype.ID) (DType, error) {
	d, err := dtype.Lookup(id)
	if err != nil {
		return DType{}, err
	}
	return DType{d}, nil
}

// Of converts v to a DType. Accepted values are a display name (string),
// a dtype.ID, a *dtype.Descriptor and a DType itself.
// Values of any other type are reported with an error wrapping
// dtype.ErrMalformedInput.
func Of(v any) (DType, error) {
	switch x := v.(type) {
	case string:
		return New(x)
	case dtype.ID:
		return FromID(x)
	case *dtype.Descriptor:
		if x == nil {
			return DType{}, fmt.Errorf("%w: nil descriptor", dtype.ErrMalformedInput)
		}
		return FromID(x.ID())
	case DType:
		if !x.IsValid() {
			return DType{}, fmt.Errorf("%w: zero DType", dtype.ErrMalformedInput)
		}
		return x, nil
	}
	return DType{}, fmt.Errorf("%w: dtype constructor expects a string, got %T", dtype.ErrMalformedInput, v)
}

// Types returns the handles of all data types, in ID order.
func Types() []DType {
	all := dtype.All()
	out := make([]DType, len(all))
	for i, d := range all {
		out[i] = DType{d}
	}
	return out
}

// IsValid reports whether dt refers to a data type.
func (dt DType) IsValid() bool {
	return dt.d != nil
}

// Equal reports whether dt and other refer to the same data type.
func (dt DType) Equal(other DType) bool {
	return dt.d == other.d
}

// Descriptor returns the canonical descriptor of dt, or nil for the zero DType.
func (dt DType) Descriptor() *dtype.Descriptor {
	return dt.d
}

// ID returns the identifier of dt. It panics for the zero DType.
func (dt DType) ID() dtype.ID {
	return dt.d.ID()
}

// Name returns the display name of dt. It panics for the zero DType.
func (dt DType) Name() string {
	return dt.d.Name()
}

// ItemSize returns the size in bytes of one element. It panics for the zero DType.
func (dt DType) ItemSize() uint64 {
	return dt.d.Size()
}

// Alignment returns the alignment in bytes of one element. It panics for the zero DType.
func (dt DType) Alignment() uint64 {
	return dt.d.Alignment()
}

// Kind returns the classification of dt. It panics for the zero DType.
func (dt DType) Kind() dtype.Kind {
	return dt.d.Kind()
}

// Char returns the single-character type code. It panics for the zero DType.
func (dt DType) Char() byte {
	return dt.d.Char()
}

// ByteOrder returns the byte order of dt. It panics for the zero DType.
func (dt DType) ByteOrder() dtype.ByteOrder {
	return dt.d.ByteOrder()
}

// String returns the display name of dt.
func (dt DType) String() string {
	if dt.d == nil {
		return "<atom.DType nil>"
	}
	return dt.d.Name()
}

// MarshalJSON satisfies json.Marshaler interface.
func (dt DType) MarshalJSON() ([]byte, error) {
	if dt.d == nil {
		return nil, fmt.Errorf("%w: zero DType", dtype.ErrMalformedInput)
	}
	return json.Marshal(dt.d.Name())
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (dt *DType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("%w: failed to JSON-unmarshal DType: %v", dtype.ErrMalformedInput, err)
	}
	v, err := New(name)
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

// Finfo returns the machine limits of a floating point or complex DType.
func Finfo(dt DType) (limits.FloatInfo, error) {
	if dt.d == nil {
		return limits.FloatInfo{}, fmt.Errorf("%w: zero DType", dtype.ErrMalformedInput)
	}
	return limits.Float(dt.d.ID())
}

// Iinfo returns the machine limits of an integer or boolean DType.
func Iinfo(dt DType) (limits.IntInfo, error) {
	if dt.d == nil {
		return limits.IntInfo{}, fmt.Errorf("%w: zero DType", dtype.ErrMalformedInput)
	}
	return limits.Int(dt.d.ID())
}
