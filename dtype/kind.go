// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import "encoding/binary"

// Kind is the coarse classification of a data type, encoded with the
// single-character codes of the array-interface conventions.
type Kind byte

const (
	// KindBool classifies boolean types.
	KindBool Kind = 'b'
	// KindSigned classifies signed integer types.
	KindSigned Kind = 'i'
	// KindUnsigned classifies unsigned integer types.
	KindUnsigned Kind = 'u'
	// KindFloat classifies IEEE floating point types.
	KindFloat Kind = 'f'
	// KindComplex classifies complex types.
	KindComplex Kind = 'c'
	// KindVendor classifies non-standard (vendor-defined) types.
	//
	// BFloat16 belongs here rather than to KindFloat, so that it can never
	// be confused with an IEEE half-precision float of the same size.
	KindVendor Kind = 'V'
)

// String returns the Kind character.
func (k Kind) String() string {
	return string(rune(k))
}

// IsInteger reports whether k is KindBool, KindSigned or KindUnsigned.
func (k Kind) IsInteger() bool {
	return k == KindBool || k == KindSigned || k == KindUnsigned
}

// IsInexact reports whether k is KindFloat, KindComplex or KindVendor.
func (k Kind) IsInexact() bool {
	return k == KindFloat || k == KindComplex || k == KindVendor
}

// ByteOrder tells how the bytes of a multi-byte element are ordered.
type ByteOrder byte

const (
	// NotApplicable is used for single-byte types.
	NotApplicable ByteOrder = '|'
	// Native is the byte order of the host machine.
	Native ByteOrder = '='
	// LittleEndian means least significant byte first.
	LittleEndian ByteOrder = '<'
	// BigEndian means most significant byte first.
	BigEndian ByteOrder = '>'
)

// hostOrder is the concrete order Native stands for.
var hostOrder = detectHostOrder()

func detectHostOrder() ByteOrder {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}

// String returns the ByteOrder character.
func (bo ByteOrder) String() string {
	return string(rune(bo))
}

// Resolve returns the concrete byte order of bo: Native is replaced with
// the order of the host machine, any other value is returned unchanged.
func (bo ByteOrder) Resolve() ByteOrder {
	if bo == Native {
		return hostOrder
	}
	return bo
}

// Binary returns the encoding/binary implementation of bo, or nil
// for NotApplicable and invalid values.
func (bo ByteOrder) Binary() binary.ByteOrder {
	switch bo {
	case Native:
		return binary.NativeEndian
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	}
	return nil
}
