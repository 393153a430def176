// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limits

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/nlpodyssey/atom/dtype"
)

// IntInfo holds the machine limits of an integer or boolean type.
type IntInfo struct {
	ID   dtype.ID   `json:"dtype" yaml:"dtype"`
	Kind dtype.Kind `json:"-" yaml:"-"`
	// Bits is the storage width of the type. It is 8 for booleans, even
	// if only the values 0 and 1 are allowed.
	Bits int    `json:"bits" yaml:"bits"`
	Min  int64  `json:"min" yaml:"min"`
	Max  uint64 `json:"max" yaml:"max"`
}

var intInfos = map[dtype.ID]IntInfo{
	dtype.Bool:   {ID: dtype.Bool, Kind: dtype.KindBool, Bits: 8, Min: 0, Max: 1},
	dtype.Int8:   integerInfo[int8](dtype.Int8),
	dtype.UInt8:  integerInfo[uint8](dtype.UInt8),
	dtype.Int16:  integerInfo[int16](dtype.Int16),
	dtype.UInt16: integerInfo[uint16](dtype.UInt16),
	dtype.Int32:  integerInfo[int32](dtype.Int32),
	dtype.UInt32: integerInfo[uint32](dtype.UInt32),
	dtype.Int64:  integerInfo[int64](dtype.Int64),
	dtype.UInt64: integerInfo[uint64](dtype.UInt64),
}

// integerInfo derives the limits of the Go integer type T.
func integerInfo[T constraints.Integer](id dtype.ID) IntInfo {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	allOnes := ^zero
	if allOnes < zero {
		return IntInfo{
			ID:   id,
			Kind: dtype.KindSigned,
			Bits: bits,
			Min:  -1 << (bits - 1),
			Max:  1<<(bits-1) - 1,
		}
	}
	return IntInfo{
		ID:   id,
		Kind: dtype.KindUnsigned,
		Bits: bits,
		Min:  0,
		Max:  uint64(allOnes),
	}
}

// Int returns the limits of the integer or boolean type identified by id.
//
// Types of any other kind are reported with an error wrapping
// dtype.ErrUnsupported.
func Int(id dtype.ID) (IntInfo, error) {
	d, err := dtype.Lookup(id)
	if err != nil {
		return IntInfo{}, err
	}
	if !d.Kind().IsInteger() {
		return IntInfo{}, fmt.Errorf("%w: iinfo is only available for integer and boolean dtypes, try finfo for %s", dtype.ErrUnsupported, d)
	}
	info, ok := intInfos[id]
	if !ok {
		return IntInfo{}, fmt.Errorf("%w: iinfo not available for %s", dtype.ErrUnsupported, d)
	}
	return info, nil
}

// String returns a compact summary of ii.
func (ii IntInfo) String() string {
	return "iinfo(min=" + strconv.FormatInt(ii.Min, 10) +
		", max=" + strconv.FormatUint(ii.Max, 10) +
		", dtype=" + ii.ID.String() + ")"
}
