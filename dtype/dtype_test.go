// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ json.Marshaler           = ID(0)
	_ json.Unmarshaler         = new(ID)
	_ encoding.TextMarshaler   = ID(0)
	_ encoding.TextUnmarshaler = new(ID)
)

var (
	validValues = []struct {
		id        ID
		name      string
		char      byte
		kind      Kind
		byteOrder ByteOrder
		size      uint64
		alignment uint64
	}{
		{Bool, "bool", '?', KindBool, NotApplicable, 1, 1},
		{Int8, "int8", 'b', KindSigned, NotApplicable, 1, 1},
		{UInt8, "uint8", 'B', KindUnsigned, NotApplicable, 1, 1},
		{Int16, "int16", 'h', KindSigned, Native, 2, 2},
		{UInt16, "uint16", 'H', KindUnsigned, Native, 2, 2},
		{Int32, "int32", 'i', KindSigned, Native, 4, 4},
		{UInt32, "uint32", 'I', KindUnsigned, Native, 4, 4},
		{Int64, "int64", 'q', KindSigned, Native, 8, 8},
		{UInt64, "uint64", 'Q', KindUnsigned, Native, 8, 8},
		{Float32, "float32", 'f', KindFloat, Native, 4, 4},
		{Float64, "float64", 'd', KindFloat, Native, 8, 8},
		{LongDouble, "longdouble", 'g', KindFloat, Native, 16, 8},
		{CFloat64, "cfloat64", 'F', KindComplex, Native, 8, 4},
		{CFloat128, "cfloat128", 'D', KindComplex, Native, 16, 8},
		{BFloat16, "bfloat16", 'E', KindVendor, Native, 2, 2},
	}
	invalidValues = []ID{-1000, -2, -1, 15, 16, 255, 1 << 20}
)

func TestNumIDs(t *testing.T) {
	// Ensure that changes to the enum are noticeable.
	assert.Equal(t, len(validValues), NumIDs)
	assert.Equal(t, NumIDs, int(BFloat16)+1)
}

func TestID_Validate(t *testing.T) {
	for _, tc := range validValues {
		assert.NoError(t, tc.id.Validate())
	}

	for _, id := range invalidValues {
		err := id.Validate()
		assert.EqualError(t, err, fmt.Sprintf("data type not found: invalid ID(%d)", id))
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestID_String(t *testing.T) {
	for _, tc := range validValues {
		assert.Equal(t, tc.name, tc.id.String())
	}

	for _, id := range invalidValues {
		assert.Equal(t, fmt.Sprintf("ID(%d)", int(id)), id.String())
	}
}

func TestID_MarshalJSON(t *testing.T) {
	for _, tc := range validValues {
		b, err := tc.id.MarshalJSON()
		assert.NoError(t, err)
		assert.Equal(t, []byte(`"`+tc.name+`"`), b)
	}

	for _, id := range invalidValues {
		b, err := id.MarshalJSON()
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, b)
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	for _, tc := range validValues {
		var id ID
		err := id.UnmarshalJSON([]byte(`"` + tc.name + `"`))
		assert.NoError(t, err)
		assert.Equal(t, tc.id, id)
	}

	var id ID
	assert.EqualError(t, id.UnmarshalJSON(nil), `failed to JSON-unmarshal ID from value ""`)
	assert.EqualError(t, id.UnmarshalJSON([]byte{}), `failed to JSON-unmarshal ID from value ""`)
	assert.EqualError(t, id.UnmarshalJSON([]byte(`"`)), `failed to JSON-unmarshal ID from value "\""`)
	assert.EqualError(t, id.UnmarshalJSON([]byte("int32")), `failed to JSON-unmarshal ID from value "int32"`)
	assert.EqualError(t, id.UnmarshalJSON([]byte(`"foo"`)), `failed to JSON-unmarshal ID from value "\"foo\""`)
}

func TestID_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		DType ID `json:"dtype"`
	}
	b, err := json.Marshal(wrapper{DType: CFloat128})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"dtype":"cfloat128"}`, string(b))

	var w wrapper
	assert.NoError(t, json.Unmarshal(b, &w))
	assert.Equal(t, CFloat128, w.DType)
}

func TestID_MarshalText(t *testing.T) {
	for _, tc := range validValues {
		b, err := tc.id.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, []byte(tc.name), b)
	}

	for _, id := range invalidValues {
		b, err := id.MarshalText()
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, b)
	}
}

func TestID_UnmarshalText(t *testing.T) {
	for _, tc := range validValues {
		var id ID
		err := id.UnmarshalText([]byte(tc.name))
		assert.NoError(t, err)
		assert.Equal(t, tc.id, id)
	}

	var id ID
	assert.EqualError(t, id.UnmarshalText(nil), `failed to text-unmarshal ID from value ""`)
	assert.EqualError(t, id.UnmarshalText([]byte{}), `failed to text-unmarshal ID from value ""`)
	assert.EqualError(t, id.UnmarshalText([]byte("foo")), `failed to text-unmarshal ID from value "foo"`)
	assert.EqualError(t, id.UnmarshalText([]byte("Int32")), `failed to text-unmarshal ID from value "Int32"`)
}

func TestKind(t *testing.T) {
	integers := []Kind{KindBool, KindSigned, KindUnsigned}
	inexact := []Kind{KindFloat, KindComplex, KindVendor}

	for _, k := range integers {
		assert.True(t, k.IsInteger(), "kind %s", k)
		assert.False(t, k.IsInexact(), "kind %s", k)
	}
	for _, k := range inexact {
		assert.False(t, k.IsInteger(), "kind %s", k)
		assert.True(t, k.IsInexact(), "kind %s", k)
	}
	assert.Equal(t, "V", KindVendor.String())
	assert.Equal(t, "i", KindSigned.String())
}

func TestByteOrder(t *testing.T) {
	assert.Equal(t, "|", NotApplicable.String())
	assert.Equal(t, "=", Native.String())

	assert.Nil(t, NotApplicable.Binary())
	assert.Nil(t, ByteOrder('x').Binary())
	assert.NotNil(t, Native.Binary())
	assert.Equal(t, "LittleEndian", LittleEndian.Binary().String())
	assert.Equal(t, "BigEndian", BigEndian.Binary().String())

	host := Native.Resolve()
	assert.Contains(t, []ByteOrder{LittleEndian, BigEndian}, host)
	assert.Equal(t, host.Binary().String(), func() string {
		var b [2]byte
		Native.Binary().PutUint16(b[:], 0x0102)
		if b[0] == 0x02 {
			return "LittleEndian"
		}
		return "BigEndian"
	}())
	assert.Equal(t, NotApplicable, NotApplicable.Resolve())
	assert.Equal(t, BigEndian, BigEndian.Resolve())
}

func TestErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrNotFound, ErrUnsupported, ErrMalformedInput}
	for i, a := range errs {
		for j, b := range errs {
			assert.Equal(t, i == j, errors.Is(a, b), "%v / %v", a, b)
		}
	}
}
