// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"strconv"

	x448 "github.com/x448/float16"
)

// F16 is a 16-bit IEEE 754 half-precision floating-point value,
// represented as raw bits.
//
// F16 is not part of the dtype catalogue yet; it exists as the storage
// counterpart of BF16.
type F16 uint16

// F16FromFloat32 converts a float32 to F16, rounding to nearest, ties to even.
func F16FromFloat32(f float32) F16 {
	return F16(x448.Fromfloat32(f).Bits())
}

// Bits returns the binary representation of h.
func (h F16) Bits() uint16 {
	return uint16(h)
}

// Float32 converts h to float32. The conversion is exact.
func (h F16) Float32() float32 {
	return x448.Frombits(uint16(h)).Float32()
}

// IsNaN reports whether h is a NaN value.
func (h F16) IsNaN() bool {
	return x448.Frombits(uint16(h)).IsNaN()
}

// String returns the shortest decimal representation of h.
func (h F16) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}
