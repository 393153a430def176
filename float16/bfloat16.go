// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package float16 provides 16-bit floating point storage types and their
// conversions from and to float32.
//
// BF16 (brain floating point) keeps the 8-bit exponent of a float32 and
// truncates its mantissa to 7 bits. F16 is the IEEE 754 binary16 format.
package float16

import (
	"math"
	"strconv"
)

// BF16 is a 16-bit brain floating-point value, represented as raw bits.
type BF16 uint16

const (
	bf16SignMask     = 0x8000
	bf16ExponentMask = 0x7F80
	bf16MantissaMask = 0x007F
	bf16QuietBit     = 0x0040

	f32ExponentMask = 0x7F800000
	f32MantissaMask = 0x007FFFFF
)

// FromFloat32 converts a float32 to BF16, rounding to nearest, ties to even.
//
// NaN values are converted to a quiet NaN keeping the sign and the high
// mantissa bits of f. Infinities are preserved.
func FromFloat32(f float32) BF16 {
	return FromFloat32Bits(math.Float32bits(f))
}

// FromFloat32Bits is like FromFloat32, but takes the IEEE 754 binary
// representation of a float32.
func FromFloat32Bits(u uint32) BF16 {
	if u&f32ExponentMask == f32ExponentMask && u&f32MantissaMask != 0 {
		return BF16(u>>16) | bf16QuietBit
	}
	// The bias is half an ULP of the result, plus one when the retained
	// LSB is odd, so that halfway values go to the even neighbor.
	// Carries into the exponent are intended (e.g. MaxFloat32 becomes +Inf).
	lsb := (u >> 16) & 1
	u += 0x7FFF + lsb
	return BF16(u >> 16)
}

// FromFloat64 converts a float64 to BF16, going through float32.
func FromFloat64(f float64) BF16 {
	return FromFloat32(float32(f))
}

// FromBits returns the BF16 with the given binary representation.
func FromBits(b uint16) BF16 {
	return BF16(b)
}

// Bits returns the binary representation of b.
func (b BF16) Bits() uint16 {
	return uint16(b)
}

// Float32 converts b to float32. The conversion is exact.
func (b BF16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float64 converts b to float64. The conversion is exact.
func (b BF16) Float64() float64 {
	return float64(b.Float32())
}

// IsNaN reports whether b is a NaN value.
func (b BF16) IsNaN() bool {
	return b&bf16ExponentMask == bf16ExponentMask && b&bf16MantissaMask != 0
}

// IsQuietNaN reports whether b is a NaN value with the quiet bit set.
func (b BF16) IsQuietNaN() bool {
	return b.IsNaN() && b&bf16QuietBit != 0
}

// IsInf reports whether b is an infinity, according to sign.
// If sign > 0, IsInf reports whether b is positive infinity.
// If sign < 0, IsInf reports whether b is negative infinity.
// If sign == 0, IsInf reports whether b is either infinity.
func (b BF16) IsInf(sign int) bool {
	return (sign >= 0 && b == BF16(bf16ExponentMask)) ||
		(sign <= 0 && b == BF16(bf16SignMask|bf16ExponentMask))
}

// Signbit reports whether b is negative or negative zero.
func (b BF16) Signbit() bool {
	return b&bf16SignMask != 0
}

// String returns the shortest decimal representation of b.
func (b BF16) String() string {
	return strconv.FormatFloat(float64(b.Float32()), 'g', -1, 32)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) BF16 {
	if sign >= 0 {
		return BF16(bf16ExponentMask)
	}
	return BF16(bf16SignMask | bf16ExponentMask)
}

// NaN returns the canonical quiet NaN.
func NaN() BF16 {
	return BF16(bf16ExponentMask | bf16QuietBit)
}

// FromFloat32s converts a slice of float32 values to BF16.
func FromFloat32s(f32s []float32) []BF16 {
	out := make([]BF16, len(f32s))
	for i, f := range f32s {
		out[i] = FromFloat32(f)
	}
	return out
}

// Float32s converts a slice of BF16 values to float32.
func Float32s(bs []BF16) []float32 {
	out := make([]float32, len(bs))
	for i, b := range bs {
		out[i] = b.Float32()
	}
	return out
}
