// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package limits reports the numeric limits of the dtype catalogue types,
// in the manner of NumPy's finfo and iinfo.
package limits

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nlpodyssey/atom/dtype"
)

// FloatInfo holds the machine limits of a floating point type.
type FloatInfo struct {
	// ID is the type the limits describe. For complex types, it is
	// their scalar component.
	ID dtype.ID `json:"dtype" yaml:"dtype"`
	// Bits is the number of bits occupied by the type.
	Bits int `json:"bits" yaml:"bits"`
	// Eps is the difference between 1.0 and the next representable value.
	Eps float64 `json:"eps" yaml:"eps"`
	// EpsNeg is the difference between 1.0 and the previous representable value.
	EpsNeg float64 `json:"epsneg" yaml:"epsneg"`
	// Max is the largest finite value.
	Max float64 `json:"max" yaml:"max"`
	// Min is the most negative finite value.
	Min float64 `json:"min" yaml:"min"`
	// Precision is the approximate number of significant decimal digits.
	Precision int `json:"precision" yaml:"precision"`
	// Resolution is 10 to the power of -Precision.
	Resolution float64 `json:"resolution" yaml:"resolution"`
	// NMant is the number of explicit mantissa bits.
	NMant int `json:"nmant" yaml:"nmant"`
	// NExp is the number of exponent bits.
	NExp int `json:"nexp" yaml:"nexp"`
	// MinExp is the smallest power of 2 of a normal value.
	MinExp int `json:"minexp" yaml:"minexp"`
	// MaxExp is the smallest power of 2 causing overflow.
	MaxExp int `json:"maxexp" yaml:"maxexp"`
	// SmallestNormal is the smallest positive normal value.
	SmallestNormal float64 `json:"smallest_normal" yaml:"smallest_normal"`
	// SmallestSubnormal is the smallest positive subnormal value.
	SmallestSubnormal float64 `json:"smallest_subnormal" yaml:"smallest_subnormal"`
}

var (
	float32Info = FloatInfo{
		ID:                dtype.Float32,
		Bits:              32,
		Eps:               0x1p-23,
		EpsNeg:            0x1p-24,
		Max:               math.MaxFloat32,
		Min:               -math.MaxFloat32,
		Precision:         6,
		Resolution:        1e-6,
		NMant:             23,
		NExp:              8,
		MinExp:            -126,
		MaxExp:            128,
		SmallestNormal:    0x1p-126,
		SmallestSubnormal: math.SmallestNonzeroFloat32,
	}
	float64Info = FloatInfo{
		ID:                dtype.Float64,
		Bits:              64,
		Eps:               0x1p-52,
		EpsNeg:            0x1p-53,
		Max:               math.MaxFloat64,
		Min:               -math.MaxFloat64,
		Precision:         15,
		Resolution:        1e-15,
		NMant:             52,
		NExp:              11,
		MinExp:            -1022,
		MaxExp:            1024,
		SmallestNormal:    0x1p-1022,
		SmallestSubnormal: math.SmallestNonzeroFloat64,
	}
	// bfloat16: 1 sign bit, 8 exponent bits (bias 127), 7 mantissa bits.
	bfloat16Info = FloatInfo{
		ID:                dtype.BFloat16,
		Bits:              16,
		Eps:               0x1p-7,
		EpsNeg:            0x1p-8,
		Max:               0x1.fep127,
		Min:               -0x1.fep127,
		Precision:         2,
		Resolution:        1e-2,
		NMant:             7,
		NExp:              8,
		MinExp:            -126,
		MaxExp:            128,
		SmallestNormal:    0x1p-126,
		SmallestSubnormal: 0x1p-133,
	}
)

// Float returns the limits of the floating point type identified by id.
//
// Only types of kind float, complex and vendor are accepted; any other type
// is reported with an error wrapping dtype.ErrUnsupported. Complex types
// report the limits of their scalar component.
func Float(id dtype.ID) (FloatInfo, error) {
	d, err := dtype.Lookup(id)
	if err != nil {
		return FloatInfo{}, err
	}
	if !d.Kind().IsInexact() {
		return FloatInfo{}, fmt.Errorf("%w: finfo is only available for floating point and complex dtypes, try iinfo for %s", dtype.ErrUnsupported, d)
	}
	if c, ok := d.Component(); ok {
		id = c
	}
	switch id {
	case dtype.Float32:
		return float32Info, nil
	case dtype.Float64:
		return float64Info, nil
	case dtype.BFloat16:
		return bfloat16Info, nil
	}
	return FloatInfo{}, fmt.Errorf("%w: finfo not available for %s", dtype.ErrUnsupported, d)
}

// String returns a compact summary of fi.
func (fi FloatInfo) String() string {
	return fmt.Sprintf("finfo(resolution=%s, min=%s, max=%s, dtype=%s)",
		fi.formatFloat(fi.Resolution), fi.formatFloat(fi.Min), fi.formatFloat(fi.Max), fi.ID)
}

func (fi FloatInfo) formatFloat(v float64) string {
	bitSize := 64
	if fi.Bits <= 32 {
		bitSize = 32
	}
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}
