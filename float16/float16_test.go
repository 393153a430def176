// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF16FromFloat32(t *testing.T) {
	testCases := []struct {
		in   float32
		want F16
	}{
		{0, 0x0000},
		{1, 0x3C00},
		{-2, 0xC000},
		{0.5, 0x3800},
		{65504, 0x7BFF},
		{float32(math.Inf(1)), 0x7C00},
		{float32(math.Inf(-1)), 0xFC00},
	}
	for _, tc := range testCases {
		got := F16FromFloat32(tc.in)
		assert.Equal(t, tc.want, got, "%g: want 0x%04X, got 0x%04X", tc.in, tc.want, got)
		assert.Equal(t, uint16(tc.want), got.Bits())
		assert.Equal(t, tc.in, got.Float32())
	}

	assert.True(t, F16FromFloat32(float32(math.NaN())).IsNaN())
	assert.False(t, F16(0x3C00).IsNaN())
}

func TestF16_String(t *testing.T) {
	assert.Equal(t, "1", F16(0x3C00).String())
	assert.Equal(t, "65504", F16(0x7BFF).String())
	assert.Equal(t, "-Inf", F16(0xFC00).String())
}

func TestF16_DiffersFromBF16(t *testing.T) {
	// Same storage size, different formats.
	assert.NotEqual(t, F16FromFloat32(1).Bits(), FromFloat32(1).Bits())
	assert.Equal(t, float32(1.875), F16(0x3F80).Float32())
	assert.Equal(t, float32(1), BF16(0x3F80).Float32())
}
