// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float16

import (
	"encoding/binary"
	"fmt"
)

// AppendBF16s appends the binary representation of each value of src
// to dst, using the given byte order, and returns the extended buffer.
func AppendBF16s(order binary.ByteOrder, dst []byte, src []BF16) []byte {
	var b [2]byte
	for _, v := range src {
		order.PutUint16(b[:], uint16(v))
		dst = append(dst, b[:]...)
	}
	return dst
}

// DecodeBF16s interprets data as a sequence of BF16 values stored with
// the given byte order.
func DecodeBF16s(order binary.ByteOrder, data []byte) ([]BF16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("invalid BF16 data length %d: must be a multiple of 2", len(data))
	}
	out := make([]BF16, len(data)/2)
	for i := range out {
		out[i] = BF16(order.Uint16(data[i*2:]))
	}
	return out, nil
}
