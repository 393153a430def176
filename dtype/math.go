// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import "fmt"

// checkedMul returns n * size, failing if the product overflows.
func checkedMul(n, size uint64) (uint64, error) {
	c := n * size
	if n > 1 && size > 1 && c/n != size {
		return 0, fmt.Errorf("byte size overflow: %d elements of %d bytes", n, size)
	}
	return c, nil
}
