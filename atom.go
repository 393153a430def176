// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atom is a library of fundamental scalar data types.
//
// The catalogue of types lives in package dtype, bfloat16 conversions in
// package float16 and numeric limits in package limits. This package ties
// them together with canonical DType handles.
package atom
