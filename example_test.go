// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom_test

import (
	"fmt"
	"log"

	"github.com/nlpodyssey/atom"
)

func ExampleNew() {
	dt, err := atom.New("cfloat128")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("name = %s\n", dt)
	fmt.Printf("kind = %s\n", dt.Kind())
	fmt.Printf("itemsize = %d\n", dt.ItemSize())
	fmt.Printf("alignment = %d\n", dt.Alignment())
	fmt.Printf("same as atom.CFloat128 = %t\n", dt == atom.CFloat128)

	// Output:
	// name = cfloat128
	// kind = c
	// itemsize = 16
	// alignment = 8
	// same as atom.CFloat128 = true
}

func ExampleFinfo() {
	fi, err := atom.Finfo(atom.BFloat16)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(fi)
	fmt.Printf("eps = %g, nmant = %d, nexp = %d\n", fi.Eps, fi.NMant, fi.NExp)

	// Output:
	// finfo(resolution=0.01, min=-3.3895314e+38, max=3.3895314e+38, dtype=bfloat16)
	// eps = 0.0078125, nmant = 7, nexp = 8
}

func ExampleIinfo() {
	ii, err := atom.Iinfo(atom.Int16)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ii)

	_, err = atom.Iinfo(atom.Float32)
	fmt.Println(err)

	// Output:
	// iinfo(min=-32768, max=32767, dtype=int16)
	// unsupported data type: iinfo is only available for integer and boolean dtypes, try finfo for float32
}
