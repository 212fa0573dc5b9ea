// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intsqrt

import "math/big"

// approxAlt is an equivalent formulation of approx parameterized on
// c = digitCount(x) - 1 instead of the digit count itself. It requires
// x ≥ 1 and returns an a with (a-1)² < x < (a+1)².
//
// Sqrt does not use it; it is kept because the two formulations
// cross-validate each other (see TestApproxCrossCheck).
func approxAlt(c uint, x *big.Int) *big.Int {
	if c == 0 {
		return big.NewInt(1)
	}
	k := (c - 1) >> 1
	// The shifted value has c/2 + 1 base-4 digits.
	a := approxAlt(c>>1, new(big.Int).Rsh(x, 2*(k+1)))
	q := new(big.Int).Rsh(x, k+2)
	q.Quo(q, a)
	q.Add(q, a.Lsh(a, k))
	if debugSqrt {
		checkBracket(q, x)
	}
	return q
}
