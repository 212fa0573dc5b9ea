// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intsqrt

import "math/big"

var nine = big.NewInt(9)

// sqMod64 has bit i set iff i is a square mod 64.
var sqMod64 uint64

// sqMod9 has bit i set iff i is a square mod 9.
var sqMod9 uint16

func init() {
	for i := uint64(0); i < 64; i++ {
		sqMod64 |= 1 << (i * i % 64)
	}
	for i := uint16(0); i < 9; i++ {
		sqMod9 |= 1 << (i * i % 9)
	}
}

// IsSquare reports whether x is a perfect square. Negative values are not
// squares.
//
// Non-squares are usually rejected by cheap residue tests mod 64 and mod 9;
// only candidates passing both filters pay for a root extraction.
func IsSquare(x *big.Int) bool {
	if x.Sign() < 0 {
		return false
	}
	if w := x.Bits(); len(w) > 0 {
		if sqMod64&(1<<(uint64(w[0])&63)) == 0 {
			return false
		}
		if sqMod9&(1<<new(big.Int).Mod(x, nine).Uint64()) == 0 {
			return false
		}
	}
	_, r, err := SqrtRem(nil, nil, x)
	return err == nil && r.Sign() == 0
}
