// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intsqrt

import (
	"math/big"
	"testing"
)

func TestIsSquare(t *testing.T) {
	for i, test := range []struct {
		x    string
		want bool
	}{
		{"0", true},
		{"1", true},
		{"2", false},
		{"3", false},
		{"4", true},
		{"5", false},
		{"16", true},
		{"17", false},
		{"-1", false},
		{"-4", false},
		{"1000000000000000000", true},  // (10⁹)²
		{"1000000000000000001", false}, // passes the mod 64 filter
		// 2¹²⁸ and neighbors
		{"340282366920938463463374607431768211456", true},
		{"340282366920938463463374607431768211455", false},
		{"340282366920938463463374607431768211457", false},
	} {
		x := fromString(t, test.x)
		if got := IsSquare(x); got != test.want {
			t.Errorf("#%d: IsSquare(%s) = %v; want %v", i, test.x, got, test.want)
		}
	}
}

// TestIsSquareSmall checks all values up to 2¹⁶ against an exact oracle.
func TestIsSquareSmall(t *testing.T) {
	x := new(big.Int)
	d := new(big.Int)
	for n := int64(0); n < 1<<16; n++ {
		x.SetInt64(n)
		d.Sqrt(x)
		want := d.Mul(d, d).Cmp(x) == 0
		if got := IsSquare(x); got != want {
			t.Fatalf("IsSquare(%d) = %v; want %v", n, got, want)
		}
	}
}

func TestIsSquareLarge(t *testing.T) {
	max := new(big.Int).Lsh(one, 600)
	for i := 0; i < 100; i++ {
		k := new(big.Int).Rand(rnd, max)
		k.Add(k, big.NewInt(2)) // k ≥ 2
		sq := new(big.Int).Mul(k, k)
		if !IsSquare(sq) {
			t.Fatalf("IsSquare(%v²) = false", k)
		}
		// k²±1 sit strictly between consecutive squares for k ≥ 2.
		if IsSquare(new(big.Int).Add(sq, one)) {
			t.Fatalf("IsSquare(%v²+1) = true", k)
		}
		if IsSquare(new(big.Int).Sub(sq, one)) {
			t.Fatalf("IsSquare(%v²-1) = true", k)
		}
	}
}
