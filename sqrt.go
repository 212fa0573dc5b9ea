// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intsqrt

import (
	"errors"
	"math/big"
)

const debugSqrt = false

// ErrNegativeOperand is returned by Sqrt and SqrtRem when the operand is
// negative.
var ErrNegativeOperand = errors.New("intsqrt: square root of negative operand")

var one = big.NewInt(1)

// Sqrt sets z to ⌊√x⌋, the largest integer d such that d² ≤ x, and returns z.
// If z is nil, a new Int is allocated. z may alias x.
//
// If x is negative, Sqrt returns nil and ErrNegativeOperand; z is left
// untouched.
func Sqrt(z, x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, ErrNegativeOperand
	}
	if z == nil {
		z = new(big.Int)
	}
	return z.Set(floorSqrt(x)), nil
}

// SqrtRem sets z to ⌊√x⌋ and r to the remainder x - z², and returns the pair
// (z, r). The remainder satisfies 0 ≤ r ≤ 2z. If z or r is nil, a new Int is
// allocated in its place. z and r must not alias each other.
//
// If x is negative, SqrtRem returns (nil, nil) and ErrNegativeOperand.
func SqrtRem(z, r, x *big.Int) (*big.Int, *big.Int, error) {
	if x.Sign() < 0 {
		return nil, nil, ErrNegativeOperand
	}
	if z == nil {
		z = new(big.Int)
	}
	if r == nil {
		r = new(big.Int)
	}
	d := floorSqrt(x)
	sq := new(big.Int).Mul(d, d)
	// r before z: z may alias x.
	r.Sub(x, sq)
	z.Set(d)
	return z, r, nil
}

// floorSqrt computes ⌊√x⌋ for x ≥ 0 by correcting the distance-1
// approximation: approx brackets the root in the open interval (a-1, a+1),
// so the root is either a or a-1, settled by a single comparison.
func floorSqrt(x *big.Int) *big.Int {
	a := approx(digitCount(x), x)
	if new(big.Int).Mul(a, a).Cmp(x) > 0 {
		a.Sub(a, one)
	}
	return a
}

// digitCount returns the number of base-4 digits of x, ⌊(1 + BitLen(x))/2⌋.
// It is 0 iff x == 0.
func digitCount(x *big.Int) uint {
	return uint(1+x.BitLen()) / 2
}

// approx returns an a within distance 1 of √x: for x > 0,
//
//	(a-1)² < x < (a+1)²
//
// b must be the base-4 digit count of x. The recursion halves b at each
// level, so the depth is O(log log x) and the cost is dominated by one
// big-integer division per level.
func approx(b uint, x *big.Int) *big.Int {
	switch b {
	case 0:
		return new(big.Int)
	case 1:
		return big.NewInt(1)
	}
	k := b >> 1
	// Dropping the low k base-4 digits of x leaves a value with exactly
	// b-k digits; approximate its root first.
	a := approx(b-k, new(big.Int).Rsh(x, 2*k))
	// a ≥ 2^(k-1) ≥ 1 here, so the division cannot be by zero.
	q := new(big.Int).Rsh(x, k+1)
	q.Quo(q, a)
	q.Add(q, a.Lsh(a, k-1))
	if debugSqrt {
		checkBracket(q, x)
	}
	return q
}

// checkBracket panics unless (a-1)² < x < (a+1)².
func checkBracket(a, x *big.Int) {
	var t big.Int
	t.Sub(a, one)
	if t.Mul(&t, &t).Cmp(x) >= 0 {
		panic("intsqrt: approximation too large")
	}
	t.Add(a, one)
	if t.Mul(&t, &t).Cmp(x) <= 0 {
		panic("intsqrt: approximation too small")
	}
}
