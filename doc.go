// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package intsqrt computes exact integer square roots of arbitrary-precision
integers.

Sqrt(z, x) sets z to the floor square root of x, that is the unique d ≥ 0
such that

	d² ≤ x < (d+1)²

The computation is performed entirely with integer arithmetic: bit shifts,
truncated division and multiplication on big.Int values. No intermediate
floating-point value is ever formed, so results are exact at any magnitude,
unlike math.Sqrt which loses precision past 2⁵³.

The algorithm is a base-4 analogue of the classic digit-by-digit square root
with doubling precision per level: the operand is split into base-4 digits
and the root is approximated recursively on an operand with half as many
digits, then refined with a single division. The recursion depth is
O(log log x) and the total cost is dominated by O(log log x) big-integer
divisions on operands no larger than x.

Following the conventions of math/big, the result destination z is passed as
the first argument, operands are named x, and the result is also returned to
enable chaining. Operations permit aliasing of z with an operand. A nil
destination allocates a new big.Int.

All functions are pure: they share no mutable state, and independent calls
may run concurrently without coordination.
*/
package intsqrt
