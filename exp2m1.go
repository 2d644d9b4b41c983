// Copyright 2026 the fxp authors. All rights reserved.

package fxp

import "math"

// Exp2m1Max is the largest input for which Exp2m1 returns a computed
// result: 34*2^30 - 1. Above it 2^x would need more than IntBits integer
// bits, and Exp2m1 saturates to math.MaxUint64.
const Exp2m1Max = uint64(IntBits)<<FracBits - 1

// Exp2m1 returns a 34u.30 fixed-point approximation of 2^(x/2^30) - 1 for
// a non-negative 34u.30 x. For x > Exp2m1Max it returns math.MaxUint64;
// callers must treat that sentinel as "exponent too large to represent",
// not as a computed value. Adding One to a non-saturated result gives
// 2^(x/2^30).
//
// Splitting x = 2^30*i + d with d in [0,2^30):
//
//	y = 2^(30+i) * exp2(d/2^30) - 2^30
//	  = (2^64 * exp2m1(d/2^30)) / 2^(34-i) + 2^(30+i) - 2^30
//
// so the fractional kernel approximates 2^64 * exp2m1(d/2^30) and the
// integer part only selects the final shift. For integer x/2^30 the
// result is exact at every order, and the output is monotonically
// non-decreasing in x.
func Exp2m1(x uint64) uint64 {
	if x > Exp2m1Max {
		return math.MaxUint64
	}
	i := x >> FracBits // in [0,34)
	d := x & fracMask  // in [0,2^30)

	y := exp2m1Frac(d) // ~ 2^64 * exp2m1(d/2^30)

	// (y + 2^(s-1)) >> s divides with grade school rounding (nearest,
	// ties away from zero). The add cannot overflow: y <= 2^64 - 2^34
	// here and the bias is at most 2^33.
	s := uint(IntBits) - uint(i) // in [1,34], so the shifts below are in range
	return ((y + uint64(1)<<(s-1)) >> s) + uint64(1)<<(64-s) - One
}
