// Copyright 2026 the fxp authors. All rights reserved.

package fxp

// Rexp2 returns a 1u.30 fixed-point approximation of 2^(-x/2^30) for a
// non-negative 34u.30 x. The result is always in [0, One]. Once the
// integer part of x exceeds 63 the true value has underflowed past
// representable precision and Rexp2 returns 0; underflow is a defined
// result, never an error.
//
// The fractional kernel approximates 2^30 * exp2(-d/2^30) directly, so
// the integer part only selects a final right shift. For integer x/2^30
// in [0,30] the result is exact at every order, and the output is
// monotonically non-increasing in x. Rounding is close to round nearest
// even for small x and trends toward round toward zero as x grows; the
// drift comes with the polynomial form and is left as is.
func Rexp2(x uint64) uint64 {
	i := x >> FracBits
	y := rexp2Frac(x & fracMask) // ~ 2^30 * exp2(-d/2^30)
	if i > 63 {
		return 0 // y >> i would be out of range
	}
	return y >> i
}
