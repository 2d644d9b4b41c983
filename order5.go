//go:build !fxp_order1 && !fxp_order2 && !fxp_order3 && !fxp_order4 && !fxp_order6 && !fxp_order7
// +build !fxp_order1,!fxp_order2,!fxp_order3,!fxp_order4,!fxp_order6,!fxp_order7

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
// Order 5 is the default.
const Order = 5

// Measured accuracy of the order-5 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 1.4e-07 // 22.8 bits
	rexp2MaxRelErr  = 1.4e-07 // 22.7 bits
)

// The coefficients were fit offline to minimize RMS error over [0,1)
// while matching the endpoints exactly. For exp2m1Frac they are scaled so
// every Horner intermediate stays below 2^34 and thus cannot overflow
// when multiplied by d; the output scale is 2^64. For rexp2Frac the
// leading coefficient is scaled to the 2^30 output range and the rest
// into [2^33,2^34). Opaque generated data, not to be hand-edited.

func exp2m1Frac(d uint64) uint64 {
	y := uint64(0x3e1a2fa1b)
	y = 0x24a7ddfee + ((y * d) >> 33)
	y = 0x1c994ed30 + ((y * d) >> 33)
	y = 0x1ebd13698 + ((y * d) >> 32)
	y = 0x2c5c9fe11 + ((y * d) >> 31)
	return y * d
}

func rexp2Frac(d uint64) uint64 {
	y := uint64(0x3e1a2f97e)
	y = 0x25bc1de09 - ((y * d) >> 34)
	y = 0x38a155436 - ((y * d) >> 32)
	y = 0x3d7c8e03d - ((y * d) >> 32)
	y = 0x2c5c78186 - ((y * d) >> 32)
	return 0x040000000 - ((y * d) >> 34)
}
