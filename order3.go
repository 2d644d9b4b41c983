//go:build fxp_order3
// +build fxp_order3

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
const Order = 3

// Measured accuracy of the order-3 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 1.2e-04 // 13.0 bits
	rexp2MaxRelErr  = 1.2e-04 // 13.0 bits
)

func exp2m1Frac(d uint64) uint64 {
	y := uint64(0x288319c3e)
	y = 0x1cd1735e6 + ((y * d) >> 32)
	y = 0x2c86e3185 + ((y * d) >> 31)
	return y * d
}

func rexp2Frac(d uint64) uint64 {
	y := uint64(0x288319c3e)
	y = 0x3b33c6b15 - ((y * d) >> 32)
	y = 0x2c44c0101 - ((y * d) >> 32)
	return 0x040000000 - ((y * d) >> 34)
}
