//go:build fxp_order4
// +build fxp_order4

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
const Order = 4

// Measured accuracy of the order-4 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 5.0e-06 // 17.6 bits
	rexp2MaxRelErr  = 5.0e-06 // 17.6 bits
)

func exp2m1Frac(d uint64) uint64 {
	y := uint64(0x38100ce15)
	y = 0x1a7f168b9 + ((y * d) >> 33)
	y = 0x1eeba70d4 + ((y * d) >> 32)
	y = 0x2c5a09747 + ((y * d) >> 31)
	return y * d
}

func rexp2Frac(d uint64) uint64 {
	y := uint64(0x38100ce16)
	y = 0x36871cfc4 - ((y * d) >> 33)
	y = 0x3d4dfa602 - ((y * d) >> 32)
	y = 0x2c5b2ce21 - ((y * d) >> 32)
	return 0x040000000 - ((y * d) >> 34)
}
