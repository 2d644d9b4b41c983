//go:build fxp_order6
// +build fxp_order6

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
const Order = 6

// Measured accuracy of the order-6 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 4.3e-09 // 27.8 bits
	rexp2MaxRelErr  = 4.0e-09 // 27.9 bits
)

func exp2m1Frac(d uint64) uint64 {
	y := uint64(0x3959e8bc0)
	y = 0x28987867f + ((y * d) >> 33)
	y = 0x27aac1b83 + ((y * d) >> 33)
	y = 0x1c67f6aa0 + ((y * d) >> 33)
	y = 0x1ebfde70a + ((y * d) >> 32)
	y = 0x2c5c8510d + ((y * d) >> 31)
	return y * d
}

func rexp2Frac(d uint64) uint64 {
	y := uint64(0x3959e0dfb)
	y = 0x29cdf1eff - ((y * d) >> 34)
	y = 0x273d8f899 - ((y * d) >> 33)
	y = 0x38d2ad669 - ((y * d) >> 32)
	y = 0x3d7f590ad - ((y * d) >> 32)
	y = 0x2c5c85808 - ((y * d) >> 32)
	return 0x040000000 - ((y * d) >> 34)
}
