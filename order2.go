//go:build fxp_order2
// +build fxp_order2

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
const Order = 2

// Measured accuracy of the order-2 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 3.2e-03 // 8.3 bits
	rexp2MaxRelErr  = 3.2e-03 // 8.3 bits
)

func exp2m1Frac(d uint64) uint64 {
	y := uint64(0x2c029d07d)
	y = 0x29feb17c1 + ((y * d) >> 31)
	return y * d
}

func rexp2Frac(d uint64) uint64 {
	y := uint64(0x2c029d07d)
	y = 0x2b00a741f - ((y * d) >> 32)
	return 0x040000000 - ((y * d) >> 34)
}
