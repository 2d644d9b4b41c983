//go:build fxp_order7
// +build fxp_order7

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
const Order = 7

// Measured accuracy of the order-7 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 5.4e-10 // 30.8 bits
	rexp2MaxRelErr  = 1.9e-09 // 29.0 bits
)

func exp2m1Frac(d uint64) uint64 {
	y := uint64(0x2d6e5bd1d)
	y = 0x257992e8b + ((y * d) >> 33)
	y = 0x2c02265a3 + ((y * d) >> 33)
	y = 0x27607eb13 + ((y * d) >> 33)
	y = 0x1c6b30b08 + ((y * d) >> 33)
	y = 0x1ebfbcc25 + ((y * d) >> 32)
	y = 0x2c5c8604f + ((y * d) >> 31)
	return y * d
}

func rexp2Frac(d uint64) uint64 {
	y := uint64(0x2d6cd448b)
	y = 0x269cc5254 - ((y * d) >> 34)
	y = 0x2b82bc124 - ((y * d) >> 33)
	y = 0x2762b03ae - ((y * d) >> 33)
	y = 0x38d5e75bc - ((y * d) >> 32)
	y = 0x3d7f7ab76 - ((y * d) >> 32)
	y = 0x2c5c85fa8 - ((y * d) >> 32)
	return 0x040000000 - ((y * d) >> 34)
}
