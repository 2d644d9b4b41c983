//go:build fxp_order1
// +build fxp_order1

package fxp

// Order is the polynomial order selected at build time (-tags fxp_orderN).
const Order = 1

// Measured accuracy of the order-1 kernels over the fractional domain.
const (
	exp2m1MaxRelErr = 6.1e-02 // 4.0 bits
	rexp2MaxRelErr  = 6.1e-02 // 4.0 bits
)

// Order 1 is piecewise linear: no table, just a rescale of d.

func exp2m1Frac(d uint64) uint64 {
	return d << 34
}

func rexp2Frac(d uint64) uint64 {
	return 0x040000000 - (d >> 1)
}
