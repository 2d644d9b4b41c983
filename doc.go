// Copyright 2026 the fxp authors. All rights reserved.

// Package fxp implements deterministic base-2 exponential primitives over
// an unsigned binary fixed-point representation.
//
// Values are uint64 magnitudes interpreted as raw/2^30: 30 fractional bits
// with up to 34 meaningful integer bits (34u.30 format). Exp2m1 and Rexp2
// use only fixed-width integer add, multiply and shift, so a given input
// produces the bit-identical output on every architecture. Consumers that
// need all nodes of a distributed system to agree on every bit of an
// exponential decay weight cannot get that from native floating point.
//
// The polynomial order (1 to 7) trades evaluation cost for accuracy and is
// fixed at build time: build with -tags fxp_orderN to select order N. The
// default is order 5, whose worst case accuracy is comparable to IEEE
// single precision. Order 1 is a nearly free piecewise-linear
// approximation accurate to a few percent; order 7 reaches about 30 bits.
// The per-order coefficient tables were generated offline by an RMS-error
// fit over the fractional domain and are consumed here as opaque constant
// data.
package fxp

const (
	// FracBits is the number of fractional bits in the fixed-point format.
	FracBits = 30
	// IntBits is the number of meaningful integer bits in an input.
	IntBits = 34
	// One is the fixed-point representation of 1.0.
	One = uint64(1) << FracBits

	fracMask = One - 1
)
