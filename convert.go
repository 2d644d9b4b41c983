// Copyright 2026 the fxp authors. All rights reserved.

package fxp

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	errRange = fmt.Errorf("value out of range")

	// raw/2^30 == raw*5^30 * 10^-30, so every fixed-point value has an
	// exact 30-digit decimal expansion.
	five30   = new(big.Int).Exp(big.NewInt(5), big.NewInt(FracBits), nil)
	oneScale = decimal.New(int64(One), 0)
)

// Float64 returns x/2^30 as a float64. Values wider than 53 bits lose
// precision; the conversion itself is still deterministic. Intended for
// display and interop, not for feeding back into the evaluators.
func Float64(x uint64) float64 {
	return float64(x) / float64(One)
}

// FromFloat64 converts a non-negative float to the nearest 34u.30 value,
// rounding ties away from zero.
// Returns an error for negative values, infinities and not-a-numbers, and
// for values too large for IntBits integer bits.
func FromFloat64(f float64) (uint64, error) {
	if f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("bad float number")
	}
	scaled := f * float64(One)
	if scaled >= 1<<(IntBits+FracBits) {
		return 0, errRange
	}
	return uint64(math.Round(scaled)), nil
}

// Decimal returns the exact decimal value of x/2^30.
func Decimal(x uint64) decimal.Decimal {
	m := new(big.Int).SetUint64(x)
	return decimal.NewFromBigInt(m.Mul(m, five30), -FracBits)
}

// FromDecimal converts a non-negative decimal to the nearest 34u.30
// value, rounding ties away from zero. Returns an error for negative
// inputs and for values too large for IntBits integer bits.
func FromDecimal(d decimal.Decimal) (uint64, error) {
	if d.Sign() < 0 {
		return 0, errRange
	}
	// Round(0) rescales to exponent 0, so the coefficient is the
	// rounded integer itself.
	m := d.Mul(oneScale).Round(0).Coefficient()
	if !m.IsUint64() {
		return 0, errRange
	}
	return m.Uint64(), nil
}

// String renders x/2^30 as an exact decimal string.
func String(x uint64) string {
	return Decimal(x).String()
}
