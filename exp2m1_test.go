// Copyright 2026 the fxp authors. All rights reserved.

package fxp

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExp2m1(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y uint64
	}{
		{0, 0},
		{1 << FracBits, 1073741824},
		{2 << FracBits, 3 << FracBits},
		{5 << FracBits, 1<<35 - 1<<FracBits},
		{33 << FracBits, 1<<63 - One},
		{Exp2m1Max + 1, math.MaxUint64},
		{IntBits << FracBits, math.MaxUint64},
		{math.MaxUint64, math.MaxUint64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.y, Exp2m1(test.x))
		})
	}
}

// Integer inputs hit the endpoint matches of the fit, so 2^k - 1 is exact
// at every order.
func TestExp2m1Exact(t *testing.T) {
	a := assert.New(t)
	for k := uint(0); k < IntBits; k++ {
		t.Run(fmt.Sprintf("%d", k), func(t *testing.T) {
			want := uint64(1)<<(FracBits+k) - One
			a.Equal(want, Exp2m1(uint64(k)<<FracBits))
		})
	}
}

func TestExp2m1Saturation(t *testing.T) {
	a := assert.New(t)
	a.NotEqual(uint64(math.MaxUint64), Exp2m1(Exp2m1Max))
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 10000; n++ {
		x := Exp2m1Max + 1 + r.Uint64()%(math.MaxUint64-Exp2m1Max)
		a.Equal(uint64(math.MaxUint64), Exp2m1(x))
	}
}

func TestExp2m1Monotonic(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for n := 0; n < 100000; n++ {
		x := r.Uint64() % Exp2m1Max
		y0, y1 := Exp2m1(x), Exp2m1(x+1)
		a.True(y0 <= y1, "x %d: %d > %d", x, y0, y1)
	}
	// crossings of the integer-part boundary
	for k := uint64(1); k < IntBits; k++ {
		x := k << FracBits
		a.True(Exp2m1(x-1) <= Exp2m1(x), "boundary %d", k)
	}
}

// exp2m1Tolerance is the allowed deviation of Exp2m1 from the reference,
// in raw units, at a reference output ref. The documented per-order
// figure is the error relative to the 2^x value being approximated (that
// is ref+One, so near-zero outputs carry the full absolute error of the
// fit), and it is quoted to two significant figures, hence the slack
// factor. One raw unit covers the final output rounding.
func exp2m1Tolerance(ref float64) float64 {
	return 1.05*exp2m1MaxRelErr*(ref+float64(One)) + 1
}

func TestExp2m1Accuracy(t *testing.T) {
	a := assert.New(t)
	const steps = 1 << 16
	for n := 0; n < steps; n++ {
		d := uint64(n) << (FracBits - 16)
		ref := (math.Exp2(float64(d)/float64(One)) - 1) * float64(One)
		a.InDelta(ref, float64(Exp2m1(d)), exp2m1Tolerance(ref), "d %d", d)
	}
}

func TestExp2m1AccuracyWide(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(3))
	for n := 0; n < 100000; n++ {
		x := r.Uint64() % (Exp2m1Max + 1)
		ref := (math.Exp2(Float64(x)) - 1) * float64(One)
		a.InDelta(ref, float64(Exp2m1(x)), exp2m1Tolerance(ref), "x %d", x)
	}
}

// Near d = 0 the true 2^d - 1 is tiny while the fit error is not, so the
// error budget there is the absolute one of the exp2 scale, about
// maxRelErr*One raw units; a bound read as relative to exp2m1 itself
// would reject the tables.
func TestExp2m1AccuracySmall(t *testing.T) {
	a := assert.New(t)
	for d := uint64(1); d < 1<<20; d = d*3 + 1 {
		ref := (math.Exp2(float64(d)/float64(One)) - 1) * float64(One)
		got := float64(Exp2m1(d))
		a.InDelta(ref, got, exp2m1Tolerance(ref), "d %d", d)
	}
}

func BenchmarkExp2m1(b *testing.B) {
	x := uint64(5)<<FracBits + 12345

	for i := 0; i < b.N; i++ {
		Exp2m1(x)
	}
}

func BenchmarkExp2Float64(b *testing.B) {
	x := Float64(uint64(5)<<FracBits + 12345)

	for i := 0; i < b.N; i++ {
		math.Exp2(x)
	}
}
