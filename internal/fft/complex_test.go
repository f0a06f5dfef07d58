package fft

import (
	"math"
	"math/rand/v2"
	"testing"
)

func approxEq(a, b complex128) bool {
	const eps = 1e-9
	return math.Abs(real(a)-real(b)) < eps && math.Abs(imag(a)-imag(b)) < eps
}

func TestComplexKernelIdentities(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 64; i++ {
		z := complex(rng.Float64()*4-2, rng.Float64()*4-2)
		w := complex(rng.Float64()*4-2, rng.Float64()*4-2)

		if got, want := mulConj(z, w), z*conj(w); !approxEq(got, want) {
			t.Fatalf("mulConj: got %v want %v", got, want)
		}
		if got, want := mulConjI(z, w), z*conj(w)*1i; !approxEq(got, want) {
			t.Fatalf("mulConjI: got %v want %v", got, want)
		}
		if got, want := mulByIAnd(z, w), z*w*1i; !approxEq(got, want) {
			t.Fatalf("mulByIAnd: got %v want %v", got, want)
		}
		if got, want := addTimesI(z, w), z+w*1i; !approxEq(got, want) {
			t.Fatalf("addTimesI: got %v want %v", got, want)
		}
		if got, want := subTimesI(z, w), z-w*1i; !approxEq(got, want) {
			t.Fatalf("subTimesI: got %v want %v", got, want)
		}
		if got, want := square(z), z*z; !approxEq(got, want) {
			t.Fatalf("square: got %v want %v", got, want)
		}
		if got, want := scaleByPow2(z, 3), z*complex(8, 0); !approxEq(got, want) {
			t.Fatalf("scaleByPow2(+3): got %v want %v", got, want)
		}
		if got, want := scaleByPow2(z, -2), z*complex(0.25, 0); !approxEq(got, want) {
			t.Fatalf("scaleByPow2(-2): got %v want %v", got, want)
		}
	}
}

func TestVectorOps(t *testing.T) {
	a := []complex128{1 + 1i, 2 - 1i, 0, -3 + 4i}
	b := []complex128{0.5, 1i, 2, -1}

	sum := append([]complex128(nil), a...)
	AddVec(sum, b)
	for i := range sum {
		if want := a[i] + b[i]; !approxEq(sum[i], want) {
			t.Fatalf("AddVec i=%d: got %v want %v", i, sum[i], want)
		}
	}

	diff := append([]complex128(nil), a...)
	SubVec(diff, b)
	for i := range diff {
		if want := a[i] - b[i]; !approxEq(diff[i], want) {
			t.Fatalf("SubVec i=%d: got %v want %v", i, diff[i], want)
		}
	}

	prod := append([]complex128(nil), a...)
	MulPointwise(prod, b)
	for i := range prod {
		if want := a[i] * b[i]; !approxEq(prod[i], want) {
			t.Fatalf("MulPointwise i=%d: got %v want %v", i, prod[i], want)
		}
	}

	sq := append([]complex128(nil), a...)
	SquarePointwise(sq)
	for i := range sq {
		if want := a[i] * a[i]; !approxEq(sq[i], want) {
			t.Fatalf("SquarePointwise i=%d: got %v want %v", i, sq[i], want)
		}
	}
}
