package bigfft

import (
	"math/bits"

	"github.com/bigfft-go/bigfft/internal/fft"
)

// Compile-time dispatch tunables. ToomCookThreshold and FFTThreshold are
// per-operand bit lengths (see useFFT): below ToomCookThreshold on either
// operand schoolbook wins, between the two thresholds Toom-Cook-3 wins, and
// once both operands clear ToomCookThreshold with at least one over
// FFTThreshold the right-angle convolution multiplier takes over.
const (
	ToomCookThreshold = 1920
	FFTThreshold      = 27200
	// RecursionThreshold bounds how small a ParseDigits sub-string is
	// allowed to get before the recursive split stops and a scalar
	// base-case parse runs instead.
	RecursionThreshold = 19
)

// Multiply returns a*b, dispatching to schoolbook, Toom-Cook-3, or the FFT
// engine by operand size (see useFFT). The only failure mode is
// ErrAllocationFailure, from an FFT-tier packing step that would need more
// limbs than the addressable index space allows.
func Multiply(a, b *Int) (*Int, error) {
	return mulDispatch(a, b)
}

// MultiplyFFT forces the right-angle FFT convolution multiplier
// regardless of operand size, exposed for cross-checking and benchmarking.
func MultiplyFFT(a, b *Int) (*Int, error) {
	if a.sign == 0 || b.sign == 0 {
		return &Int{}, nil
	}
	return mulFFT(a, b, false)
}

// Square returns x*x. For operands large enough to use the FFT tier this
// transforms x once and uses a pointwise square instead of a pointwise
// multiply, saving one forward transform relative to Multiply(x, x).
func Square(x *Int) (*Int, error) {
	if x.sign == 0 {
		return &Int{}, nil
	}
	l := x.BitLen()
	if !useFFT(l, l) {
		return mulDispatch(x, x)
	}
	return mulFFT(x, x, true)
}

// useFFT implements the spec's exact dispatch rule (C5 §4.1): both operands
// must individually clear ToomCookThreshold, and at least one must clear
// FFTThreshold, before the FFT tier is chosen. This is deliberately not a
// combined bit-length comparison: with the other operand between the two
// thresholds, an operand exactly at FFTThreshold bits routes to Toom-Cook
// and one bit above routes to FFT.
func useFFT(la, lb int) bool {
	return la > ToomCookThreshold && lb > ToomCookThreshold && (la > FFTThreshold || lb > FFTThreshold)
}

func mulDispatch(a, b *Int) (*Int, error) {
	if a.sign == 0 || b.sign == 0 {
		return &Int{}, nil
	}
	la, lb := a.BitLen(), b.BitLen()
	switch {
	case useFFT(la, lb):
		return mulFFT(a, b, false)
	case la > ToomCookThreshold && lb > ToomCookThreshold:
		return mulToomCook3(a, b)
	default:
		return mulSchoolbookInt(a, b), nil
	}
}

// bitsPerPoint returns how many bits of the operand to pack into each FFT
// point for an operand bit length of bitLen (the larger of the two
// operands' bit lengths, per spec.md §4.5 step 1), following the Percival
// error-bound table: fewer bits per point as the transform grows, so
// accumulated rounding error from the longer transform still clears the
// half-ulp rounding threshold at unpack time.
func bitsPerPoint(bitLen int) int {
	switch {
	case bitLen <= 19<<9:
		return 19
	case bitLen <= 18<<10:
		return 18
	case bitLen <= 17<<12:
		return 17
	case bitLen <= 16<<14:
		return 16
	case bitLen <= 15<<16:
		return 15
	case bitLen <= 14<<18:
		return 14
	case bitLen <= 13<<20:
		return 13
	case bitLen <= 12<<21:
		return 12
	case bitLen <= 11<<23:
		return 11
	case bitLen <= 10<<25:
		return 10
	case bitLen <= 9<<27:
		return 9
	default:
		return 8
	}
}

// chooseFFTLen picks the FFT vector length for an operand bit length and
// a bits-per-point value: a power of two, or 3/4 of it (a 3*2^k
// mixed-radix length) when that still covers the needed point count,
// whichever is smaller.
func chooseFFTLen(bitLen, bitsPerPt int) (length int, mixed bool) {
	need := neededPoints(bitLen, bitsPerPt)
	l2 := nextPow2(need)
	l3 := (l2 / 4) * 3
	if l3 >= need {
		return l3, true
	}
	return l2, false
}

// neededPoints is the point count chooseFFTLen's table sizes against: one
// `bitsPerPt`-wide point per chunk of the larger operand's packed bit
// stream, plus one reserved for the final carry.
func neededPoints(bitLen, bitsPerPt int) int {
	return ceilDiv(bitLen, bitsPerPt) + 1
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// mulFFT multiplies (or, when square is true, squares) the magnitudes of a
// and b using the right-angle convolution multiplier: pack each operand
// into a weighted FFT vector sized to hold a*b without wraparound,
// transform, combine pointwise, invert, unwind the weighting, and unpack
// the carry-propagated digit stream back into limbs.
func mulFFT(a, b *Int, square bool) (*Int, error) {
	bitLen := a.BitLen()
	if b.BitLen() > bitLen {
		bitLen = b.BitLen()
	}
	bitsPt := bitsPerPoint(bitLen)
	length, mixed := chooseFFTLen(bitLen, bitsPt)
	fftLen := neededPoints(bitLen, bitsPt)

	// The right-angle weight's half-period and the carry-unpack stride in
	// fromFFTVector must both equal the actual transform size (length),
	// not the smaller data-point count (fftLen) the operand was packed
	// into — the cyclic convolution the FFT computes wraps at modulus
	// length, and the right-angle identity only holds when the weighting
	// wraps at that same modulus.
	va := toFFTVector(a.limbs, fftLen, length, bitsPt)
	applyWeights(va, length)

	var fa, fb []complex128
	if mixed {
		fa = fft.FFTMixed(va)
	} else {
		fa = fft.FFTRadix2(va)
	}

	if square {
		fft.SquarePointwise(fa)
	} else {
		vb := toFFTVector(b.limbs, fftLen, length, bitsPt)
		applyWeights(vb, length)
		if mixed {
			fb = fft.FFTMixed(vb)
		} else {
			fb = fft.FFTRadix2(vb)
		}
		fft.MulPointwise(fa, fb)
	}

	var inv []complex128
	if mixed {
		inv = fft.IFFTMixed(fa)
	} else {
		inv = fft.IFFTRadix2(fa)
	}
	unapplyWeights(inv, length)

	limbs, err := fromFFTVector(inv, length, bitsPt)
	if err != nil {
		return nil, err
	}

	sign := a.sign * b.sign
	if square {
		sign = 1
	}
	return normalize(sign, limbs), nil
}
