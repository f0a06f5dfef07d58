package bigfft

import (
	"math"

	"github.com/bigfft-go/bigfft/internal/fft"
)

// toFFTVector packs mag's bits, least-significant first, into the real
// part of a length-`length` FFT vector, `bits` bits per point for the
// first `fftLen` points (the remaining length-fftLen points stay zero),
// then balances the unsigned digits into (-base/2, base/2] so the
// per-point rounding error the FFT introduces stays within the error
// bound that picked `bits` in the first place.
func toFFTVector(mag []uint32, fftLen, length, bits int) []complex128 {
	vec := make([]complex128, length)
	bitPos := 0
	for i := 0; i < fftLen; i++ {
		v := extractBits(mag, bitPos, bits)
		vec[i] = complex(float64(v), 0)
		bitPos += bits
	}
	balance(vec, fftLen, bits)
	return vec
}

// extractBits reads nbits bits starting at bitPos from the little-endian
// bit stream formed by words[0], words[1], ... (bit 0 of words[0] first).
// Positions past the end of words read as zero.
func extractBits(words []uint32, bitPos, nbits int) int64 {
	var val int64
	for b := 0; b < nbits; b++ {
		pos := bitPos + b
		wordIdx := pos / 32
		if wordIdx >= len(words) {
			break
		}
		bitIdx := uint(pos % 32)
		bit := int64((words[wordIdx] >> bitIdx) & 1)
		val |= bit << uint(b)
	}
	return val
}

// balance rewrites the first fftLen unsigned digits of vec in place into
// the balanced range (-base/2, base/2], propagating the overflow as a
// carry into the next point. The last point absorbs any residual carry
// without further balancing — it is the slot chooseFFTLen reserved for
// exactly this.
func balance(vec []complex128, fftLen, bits int) {
	if fftLen == 0 {
		return
	}
	base := int64(1) << uint(bits)
	half := base / 2
	var carry int64
	for i := 0; i < fftLen-1; i++ {
		v := int64(real(vec[i])) + carry
		if v > half {
			v -= base
			carry = 1
		} else {
			carry = 0
		}
		vec[i] = complex(float64(v), 0)
	}
	vec[fftLen-1] = complex(real(vec[fftLen-1])+float64(carry), 0)
}

// applyWeights multiplies each of the length points of vec by the
// right-angle weight e^{i*pi*i/(2*length)}: the packing trick that lets a
// single length-n complex FFT carry a length-2n real linear convolution
// without aliasing. length must be the actual transform size (the cyclic
// modulus the FFT wraps at), not the smaller data-point count fftLen —
// the weight half-period and the wrap modulus must match, or the single
// wrap at index `length` contributes a fractional (non-i) rotation and
// contaminates the low/high split fromFFTVector depends on.
func applyWeights(vec []complex128, length int) {
	w := fft.RootsFor(length)
	for i := 0; i < length && i < len(vec); i++ {
		vec[i] *= w[i]
	}
}

// unapplyWeights undoes applyWeights by multiplying by the conjugate
// weight, run after the inverse transform. length must be the same
// transform size passed to applyWeights.
func unapplyWeights(vec []complex128, length int) {
	w := fft.RootsFor(length)
	for i := 0; i < length && i < len(vec); i++ {
		vec[i] *= complex(real(w[i]), -imag(w[i]))
	}
}

// fromFFTVector reads the low half (real parts) and high half (imaginary
// parts) of the inverse-transformed, unweighted vector as one sequence of
// 2*length signed base-2^bits digits, carry-propagates the sequence left
// to right, and repacks the result into a little-endian limb vector.
// length must be the actual transform size the vector was weighted and
// transformed at (matching applyWeights/unapplyWeights), not the smaller
// data-point count: coefficients beyond the real data round to zero and
// normalize strips the resulting high zero limbs.
func fromFFTVector(vec []complex128, length, bits int) ([]uint32, error) {
	if length <= 0 {
		return nil, nil
	}
	if length > maxSafeFFTLen(bits) {
		return nil, ErrAllocationFailure
	}

	base := int64(1) << uint(bits)
	mask := base - 1
	coeffs := make([]int64, 0, 2*length+4)
	var carry int64
	for i := 0; i < length; i++ {
		v := roundToInt(real(vec[i])) + carry
		coeffs = append(coeffs, v&mask)
		carry = v >> uint(bits)
	}
	for i := 0; i < length; i++ {
		v := roundToInt(imag(vec[i])) + carry
		coeffs = append(coeffs, v&mask)
		carry = v >> uint(bits)
	}
	for carry != 0 {
		coeffs = append(coeffs, carry&mask)
		carry >>= uint(bits)
	}

	return packBits(coeffs, bits), nil
}

func roundToInt(x float64) int64 {
	return int64(math.Round(x))
}

// maxSafeFFTLen bounds the transform length so the packed output limb
// slice — about 2*length*bits/32 words — stays within the addressable
// 32-bit slice-index space even as length approaches 2^31, per spec.md
// §4.5b ("Cap the allocated limb count to avoid integer overflow when
// fftLen is near 2^31"). spec.md §4.6's largest input (1,292,782,622
// decimal digits) drives a top-level combine whose transform length
// reaches 2^28 at bits=8; this bound must clear that with room to spare,
// not the much tighter 2^25 an earlier, arbitrary 2^28/bits formula gave.
func maxSafeFFTLen(bits int) int {
	const maxPackedBits = 1 << 32
	return maxPackedBits / bits
}

// packBits is the inverse of extractBits: it streams coeffs, bits wide
// each, little-endian into a flat limb vector.
func packBits(coeffs []int64, bits int) []uint32 {
	totalBits := len(coeffs) * bits
	nwords := (totalBits + 31) / 32
	words := make([]uint32, nwords)
	bitPos := 0
	for _, c := range coeffs {
		for b := 0; b < bits; b++ {
			if (c>>uint(b))&1 != 0 {
				pos := bitPos + b
				words[pos/32] |= 1 << uint(pos%32)
			}
		}
		bitPos += bits
	}
	return words
}
