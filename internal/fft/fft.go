package fft

import (
	"math"
	"math/bits"
	"sync"
)

// FFTRadix2 computes the forward DFT of a, whose length must be a power of
// two, returning a new slice in natural (unpermuted) order.
//
// It recurses on the right-angle radix-4 decimation-in-frequency split: at
// each level the four strided quarters of the input are combined with the
// documented butterfly (sums, i-rotations, and twiddle multiplies sourced
// from the R2 cache) into four length-n/4 streams, each of which is itself
// transformed and interleaved into the final output at stride 4. The
// recursion bottoms out at length 1 and 2, so natural-order output falls
// out of the index arithmetic directly — no separate bit-reversal pass is
// needed.
func FFTRadix2(a []complex128) []complex128 {
	n := len(a)
	switch n {
	case 0:
		return nil
	case 1:
		out := make([]complex128, 1)
		out[0] = a[0]
		return out
	case 2:
		return []complex128{a[0] + a[1], a[0] - a[1]}
	}

	m := n / 4
	c0 := make([]complex128, m)
	c1 := make([]complex128, m)
	c2 := make([]complex128, m)
	c3 := make([]complex128, m)

	roots := RootsFor(m) // roots[j] = e^{+i*pi*j/(2m)}
	for j := 0; j < m; j++ {
		a0 := a[j]
		a1 := a[j+m]
		a2 := a[j+2*m]
		a3 := a[j+3*m]

		s02 := a0 + a2
		d02 := a0 - a2
		s13 := a1 + a3
		d13 := a1 - a3

		w1 := conj(roots[j]) // e^{-i*pi*j/(2m)} = e^{-2*pi*i*j/(4m)}
		w2 := w1 * w1
		w3 := w2 * w1

		c0[j] = s02 + s13
		c1[j] = subTimesI(d02, d13) * w1
		c2[j] = (s02 - s13) * w2
		c3[j] = addTimesI(d02, d13) * w3
	}

	r0 := FFTRadix2(c0)
	r1 := FFTRadix2(c1)
	r2 := FFTRadix2(c2)
	r3 := FFTRadix2(c3)

	out := make([]complex128, n)
	for k := 0; k < m; k++ {
		out[4*k] = r0[k]
		out[4*k+1] = r1[k]
		out[4*k+2] = r2[k]
		out[4*k+3] = r3[k]
	}
	return out
}

// IFFTRadix2 computes the inverse DFT of a (length a power of two) via the
// conjugate-symmetry identity IDFT(x) = conj(DFT(conj(x))) / n, the same
// trick the teacher's IMDCT uses to get an inverse transform for free from
// a single forward routine.
func IFFTRadix2(a []complex128) []complex128 {
	n := len(a)
	if n == 0 {
		return nil
	}
	tmp := make([]complex128, n)
	for i, v := range a {
		tmp[i] = conj(v)
	}
	r := FFTRadix2(tmp)
	logN := bits.Len(uint(n)) - 1
	out := make([]complex128, n)
	for i, v := range r {
		out[i] = scaleByPow2(conj(v), -logN)
	}
	return out
}

var (
	mixedTwMu    sync.Mutex
	mixedTwCache = map[int][]complex128{}
)

// mixedTwiddles returns tw[j] = e^{-2*pi*i*j/(3m)} for j = 0..m-1, used to
// combine the three length-m radix-2 sub-transforms in FFTMixed.
func mixedTwiddles(m int) []complex128 {
	mixedTwMu.Lock()
	defer mixedTwMu.Unlock()
	if tw, ok := mixedTwCache[m]; ok {
		return tw
	}
	tw := make([]complex128, m)
	for j := 0; j < m; j++ {
		angle := -2 * math.Pi * float64(j) / float64(3*m)
		tw[j] = complex(math.Cos(angle), math.Sin(angle))
	}
	mixedTwCache[m] = tw
	return tw
}

// fft3 computes the forward length-3 DFT of (c0, c1, c2) using the standard
// closed-form radix-3 butterfly (omega_imag = -sqrt(3)/2).
func fft3(c0, c1, c2 complex128) (complex128, complex128, complex128) {
	const a = -0.5
	const b = 0.8660254037844386 // sqrt(3)/2

	s := c1 + c2
	d := c1 - c2
	mid := c0 + complex(a, 0)*s
	off := complex(-b*imag(d), b*real(d)) // i*b*d

	x0 := c0 + s
	x1 := mid - off
	x2 := mid + off
	return x0, x1, x2
}

// FFTMixed computes the forward DFT of a, whose length n must be 3*2^k,
// by de-interleaving into three length-n/3 streams, transforming each with
// FFTRadix2, and recombining with a length-3 DFT per the classic composite
// Cooley-Tukey decomposition.
func FFTMixed(a []complex128) []complex128 {
	n := len(a)
	m := n / 3

	x0 := make([]complex128, m)
	x1 := make([]complex128, m)
	x2 := make([]complex128, m)
	for i := 0; i < m; i++ {
		x0[i] = a[3*i]
		x1[i] = a[3*i+1]
		x2[i] = a[3*i+2]
	}

	y0 := FFTRadix2(x0)
	y1 := FFTRadix2(x1)
	y2 := FFTRadix2(x2)

	tw := mixedTwiddles(m)
	out := make([]complex128, n)
	for j := 0; j < m; j++ {
		A0 := y0[j]
		A1 := y1[j] * tw[j]
		A2 := y2[j] * tw[j] * tw[j]
		x0v, x1v, x2v := fft3(A0, A1, A2)
		out[j] = x0v
		out[j+m] = x1v
		out[j+2*m] = x2v
	}
	return out
}

// IFFTMixed computes the inverse DFT of a (length 3*2^k) via the same
// conjugate-symmetry identity used by IFFTRadix2.
func IFFTMixed(a []complex128) []complex128 {
	n := len(a)
	tmp := make([]complex128, n)
	for i, v := range a {
		tmp[i] = conj(v)
	}
	r := FFTMixed(tmp)
	scale := 1.0 / float64(n)
	out := make([]complex128, n)
	for i, v := range r {
		out[i] = conj(v) * complex(scale, 0)
	}
	return out
}
