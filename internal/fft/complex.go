package fft

import "math"

// conj returns the complex conjugate of z.
func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// mulConj returns z * conj(w).
func mulConj(z, w complex128) complex128 {
	zr, zi := real(z), imag(z)
	wr, wi := real(w), imag(w)
	return complex(zr*wr+zi*wi, zi*wr-zr*wi)
}

// mulByI returns z * i.
func mulByI(z complex128) complex128 {
	return complex(-imag(z), real(z))
}

// mulConjI returns z * conj(w) * i. Part of the kernel's documented
// operation set (spec.md §4.2's "·i variants"); this package's chosen
// radix-4/mixed-radix decomposition (fft.go) doesn't call it directly —
// it uses the textbook twiddle set instead of the triple-multiplication
// quirk this primitive exists to support — but it stays first-class and
// is exercised directly by complex_test.go, since a different mixed-radix
// decomposition would need it.
func mulConjI(z, w complex128) complex128 {
	return mulByI(mulConj(z, w))
}

// mulByIAnd returns z * w * i. Same status as mulConjI: required by
// spec.md §4.2's operation set and covered by complex_test.go, but not
// called from fft.go's hot loop under the textbook twiddle decomposition
// this package uses (see DESIGN.md's C4 entry).
func mulByIAnd(z, w complex128) complex128 {
	return mulByI(z * w)
}

// addTimesI returns z + w*i.
func addTimesI(z, w complex128) complex128 {
	return complex(real(z)-imag(w), imag(z)+real(w))
}

// subTimesI returns z - w*i.
func subTimesI(z, w complex128) complex128 {
	return complex(real(z)+imag(w), imag(z)-real(w))
}

// square returns z*z.
func square(z complex128) complex128 {
	re, im := real(z), imag(z)
	return complex(re*re-im*im, 2*re*im)
}

// scaleByPow2 multiplies z by 2^n exactly, n may be negative.
func scaleByPow2(z complex128, n int) complex128 {
	return complex(math.Ldexp(real(z), n), math.Ldexp(imag(z), n))
}

// AddVec adds b into a in place: a[i] += b[i].
func AddVec(a, b []complex128) {
	for i := range a {
		a[i] += b[i]
	}
}

// SubVec subtracts b from a in place: a[i] -= b[i].
func SubVec(a, b []complex128) {
	for i := range a {
		a[i] -= b[i]
	}
}

// MulPointwise multiplies a by b elementwise in place: a[i] *= b[i].
func MulPointwise(a, b []complex128) {
	for i := range a {
		a[i] *= b[i]
	}
}

// SquarePointwise squares every element of a in place.
func SquarePointwise(a []complex128) {
	for i := range a {
		a[i] = square(a[i])
	}
}

// ScaleVec multiplies every element of a by 2^n in place.
func ScaleVec(a []complex128, n int) {
	for i := range a {
		a[i] = scaleByPow2(a[i], n)
	}
}

// CopyTo copies src into dst, which must be at least len(src) long.
func CopyTo(dst, src []complex128) {
	copy(dst, src)
}
