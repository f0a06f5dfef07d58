package bigfft

import (
	"fmt"
	"math/bits"
	"strings"
)

// Int is an immutable arbitrary-precision signed integer: a sign in
// {-1, 0, +1} paired with an ordered sequence of 32-bit limbs. limbs is
// stored little-endian (limbs[0] is the least significant word) with no
// leading (most significant) zero limb, except for the canonical zero
// value, which has sign 0 and an empty limbs slice.
//
// Values are never mutated in place; every operation returns a new Int.
type Int struct {
	sign  int8
	limbs []uint32 // little-endian, no high zero limb unless zero
}

// Zero is the canonical zero value.
var Zero = &Int{}

// normalize strips high zero limbs from a little-endian slice and forces
// sign to 0 when the magnitude is empty.
func normalize(sign int8, limbs []uint32) *Int {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	limbs = limbs[:n]
	if n == 0 {
		return &Int{}
	}
	return &Int{sign: sign, limbs: limbs}
}

// NewFromSignAndMagnitude builds an Int from a sign and a big-endian limb
// slice (most significant word first), mirroring the from_signum_and_mag
// contract. A sign of 0, or an all-zero magnitude, always yields the
// canonical zero regardless of the other argument.
func NewFromSignAndMagnitude(sign int8, magBE []uint32) *Int {
	if sign == 0 {
		return &Int{}
	}
	le := make([]uint32, len(magBE))
	for i, w := range magBE {
		le[len(magBE)-1-i] = w
	}
	if sign > 0 {
		sign = 1
	} else {
		sign = -1
	}
	return normalize(sign, le)
}

// NewFromUint64 builds an Int from a non-negative machine integer.
func NewFromUint64(v uint64) *Int {
	if v == 0 {
		return &Int{}
	}
	limbs := []uint32{uint32(v), uint32(v >> 32)}
	return normalize(1, limbs)
}

// Sign returns -1, 0, or +1.
func (x *Int) Sign() int {
	return int(x.sign)
}

// BitLen returns the number of bits required to represent |x|, with
// BitLen(0) == 0.
func (x *Int) BitLen() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}
	return (n-1)*32 + bits.Len32(x.limbs[n-1])
}

// Limbs returns a big-endian copy of |x|'s limb vector (most significant
// word first), the public mirror of get_magnitude. The zero value returns
// an empty slice.
func (x *Int) Limbs() []uint32 {
	out := make([]uint32, len(x.limbs))
	for i, w := range x.limbs {
		out[len(x.limbs)-1-i] = w
	}
	return out
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return x
	}
	return &Int{sign: -x.sign, limbs: x.limbs}
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return &Int{sign: 1, limbs: x.limbs}
}

// Equal reports whether x and y have the same sign and the same limb
// vector; used pervasively by the testable-properties suite.
func (x *Int) Equal(y *Int) bool {
	if x.sign != y.sign {
		return false
	}
	if len(x.limbs) != len(y.limbs) {
		return false
	}
	for i := range x.limbs {
		if x.limbs[i] != y.limbs[i] {
			return false
		}
	}
	return true
}

// String renders a hex dump of the signed magnitude ("0", "0x...",
// "-0x..."), not a decimal string — decimal formatting is out of scope.
func (x *Int) String() string {
	if x.sign == 0 {
		return "0"
	}
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	b.WriteString("0x")
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if i == len(x.limbs)-1 {
			fmt.Fprintf(&b, "%x", x.limbs[i])
		} else {
			fmt.Fprintf(&b, "%08x", x.limbs[i])
		}
	}
	return b.String()
}

// cmpMag compares two little-endian magnitudes (no leading zero limbs
// assumed), returning -1, 0, or +1.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMag returns a+b for unsigned little-endian magnitudes.
func addMag(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := range a {
		var bi uint64
		if i < len(b) {
			bi = uint64(b[i])
		}
		sum := uint64(a[i]) + bi + carry
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	out[len(a)] = uint32(carry)
	return out
}

// subMag returns a-b for unsigned little-endian magnitudes, requiring a>=b.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint64
	for i := range a {
		var bi uint64
		if i < len(b) {
			bi = uint64(b[i])
		}
		d := uint64(a[i]) - bi - borrow
		out[i] = uint32(d)
		if uint64(a[i]) < bi+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return out
}

// shiftLeftMag returns a << n, n may be any non-negative amount.
func shiftLeftMag(a []uint32, n int) []uint32 {
	if len(a) == 0 || n == 0 {
		return append([]uint32(nil), a...)
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	out := make([]uint32, len(a)+wordShift+1)
	for i, w := range a {
		lo := uint64(w) << bitShift
		out[i+wordShift] |= uint32(lo)
		out[i+wordShift+1] |= uint32(lo >> 32)
	}
	return out
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	if x.sign == 0 {
		return y
	}
	if y.sign == 0 {
		return x
	}
	if x.sign == y.sign {
		return normalize(x.sign, addMag(x.limbs, y.limbs))
	}
	switch cmpMag(x.limbs, y.limbs) {
	case 0:
		return &Int{}
	case 1:
		return normalize(x.sign, subMag(x.limbs, y.limbs))
	default:
		return normalize(y.sign, subMag(y.limbs, x.limbs))
	}
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}
