// Package bigfft multiplies arbitrary-precision integers built up from
// decimal digit strings, dispatching to schoolbook, Toom-Cook-3, or an
// FFT-based right-angle convolution multiplier depending on operand size.
//
// Int is an immutable signed magnitude backed by a little-endian slice of
// 32-bit limbs. ParseDigits builds an Int from a decimal digit string via
// recursive divide-and-conquer, reusing a memoised powers-of-ten cache so
// the large multiplications it performs land on the same FFT engine used
// by Multiply.
package bigfft
