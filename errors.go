package bigfft

import "errors"

// Sentinel errors returned by the package. Callers should compare with
// errors.Is, since wrapped variants (e.g. "digit at offset N") add context
// with fmt.Errorf's %w verb.
var (
	// ErrInvalidDigit is returned when ParseDigits encounters a byte
	// outside the ASCII '0'-'9' range.
	ErrInvalidDigit = errors.New("bigfft: invalid digit")

	// ErrLengthExceeded is returned when a digit string is longer than
	// MaxDigitLength.
	ErrLengthExceeded = errors.New("bigfft: digit string too long")

	// ErrNumericOverflow reports a bit length or FFT length beyond the
	// addressable index space. No function in this package returns it:
	// the FFT length cap in fromFFTVector reports ErrAllocationFailure.
	ErrNumericOverflow = errors.New("bigfft: numeric overflow")

	// ErrAllocationFailure is returned, never panics, from the packing
	// path when a computed limb count would exceed the addressable
	// index space.
	ErrAllocationFailure = errors.New("bigfft: allocation would exceed addressable limb count")
)
