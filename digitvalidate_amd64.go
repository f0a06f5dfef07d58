//go:build amd64

package bigfft

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// lane constants for the eight-bytes-at-a-time digit check, following the
// classic branchless "hasless"/"hasmore" byte-range trick: each lane holds
// one copy of the comparison constant, and the top bit of a lane in the
// combined result marks a byte that failed the range test.
const (
	onesLane   = 0x0101010101010101
	highLane   = 0x8080808080808080
	zeroLane   = onesLane * '0'
	aboveNine  = onesLane * (127 - '9')
	wordDigits = 8
)

// validateDigitsVectorized scans data for a non-digit byte, checking eight
// bytes at a time when the CPU and input size allow it. SSE2 is implied on
// every amd64 CPU Go supports; the feature check is kept to mirror the
// teacher's CPU-gated kernel-selection pattern rather than because the
// branch can ever go the other way on this architecture.
func validateDigitsVectorized(data []byte) (ok bool, offset int) {
	if !cpu.X86.HasSSE2 {
		return validateDigitsScalar(data)
	}
	i := 0
	for ; i+wordDigits <= len(data); i += wordDigits {
		word := binary.LittleEndian.Uint64(data[i:])
		if hasNonDigitByte(word) {
			lok, loff := validateDigitsScalar(data[i : i+wordDigits])
			return lok, i + loff
		}
	}
	if i < len(data) {
		lok, loff := validateDigitsScalar(data[i:])
		return lok, i + loff
	}
	return true, 0
}

// hasNonDigitByte reports whether any of the eight bytes packed into word
// falls outside ['0', '9'], using the standard SWAR byte-range idiom: a
// byte below '0' shows up as a borrow in (word - zeroLane) uncancelled by
// the original byte's own high bit, and a byte above '9' shows up as a
// carry out of (word + aboveNine).
func hasNonDigitByte(word uint64) bool {
	hasLess := (word - zeroLane) &^ word & highLane
	hasMore := ((word + aboveNine) | word) & highLane
	return (hasLess | hasMore) != 0
}
