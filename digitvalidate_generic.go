//go:build !amd64

package bigfft

// validateDigitsVectorized is the portable fallback: a plain byte-at-a-time
// scan. Used on every architecture other than amd64.
func validateDigitsVectorized(data []byte) (ok bool, offset int) {
	return validateDigitsScalar(data)
}
