package bigfft

import (
	"math/rand/v2"
	"testing"
)

func TestValidateDigitsVectorizedAllValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17, 63, 64, 65, 200} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte('0' + rng.IntN(10))
		}
		if ok, off := validateDigitsVectorized(data); !ok {
			t.Fatalf("n=%d: false positive at offset %d on all-digit input %q", n, off, data)
		}
	}
}

func TestValidateDigitsVectorizedFindsEveryOffset(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for bad := 0; bad < n; bad++ {
			data := make([]byte, n)
			for i := range data {
				data[i] = '5'
			}
			data[bad] = 'x'
			ok, off := validateDigitsVectorized(data)
			if ok {
				t.Fatalf("n=%d bad=%d: expected failure, got ok", n, bad)
			}
			if off != bad {
				t.Fatalf("n=%d bad=%d: reported offset %d, want %d", n, bad, off, bad)
			}
		}
	}
}

func TestValidateDigitsVectorizedBoundaryBytes(t *testing.T) {
	cases := []byte{'0' - 1, '9' + 1, 0x00, 0xff, '/', ':'}
	for _, b := range cases {
		data := []byte{'1', '2', b, '3'}
		ok, off := validateDigitsVectorized(data)
		if ok {
			t.Fatalf("byte %#x: expected rejection", b)
		}
		if off != 2 {
			t.Fatalf("byte %#x: offset = %d, want 2", b, off)
		}
	}
}

func TestValidateDigitsScalarMatchesVectorized(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 3))
	for trial := 0; trial < 50; trial++ {
		n := rng.IntN(50) + 1
		data := make([]byte, n)
		for i := range data {
			if rng.IntN(10) == 0 {
				data[i] = 'z'
			} else {
				data[i] = byte('0' + rng.IntN(10))
			}
		}
		wantOK, wantOff := validateDigitsScalar(data)
		gotOK, gotOff := validateDigitsVectorized(data)
		if gotOK != wantOK || (!wantOK && gotOff != wantOff) {
			t.Fatalf("trial %d: vectorized=(%v,%d) scalar=(%v,%d) for %q", trial, gotOK, gotOff, wantOK, wantOff, data)
		}
	}
}
