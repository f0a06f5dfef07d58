package bigfft

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestNewFromSignAndMagnitudeRoundTrip(t *testing.T) {
	x := NewFromSignAndMagnitude(1, []uint32{0x1, 0x2, 0x3}) // BE: 0x1 0x2 0x3
	got := x.Limbs()
	want := []uint32{0x1, 0x2, 0x3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Limbs()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestNewFromSignAndMagnitudeStripsLeadingZero(t *testing.T) {
	x := NewFromSignAndMagnitude(1, []uint32{0, 0, 5})
	got := x.Limbs()
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("Limbs() = %v, want [5]", got)
	}
}

func TestZeroSignIsCanonical(t *testing.T) {
	x := NewFromSignAndMagnitude(0, []uint32{1, 2, 3})
	if x.Sign() != 0 || len(x.Limbs()) != 0 {
		t.Fatalf("sign-0 input did not normalize to zero: sign=%d limbs=%v", x.Sign(), x.Limbs())
	}
}

func TestBitLen(t *testing.T) {
	cases := []struct {
		limbsBE []uint32
		want    int
	}{
		{nil, 0},
		{[]uint32{1}, 1},
		{[]uint32{0xff}, 8},
		{[]uint32{1, 0}, 33},
		{[]uint32{0x80000000}, 32},
	}
	for _, c := range cases {
		x := NewFromSignAndMagnitude(1, c.limbsBE)
		if c.limbsBE == nil {
			x = &Int{}
		}
		if got := x.BitLen(); got != c.want {
			t.Fatalf("BitLen(%v) = %d, want %d", c.limbsBE, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewFromSignAndMagnitude(1, []uint32{1, 2})
	b := NewFromSignAndMagnitude(1, []uint32{1, 2})
	c := NewFromSignAndMagnitude(-1, []uint32{1, 2})
	if !a.Equal(b) {
		t.Fatal("a should equal b")
	}
	if a.Equal(c) {
		t.Fatal("a should not equal c (different sign)")
	}
}

func TestAddSubAgainstMathBig(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	for trial := 0; trial < 200; trial++ {
		a := randomBigInt(rng, rng.IntN(5)+1)
		b := randomBigInt(rng, rng.IntN(5)+1)
		ia, ib := intFromBig(a), intFromBig(b)

		gotAdd := ia.Add(ib)
		wantAdd := new(big.Int).Add(a, b)
		if toBigInt(gotAdd).Cmp(wantAdd) != 0 {
			t.Fatalf("trial %d: %s + %s = %s, want %s", trial, a, b, toBigInt(gotAdd), wantAdd)
		}

		gotSub := ia.Sub(ib)
		wantSub := new(big.Int).Sub(a, b)
		if toBigInt(gotSub).Cmp(wantSub) != 0 {
			t.Fatalf("trial %d: %s - %s = %s, want %s", trial, a, b, toBigInt(gotSub), wantSub)
		}
	}
}

func TestStringRendersHex(t *testing.T) {
	if got := (&Int{}).String(); got != "0" {
		t.Fatalf("zero String() = %q, want %q", got, "0")
	}
	x := NewFromSignAndMagnitude(-1, []uint32{0xab})
	if got, want := x.String(), "-0xab"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
