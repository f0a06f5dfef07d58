package bigfft

// mulSchoolbook multiplies two unsigned little-endian limb vectors with the
// classic O(n*m) double loop. acc holds one resolved (< 2^32) digit per
// column; every multiply-accumulate step folds its carry back in before
// moving on, so no separate final carry pass is needed.
func mulSchoolbook(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	acc := make([]uint64, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			t := uint64(av)*uint64(bv) + acc[i+j] + carry
			acc[i+j] = t & 0xffffffff
			carry = t >> 32
		}
		k := i + len(b)
		for carry != 0 {
			t := acc[k] + carry
			acc[k] = t & 0xffffffff
			carry = t >> 32
			k++
		}
	}

	out := make([]uint32, len(acc))
	for i, v := range acc {
		out[i] = uint32(v)
	}
	return out
}

// mulSchoolbookInt multiplies two signed Ints with the schoolbook
// algorithm; exposed so the dispatcher and Toom-Cook's sub-products can
// call it directly regardless of operand size.
func mulSchoolbookInt(a, b *Int) *Int {
	if a.sign == 0 || b.sign == 0 {
		return &Int{}
	}
	prod := mulSchoolbook(a.limbs, b.limbs)
	return normalize(a.sign*b.sign, prod)
}
