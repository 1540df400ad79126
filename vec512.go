package popcnt

// vec512 models a 512 bit vector register as eight 64 bit lanes.
type vec512 [8]uint64

// vec512words is the number of machine words per 512 bit block.
const vec512words = 8

func (v vec512) and(w vec512) vec512 {
	return vec512{
		v[0] & w[0], v[1] & w[1], v[2] & w[2], v[3] & w[3],
		v[4] & w[4], v[5] & w[5], v[6] & w[6], v[7] & w[7],
	}
}

func (v vec512) or(w vec512) vec512 {
	return vec512{
		v[0] | w[0], v[1] | w[1], v[2] | w[2], v[3] | w[3],
		v[4] | w[4], v[5] | w[5], v[6] | w[6], v[7] | w[7],
	}
}

func (v vec512) xor(w vec512) vec512 {
	return vec512{
		v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3],
		v[4] ^ w[4], v[5] ^ w[5], v[6] ^ w[6], v[7] ^ w[7],
	}
}

// shl shifts every lane left by s bits.
func (v vec512) shl(s uint) vec512 {
	return vec512{
		v[0] << s, v[1] << s, v[2] << s, v[3] << s,
		v[4] << s, v[5] << s, v[6] << s, v[7] << s,
	}
}

// add sums the corresponding 64 bit lanes.
func (v vec512) add(w vec512) vec512 {
	return vec512{
		v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3],
		v[4] + w[4], v[5] + w[5], v[6] + w[6], v[7] + w[7],
	}
}

// sum adds the eight lanes into one scalar.
func (v vec512) sum() uint64 {
	return v[0] + v[1] + v[2] + v[3] + v[4] + v[5] + v[6] + v[7]
}

// load512 loads one 512 bit block from words at block index i.
func load512(words []uint64, i int) vec512 {
	w := words[i*vec512words : i*vec512words+vec512words : i*vec512words+vec512words]
	return vec512{w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7]}
}

// csa512 is the carry-save adder of csa64 applied lane-wise.
func csa512(a, b, c vec512) (hi, lo vec512) {
	u := a.xor(b)
	hi = a.and(b).or(u.and(c))
	lo = u.xor(c)
	return
}

// popcnt512 computes the per-lane population count of v.  This tier
// presumes a native per-lane popcount, so the hardware primitive
// replaces the nibble lookup of the 256 bit kernel; the surrounding
// carry-save adder network is identical.
func popcnt512(v vec512) vec512 {
	return vec512{
		popcount64(v[0]), popcount64(v[1]), popcount64(v[2]), popcount64(v[3]),
		popcount64(v[4]), popcount64(v[5]), popcount64(v[6]), popcount64(v[7]),
	}
}

// harleySeal512 counts the set bits of all words, which must span a
// whole number of 512 bit blocks.  Same shape as harleySeal256 at
// twice the width.
func harleySeal512(words []uint64) uint64 {
	var cnt, ones, twos, fours, eights, sixteens vec512
	var twosA, twosB, foursA, foursB, eightsA, eightsB vec512

	blocks := len(words) / vec512words

	i := 0
	for ; i <= blocks-16; i += 16 {
		twosA, ones = csa512(ones, load512(words, i+0), load512(words, i+1))
		twosB, ones = csa512(ones, load512(words, i+2), load512(words, i+3))
		foursA, twos = csa512(twos, twosA, twosB)
		twosA, ones = csa512(ones, load512(words, i+4), load512(words, i+5))
		twosB, ones = csa512(ones, load512(words, i+6), load512(words, i+7))
		foursB, twos = csa512(twos, twosA, twosB)
		eightsA, fours = csa512(fours, foursA, foursB)
		twosA, ones = csa512(ones, load512(words, i+8), load512(words, i+9))
		twosB, ones = csa512(ones, load512(words, i+10), load512(words, i+11))
		foursA, twos = csa512(twos, twosA, twosB)
		twosA, ones = csa512(ones, load512(words, i+12), load512(words, i+13))
		twosB, ones = csa512(ones, load512(words, i+14), load512(words, i+15))
		foursB, twos = csa512(twos, twosA, twosB)
		eightsB, fours = csa512(fours, foursA, foursB)
		sixteens, eights = csa512(eights, eightsA, eightsB)

		cnt = cnt.add(popcnt512(sixteens))
	}

	cnt = cnt.shl(4)
	cnt = cnt.add(popcnt512(eights).shl(3))
	cnt = cnt.add(popcnt512(fours).shl(2))
	cnt = cnt.add(popcnt512(twos).shl(1))
	cnt = cnt.add(popcnt512(ones))

	for ; i < blocks; i++ {
		cnt = cnt.add(popcnt512(load512(words, i)))
	}

	return cnt.sum()
}
