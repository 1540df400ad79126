package popcnt

// vec256 models a 256 bit vector register as four 64 bit lanes.  All
// operations are expressed as explicit lane-wise bitwise calls; the Go
// compiler is free to vectorise the fixed-size array arithmetic.
type vec256 [4]uint64

// vec256words is the number of machine words per 256 bit block.
const vec256words = 4

func (v vec256) and(w vec256) vec256 {
	return vec256{v[0] & w[0], v[1] & w[1], v[2] & w[2], v[3] & w[3]}
}

func (v vec256) or(w vec256) vec256 {
	return vec256{v[0] | w[0], v[1] | w[1], v[2] | w[2], v[3] | w[3]}
}

func (v vec256) xor(w vec256) vec256 {
	return vec256{v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3]}
}

// shl shifts every lane left by s bits.
func (v vec256) shl(s uint) vec256 {
	return vec256{v[0] << s, v[1] << s, v[2] << s, v[3] << s}
}

// add sums the corresponding 64 bit lanes.
func (v vec256) add(w vec256) vec256 {
	return vec256{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// sum adds the four lanes into one scalar.
func (v vec256) sum() uint64 {
	return v[0] + v[1] + v[2] + v[3]
}

// load256 loads one 256 bit block from words at block index i.
func load256(words []uint64, i int) vec256 {
	w := words[i*vec256words : i*vec256words+vec256words : i*vec256words+vec256words]
	return vec256{w[0], w[1], w[2], w[3]}
}

// csa256 is the carry-save adder of csa64 applied lane-wise.
func csa256(a, b, c vec256) (hi, lo vec256) {
	u := a.xor(b)
	hi = a.and(b).or(u.and(c))
	lo = u.xor(c)
	return
}

// nibbleCounts maps each 4 bit value to its population count.  It
// stands in for the two 16-entry shuffle lookup tables of the SIMD
// formulation.
var nibbleCounts = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

// popcount64nibbles counts the set bits of x through the nibble
// lookup table, the per-lane primitive of the 256 bit kernel: each
// byte is split into its low and high nibble, both are looked up, and
// the sixteen counts are summed horizontally over the lane.
func popcount64nibbles(x uint64) uint64 {
	var cnt uint64
	for x != 0 {
		cnt += uint64(nibbleCounts[x&0xf])
		x >>= 4
	}
	return cnt
}

// popcnt256 computes the per-lane population count of v.
func popcnt256(v vec256) vec256 {
	return vec256{
		popcount64nibbles(v[0]),
		popcount64nibbles(v[1]),
		popcount64nibbles(v[2]),
		popcount64nibbles(v[3]),
	}
}

// harleySeal256 counts the set bits of all words, which must span a
// whole number of 256 bit blocks.  The structure mirrors harleySeal64
// with every operand widened to a vec256: groups of 16 blocks collapse
// through the carry-save adder tree into the sixteens bucket, whose
// per-lane popcount feeds a running vector total.  Trailing blocks
// below one full group are popcounted individually.
func harleySeal256(words []uint64) uint64 {
	var cnt, ones, twos, fours, eights, sixteens vec256
	var twosA, twosB, foursA, foursB, eightsA, eightsB vec256

	blocks := len(words) / vec256words

	i := 0
	for ; i <= blocks-16; i += 16 {
		twosA, ones = csa256(ones, load256(words, i+0), load256(words, i+1))
		twosB, ones = csa256(ones, load256(words, i+2), load256(words, i+3))
		foursA, twos = csa256(twos, twosA, twosB)
		twosA, ones = csa256(ones, load256(words, i+4), load256(words, i+5))
		twosB, ones = csa256(ones, load256(words, i+6), load256(words, i+7))
		foursB, twos = csa256(twos, twosA, twosB)
		eightsA, fours = csa256(fours, foursA, foursB)
		twosA, ones = csa256(ones, load256(words, i+8), load256(words, i+9))
		twosB, ones = csa256(ones, load256(words, i+10), load256(words, i+11))
		foursA, twos = csa256(twos, twosA, twosB)
		twosA, ones = csa256(ones, load256(words, i+12), load256(words, i+13))
		twosB, ones = csa256(ones, load256(words, i+14), load256(words, i+15))
		foursB, twos = csa256(twos, twosA, twosB)
		eightsB, fours = csa256(fours, foursA, foursB)
		sixteens, eights = csa256(eights, eightsA, eightsB)

		cnt = cnt.add(popcnt256(sixteens))
	}

	cnt = cnt.shl(4)
	cnt = cnt.add(popcnt256(eights).shl(3))
	cnt = cnt.add(popcnt256(fours).shl(2))
	cnt = cnt.add(popcnt256(twos).shl(1))
	cnt = cnt.add(popcnt256(ones))

	for ; i < blocks; i++ {
		cnt = cnt.add(popcnt256(load256(words, i)))
	}

	return cnt.sum()
}
