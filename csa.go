package popcnt

// csa64 is a carry-save adder over machine words: it reduces the three
// addends a, b, c to a (hi, lo) pair such that 2*hi + lo == a + b + c
// holds bitwise, without propagating any carries.  The same three-op
// identity is reused at vector width in csa256 and csa512.
func csa64(a, b, c uint64) (hi, lo uint64) {
	u := a ^ b
	hi = a&b | u&c
	lo = u ^ c
	return
}

// harleySeal64 counts the set bits of all words with the Harley-Seal
// algorithm at word width (4th iteration).  Groups of 16 words are
// folded through a carry-save adder tree into five positional
// accumulators, so only one full popcount is taken per 16 words in the
// main loop.  The buckets are recombined with weights 16, 8, 4, 2 and
// 1 at the end.  Only the portable primitive is used, making this the
// fallback kernel for CPUs without a popcount instruction.
func harleySeal64(words []uint64) uint64 {
	var total uint64
	var ones, twos, fours, eights, sixteens uint64
	var twosA, twosB, foursA, foursB, eightsA, eightsB uint64

	i := 0
	for ; i <= len(words)-16; i += 16 {
		twosA, ones = csa64(ones, words[i+0], words[i+1])
		twosB, ones = csa64(ones, words[i+2], words[i+3])
		foursA, twos = csa64(twos, twosA, twosB)
		twosA, ones = csa64(ones, words[i+4], words[i+5])
		twosB, ones = csa64(ones, words[i+6], words[i+7])
		foursB, twos = csa64(twos, twosA, twosB)
		eightsA, fours = csa64(fours, foursA, foursB)
		twosA, ones = csa64(ones, words[i+8], words[i+9])
		twosB, ones = csa64(ones, words[i+10], words[i+11])
		foursA, twos = csa64(twos, twosA, twosB)
		twosA, ones = csa64(ones, words[i+12], words[i+13])
		twosB, ones = csa64(ones, words[i+14], words[i+15])
		foursB, twos = csa64(twos, twosA, twosB)
		eightsB, fours = csa64(fours, foursA, foursB)
		sixteens, eights = csa64(eights, eightsA, eightsB)

		total += popcount64bitwise(sixteens)
	}

	total <<= 4
	total += popcount64bitwise(eights) << 3
	total += popcount64bitwise(fours) << 2
	total += popcount64bitwise(twos) << 1
	total += popcount64bitwise(ones)

	for ; i < len(words); i++ {
		total += popcount64bitwise(words[i])
	}

	return total
}
