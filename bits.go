package popcnt

import "math/bits"

// Scalar popcount primitives.  Both functions return the same result
// for every input; the dispatch code picks one depending on whether
// the CPU has a hardware population count instruction.

// popcount64 counts the set bits of x through math/bits, which the
// compiler lowers to the native instruction where one exists.
func popcount64(x uint64) uint64 {
	return uint64(bits.OnesCount64(x))
}

// popcount64bitwise counts the set bits of x using only integer
// arithmetic.  This is the classic divide-and-conquer mask-and-add
// reduction: 12 operations, one of which is a multiply.  It is
// bit-exact on every platform and serves as the reference primitive.
func popcount64bitwise(x uint64) uint64 {
	const (
		m1  = 0x5555555555555555
		m2  = 0x3333333333333333
		m4  = 0x0f0f0f0f0f0f0f0f
		h01 = 0x0101010101010101
	)

	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4

	return x * h01 >> 56
}

// popcntWords counts the set bits of all words using the hardware
// primitive.  Four independent accumulators expose instruction-level
// parallelism; the trailing words below one group go through the same
// primitive one at a time.
func popcntWords(words []uint64) uint64 {
	var sum0, sum1, sum2, sum3 uint64

	i := 0
	for ; i <= len(words)-4; i += 4 {
		sum0 += popcount64(words[i+0])
		sum1 += popcount64(words[i+1])
		sum2 += popcount64(words[i+2])
		sum3 += popcount64(words[i+3])
	}

	total := sum0 + sum1 + sum2 + sum3
	for ; i < len(words); i++ {
		total += popcount64(words[i])
	}

	return total
}
