package popcnt

import "math/bits"
import "math/rand"
import "testing"

// word values that exercise the mask boundaries of the bit trick
var wordEdgeCases = []uint64{
	0, 1, 2, 3,
	0x5555555555555555, 0xaaaaaaaaaaaaaaaa,
	0x3333333333333333, 0x0f0f0f0f0f0f0f0f,
	0x0101010101010101, 0x8000000000000000,
	0xffffffffffffffff, 0xfffffffffffffffe,
	0x00000000ffffffff, 0xffffffff00000000,
}

// the portable bit trick must agree with the hardware primitive on
// every input
func TestPopcount64Bitwise(t *testing.T) {
	check := func(x uint64) {
		if got, want := popcount64bitwise(x), uint64(bits.OnesCount64(x)); got != want {
			t.Errorf("popcount64bitwise(%#016x) = %d, want %d", x, got, want)
		}
	}

	for _, x := range wordEdgeCases {
		check(x)
	}

	for i := 0; i < 64; i++ {
		check(1 << i)
		check(1<<i - 1)
		check(^uint64(0) << i)
	}

	for i := 0; i < 100000; i++ {
		check(rand.Uint64())
	}
}

// the nibble lookup primitive of the 256 bit tier must agree as well
func TestPopcount64Nibbles(t *testing.T) {
	check := func(x uint64) {
		if got, want := popcount64nibbles(x), uint64(bits.OnesCount64(x)); got != want {
			t.Errorf("popcount64nibbles(%#016x) = %d, want %d", x, got, want)
		}
	}

	for _, x := range wordEdgeCases {
		check(x)
	}

	for i := 0; i < 100000; i++ {
		check(rand.Uint64())
	}
}

// random word slices to check the kernels over all unroll remainders
func randomWords(len int) []uint64 {
	words := make([]uint64, len)
	for i := range words {
		words[i] = rand.Uint64()
	}
	return words
}

// reference word counter
func refCountWords(words []uint64) uint64 {
	var cnt uint64
	for _, w := range words {
		cnt += uint64(bits.OnesCount64(w))
	}
	return cnt
}

// the unrolled hardware word loop covers every remainder mod 4
func TestPopcntWords(t *testing.T) {
	for len := 0; len <= 67; len++ {
		words := randomWords(len)

		if got, want := popcntWords(words), refCountWords(words); got != want {
			t.Errorf("length %d: got %d, want %d", len, got, want)
		}
	}
}
