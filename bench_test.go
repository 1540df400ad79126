package popcnt

import "math/rand"
import "testing"
import "strconv"

// sizes to benchmark
var benchmarkLengths = []int{
	1000, 10 * 1000, 100 * 1000, 1000 * 1000, 10 * 1000 * 1000, 100 * 1000 * 1000,
}

// benchmark one counting function over the standard sizes
func benchmarkCount(b *testing.B, count func([]byte) uint64) {
	maxlen := benchmarkLengths[len(benchmarkLengths)-1]
	buf := make([]byte, maxlen)
	rand.Read(buf)

	for _, l := range benchmarkLengths {
		b.Run(strconv.Itoa(l), func(b *testing.B) {
			testbuf := buf[:l]
			b.SetBytes(int64(l))
			for i := 0; i < b.N; i++ {
				count(testbuf)
			}
		})
	}
}

// benchmark the automatically selected configuration
func BenchmarkCount(b *testing.B) {
	benchmarkCount(b, Count)
}

// benchmark each tier regardless of what the host supports
func BenchmarkCountTiers(b *testing.B) {
	for _, tier := range tiers {
		tier := tier
		b.Run(tier.name, func(b *testing.B) {
			benchmarkCount(b, func(buf []byte) uint64 {
				return count(buf, tier.feats)
			})
		})
	}
}

// benchmark the kernels directly, without dispatch overhead
func BenchmarkHarleySeal64(b *testing.B) {
	benchmarkWords(b, harleySeal64, 1)
}

func BenchmarkHarleySeal256(b *testing.B) {
	benchmarkWords(b, harleySeal256, vec256words)
}

func BenchmarkHarleySeal512(b *testing.B) {
	benchmarkWords(b, harleySeal512, vec512words)
}

func BenchmarkPopcntWords(b *testing.B) {
	benchmarkWords(b, popcntWords, 1)
}

func benchmarkWords(b *testing.B, kernel func([]uint64) uint64, blockWords int) {
	const bytes = 1000 * 1000
	words := randomWords(bytes / wordSize / blockWords * blockWords)

	b.SetBytes(int64(len(words) * wordSize))
	for i := 0; i < b.N; i++ {
		kernel(words)
	}
}
