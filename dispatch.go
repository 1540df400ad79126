package popcnt

import "unsafe"

// size of a machine word in bytes; all kernels consume 64 bit words
// independently of the native register width
const wordSize = 8

// Minimum buffer sizes below which a vector tier is not worth its
// setup and recombination overhead.  The values follow the usual
// empirical policy of the reference kernels; they are tunable
// constants, not caller parameters.
const (
	vec256minBytes = 512
	vec512minBytes = 1024
)

// tiers lists the dispatch configurations in decreasing width for the
// unit tests and benchmarks.  Running every input through every entry
// must give identical counts; the widest tier that is supported and
// size-eligible is what Count itself uses.
var tiers = []struct {
	name  string
	feats featureSet
}{
	{"vec512", featurePOPCNT | featureVec256 | featureVec512},
	{"vec256", featurePOPCNT | featureVec256},
	{"popcnt", featurePOPCNT},
	{"generic", 0},
}

// count returns the number of set bits in buf using the kernels
// permitted by feats.  The buffer is split into a byte-wise alignment
// prologue, at most one vector tier region, a scalar word region, and
// a byte-wise epilogue; together these cover every input byte exactly
// once.
func count(buf []byte, feats featureSet) uint64 {
	if len(buf) == 0 {
		return 0
	}

	scalar := popcount64bitwise
	if feats&featurePOPCNT != 0 {
		scalar = popcount64
	}

	var cnt uint64

	// byte-wise prologue up to the first word boundary
	for len(buf) > 0 && uintptr(unsafe.Pointer(&buf[0]))%wordSize != 0 {
		cnt += scalar(uint64(buf[0]))
		buf = buf[1:]
	}

	// buffers shorter than one word stay on the byte-wise path
	if len(buf) < wordSize {
		for _, b := range buf {
			cnt += scalar(uint64(b))
		}

		return cnt
	}

	words := unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), len(buf)/wordSize)
	tail := buf[len(words)*wordSize:]

	// exactly one vector tier per call: the widest flagged tier that
	// meets its size threshold takes the maximal whole-block region
	switch {
	case feats&featureVec512 != 0 && len(words)*wordSize >= vec512minBytes:
		words, cnt = vectorRegion(words, cnt, scalar, vec512words, harleySeal512)
	case feats&featureVec256 != 0 && len(words)*wordSize >= vec256minBytes:
		words, cnt = vectorRegion(words, cnt, scalar, vec256words, harleySeal256)
	}

	if feats&featurePOPCNT != 0 {
		cnt += popcntWords(words)
	} else {
		cnt += harleySeal64(words)
	}

	// byte-wise epilogue for the sub-word remainder
	for _, b := range tail {
		cnt += scalar(uint64(b))
	}

	return cnt
}

// vectorRegion aligns words to the block width of one vector tier,
// counting the skipped words with the scalar primitive, runs the
// kernel over the maximal whole-block region, and returns the
// remaining words together with the updated count.
func vectorRegion(words []uint64, cnt uint64, scalar func(uint64) uint64, blockWords int, kernel func([]uint64) uint64) ([]uint64, uint64) {
	// word-wise prologue up to the block boundary
	for len(words) > 0 && uintptr(unsafe.Pointer(&words[0]))%uintptr(blockWords*wordSize) != 0 {
		cnt += scalar(words[0])
		words = words[1:]
	}

	n := len(words) / blockWords * blockWords
	if n > 0 {
		cnt += kernel(words[:n])
		words = words[n:]
	}

	return words, cnt
}
