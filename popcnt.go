// Population counts over byte buffers.
//
// This package counts the number of set bits in arbitrary []byte
// buffers as quickly as the host CPU allows.  The work is split over
// a set of kernel tiers: wide-vector Harley-Seal kernels operating on
// 512 and 256 bit blocks, an unrolled hardware-popcount word loop, and
// a portable pure-integer fallback.  An optimal tier constrained by the
// instruction set extensions available on your CPU is chosen
// automatically at runtime.  The portable tier is always available, so
// the package works on all architectures supported by the Go
// toolchain.
//
// The vector kernels work on block sizes of 32 or 64 bytes and only
// engage above a minimum buffer size.  For short buffers all work is
// done by the scalar tiers; results are identical either way.
package popcnt

// Count returns the number of set bits in buf.
//
// The result is the same as summing the set bits of every byte
// individually, for every buffer length including zero.  Count does
// not modify or retain buf and is safe to call concurrently, also on
// overlapping buffers.
func Count(buf []byte) uint64 {
	return count(buf, features())
}

// CountString returns the number of set bits in the bytes of s.
func CountString(s string) uint64 {
	return count([]byte(s), features())
}
