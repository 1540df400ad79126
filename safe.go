package popcnt

// countSafe is the byte-wise reference implementation for tests.  It
// examines every bit of every byte individually.  Do not alter.
func countSafe(buf []byte) uint64 {
	var cnt uint64

	for i := range buf {
		for j := 0; j < 8; j++ {
			cnt += uint64(buf[i] >> j & 1)
		}
	}

	return cnt
}
