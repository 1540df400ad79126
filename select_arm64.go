//go:build !purego

package popcnt

import "golang.org/x/sys/cpu"

// detect reports the tiers usable on this CPU.  Advanced SIMD gives
// both a native byte popcount (CNT) and 128 bit vector arithmetic, so
// it maps to the hardware-popcount tier plus the narrower vector tier.
// There is no 512 bit equivalent here.
func detect() featureSet {
	if cpu.ARM64.HasASIMD {
		return featurePOPCNT | featureVec256
	}

	return 0
}
