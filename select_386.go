//go:build !purego

package popcnt

import "golang.org/x/sys/cpu"

// detect mirrors the amd64 probe.  The kernels work on 64 bit words
// regardless of the native register width; on a 32 bit process the
// vector tiers are still worthwhile because the compiler splits the
// lane arithmetic into register pairs.
func detect() featureSet {
	var feats featureSet
	x86 := &cpu.X86

	if x86.HasPOPCNT {
		feats |= featurePOPCNT
	}
	if x86.HasAVX2 {
		feats |= featureVec256
	}

	return feats
}
