//go:build !purego

package popcnt

import "golang.org/x/sys/cpu"

// detect probes the host CPU once per process.  The cpu package
// already combines CPUID reporting with the XGETBV check for
// OS-enabled AVX and ZMM state, so HasAVX2/HasAVX512F are only true
// when the kernel actually saves and restores the wide registers.
// Each tier's flag is determined independently; the dispatcher picks
// the widest one that is both set and size-eligible.
func detect() featureSet {
	var feats featureSet
	x86 := &cpu.X86

	if x86.HasPOPCNT {
		feats |= featurePOPCNT
	}
	if x86.HasAVX2 {
		feats |= featureVec256
	}
	if x86.HasAVX512F && x86.HasAVX512VPOPCNTDQ {
		feats |= featureVec512
	}

	return feats
}
