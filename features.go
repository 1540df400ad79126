package popcnt

import "sync"

// featureSet is an immutable snapshot of the instruction set
// extensions usable by the counting kernels.  A flag is only set when
// both the CPU reports the extension and the operating system has
// enabled the matching register state, so an unset flag simply routes
// dispatch to a narrower tier.
type featureSet uint8

const (
	// hardware population count instruction on machine words
	featurePOPCNT featureSet = 1 << iota
	// 256 bit vector tier usable
	featureVec256
	// 512 bit vector tier with native per-lane popcount usable
	featureVec512
)

// each platform must provide a detect function returning the
// featureSet of the running CPU.  Platforms without specialised
// detection return the empty set, leaving only the portable tier.

var (
	featuresOnce   sync.Once
	cachedFeatures featureSet
)

// features returns the capability snapshot for this process.  The
// probe runs at most once; concurrent first calls block on the same
// initialisation and all observe the identical, fully written value.
func features() featureSet {
	featuresOnce.Do(func() {
		cachedFeatures = detect()
	})

	return cachedFeatures
}
