//go:build purego || (!amd64 && !arm64 && !386)

package popcnt

// Portable tier only.  The purego tag pins dispatch to the fallback
// kernel at build time, skipping the runtime probe entirely.
func detect() featureSet {
	return 0
}
