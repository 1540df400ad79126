//go:build !amd64

package main

// no time stamp counter here; the benchmark reports throughput only
func benchCycles(f func()) uint64 {
	f()
	return 0
}
