package main

import "github.com/dterei/gotsc"

// benchCycles runs f and returns the elapsed reference cycles as read
// from the time stamp counter, net of the measurement overhead.
func benchCycles(f func()) uint64 {
	overhead := gotsc.TSCOverhead()

	tsc1 := gotsc.BenchStart()
	f()
	tsc2 := gotsc.BenchEnd()

	return tsc2 - tsc1 - overhead
}
