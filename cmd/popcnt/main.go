// Command popcnt counts the set bits of files, strings, or standard
// input.  It also carries the self-test and benchmark modes of the
// library: the self-test cross-checks every buffer length below a
// bound against an independent byte-wise reference, the benchmark
// measures sustained counting throughput.
package main

import (
	"fmt"
	"io"
	"math/bits"
	"math/rand"
	"os"
	"time"

	"github.com/hweight/popcnt"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
)

var (
	pString   = pflag.BoolP("string", "s", false, "treat arguments as literal strings to be counted")
	pSelftest = pflag.IntP("selftest", "t", 0, "cross-check all buffer sizes below `max` against the reference")
	pBench    = pflag.IntP("bench", "b", 0, "benchmark counting a buffer of `bytes` bytes")
	pIters    = pflag.IntP("iters", "i", 10000, "iterations of the benchmark loop")
	pQuiet    = pflag.BoolP("quiet", "q", false, "print only counts or breaking errors")
)

// reference bit count, independent of the library internals
func refCount(buf []byte) uint64 {
	var cnt uint64
	for _, b := range buf {
		cnt += uint64(bits.OnesCount8(b))
	}
	return cnt
}

func selftest(max int) int {
	rand.Seed(time.Now().UnixNano())

	for size := 0; size < max; size++ {
		if !*pQuiet {
			fmt.Printf("\rStatus: %d%%", 100*size/max)
		}

		buf := make([]byte, size)
		rand.Read(buf)

		if got, want := popcnt.Count(buf), refCount(buf); got != want {
			fmt.Fprintf(os.Stderr, "\nself-test failed: size %d: got %d, want %d\n", size, got, want)
			return 1
		}
	}

	if !*pQuiet {
		fmt.Println("\rStatus: 100%")
		fmt.Println("self-test passed")
	}
	return 0
}

func bench(bytes, iters int) int {
	rand.Seed(time.Now().UnixNano())

	buf := make([]byte, bytes)
	rand.Read(buf)
	want := refCount(buf)

	var total uint64
	start := time.Now()
	cycles := benchCycles(func() {
		for i := 0; i < iters; i++ {
			total += popcnt.Count(buf)
		}
	})
	elapsed := time.Since(start)

	if total != want*uint64(iters) {
		fmt.Fprintln(os.Stderr, "benchmark verification failed")
		return 1
	}

	processed := float64(bytes) * float64(iters)
	fmt.Printf("Seconds: %.4f\n", elapsed.Seconds())
	fmt.Printf("Speed:   %.2f MB/s\n", processed/elapsed.Seconds()/1e6)
	if cycles > 0 {
		fmt.Printf("Cycles:  %.4f cpb\n", float64(cycles)/processed)
	}
	return 0
}

func main() {
	pflag.Parse()

	if *pSelftest > 0 {
		os.Exit(selftest(*pSelftest))
	}
	if *pBench > 0 {
		os.Exit(bench(*pBench, *pIters))
	}

	if pflag.NArg() == 0 {
		fmt.Println("Usage:\n" +
			"  popcnt [-q] -|FILE...\n" +
			"  popcnt [-q] -s STRING...\n" +
			"  popcnt -t <max>\n" +
			"  popcnt -b <bytes> [-i <iters>]\n\n" +
			"Options:")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	exitCode := 0
	for _, arg := range pflag.Args() {
		var message []byte
		var err error

		switch {
		case *pString:
			message = []byte(arg)
		case arg == "-":
			message, err = io.ReadAll(os.Stdin)
		default:
			message, err = os.ReadFile(arg)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "popcnt: %s: %v\n", arg, err)
			exitCode = 1
			continue
		}

		name := arg
		if *pString {
			name = fmt.Sprintf("%q", arg)
		} else if arg != "-" {
			name = vainpath.Clean(arg)
		}

		if *pQuiet {
			fmt.Println(popcnt.Count(message))
		} else {
			fmt.Printf("%d  %s (%d bytes)\n", popcnt.Count(message), name, len(message))
		}
	}

	os.Exit(exitCode)
}
