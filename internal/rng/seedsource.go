package rng

import (
	"sync/atomic"
	"time"
)

// Process-wide seed source for default-constructed Compat instances:
// an atomic counter stepped by the splitmix64 gamma and finalized with
// the splitmix64 mixer. Wall time enters exactly once, at package init;
// after that every seed is a pure function of the counter, so two calls
// can never return the same value within a process.
var seedState atomic.Uint64

func init() {
	seedState.Store(uint64(time.Now().UnixNano()))
}

// NextSharedSeed returns the next 32-bit seed from the shared source.
// Safe for concurrent use.
func NextSharedSeed() int32 {
	x := seedState.Add(0x9E3779B97F4A7C15)
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return int32(uint32(x))
}
