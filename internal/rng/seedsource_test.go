package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSharedSeed_MostlyDistinct(t *testing.T) {
	// The 64-bit counter positions are unique; the int32 truncation can
	// collide in theory, so only near-distinctness is asserted.
	seen := make(map[int32]bool)
	for i := 0; i < 1000; i++ {
		seen[NextSharedSeed()] = true
	}
	assert.Greater(t, len(seen), 990)
}

func TestNextSharedSeed_ConcurrentUse(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 200

	var wg sync.WaitGroup
	out := make(chan int32, goroutines*perGoroutine)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				out <- NextSharedSeed()
			}
		}()
	}
	wg.Wait()
	close(out)

	n := 0
	for range out {
		n++
	}
	assert.Equal(t, goroutines*perGoroutine, n)
}
