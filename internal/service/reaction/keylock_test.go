package reaction

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeForIsDeterministicAndBounded(t *testing.T) {
	for user := uint64(1); user <= 100; user++ {
		for rest := uint64(1); rest <= 10; rest++ {
			a := stripeFor(user, rest)
			b := stripeFor(user, rest)
			assert.Equal(t, a, b)
			assert.Less(t, a, uint64(stripeCount))
		}
	}
}

func TestSamePairSerializes(t *testing.T) {
	var locks pairLocks

	const workers = 200
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.Lock(7, 42)
			defer unlock()
			// read-modify-write is only safe if the pair lock holds
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestDistinctPairsSpreadAcrossStripes(t *testing.T) {
	seen := make(map[uint64]bool)
	for user := uint64(1); user <= 64; user++ {
		seen[stripeFor(user, user+1)] = true
	}
	// not a uniformity proof, just a guard against a degenerate hash
	assert.Greater(t, len(seen), 8)
}
