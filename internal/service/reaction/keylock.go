package reaction

import "sync"

const stripeCount = 64 // power of two, the mask below depends on it

// pairLocks serializes reaction writes per (user, restaurant) key. Striping
// keeps memory constant: two distinct pairs may share a stripe and wait on
// each other, but the same pair always maps to the same mutex, which is the
// invariant the transition arithmetic needs.
type pairLocks struct {
	stripes [stripeCount]sync.Mutex
}

// Lock acquires the stripe for the pair and returns its release func.
func (l *pairLocks) Lock(userID, restaurantID uint64) func() {
	m := &l.stripes[stripeFor(userID, restaurantID)]
	m.Lock()
	return m.Unlock
}

func stripeFor(userID, restaurantID uint64) uint64 {
	// Fibonacci hashing of the combined key
	h := (userID*0x9E3779B97F4A7C15 ^ restaurantID) * 0x9E3779B97F4A7C15
	return (h >> 32) & (stripeCount - 1)
}
