package keylock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dronefleet/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	locks := keylock.New()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("DRONE-001")
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				old := atomic.LoadInt32(&maxInside)
				if n <= old || atomic.CompareAndSwapInt32(&maxInside, old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Zero(t, locks.Len(), "entries are released")
}

func TestKeyLock_DifferentKeysDoNotBlock(t *testing.T) {
	locks := keylock.New()
	unlockA := locks.Lock("A")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("B")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on B waited for A")
	}
}

func TestKeyLock_UnlockIsIdempotent(t *testing.T) {
	var locks keylock.KeyLock

	unlock := locks.Lock("A")
	unlock()
	unlock()

	assert.Zero(t, locks.Len())
	relock := locks.Lock("A")
	relock()
}
