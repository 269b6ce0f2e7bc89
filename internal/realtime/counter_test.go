package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_IncrementDecrement(t *testing.T) {
	c := NewViewerCounter(discardLogger())
	key := ProjectRoom("42")

	assert.Equal(t, 1, c.Increment(key))
	assert.Equal(t, 2, c.Increment(key))
	assert.Equal(t, 1, c.Decrement(key))
	assert.Equal(t, 0, c.Decrement(key))
	assert.Equal(t, 0, c.Get(key))
}

func TestCounter_FloorsAtZero(t *testing.T) {
	c := NewViewerCounter(discardLogger())
	key := ProjectRoom("42")

	// Decrementing an absent key is a benign race, not an error
	assert.Equal(t, 0, c.Decrement(key))
	assert.Equal(t, 0, c.Get(key))
}

func TestCounter_KeysAreIndependent(t *testing.T) {
	c := NewViewerCounter(discardLogger())
	c.Increment(ProjectRoom("42"))
	c.Increment(FreelancerRoom("42"))

	assert.Equal(t, 1, c.Get(ProjectRoom("42")))
	assert.Equal(t, 1, c.Get(FreelancerRoom("42")))
	assert.Equal(t, 0, c.Get(ProjectRoom("7")))
}

func TestCounter_ConcurrentUpdatesDontLoseWrites(t *testing.T) {
	c := NewViewerCounter(discardLogger())
	key := ProjectRoom("42")

	const workers = 50
	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				c.Increment(key)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, workers*rounds, c.Get(key))

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				c.Decrement(key)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, c.Get(key))
}
