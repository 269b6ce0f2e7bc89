package realtime

import (
	"log/slog"
	"sync"
)

// ViewerCounter tracks how many connections are currently viewing each
// entity. Counts are created lazily on first join and floored at zero;
// an underflow means a join/leave pairing bug upstream, so it is logged
// rather than surfaced.
type ViewerCounter struct {
	mu     sync.Mutex
	counts map[RoomKey]int
	log    *slog.Logger
}

func NewViewerCounter(log *slog.Logger) *ViewerCounter {
	if log == nil {
		log = slog.Default()
	}
	return &ViewerCounter{
		counts: make(map[RoomKey]int),
		log:    log,
	}
}

// Increment adds one viewer to the room and returns the new count.
func (v *ViewerCounter) Increment(key RoomKey) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.counts[key]++
	return v.counts[key]
}

// Decrement removes one viewer, floored at zero. Decrementing an absent or
// zero key is treated as a benign race, not an error.
func (v *ViewerCounter) Decrement(key RoomKey) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	count, ok := v.counts[key]
	if !ok || count == 0 {
		v.log.Warn("viewer count underflow", "room", key.String())
		v.counts[key] = 0
		return 0
	}
	count--
	v.counts[key] = count
	return count
}

// Get returns the current count, zero if the key was never seen.
func (v *ViewerCounter) Get(key RoomKey) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counts[key]
}
