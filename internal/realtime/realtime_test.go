package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

// mockClient captures every update sent to one connection, in order.
type mockClient struct {
	mu       sync.Mutex
	received []Update
	sendErr  bool
	closed   bool
}

func (m *mockClient) Send(message []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr {
		return false
	}
	var u Update
	if err := json.Unmarshal(message, &u); err != nil {
		return false
	}
	m.received = append(m.received, u)
	return true
}

func (m *mockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *mockClient) updates() []Update {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Update, len(m.received))
	copy(out, m.received)
	return out
}

func (m *mockClient) updatesOfType(t UpdateType) []Update {
	var out []Update
	for _, u := range m.updates() {
		if u.Type == t {
			out = append(out, u)
		}
	}
	return out
}

// stubStats serves canned snapshots; errs forces every lookup to fail.
type stubStats struct {
	projects    map[string]ProjectStats
	freelancers map[string]FreelancerStats
	errs        bool
}

func (s *stubStats) GetProjectStats(_ context.Context, id string) (ProjectStats, error) {
	if s.errs {
		return ProjectStats{}, ErrNotFound
	}
	stats, ok := s.projects[id]
	if !ok {
		return ProjectStats{}, ErrNotFound
	}
	return stats, nil
}

func (s *stubStats) GetFreelancerStats(_ context.Context, id string) (FreelancerStats, error) {
	if s.errs {
		return FreelancerStats{}, ErrNotFound
	}
	stats, ok := s.freelancers[id]
	if !ok {
		return FreelancerStats{}, ErrNotFound
	}
	return stats, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCoordinator(stats StatsProvider) (*PresenceCoordinator, *ConnectionRegistry, *ViewerCounter) {
	log := discardLogger()
	registry := NewConnectionRegistry()
	counter := NewViewerCounter(log)
	broadcaster := NewRoomBroadcaster(registry, log)
	return NewPresenceCoordinator(registry, counter, broadcaster, stats, log), registry, counter
}
