package realtime

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a StatsProvider when the entity does not exist.
var ErrNotFound = errors.New("entity not found")

// ProjectStats is a read-only snapshot of a project's persisted counters.
type ProjectStats struct {
	ViewCount         int
	ApplicationsCount int
	BookmarkCount     int
}

// FreelancerStats is a read-only snapshot of a freelancer's persisted counters.
type FreelancerStats struct {
	ViewCount    int
	ProjectCount int
}

// StatsProvider is the data-layer collaborator the coordinator pulls
// persisted counts from. Lookups are context-bounded; a slow or failed
// fetch only costs the snapshot message, never the viewer bookkeeping.
type StatsProvider interface {
	GetProjectStats(ctx context.Context, projectID string) (ProjectStats, error)
	GetFreelancerStats(ctx context.Context, freelancerID string) (FreelancerStats, error)
}
