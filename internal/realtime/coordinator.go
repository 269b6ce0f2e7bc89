package realtime

import (
	"context"
	"log/slog"
	"time"
)

// now is a small indirection to allow test stubbing if needed.
var now = time.Now

const defaultStatsTimeout = 3 * time.Second

// PresenceCoordinator drives the per-connection state machine:
// Disconnected -> Connected(no room) -> Connected(in room), with direct
// room switches. It owns the ordering between registry updates, counter
// mutations and broadcasts; the pieces themselves never call each other.
type PresenceCoordinator struct {
	registry     *ConnectionRegistry
	counter      *ViewerCounter
	broadcaster  *RoomBroadcaster
	stats        StatsProvider
	log          *slog.Logger
	statsTimeout time.Duration
}

func NewPresenceCoordinator(
	registry *ConnectionRegistry,
	counter *ViewerCounter,
	broadcaster *RoomBroadcaster,
	stats StatsProvider,
	log *slog.Logger,
) *PresenceCoordinator {
	if log == nil {
		log = slog.Default()
	}
	return &PresenceCoordinator{
		registry:     registry,
		counter:      counter,
		broadcaster:  broadcaster,
		stats:        stats,
		log:          log,
		statsTimeout: defaultStatsTimeout,
	}
}

// OnConnect registers the connection and pushes the initial snapshot.
func (p *PresenceCoordinator) OnConnect(connID string, client Client) {
	p.registry.Register(connID, client)
	p.log.Info("client connected", "conn", connID)

	p.broadcaster.SendTo(connID, Update{
		Type: UpdateStats,
		Data: &Stats{
			Connected: true,
			Timestamp: now().UnixMilli(),
		},
	})
}

// OnJoin moves the connection into the room for the given entity, exiting
// any previous room first. The joining client additionally receives a full
// stats snapshot; everyone in the room (joiner included) hears the new
// viewer count.
func (p *PresenceCoordinator) OnJoin(ctx context.Context, connID string, key RoomKey) {
	prev, hadPrev, ok := p.registry.SetRoom(connID, key)
	if !ok {
		// already disconnected; touching the counter here would leak an increment
		p.log.Debug("join from unknown connection", "conn", connID, "room", key.String())
		return
	}

	if hadPrev {
		count := p.counter.Decrement(prev)
		p.broadcaster.Broadcast(prev, NewUpdate(UpdateViewerLeave, prev, &Stats{
			CurrentViewers: intPtr(count),
		}))
	}

	count := p.counter.Increment(key)
	p.broadcaster.Broadcast(key, NewUpdate(UpdateViewerJoin, key, &Stats{
		CurrentViewers: intPtr(count),
	}))

	p.log.Info("client joined room", "conn", connID, "room", key.String(), "viewers", count)

	p.sendSnapshot(ctx, connID, key, count)
}

// OnLeave exits the room if the connection is actually in it. A leave for a
// room the client already left is a duplicate from the frontend and is
// dropped without touching the counter.
func (p *PresenceCoordinator) OnLeave(connID string, key RoomKey) {
	if !p.registry.ClearRoomIf(connID, key) {
		p.log.Debug("stale leave ignored", "conn", connID, "room", key.String())
		return
	}

	count := p.counter.Decrement(key)
	p.broadcaster.Broadcast(key, NewUpdate(UpdateViewerLeave, key, &Stats{
		CurrentViewers: intPtr(count),
	}))

	p.log.Info("client left room", "conn", connID, "room", key.String(), "viewers", count)
}

// OnDisconnect releases whatever room the connection still held. Safe to
// call more than once; the second call finds the registry already empty.
func (p *PresenceCoordinator) OnDisconnect(connID string) {
	last, hadRoom := p.registry.Unregister(connID)
	if hadRoom {
		count := p.counter.Decrement(last)
		p.broadcaster.Broadcast(last, NewUpdate(UpdateViewerLeave, last, &Stats{
			CurrentViewers: intPtr(count),
		}))
	}
	p.log.Info("client disconnected", "conn", connID)
}

// OnApplication notifies a project room that someone applied; the fresh
// applications count comes from the data layer, not from any local state.
func (p *PresenceCoordinator) OnApplication(ctx context.Context, projectID string) {
	key := ProjectRoom(projectID)
	stats, err := p.fetchProjectStats(ctx, projectID)
	if err != nil {
		p.log.Warn("skip application broadcast", "project", projectID, "err", err)
		return
	}
	p.broadcaster.Broadcast(key, NewUpdate(UpdateApplication, key, &Stats{
		ApplicationsCount: intPtr(stats.ApplicationsCount),
	}))
}

// OnBookmark notifies a project room that its bookmark count changed.
func (p *PresenceCoordinator) OnBookmark(ctx context.Context, projectID string) {
	key := ProjectRoom(projectID)
	stats, err := p.fetchProjectStats(ctx, projectID)
	if err != nil {
		p.log.Warn("skip bookmark broadcast", "project", projectID, "err", err)
		return
	}
	p.broadcaster.Broadcast(key, NewUpdate(UpdateBookmark, key, &Stats{
		BookmarkCount: intPtr(stats.BookmarkCount),
	}))
}

// OnInquiry notifies a room that a question/inquiry was raised. The update
// carries no counters; clients refetch what they need.
func (p *PresenceCoordinator) OnInquiry(key RoomKey) {
	p.broadcaster.Broadcast(key, NewUpdate(UpdateInquiry, key, nil))
}

// sendSnapshot pushes the full stats snapshot to the joining client,
// merging the just-updated live viewer count with persisted counters. A
// failed lookup costs only this message; the join already completed.
func (p *PresenceCoordinator) sendSnapshot(ctx context.Context, connID string, key RoomKey, currentViewers int) {
	ctx, cancel := context.WithTimeout(ctx, p.statsTimeout)
	defer cancel()

	var data *Stats
	switch key.Kind {
	case KindProject:
		stats, err := p.stats.GetProjectStats(ctx, key.ID)
		if err != nil {
			p.log.Warn("skip stats snapshot", "room", key.String(), "err", err)
			return
		}
		data = &Stats{
			ViewCount:         intPtr(stats.ViewCount),
			CurrentViewers:    intPtr(currentViewers),
			ApplicationsCount: intPtr(stats.ApplicationsCount),
			BookmarkCount:     intPtr(stats.BookmarkCount),
		}
	case KindFreelancer:
		stats, err := p.stats.GetFreelancerStats(ctx, key.ID)
		if err != nil {
			p.log.Warn("skip stats snapshot", "room", key.String(), "err", err)
			return
		}
		data = &Stats{
			ViewCount:      intPtr(stats.ViewCount),
			CurrentViewers: intPtr(currentViewers),
			ProjectCount:   intPtr(stats.ProjectCount),
		}
	default:
		return
	}

	p.broadcaster.SendTo(connID, NewUpdate(UpdateStats, key, data))
}

func (p *PresenceCoordinator) fetchProjectStats(ctx context.Context, projectID string) (ProjectStats, error) {
	ctx, cancel := context.WithTimeout(ctx, p.statsTimeout)
	defer cancel()
	return p.stats.GetProjectStats(ctx, projectID)
}
