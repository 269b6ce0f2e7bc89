package realtime

import (
	"encoding/json"
	"log/slog"
)

// RoomBroadcaster fans typed updates out to room members. Delivery is
// fire-and-forget per connection: one dead socket must not stop the rest of
// the room from hearing about the change, and never raises to the caller.
type RoomBroadcaster struct {
	registry *ConnectionRegistry
	log      *slog.Logger
}

func NewRoomBroadcaster(registry *ConnectionRegistry, log *slog.Logger) *RoomBroadcaster {
	if log == nil {
		log = slog.Default()
	}
	return &RoomBroadcaster{registry: registry, log: log}
}

// Broadcast delivers the update to every connection currently in the room.
func (b *RoomBroadcaster) Broadcast(key RoomKey, update Update) {
	payload, err := json.Marshal(update)
	if err != nil {
		b.log.Error("marshal realtime update", "room", key.String(), "err", err)
		return
	}
	for _, client := range b.registry.MembersOf(key) {
		if ok := client.Send(payload); !ok {
			// client write failed; the ws handler cleans it up on its side
			b.log.Debug("dropped realtime update", "room", key.String())
		}
	}
}

// SendTo delivers the update to exactly one connection, used for the
// initial snapshot and the join-acknowledgement stats push.
func (b *RoomBroadcaster) SendTo(connID string, update Update) {
	client, ok := b.registry.ClientFor(connID)
	if !ok {
		return
	}
	payload, err := json.Marshal(update)
	if err != nil {
		b.log.Error("marshal realtime update", "conn", connID, "err", err)
		return
	}
	if ok := client.Send(payload); !ok {
		b.log.Debug("dropped realtime update", "conn", connID)
	}
}
