package realtime

import (
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// connection is the registry's record for one live client: its outbound
// sink and the single room it currently occupies (if any).
type connection struct {
	client  Client
	room    RoomKey
	hasRoom bool
}

// ConnectionRegistry tracks live connections and, for each, at most one
// currently-joined room. It owns nothing else: counters and broadcasts are
// orchestrated by the coordinator so each piece has a single job.
type ConnectionRegistry struct {
	mu    sync.RWMutex
	conns map[string]*connection
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		conns: make(map[string]*connection),
	}
}

// Register adds a connection with no room. Re-registering an existing id is
// a no-op so a duplicate connect event cannot drop an active room pointer.
func (r *ConnectionRegistry) Register(connID string, client Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[connID]; ok {
		return
	}
	r.conns[connID] = &connection{client: client}
}

// SetRoom atomically replaces the connection's current room and returns the
// previous one, which the caller needs to exit cleanly. ok is false when the
// id is unknown (the connection already disconnected) and nothing changed;
// a join racing a disconnect must not touch any counter in that case.
func (r *ConnectionRegistry) SetRoom(connID string, key RoomKey) (prev RoomKey, hadPrev bool, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, found := r.conns[connID]
	if !found {
		return RoomKey{}, false, false
	}
	prev, hadPrev = conn.room, conn.hasRoom
	conn.room = key
	conn.hasRoom = true
	return prev, hadPrev, true
}

// ClearRoomIf removes the connection's room pointer only when it currently
// equals key, reporting whether it did. A stale or duplicate leave for a
// room the client already left matches nothing and changes nothing.
func (r *ConnectionRegistry) ClearRoomIf(connID string, key RoomKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[connID]
	if !ok || !conn.hasRoom || conn.room != key {
		return false
	}
	conn.room = RoomKey{}
	conn.hasRoom = false
	return true
}

// Room returns the connection's current room, if it has one.
func (r *ConnectionRegistry) Room(connID string) (RoomKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[connID]
	if !ok || !conn.hasRoom {
		return RoomKey{}, false
	}
	return conn.room, true
}

// Unregister removes the connection and returns its last room so the caller
// can perform the matching viewer decrement. Safe to call twice: the second
// call finds nothing and reports no room.
func (r *ConnectionRegistry) Unregister(connID string) (last RoomKey, hadRoom bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[connID]
	if !ok {
		return RoomKey{}, false
	}
	delete(r.conns, connID)
	return conn.room, conn.hasRoom
}

// ClientFor returns the outbound sink for one connection.
func (r *ConnectionRegistry) ClientFor(connID string) (Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[connID]
	if !ok {
		return nil, false
	}
	return conn.client, true
}

// MembersOf returns the sinks of every connection currently in the room.
func (r *ConnectionRegistry) MembersOf(key RoomKey) []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var members []Client
	for _, conn := range r.conns {
		if conn.hasRoom && conn.room == key {
			members = append(members, conn.client)
		}
	}
	return members
}

// Len returns the number of registered connections.
func (r *ConnectionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
