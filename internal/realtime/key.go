package realtime

// EntityKind identifies which kind of marketplace entity a room tracks.
type EntityKind string

const (
	KindProject    EntityKind = "project"
	KindFreelancer EntityKind = "freelancer"
)

// RoomKey identifies a broadcast room by the entity its viewers are watching.
// Rooms are implicit: a room exists as the set of connections currently
// pointed at this key, so there is nothing to create or tear down.
type RoomKey struct {
	Kind EntityKind
	ID   string
}

func ProjectRoom(id string) RoomKey {
	return RoomKey{Kind: KindProject, ID: id}
}

func FreelancerRoom(id string) RoomKey {
	return RoomKey{Kind: KindFreelancer, ID: id}
}

// String renders the key in the legacy "project_<id>" room-name form,
// which is what shows up in logs and is familiar from the frontend.
func (k RoomKey) String() string {
	return string(k.Kind) + "_" + k.ID
}
