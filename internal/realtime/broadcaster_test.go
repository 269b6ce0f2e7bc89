package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_DeliversToRoomMembersOnly(t *testing.T) {
	registry := NewConnectionRegistry()
	b := NewRoomBroadcaster(registry, discardLogger())

	inRoom1 := &mockClient{}
	inRoom2 := &mockClient{}
	elsewhere := &mockClient{}
	noRoom := &mockClient{}
	registry.Register("c1", inRoom1)
	registry.Register("c2", inRoom2)
	registry.Register("c3", elsewhere)
	registry.Register("c4", noRoom)
	registry.SetRoom("c1", ProjectRoom("42"))
	registry.SetRoom("c2", ProjectRoom("42"))
	registry.SetRoom("c3", ProjectRoom("99"))

	key := ProjectRoom("42")
	b.Broadcast(key, NewUpdate(UpdateViewerJoin, key, &Stats{CurrentViewers: intPtr(2)}))

	require.Len(t, inRoom1.updates(), 1)
	require.Len(t, inRoom2.updates(), 1)
	assert.Empty(t, elsewhere.updates())
	assert.Empty(t, noRoom.updates())

	got := inRoom1.updates()[0]
	assert.Equal(t, UpdateViewerJoin, got.Type)
	assert.Equal(t, "42", got.ProjectID)
	assert.Empty(t, got.FreelancerID)
	require.NotNil(t, got.Data)
	require.NotNil(t, got.Data.CurrentViewers)
	assert.Equal(t, 2, *got.Data.CurrentViewers)
}

func TestBroadcaster_FailedSendDoesNotStopOthers(t *testing.T) {
	registry := NewConnectionRegistry()
	b := NewRoomBroadcaster(registry, discardLogger())

	dead := &mockClient{sendErr: true}
	alive := &mockClient{}
	registry.Register("dead", dead)
	registry.Register("alive", alive)
	registry.SetRoom("dead", ProjectRoom("42"))
	registry.SetRoom("alive", ProjectRoom("42"))

	key := ProjectRoom("42")
	b.Broadcast(key, NewUpdate(UpdateViewerLeave, key, &Stats{CurrentViewers: intPtr(1)}))

	assert.Len(t, alive.updates(), 1)
}

func TestBroadcaster_SendTo(t *testing.T) {
	registry := NewConnectionRegistry()
	b := NewRoomBroadcaster(registry, discardLogger())

	target := &mockClient{}
	other := &mockClient{}
	registry.Register("c1", target)
	registry.Register("c2", other)

	b.SendTo("c1", Update{Type: UpdateStats, Data: &Stats{Connected: true, Timestamp: 123}})

	require.Len(t, target.updates(), 1)
	assert.Empty(t, other.updates())
	assert.True(t, target.updates()[0].Data.Connected)

	// Unknown target is silently dropped
	b.SendTo("ghost", Update{Type: UpdateStats})
}

func TestBroadcaster_PerConnectionOrdering(t *testing.T) {
	registry := NewConnectionRegistry()
	b := NewRoomBroadcaster(registry, discardLogger())

	client := &mockClient{}
	registry.Register("c1", client)
	registry.SetRoom("c1", ProjectRoom("42"))

	key := ProjectRoom("42")
	for i := 1; i <= 5; i++ {
		b.Broadcast(key, NewUpdate(UpdateViewerJoin, key, &Stats{CurrentViewers: intPtr(i)}))
	}

	got := client.updates()
	require.Len(t, got, 5)
	for i, u := range got {
		assert.Equal(t, i+1, *u.Data.CurrentViewers)
	}
}
