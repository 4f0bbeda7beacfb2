package store

import (
	"context"
	"strings"
	"testing"
	"time"

	game_constants "Camaleon/constants/game"
	game_models "Camaleon/models/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(host string) *game_models.Room {
	return &game_models.Room{
		HostID: host,
		Players: []*game_models.Player{
			{ID: host, Name: "Host"},
		},
		State: game_models.StateWaiting,
		Topic: "animals",
		Mode:  game_constants.ModeImpostor,
	}
}

func TestMemoryStoreCreateAssignsUniqueCodes(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room := testRoom("host")
		require.NoError(t, s.Create(ctx, room))
		assert.Len(t, room.Code, game_constants.RoomCodeLength)
		assert.False(t, seen[room.Code], "duplicate code %s", room.Code)
		seen[room.Code] = true
	}
}

func TestMemoryStoreGetIsCaseInsensitive(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	room := testRoom("host")
	require.NoError(t, s.Create(ctx, room))

	got, err := s.Get(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.Code, got.Code)

	got, err = s.Get(ctx, "  "+strings.ToLower(room.Code)+" ")
	require.NoError(t, err)
	assert.Equal(t, room.Code, got.Code)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore(0)
	_, err := s.Get(context.Background(), "NOPE12")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestMemoryStoreDeleteImmediateWithZeroGrace(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	room := testRoom("host")
	require.NoError(t, s.Create(ctx, room))
	require.NoError(t, s.Delete(ctx, room.Code))

	_, err := s.Get(ctx, room.Code)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, s.Delete(ctx, room.Code), ErrRoomNotFound)
}

func TestMemoryStoreDeleteWaitsOutGracePeriod(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	room := testRoom("host")
	require.NoError(t, s.Create(ctx, room))

	room.Players = nil
	require.NoError(t, s.Save(ctx, room))
	require.NoError(t, s.Delete(ctx, room.Code))

	// still present inside the grace window
	_, err := s.Get(ctx, room.Code)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := s.Get(ctx, room.Code)
		return err == ErrRoomNotFound
	}, time.Second, 5*time.Millisecond)
}

func TestMemoryStoreRejoinCancelsPendingDelete(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	room := testRoom("host")
	require.NoError(t, s.Create(ctx, room))

	room.Players = nil
	require.NoError(t, s.Save(ctx, room))
	require.NoError(t, s.Delete(ctx, room.Code))

	// someone comes back before the timer fires
	room.Players = []*game_models.Player{{ID: "host", Name: "Host"}}
	require.NoError(t, s.Save(ctx, room))

	time.Sleep(60 * time.Millisecond)
	_, err := s.Get(ctx, room.Code)
	assert.NoError(t, err)
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, testRoom("a")))
	require.NoError(t, s.Create(ctx, testRoom("b")))

	rooms, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
