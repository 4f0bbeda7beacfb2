package store

import (
	"context"
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"sync"
	"time"

	game_constants "Camaleon/constants/game"
	game_models "Camaleon/models/game"
)

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// MemoryStore keeps rooms in a process-local map. Deletions wait out a
// grace period so a transient disconnect of the last player doesn't kill
// the room immediately.
type MemoryStore struct {
	mu          sync.RWMutex
	rooms       map[string]*game_models.Room
	pendingDrop map[string]*time.Timer
	grace       time.Duration
}

// NewMemoryStore builds an empty in-memory store. A zero grace period
// makes deletes immediate, which the tests rely on.
func NewMemoryStore(grace time.Duration) *MemoryStore {
	return &MemoryStore{
		rooms:       make(map[string]*game_models.Room),
		pendingDrop: make(map[string]*time.Timer),
		grace:       grace,
	}
}

func generateCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(codeChars))))
		if err != nil {
			// fall back to math/rand if crypto fails
			code[i] = codeChars[rand.Intn(len(codeChars))]
			continue
		}
		code[i] = codeChars[n.Int64()]
	}
	return string(code)
}

func (s *MemoryStore) Create(ctx context.Context, room *game_models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		code := generateCode(game_constants.RoomCodeLength)
		if _, taken := s.rooms[code]; taken {
			continue
		}
		room.Code = code
		s.rooms[code] = room
		return nil
	}
}

func (s *MemoryStore) Get(ctx context.Context, code string) (*game_models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[game_models.NormalizeCode(code)]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Save cancels any pending deletion when the room has members again
func (s *MemoryStore) Save(ctx context.Context, room *game_models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := game_models.NormalizeCode(room.Code)
	s.rooms[code] = room
	if len(room.Players) > 0 {
		if t, ok := s.pendingDrop[code]; ok {
			t.Stop()
			delete(s.pendingDrop, code)
		}
	}
	return nil
}

// Delete drops a room after the grace period, unless someone re-joined in
// the meantime
func (s *MemoryStore) Delete(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	code = game_models.NormalizeCode(code)
	if _, ok := s.rooms[code]; !ok {
		return ErrRoomNotFound
	}
	if s.grace == 0 {
		delete(s.rooms, code)
		return nil
	}
	if _, scheduled := s.pendingDrop[code]; scheduled {
		return nil
	}
	s.pendingDrop[code] = time.AfterFunc(s.grace, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pendingDrop, code)
		if room, ok := s.rooms[code]; ok && len(room.Players) == 0 {
			delete(s.rooms, code)
		}
	})
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*game_models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]*game_models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	return rooms, nil
}
