package store

import (
	"context"
	"encoding/json"
	"fmt"

	game_models "Camaleon/models/game"
	"Camaleon/models/postgres"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore persists rooms across the rooms, room_players and
// game_states tables.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, room *game_models.Room) error {
	row := roomToRow(room)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// BeforeCreate hook assigns a unique code
		if err := tx.Omit("Players", "GameState").Create(row).Error; err != nil {
			return err
		}
		for i, p := range room.Players {
			if err := tx.Create(playerToRow(row.Code, i, p)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error creating room: %v", err)
	}
	room.Code = row.Code
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, code string) (*game_models.Room, error) {
	var row postgres.Room
	err := s.db.WithContext(ctx).
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("GameState").
		Where("code = ?", game_models.NormalizeCode(code)).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("error loading room: %v", err)
	}
	return rowToRoom(&row)
}

func (s *PostgresStore) Save(ctx context.Context, room *game_models.Room) error {
	row := roomToRow(room)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&postgres.Room{}).Where("code = ?", row.Code).
			Updates(map[string]interface{}{
				"host_id":       row.HostID,
				"state":         row.State,
				"topic":         row.Topic,
				"mode":          row.Mode,
				"passcode_hash": row.PasscodeHash,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotFound
		}

		// roster changes are wholesale: replace the player rows
		if err := tx.Where("room_code = ?", row.Code).
			Delete(&postgres.RoomPlayer{}).Error; err != nil {
			return err
		}
		for i, p := range room.Players {
			if err := tx.Create(playerToRow(row.Code, i, p)).Error; err != nil {
				return err
			}
		}

		if room.State != game_models.StateWaiting {
			gs, err := gameStateToRow(room)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(gs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == ErrRoomNotFound {
		return err
	}
	if err != nil {
		return fmt.Errorf("error saving room: %v", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, code string) error {
	code = game_models.NormalizeCode(code)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_code = ?", code).
			Delete(&postgres.GameState{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_code = ?", code).
			Delete(&postgres.RoomPlayer{}).Error; err != nil {
			return err
		}
		res := tx.Where("code = ?", code).Delete(&postgres.Room{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotFound
		}
		return nil
	})
	if err == ErrRoomNotFound {
		return err
	}
	if err != nil {
		return fmt.Errorf("error deleting room: %v", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*game_models.Room, error) {
	var rows []postgres.Room
	err := s.db.WithContext(ctx).
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("GameState").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %v", err)
	}
	rooms := make([]*game_models.Room, 0, len(rows))
	for i := range rows {
		room, err := rowToRoom(&rows[i])
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// --- row mapping ---

func roomToRow(room *game_models.Room) *postgres.Room {
	return &postgres.Room{
		Code:         room.Code,
		HostID:       room.HostID,
		State:        string(room.State),
		Topic:        room.Topic,
		Mode:         room.Mode,
		PasscodeHash: room.PasscodeHash,
		CreatedAt:    room.CreatedAt,
	}
}

func playerToRow(code string, position int, p *game_models.Player) *postgres.RoomPlayer {
	return &postgres.RoomPlayer{
		RoomCode:   code,
		PlayerID:   p.ID,
		Name:       p.Name,
		Position:   position,
		Ready:      p.Ready,
		Word:       p.Word,
		WordKind:   p.WordKind,
		HasVoted:   p.HasVoted,
		VotedFor:   p.VotedFor,
		VoteCount:  p.VoteCount,
		Eliminated: p.Eliminated,
	}
}

func gameStateToRow(room *game_models.Room) (*postgres.GameState, error) {
	spinOrder, err := json.Marshal(room.SpinOrder)
	if err != nil {
		return nil, fmt.Errorf("error marshaling spin order: %v", err)
	}
	tied, err := json.Marshal(room.Vote.TiedPlayers)
	if err != nil {
		return nil, fmt.Errorf("error marshaling tied players: %v", err)
	}
	return &postgres.GameState{
		RoomCode:       room.Code,
		SecretWord:     room.SecretWord,
		SpinOrder:      spinOrder,
		VotePhase:      string(room.Vote.Phase),
		TieBreakRound:  room.Vote.TieBreakRound,
		TiedPlayers:    tied,
		LastEliminated: room.Vote.LastEliminated,
	}, nil
}

func rowToRoom(row *postgres.Room) (*game_models.Room, error) {
	room := &game_models.Room{
		Code:         row.Code,
		HostID:       row.HostID,
		State:        game_models.RoomState(row.State),
		Topic:        row.Topic,
		Mode:         row.Mode,
		PasscodeHash: row.PasscodeHash,
		CreatedAt:    row.CreatedAt,
		Vote:         game_models.VoteState{Phase: game_models.PhaseIdle},
		Players:      make([]*game_models.Player, 0, len(row.Players)),
	}
	for _, p := range row.Players {
		room.Players = append(room.Players, &game_models.Player{
			ID:         p.PlayerID,
			Name:       p.Name,
			Ready:      p.Ready,
			Word:       p.Word,
			WordKind:   p.WordKind,
			HasVoted:   p.HasVoted,
			VotedFor:   p.VotedFor,
			VoteCount:  p.VoteCount,
			Eliminated: p.Eliminated,
		})
	}
	if gs := row.GameState; gs != nil {
		room.SecretWord = gs.SecretWord
		if len(gs.SpinOrder) > 0 {
			if err := json.Unmarshal(gs.SpinOrder, &room.SpinOrder); err != nil {
				return nil, fmt.Errorf("error unmarshaling spin order: %v", err)
			}
		}
		room.Vote = game_models.VoteState{
			Phase:          game_models.VotePhase(gs.VotePhase),
			TieBreakRound:  gs.TieBreakRound,
			LastEliminated: gs.LastEliminated,
		}
		if len(gs.TiedPlayers) > 0 {
			if err := json.Unmarshal(gs.TiedPlayers, &room.Vote.TiedPlayers); err != nil {
				return nil, fmt.Errorf("error unmarshaling tied players: %v", err)
			}
		}
	}
	return room, nil
}
