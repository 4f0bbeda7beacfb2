package game

import (
	"math/rand"

	game_constants "Camaleon/constants/game"
	models "Camaleon/models/game"
)

// MinPlayers returns the minimum player count needed to start a mode
func MinPlayers(mode string) (int, error) {
	switch mode {
	case game_constants.ModeSimilar:
		return game_constants.MinPlayersSimilar, nil
	case game_constants.ModeImpostor:
		return game_constants.MinPlayersImpostor, nil
	case game_constants.ModeMixed:
		return game_constants.MinPlayersMixed, nil
	default:
		return 0, ErrUnknownMode
	}
}

// BuildSpinOrder builds the word-kind tags for n players according to the
// mode rules, then shuffles them uniformly (Fisher-Yates).
//   - similar:  one "similar", rest "normal"
//   - impostor: one "impostor", rest "normal"
//   - mixed:    one "similar", one "impostor", rest "normal"
func BuildSpinOrder(mode string, n int) ([]string, error) {
	min, err := MinPlayers(mode)
	if err != nil {
		return nil, err
	}
	if n < min {
		return nil, ErrNotEnoughPlayers
	}

	kinds := make([]string, n)
	for i := range kinds {
		kinds[i] = game_constants.WordKindNormal
	}
	switch mode {
	case game_constants.ModeSimilar:
		kinds[0] = game_constants.WordKindSimilar
	case game_constants.ModeImpostor:
		kinds[0] = game_constants.WordKindImpostor
	case game_constants.ModeMixed:
		kinds[0] = game_constants.WordKindSimilar
		kinds[1] = game_constants.WordKindImpostor
	}

	shuffle(kinds)
	return kinds, nil
}

func shuffle(kinds []string) {
	for i := len(kinds) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
}

// assignWords pairs the shuffled kinds with the room's players in join
// order and hands each player what their tag says they should see.
func assignWords(room *models.Room, kinds []string, secret string, pool []string) {
	decoy := SimilarWord(secret, pool, game_constants.SimilarityThreshold)

	room.SecretWord = secret
	room.SpinOrder = make([]models.SpinEntry, len(room.Players))
	for i, p := range room.Players {
		kind := kinds[i]
		room.SpinOrder[i] = models.SpinEntry{PlayerID: p.ID, Kind: kind}
		p.WordKind = kind
		switch kind {
		case game_constants.WordKindSimilar:
			p.Word = decoy
		case game_constants.WordKindImpostor:
			p.Word = game_constants.ImpostorPlaceholder
		default:
			p.Word = secret
		}
	}
}
