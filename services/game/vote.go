package game

import (
	game_constants "Camaleon/constants/game"
	models "Camaleon/models/game"
)

// VoteResult is the outcome of a completed voting round
type VoteResult struct {
	Resolved       bool     `json:"resolved"`
	IsTie          bool     `json:"is_tie"`
	TiedPlayers    []string `json:"tied_players,omitempty"`
	Eliminated     string   `json:"eliminated,omitempty"`
	EliminatedKind string   `json:"eliminated_kind,omitempty"`
	GameOver       bool     `json:"game_over"`
	Winner         string   `json:"winner,omitempty"` // "crew" or "impostors"
}

// BeginVoting opens a voting round. Host only, game must be in progress
// and no round already open.
func BeginVoting(room *models.Room, hostID string) error {
	if room.HostID != hostID {
		return ErrNotHost
	}
	if room.State != models.StatePlaying {
		return ErrGameNotStarted
	}
	if room.Vote.Phase == models.PhaseVoting || room.Vote.Phase == models.PhaseTieBreak {
		return ErrVotingInProgress
	}
	room.Vote = models.VoteState{Phase: models.PhaseVoting}
	for _, p := range room.Players {
		p.ResetVote()
	}
	return nil
}

// CastVote records one vote. Self-votes, repeat votes and votes involving
// eliminated players are rejected; during a tie-break only tied players are
// legal targets. Once every active player has voted the round resolves:
// a unique maximum eliminates that player, a tied maximum opens a tie-break
// round restricted to the tied players.
func CastVote(room *models.Room, voterID, targetID string) (*VoteResult, error) {
	if room.Vote.Phase != models.PhaseVoting && room.Vote.Phase != models.PhaseTieBreak {
		return nil, ErrNotVoting
	}
	voter := room.FindPlayer(voterID)
	target := room.FindPlayer(targetID)
	if voter == nil || target == nil {
		return nil, ErrNotMember
	}
	if voter.Eliminated || target.Eliminated {
		return nil, ErrEliminated
	}
	if voterID == targetID {
		return nil, ErrSelfVote
	}
	if voter.HasVoted {
		return nil, ErrAlreadyVoted
	}
	if room.Vote.Phase == models.PhaseTieBreak && !room.Vote.IsTiedPlayer(targetID) {
		return nil, ErrNotTiedTarget
	}

	voter.HasVoted = true
	voter.VotedFor = targetID
	target.VoteCount++

	if !allVotesIn(room) {
		return &VoteResult{}, nil
	}
	return resolve(room), nil
}

func allVotesIn(room *models.Room) bool {
	for _, p := range room.ActivePlayers() {
		if !p.HasVoted {
			return false
		}
	}
	return true
}

// Tally scans the active players and returns the highest vote count plus
// every player holding it
func Tally(room *models.Room) (maxVotes int, tied []string) {
	for _, p := range room.ActivePlayers() {
		if p.VoteCount > maxVotes {
			maxVotes = p.VoteCount
			tied = []string{p.ID}
		} else if p.VoteCount == maxVotes && maxVotes > 0 {
			tied = append(tied, p.ID)
		}
	}
	return maxVotes, tied
}

func resolve(room *models.Room) *VoteResult {
	_, tied := Tally(room)

	if len(tied) > 1 {
		// tie-break: same round again, but only the tied leaders can be voted
		room.Vote.Phase = models.PhaseTieBreak
		room.Vote.TieBreakRound++
		room.Vote.TiedPlayers = tied
		for _, p := range room.Players {
			p.ResetVote()
		}
		return &VoteResult{Resolved: true, IsTie: true, TiedPlayers: tied}
	}

	eliminated := room.FindPlayer(tied[0])
	eliminated.Eliminated = true
	room.Vote.Phase = models.PhaseResolved
	room.Vote.TiedPlayers = nil
	room.Vote.LastEliminated = eliminated.ID

	result := &VoteResult{
		Resolved:       true,
		Eliminated:     eliminated.ID,
		EliminatedKind: eliminated.WordKind,
	}

	switch {
	case eliminated.WordKind != game_constants.WordKindNormal:
		// the odd one out was caught
		result.GameOver = true
		result.Winner = "crew"
		room.State = models.StateFinished
	case len(room.ActivePlayers()) < game_constants.MinPlayersImpostor:
		// too few players left to keep voting
		result.GameOver = true
		result.Winner = "impostors"
		room.State = models.StateFinished
	default:
		// wrong guess, play another round
		room.Vote.Phase = models.PhaseIdle
		for _, p := range room.Players {
			p.ResetVote()
		}
	}
	return result
}
