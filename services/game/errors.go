package game

import "errors"

// Rule violations surfaced to controllers, which map them to HTTP statuses
var (
	ErrRoomFull         = errors.New("room is full")
	ErrNameTaken        = errors.New("display name already taken in this room")
	ErrGameStarted      = errors.New("game already started")
	ErrGameNotStarted   = errors.New("game has not started")
	ErrNotHost          = errors.New("only the host can do that")
	ErrNotMember        = errors.New("player is not in this room")
	ErrNotEnoughPlayers = errors.New("not enough players for this mode")
	ErrPlayersNotReady  = errors.New("not all players are ready")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrUnknownTopic     = errors.New("unknown topic")
	ErrNotVoting        = errors.New("no voting round in progress")
	ErrVotingInProgress = errors.New("a voting round is already in progress")
	ErrSelfVote         = errors.New("players cannot vote for themselves")
	ErrAlreadyVoted     = errors.New("player already voted this round")
	ErrEliminated       = errors.New("eliminated players cannot take part in votes")
	ErrNotTiedTarget    = errors.New("tie-break votes must target a tied player")
)
