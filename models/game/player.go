package game_models

/*
 * 'Player' is a member of a Room. The word fields are filled in when the
 * game starts, the voting fields reset at the beginning of every round.
 */
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`

	// assigned on game start
	Word     string `json:"word,omitempty"`
	WordKind string `json:"word_kind,omitempty"` // normal | similar | impostor

	// per-round voting state
	HasVoted   bool   `json:"has_voted"`
	VotedFor   string `json:"voted_for,omitempty"`
	VoteCount  int    `json:"vote_count"`
	Eliminated bool   `json:"eliminated"`
}

// ResetVote clears the per-round voting fields
func (p *Player) ResetVote() {
	p.HasVoted = false
	p.VotedFor = ""
	p.VoteCount = 0
}
