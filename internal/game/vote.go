package game

// CallVote moves the room into VOTING. Round data is left intact so play
// can resolve through the tally or a spy guess.
func (r *Room) CallVote() {
	r.State = StateVoting
}

// SubmitVote records or overwrites a voter's accusation. Votes are accepted
// only in VOTING; anything else is a silent no-op. A re-vote replaces the
// choice but keeps the voter's original position in the tally order.
func (r *Room) SubmitVote(voterID, targetID string) bool {
	if r.State != StateVoting {
		return false
	}
	if _, voted := r.votes[voterID]; !voted {
		r.voteOrder = append(r.voteOrder, voterID)
	}
	r.votes[voterID] = targetID
	return true
}

// VoteCount returns how many distinct voters have voted this round.
func (r *Room) VoteCount() int { return len(r.votes) }

// Tally returns the accused player id. Counting scans votes in voter order
// and the accused is the first candidate to reach the running maximum: a
// later candidate that merely ties does not displace the incumbent. Callers
// depend on this exact tie-break.
func (r *Room) Tally() string {
	counts := make(map[string]int)
	maxVotes := 0
	accused := ""
	for _, voter := range r.voteOrder {
		target := r.votes[voter]
		counts[target]++
		if counts[target] > maxVotes {
			maxVotes = counts[target]
			accused = target
		}
	}
	return accused
}

// VoteOutcome is the resolution of a completed tally.
type VoteOutcome struct {
	AccusedID string
	SpyCaught bool
}

// ResolveVotes tallies and reports whether the group caught the spy. When
// the accusation is wrong the room stays in VOTING and the spy is expected
// to resolve the round with a location guess.
func (r *Room) ResolveVotes() VoteOutcome {
	accused := r.Tally()
	return VoteOutcome{AccusedID: accused, SpyCaught: accused == r.SpyID}
}
