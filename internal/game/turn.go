package game

// PassTurn hands the questioning turn to target. It applies only while
// PLAYING and only when the requester currently holds the turn; any other
// attempt is a silent no-op so that misbehaving clients learn nothing about
// the turn state from probing. The target is deliberately not checked
// against room membership.
func (r *Room) PassTurn(requesterID, targetID string) bool {
	if r.State != StatePlaying || requesterID != r.CurrentTurnID {
		return false
	}
	r.CurrentTurnID = targetID
	return true
}
