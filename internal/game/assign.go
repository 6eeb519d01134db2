package game

import (
	"math/rand"
	"time"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
)

// Assignment is the personalized start-of-round payload for one player.
// Only the spy's copy hides the location.
type Assignment struct {
	PlayerID      string
	IsSpy         bool
	Role          string
	Location      string
	LocationImage string
}

// StartResult is everything the caller needs to deliver a game_started
// round: who sees what, who asks first, and when the round advisorily ends.
type StartResult struct {
	Assignments   []Assignment
	CurrentTurnID string
	EndTime       time.Time
}

// Start moves the room into PLAYING and deals the round: three independent
// uniform draws pick the location, the spy, and the starting questioner (the
// spy may also start). Non-spy roles cycle through the location's role list
// by seat order, so roles repeat when the room outnumbers the list.
//
// The random source is injected so tests can seed it. Start does not gate on
// the current state; starting mid-round simply deals a fresh round, matching
// the lifecycle in which only join and vote operations are state-gated.
func (r *Room) Start(cat []catalog.Location, rng *rand.Rand, now time.Time) (StartResult, error) {
	if len(cat) == 0 {
		return StartResult{}, ErrEmptyCatalog
	}

	loc := cat[rng.Intn(len(cat))]
	r.ActualLocation = loc.Name
	r.SpyID = r.Players[rng.Intn(len(r.Players))].ID
	r.CurrentTurnID = r.Players[rng.Intn(len(r.Players))].ID

	r.State = StatePlaying
	r.votes = make(map[string]string)
	r.voteOrder = nil

	res := StartResult{
		CurrentTurnID: r.CurrentTurnID,
		EndTime:       now.Add(time.Duration(r.Settings.TimeLimit) * time.Minute),
	}
	for i, p := range r.Players {
		a := Assignment{PlayerID: p.ID}
		if p.ID == r.SpyID {
			a.IsSpy = true
			a.Role = SpyRole
			a.Location = UnknownLocation
		} else {
			a.Role = loc.Roles[i%len(loc.Roles)]
			a.Location = loc.Name
			a.LocationImage = loc.Image
		}
		res.Assignments = append(res.Assignments, a)
	}
	return res, nil
}
