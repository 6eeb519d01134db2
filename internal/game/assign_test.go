package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
)

var testCatalog = []catalog.Location{
	{
		Name:  "Bank",
		Image: "/img/bank.jpg",
		Roles: []string{"Manager", "Robber", "Teller"},
	},
	{
		Name:  "Submarine",
		Image: "/img/submarine.jpg",
		Roles: []string{"Captain", "Navigator", "Cook"},
	},
}

func startedRoom(t *testing.T, playerCount int, seed int64) (*Room, StartResult) {
	t.Helper()
	r := newTestRoom()
	for i := 1; i < playerCount; i++ {
		p := Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)}
		if err := r.AddPlayer(p); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	res, err := r.Start(testCatalog, rand.New(rand.NewSource(seed)), time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return r, res
}

func TestStart_ExactlyOneSpy(t *testing.T) {
	r, res := startedRoom(t, 5, 42)

	if r.State != StatePlaying {
		t.Fatalf("state: got %v, want %v", r.State, StatePlaying)
	}
	if !r.HasPlayer(r.SpyID) {
		t.Fatalf("spy %q is not a room member", r.SpyID)
	}

	spies := 0
	for _, a := range res.Assignments {
		if a.IsSpy {
			spies++
			if a.PlayerID != r.SpyID {
				t.Fatalf("spy assignment %q does not match room spy %q", a.PlayerID, r.SpyID)
			}
		}
	}
	if spies != 1 {
		t.Fatalf("got %d spies, want 1", spies)
	}
}

func TestStart_RolesCycleBySeatOrder(t *testing.T) {
	// 8 players over a 3-role location forces the cycle to wrap.
	r, res := startedRoom(t, 8, 7)

	var loc catalog.Location
	for _, l := range testCatalog {
		if l.Name == r.ActualLocation {
			loc = l
		}
	}
	if loc.Name == "" {
		t.Fatalf("actual location %q not in catalog", r.ActualLocation)
	}

	for i, a := range res.Assignments {
		if a.PlayerID != r.Players[i].ID {
			t.Fatalf("assignments must follow seat order")
		}
		if a.IsSpy {
			continue
		}
		want := loc.Roles[i%len(loc.Roles)]
		if a.Role != want {
			t.Fatalf("seat %d: role %q, want %q", i, a.Role, want)
		}
		if a.Location != loc.Name || a.LocationImage != loc.Image {
			t.Fatalf("seat %d must see the true location", i)
		}
	}
}

func TestStart_SpySeesSentinels(t *testing.T) {
	r, res := startedRoom(t, 4, 3)

	for _, a := range res.Assignments {
		if !a.IsSpy {
			continue
		}
		if a.Role != SpyRole {
			t.Fatalf("spy role: got %q, want %q", a.Role, SpyRole)
		}
		if a.Location != UnknownLocation || a.LocationImage != "" {
			t.Fatalf("spy must not see the location: %+v", a)
		}
	}
	if r.ActualLocation == UnknownLocation {
		t.Fatalf("room must keep the real location")
	}
}

func TestStart_AdvisoryEndTime(t *testing.T) {
	r := newTestRoom()
	r.Settings.TimeLimit = 7
	now := time.Unix(5000, 0)

	res, err := r.Start(testCatalog, rand.New(rand.NewSource(1)), now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if want := now.Add(7 * time.Minute); !res.EndTime.Equal(want) {
		t.Fatalf("end time: got %v, want %v", res.EndTime, want)
	}
	if res.CurrentTurnID != r.CurrentTurnID || !r.HasPlayer(res.CurrentTurnID) {
		t.Fatalf("starting turn must belong to a member")
	}
}

func TestStart_EmptyCatalog(t *testing.T) {
	r := newTestRoom()
	if _, err := r.Start(nil, rand.New(rand.NewSource(1)), time.Now()); err != ErrEmptyCatalog {
		t.Fatalf("got %v, want ErrEmptyCatalog", err)
	}
}

func TestStart_ClearsPriorVotes(t *testing.T) {
	r := newTestRoom()
	r.State = StateVoting
	r.SubmitVote("host", "host")

	if _, err := r.Start(testCatalog, rand.New(rand.NewSource(1)), time.Now()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.VoteCount() != 0 {
		t.Fatalf("start must clear votes")
	}
}
