package game

import (
	"errors"
	"fmt"
	"testing"
)

func newTestRoom() *Room {
	return NewRoom("AB12", Player{ID: "host", Name: "Host"}, Settings{TimeLimit: 5})
}

func fillRoom(t *testing.T, r *Room) {
	t.Helper()
	for i := len(r.Players); i < MaxPlayers; i++ {
		p := Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)}
		if err := r.AddPlayer(p); err != nil {
			t.Fatalf("unexpected err filling room: %v", err)
		}
	}
}

func TestNewRoom_HostIsSoleMember(t *testing.T) {
	r := newTestRoom()

	if r.State != StateLobby {
		t.Fatalf("state: got %v, want %v", r.State, StateLobby)
	}
	if len(r.Players) != 1 || !r.Players[0].IsHost {
		t.Fatalf("expected single host player, got %+v", r.Players)
	}
	if r.VoteCount() != 0 || r.ActualLocation != "" || r.SpyID != "" || r.CurrentTurnID != "" {
		t.Fatalf("lobby room must have no round data: %+v", r)
	}
}

func TestAddPlayer_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(r *Room)
		wantErr error
	}{
		{
			name:    "full room",
			setup:   func(r *Room) { fillRoom(t, r) },
			wantErr: ErrRoomFull,
		},
		{
			name:    "playing room",
			setup:   func(r *Room) { r.State = StatePlaying },
			wantErr: ErrGameAlreadyStarted,
		},
		{
			name:    "voting room",
			setup:   func(r *Room) { r.State = StateVoting },
			wantErr: ErrGameAlreadyStarted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRoom()
			tc.setup(r)
			err := r.AddPlayer(Player{ID: "late", Name: "Late"})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestAddPlayer_ForcesNonHost(t *testing.T) {
	r := newTestRoom()
	if err := r.AddPlayer(Player{ID: "p1", Name: "P1", IsHost: true}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Players[1].IsHost {
		t.Fatalf("joined player must not be host")
	}
}

func TestReset_ClearsRoundKeepsMembership(t *testing.T) {
	r := newTestRoom()
	if err := r.AddPlayer(Player{ID: "p1", Name: "P1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	r.State = StateVoting
	r.ActualLocation = "Bank"
	r.SpyID = "p1"
	r.CurrentTurnID = "host"
	r.SubmitVote("host", "p1")

	r.Reset()

	if r.State != StateLobby {
		t.Fatalf("state: got %v, want %v", r.State, StateLobby)
	}
	if r.ActualLocation != "" || r.SpyID != "" || r.CurrentTurnID != "" || r.VoteCount() != 0 {
		t.Fatalf("round data not cleared: %+v", r)
	}
	if len(r.Players) != 2 || r.Settings.TimeLimit != 5 {
		t.Fatalf("players/settings must survive reset")
	}
}

func TestPlayerName_UnknownFallback(t *testing.T) {
	r := newTestRoom()
	if got := r.PlayerName("host"); got != "Host" {
		t.Fatalf("got %q, want Host", got)
	}
	if got := r.PlayerName("ghost"); got != "Unknown" {
		t.Fatalf("got %q, want Unknown", got)
	}
}
