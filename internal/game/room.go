package game

import "errors"

var ErrGameAlreadyStarted = errors.New("game already started")
var ErrRoomFull = errors.New("room full")
var ErrEmptyCatalog = errors.New("catalog has no locations")

// State is the room lifecycle phase. Rooms cycle LOBBY -> PLAYING -> VOTING
// and return to LOBBY only through an explicit reset; a game_over broadcast
// does not change the state on its own.
type State string

const (
	StateLobby   State = "LOBBY"
	StatePlaying State = "PLAYING"
	StateVoting  State = "VOTING"
)

// Winner identifies the side that won a finished round.
type Winner string

const (
	WinnerSpy       Winner = "SPY"
	WinnerVillagers Winner = "VILLAGERS"
)

const (
	// MaxPlayers caps room membership.
	MaxPlayers = 8

	// SpyRole is the role label shown to the spy instead of a catalog role.
	SpyRole = "Spy"

	// UnknownLocation is what the spy sees in place of the real location.
	UnknownLocation = "???"
)

// Player is one room member, keyed by its ephemeral connection handle.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	IsHost bool   `json:"isHost"`
}

// Settings holds the per-room options the host can adjust in the lobby.
type Settings struct {
	// TimeLimit is minutes per round, used to compute the advisory end time
	// sent to clients on start. The server runs no round timer itself.
	TimeLimit int `json:"timeLimit"`
}

// Room is one game session. It is a plain mutable value with no internal
// locking: the session actor owning it is the only goroutine that touches it.
type Room struct {
	ID             string
	Players        []Player
	Settings       Settings
	State          State
	ActualLocation string
	SpyID          string
	CurrentTurnID  string

	// votes maps voter -> accused. voteOrder records voters in first-vote
	// order; the tally's tie-break depends on scanning votes in that order,
	// and a re-vote keeps the voter's original position.
	votes     map[string]string
	voteOrder []string
}

// NewRoom creates a LOBBY room with the host as its sole member.
func NewRoom(id string, host Player, settings Settings) *Room {
	host.IsHost = true
	return &Room{
		ID:       id,
		Players:  []Player{host},
		Settings: settings,
		State:    StateLobby,
		votes:    make(map[string]string),
	}
}

// AddPlayer appends a non-host player. Joining is a lobby-only operation.
func (r *Room) AddPlayer(p Player) error {
	if r.State != StateLobby {
		return ErrGameAlreadyStarted
	}
	if len(r.Players) >= MaxPlayers {
		return ErrRoomFull
	}
	p.IsHost = false
	r.Players = append(r.Players, p)
	return nil
}

// HasPlayer reports whether id is a current room member.
func (r *Room) HasPlayer(id string) bool {
	for _, p := range r.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PlayerName resolves a player id to its display name, "Unknown" if the id
// matches nobody.
func (r *Room) PlayerName(id string) string {
	for _, p := range r.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return "Unknown"
}

// Reset returns the room to LOBBY from any state, wiping all round data but
// keeping players and settings.
func (r *Room) Reset() {
	r.State = StateLobby
	r.ActualLocation = ""
	r.SpyID = ""
	r.CurrentTurnID = ""
	r.votes = make(map[string]string)
	r.voteOrder = nil
}
