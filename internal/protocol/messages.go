package protocol

import (
	"github.com/spyfall-th/spyfall-backend/internal/catalog"
	"github.com/spyfall-th/spyfall-backend/internal/game"
)

// Client -> server event types.
const (
	CreateRoom       = "create_room"
	JoinRoom         = "join_room"
	UpdateSettings   = "update_settings"
	StartGame        = "start_game"
	PassTurn         = "pass_turn"
	SpyGuessLocation = "spy_guess_location"
	CallVote         = "call_vote"
	SubmitVote       = "submit_vote"
	ResetGameRequest = "reset_game_request"
)

// Server -> client event types.
const (
	RoomJoined      = "room_joined"
	UpdateLobby     = "update_lobby"
	SettingsUpdated = "update_settings"
	GameStarted     = "game_started"
	TurnUpdated     = "turn_updated"
	StartVoting     = "start_voting"
	VoteResultWrong = "vote_result_wrong"
	SpyForceGuess   = "spy_force_guess"
	GameOver        = "game_over"
	ErrorMsg        = "error_msg"
)

// Error codes carried by error_msg. Only join-time failures are surfaced;
// authorization failures are silent no-ops server-side.
const (
	CodeRoomNotFound       = "ROOM_NOT_FOUND"
	CodeGameAlreadyStarted = "GAME_ALREADY_STARTED"
	CodeRoomFull           = "ROOM_FULL"
)

// ClientMessage is the single inbound envelope; fields beyond Type are
// event-specific and zero elsewhere.
type ClientMessage struct {
	Type         string `json:"type"`
	RoomID       string `json:"roomId,omitempty"`
	Username     string `json:"username,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	TimeLimit    int    `json:"timeLimit,omitempty"`
	TargetID     string `json:"targetId,omitempty"`
	LocationName string `json:"locationName,omitempty"`
}

// ServerMessage is the single outbound envelope.
type ServerMessage struct {
	Type          string         `json:"type"`
	Room          *RoomSnapshot  `json:"room,omitempty"`
	Settings      *game.Settings `json:"settings,omitempty"`
	Game          *GameStart     `json:"game,omitempty"`
	CurrentTurnID string         `json:"currentTurnId,omitempty"`
	Result        *GameResult    `json:"result,omitempty"`
	Msg           string         `json:"msg,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// RoomSnapshot is the public view of a room used for lobby updates. Round
// secrets (spy, location, votes) never appear here.
type RoomSnapshot struct {
	ID       string        `json:"id"`
	Players  []game.Player `json:"players"`
	Settings game.Settings `json:"settings"`
	State    game.State    `json:"state"`
}

// SnapshotOf builds the broadcastable view of a room.
func SnapshotOf(r *game.Room) *RoomSnapshot {
	players := make([]game.Player, len(r.Players))
	copy(players, r.Players)
	return &RoomSnapshot{
		ID:       r.ID,
		Players:  players,
		Settings: r.Settings,
		State:    r.State,
	}
}

// GameStart is the personalized game_started payload. The spy's copy hides
// the location and image; everyone gets the sorted catalog so the spy can
// pick a guess from the same list the villagers see.
type GameStart struct {
	IsSpy         bool              `json:"isSpy"`
	Role          string            `json:"role"`
	Location      string            `json:"location"`
	LocationImage string            `json:"locationImage,omitempty"`
	AllLocations  []catalog.Summary `json:"allLocations"`
	EndTime       int64             `json:"endTime"`
	Players       []game.Player     `json:"players"`
	CurrentTurnID string            `json:"currentTurnId"`
}

// GameResult is the game_over payload, including the reveal.
type GameResult struct {
	Winner         game.Winner `json:"winner"`
	Reason         string      `json:"reason"`
	SpyName        string      `json:"spyName"`
	ActualLocation string      `json:"actualLocation"`
}
