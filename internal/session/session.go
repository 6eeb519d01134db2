package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
	"github.com/spyfall-th/spyfall-backend/internal/game"
	"github.com/spyfall-th/spyfall-backend/internal/protocol"
)

type Msg interface{ isSessionMsg() }

// Join registers a connection with the session. The room creator is already
// a member and just gets its outbox attached; anyone else is validated and
// appended as a non-host player. Reply carries nil on success or one of the
// game join errors.
type Join struct {
	Player game.Player
	Outbox chan protocol.ServerMessage
	Reply  chan error
}

func (Join) isSessionMsg() {}

// Leave drops a connection's outbox. The Player entry stays; membership is
// only cleared by a lobby reset.
type Leave struct{ PlayerID string }

func (Leave) isSessionMsg() {}

// FromClient carries a decoded room-scoped client event.
type FromClient struct {
	PlayerID string
	Msg      protocol.ClientMessage
}

func (FromClient) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// GetState is a test hook reflecting internal state without data races.
type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

type View struct {
	Room       game.Room
	NumClients int
}

// Session is the single goroutine that owns one Room. All mutation happens
// inside its loop, so events for a room are serialized in arrival order and
// the game core needs no locking.
type Session struct {
	code      string
	inbox     chan Msg
	room      *game.Room
	clients   map[string]chan protocol.ServerMessage
	catalog   []catalog.Location
	summaries []catalog.Summary
	rng       *rand.Rand
	now       func() time.Time
	logger    *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

func New(parent context.Context, code string, host game.Player, settings game.Settings, cat []catalog.Location, rng *rand.Rand, logger *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		code:      code,
		inbox:     make(chan Msg, 64),
		room:      game.NewRoom(code, host, settings),
		clients:   make(map[string]chan protocol.ServerMessage),
		catalog:   cat,
		summaries: catalog.Summaries(cat),
		rng:       rng,
		now:       time.Now,
		logger:    logger.With(zap.String("room", code)),
		ctx:       ctx,
		cancel:    cancel,
	}
	go s.loop()
	return s
}

func (s *Session) Code() string { return s.code }

// Inbox exposes the message channel to the hub, the ws layer, and tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.handleJoin(msg)

			case Leave:
				delete(s.clients, msg.PlayerID)

			case FromClient:
				s.handleEvent(msg.PlayerID, msg.Msg)

			case GetState:
				msg.Reply <- View{Room: *s.room, NumClients: len(s.clients)}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) handleJoin(msg Join) {
	if s.room.HasPlayer(msg.Player.ID) {
		// Creator attaching: the hub seeded the room with this player.
		s.clients[msg.Player.ID] = msg.Outbox
		msg.Reply <- nil
		s.unicast(msg.Player.ID, protocol.ServerMessage{
			Type: protocol.RoomJoined,
			Room: protocol.SnapshotOf(s.room),
		})
		return
	}

	if err := s.room.AddPlayer(msg.Player); err != nil {
		msg.Reply <- err
		return
	}
	s.clients[msg.Player.ID] = msg.Outbox
	msg.Reply <- nil
	s.logger.Info("player joined",
		zap.String("player", msg.Player.ID),
		zap.String("name", msg.Player.Name))
	s.broadcast(protocol.ServerMessage{
		Type: protocol.UpdateLobby,
		Room: protocol.SnapshotOf(s.room),
	})
}

func (s *Session) handleEvent(playerID string, m protocol.ClientMessage) {
	switch m.Type {
	case protocol.UpdateSettings:
		if m.TimeLimit <= 0 {
			return
		}
		s.room.Settings.TimeLimit = m.TimeLimit
		settings := s.room.Settings
		s.broadcast(protocol.ServerMessage{Type: protocol.SettingsUpdated, Settings: &settings})

	case protocol.StartGame:
		s.startGame()

	case protocol.PassTurn:
		if s.room.PassTurn(playerID, m.TargetID) {
			s.broadcast(protocol.ServerMessage{Type: protocol.TurnUpdated, CurrentTurnID: m.TargetID})
		}

	case protocol.CallVote:
		s.room.CallVote()
		s.broadcast(protocol.ServerMessage{Type: protocol.StartVoting})

	case protocol.SubmitVote:
		if !s.room.SubmitVote(playerID, m.TargetID) {
			return
		}
		// Auto-tally once every connected client has voted.
		if s.room.VoteCount() >= len(s.clients) {
			s.resolveVotes()
		}

	case protocol.SpyGuessLocation:
		s.resolveGuess(m.LocationName)

	case protocol.ResetGameRequest:
		s.room.Reset()
		s.broadcast(protocol.ServerMessage{
			Type: protocol.UpdateLobby,
			Room: protocol.SnapshotOf(s.room),
		})

	default:
		s.logger.Debug("unknown event", zap.String("type", m.Type), zap.String("player", playerID))
	}
}

func (s *Session) startGame() {
	res, err := s.room.Start(s.catalog, s.rng, s.now())
	if err != nil {
		s.logger.Error("start game", zap.Error(err))
		return
	}
	s.logger.Info("game started",
		zap.String("location", s.room.ActualLocation),
		zap.Int("players", len(s.room.Players)))

	players := protocol.SnapshotOf(s.room).Players
	for _, a := range res.Assignments {
		s.unicast(a.PlayerID, protocol.ServerMessage{
			Type: protocol.GameStarted,
			Game: &protocol.GameStart{
				IsSpy:         a.IsSpy,
				Role:          a.Role,
				Location:      a.Location,
				LocationImage: a.LocationImage,
				AllLocations:  s.summaries,
				EndTime:       res.EndTime.UnixMilli(),
				Players:       players,
				CurrentTurnID: res.CurrentTurnID,
			},
		})
	}
}

func (s *Session) resolveVotes() {
	outcome := s.room.ResolveVotes()
	spyName := s.room.PlayerName(s.room.SpyID)

	if outcome.SpyCaught {
		s.broadcast(protocol.ServerMessage{
			Type: protocol.GameOver,
			Result: &protocol.GameResult{
				Winner:         game.WinnerVillagers,
				Reason:         fmt.Sprintf("Caught the spy! %s was the spy.", spyName),
				SpyName:        spyName,
				ActualLocation: s.room.ActualLocation,
			},
		})
		return
	}

	accusedName := "no one"
	if s.room.HasPlayer(outcome.AccusedID) {
		accusedName = s.room.PlayerName(outcome.AccusedID)
	}
	s.broadcast(protocol.ServerMessage{
		Type: protocol.VoteResultWrong,
		Msg:  fmt.Sprintf("Wrong vote! %s is not the spy.", accusedName),
	})
	// The round now resolves through the spy's forced location guess.
	s.unicast(s.room.SpyID, protocol.ServerMessage{Type: protocol.SpyForceGuess})
}

func (s *Session) resolveGuess(name string) {
	winner, ok := s.room.GuessLocation(name)
	if !ok {
		return
	}
	spyName := s.room.PlayerName(s.room.SpyID)
	reason := fmt.Sprintf("The spy (%s) guessed wrong: %s", spyName, name)
	if winner == game.WinnerSpy {
		reason = fmt.Sprintf("The spy (%s) guessed the location! (%s)", spyName, name)
	}
	s.broadcast(protocol.ServerMessage{
		Type: protocol.GameOver,
		Result: &protocol.GameResult{
			Winner:         winner,
			Reason:         reason,
			SpyName:        spyName,
			ActualLocation: s.room.ActualLocation,
		},
	})
}

func (s *Session) unicast(playerID string, msg protocol.ServerMessage) {
	ch, ok := s.clients[playerID]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
		// Client is slow/full - drop them.
		close(ch)
		delete(s.clients, playerID)
	}
}

func (s *Session) broadcast(msg protocol.ServerMessage) {
	for id, ch := range s.clients {
		select {
		case ch <- msg:
		default:
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
	s.cancel()
}

// JoinError maps a join failure onto its wire error code.
func JoinError(err error) string {
	switch {
	case errors.Is(err, game.ErrGameAlreadyStarted):
		return protocol.CodeGameAlreadyStarted
	case errors.Is(err, game.ErrRoomFull):
		return protocol.CodeRoomFull
	default:
		return protocol.CodeRoomNotFound
	}
}
