package hub

import (
	"context"
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/spyfall-th/spyfall-backend/internal/catalog"
	"github.com/spyfall-th/spyfall-backend/internal/game"
	"github.com/spyfall-th/spyfall-backend/internal/session"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 4

type HubMsg interface{ isHubMsg() }

// CreateRoom allocates a fresh code and spawns a session with the host as
// its sole member.
type CreateRoom struct {
	Host  game.Player
	Reply chan *session.Session
}

// GetRoom looks up a session by code. Callers canonicalize codes to
// uppercase before sending.
type GetRoom struct {
	Code  string
	Reply chan *session.Session
}

type RemoveRoom struct{ Code string }

type ShutdownHub struct{}

func (CreateRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

// Hub is the room registry: a single goroutine owns the code->session map,
// so code uniqueness and lookups need no locking.
type Hub struct {
	inbox    chan HubMsg
	rooms    map[string]*session.Session
	catalog  []catalog.Location
	defaults game.Settings
	newRand  func() *mrand.Rand
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, cat []catalog.Location, defaults game.Settings, logger *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		rooms:    make(map[string]*session.Session),
		catalog:  cat,
		defaults: defaults,
		newRand: func() *mrand.Rand {
			return mrand.New(mrand.NewSource(time.Now().UnixNano()))
		},
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				code, err := h.generateCode()
				if err != nil {
					h.logger.Error("generate room code", zap.Error(err))
					msg.Reply <- nil
					break
				}
				s := session.New(h.ctx, code, msg.Host, h.defaults, h.catalog, h.newRand(), h.logger)
				h.rooms[code] = s
				h.logger.Info("room created", zap.String("room", code))
				msg.Reply <- s

			case GetRoom:
				msg.Reply <- h.rooms[msg.Code] // May be nil

			case RemoveRoom:
				if s := h.rooms[msg.Code]; s != nil {
					s.Inbox() <- session.Shutdown{}
					delete(h.rooms, msg.Code)
				}

			case ShutdownHub:
				for _, s := range h.rooms {
					s.Inbox() <- session.Shutdown{}
				}
				clear(h.rooms)
				h.cancel()
			}
		}
	}
}

// generateCode draws 4 characters from [A-Z0-9], retrying on collision with
// a live room. Uniqueness holds because only the hub goroutine allocates.
func (h *Hub) generateCode() (string, error) {
	for {
		code := make([]byte, codeLength)
		for i := range code {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
			if err != nil {
				return "", err
			}
			code[i] = codeAlphabet[n.Int64()]
		}
		if _, taken := h.rooms[string(code)]; !taken {
			return string(code), nil
		}
	}
}
