package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spyfall-th/spyfall-backend/internal/game"
	"github.com/spyfall-th/spyfall-backend/internal/hub"
	"github.com/spyfall-th/spyfall-backend/internal/protocol"
	"github.com/spyfall-th/spyfall-backend/internal/session"
)

// Handler bridges one websocket connection to the hub and, once the client
// has created or joined a room, to that room's session. The connection id
// doubles as the player id for the lifetime of the socket.
func Handler(h *hub.Hub, originPatterns []string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		playerID := uuid.NewString()
		out := make(chan protocol.ServerMessage, 8)

		var sess *session.Session
		defer func() {
			if sess != nil {
				sess.Inbox() <- session.Leave{PlayerID: playerID}
			}
		}()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				return
			}

			var cm protocol.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"error_msg","error":"bad json"}`))
				continue
			}

			switch cm.Type {
			case protocol.CreateRoom:
				if sess != nil {
					continue
				}
				host := game.Player{ID: playerID, Name: cm.Username, Avatar: cm.Avatar, IsHost: true}
				reply := make(chan *session.Session, 1)
				h.Inbox() <- hub.CreateRoom{Host: host, Reply: reply}
				created := <-reply
				if created == nil {
					out <- protocol.ServerMessage{Type: protocol.ErrorMsg, Error: protocol.CodeRoomNotFound}
					continue
				}
				errReply := make(chan error, 1)
				created.Inbox() <- session.Join{Player: host, Outbox: out, Reply: errReply}
				if err := <-errReply; err != nil {
					logger.Warn("creator join failed", zap.Error(err))
					continue
				}
				sess = created

			case protocol.JoinRoom:
				if sess != nil {
					continue
				}
				code := strings.ToUpper(cm.RoomID)
				reply := make(chan *session.Session, 1)
				h.Inbox() <- hub.GetRoom{Code: code, Reply: reply}
				found := <-reply
				if found == nil {
					out <- protocol.ServerMessage{Type: protocol.ErrorMsg, Error: protocol.CodeRoomNotFound}
					continue
				}
				player := game.Player{ID: playerID, Name: cm.Username, Avatar: cm.Avatar}
				errReply := make(chan error, 1)
				found.Inbox() <- session.Join{Player: player, Outbox: out, Reply: errReply}
				if err := <-errReply; err != nil {
					out <- protocol.ServerMessage{Type: protocol.ErrorMsg, Error: session.JoinError(err)}
					continue
				}
				sess = found

			default:
				if sess == nil {
					continue
				}
				sess.Inbox() <- session.FromClient{PlayerID: playerID, Msg: cm}
			}
		}
	}
}
