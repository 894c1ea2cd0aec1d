package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/session"
	"github.com/gorilla/websocket"
)

const (
	livePongWait   = 60 * time.Second
	livePingPeriod = 30 * time.Second
	liveWriteWait  = 10 * time.Second
)

// Live message types sent by the server.
const (
	LiveReady  = "ready"
	LiveUpdate = "update"
	LiveError  = "error"
)

// LiveRequest is a client edit: the full buffer of one side.
type LiveRequest struct {
	Side string `json:"side"`
	Text string `json:"text"`
}

// LiveMessage is a server frame.
type LiveMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Update    *session.Update `json:"update,omitempty"`
	Changed   bool            `json:"changed,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Live handles GET /v1/live. The connection owns one session, closed when
// the client goes away.
func (s *Server) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error
		s.Logger.Warn("live: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sess := s.Sessions.Create(nil)
	defer s.Sessions.Close(sess.ID())
	logger := s.Logger.With("session_id", sess.ID())
	logger.Info("live: client connected", "remote", r.RemoteAddr)

	conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(livePingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// WriteControl may run concurrently with the writer below
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
					return
				}
			}
		}
	}()

	if err := conn.WriteJSON(LiveMessage{Type: LiveReady, SessionID: sess.ID()}); err != nil {
		return
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("live: read error", "error", err)
			}
			logger.Info("live: client disconnected")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		reply := s.liveEdit(r, sess, message)
		conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn("live: write failed", "error", err)
			return
		}
	}
}

func (s *Server) liveEdit(r *http.Request, sess *session.Session, message []byte) LiveMessage {
	var req LiveRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return LiveMessage{Type: LiveError, Error: "invalid message: " + err.Error()}
	}

	dir, err := domain.ParseDirection(req.Side)
	if err != nil {
		return LiveMessage{Type: LiveError, Error: err.Error()}
	}

	update, changed, err := sess.Set(r.Context(), dir, req.Text)
	if err != nil {
		return LiveMessage{Type: LiveError, Error: err.Error()}
	}
	if !changed {
		update.Source = dir
	}
	return LiveMessage{Type: LiveUpdate, Update: &update, Changed: changed}
}
