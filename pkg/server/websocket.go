package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/morphic-dev/morphic/pkg/middleware"
	"github.com/morphic-dev/morphic/pkg/protocol"
)

// handleWebSocket upgrades the connection, creates a session with its own
// live document, and runs the session's read loop until the client goes
// away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		middleware.RecordWebSocketError("upgrade")
		return
	}
	conn.SetReadLimit(s.config.MaxMessageSize)

	sess := newSession(conn, s.config, s.root, func(closed *Session) {
		s.sessions.Delete(closed.ID)
	})
	s.sessions.Store(sess.ID, sess)
	s.logger.Info("session started", "session", sess.ID)

	sess.readLoop(r.Context())
	s.logger.Info("session ended", "session", sess.ID)
}

// readLoop continuously reads event messages from the connection and
// dispatches them into the live tree. It blocks until the connection is
// closed or an error occurs.
func (s *Session) readLoop(ctx context.Context) {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				middleware.RecordWebSocketError("read")
			}
			return
		}

		ev, err := protocol.DecodeEvent(msg)
		if err != nil {
			s.logger.Error("event decode error", "error", err)
			middleware.RecordWebSocketError("decode")
			continue
		}

		if err := s.HandleEvent(ctx, ev); err != nil {
			s.logger.Error("event dispatch error", "event", ev.Type, "error", err)
		}
	}
}
