package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	wsmodels "hr-intake-backend/models/ws"
)

type clientSession struct {
	conn *websocket.Conn

	// outbound events, buffered
	sendCh chan wsmodels.ServerMessage
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := clientSession{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan wsmodels.ServerMessage, 8),
	}
	go sess.startSend(ctx)
	return sess
}

func (s clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg, opened := <-s.sendCh:
			if !opened {
				return
			}
			err := s.send(s.conn, msg)
			if err != nil {
				log.WithError(err).Error("failed to send ws event")
			}
		}
	}
}

func (s clientSession) send(conn *websocket.Conn, msg wsmodels.ServerMessage) error {
	if conn.Conn == nil {
		return nil
	}
	return conn.WriteJSON(msg)
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Error("cant close")
	}
}
