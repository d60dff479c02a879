package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	wsmodels "hr-intake-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	Broadcast(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userID]
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[msg.ToUserID]
	if ok {
		sess.sendCh <- msg
	}
}

// Broadcast pushes the event to every connected admin session.
func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, sess := range i.clients {
		select {
		case sess.sendCh <- msg:
		default:
			// slow consumer, drop the event rather than block submission
		}
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
