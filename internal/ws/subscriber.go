package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	outboxSize     = 64
)

// Subscriber is one websocket connection listening for revalidations.
// Events only flow from the hub to the browser; inbound frames are read
// and discarded so pongs and close frames are processed.
type Subscriber struct {
	hub    *Hub
	conn   *websocket.Conn
	outbox chan []byte
}

func NewSubscriber(hub *Hub, conn *websocket.Conn) *Subscriber {
	return &Subscriber{hub: hub, conn: conn, outbox: make(chan []byte, outboxSize)}
}

// Listen blocks until the connection fails or the peer goes quiet for longer
// than pongWait, then unsubscribes.
func (s *Subscriber) Listen() {
	defer func() {
		s.hub.Unsubscribe(s)
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Forward writes queued events and keepalive pings until the outbox closes.
func (s *Subscriber) Forward() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case evt, ok := <-s.outbox:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, evt); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
