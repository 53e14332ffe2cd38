package ws

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   logrus.FieldLogger
}

func NewHandler(hub *Hub, logger logrus.FieldLogger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// revalidation events are public, any origin may listen
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleRevalidations upgrades GET /ws and subscribes the connection to
// paths_revalidated events.
func (h *Handler) HandleRevalidations(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.serve)(c)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.WithError(err).WithField("remote", r.RemoteAddr).Warn("[WS] revalidation upgrade failed")
		}
		return
	}

	s := NewSubscriber(h.hub, conn)
	h.hub.Subscribe(s)
	go s.Forward()
	go s.Listen()
}
