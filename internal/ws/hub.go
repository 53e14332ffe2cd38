package ws

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub fans revalidation events out to every connected subscriber.
type Hub struct {
	subscribers map[*Subscriber]struct{}
	events      chan []byte
	joins       chan *Subscriber
	leaves      chan *Subscriber
	mu          sync.RWMutex
	logger      logrus.FieldLogger
}

func NewHub(logger logrus.FieldLogger) *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		events:      make(chan []byte, 1024),
		joins:       make(chan *Subscriber, 128),
		leaves:      make(chan *Subscriber, 128),
		logger:      logger,
	}
}

// Run serves the hub until ctx is done, then disconnects every subscriber.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for s := range h.subscribers {
				h.removeLocked(s)
			}
			h.mu.Unlock()
			return

		case s := <-h.joins:
			if s == nil {
				continue
			}
			h.mu.Lock()
			h.subscribers[s] = struct{}{}
			n := len(h.subscribers)
			h.mu.Unlock()
			h.debug("[WS] subscriber joined", n)

		case s := <-h.leaves:
			if s == nil {
				continue
			}
			h.mu.Lock()
			h.removeLocked(s)
			n := len(h.subscribers)
			h.mu.Unlock()
			h.debug("[WS] subscriber left", n)

		case evt := <-h.events:
			h.deliver(evt)
		}
	}
}

// deliver hands evt to each subscriber without blocking. A subscriber whose
// queue is full is disconnected; it refetches on reconnect.
func (h *Hub) deliver(evt []byte) {
	h.mu.RLock()
	targets := make([]*Subscriber, 0, len(h.subscribers))
	for s := range h.subscribers {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	dropped := 0
	for _, s := range targets {
		select {
		case s.outbox <- evt:
		default:
			h.mu.Lock()
			h.removeLocked(s)
			h.mu.Unlock()
			dropped++
		}
	}

	if h.logger != nil {
		h.logger.WithFields(logrus.Fields{
			"delivered": len(targets) - dropped,
			"dropped":   dropped,
		}).Debug("[WS] revalidation delivered")
	}
}

func (h *Hub) removeLocked(s *Subscriber) {
	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		close(s.outbox)
	}
}

func (h *Hub) debug(msg string, n int) {
	if h.logger != nil {
		h.logger.WithField("subscribers", n).Debug(msg)
	}
}

func (h *Hub) Subscribe(s *Subscriber) {
	if h == nil {
		return
	}
	h.joins <- s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	if h == nil {
		return
	}
	h.leaves <- s
}

// Publish queues a raw event. It never blocks; when the queue is full the
// event is dropped and logged.
func (h *Hub) Publish(evt []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- evt:
	default:
		if h.logger != nil {
			h.logger.WithField("reason", "queue_full").Warn("[WS] revalidation event dropped")
		}
	}
}

func (h *Hub) SubscriberCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
