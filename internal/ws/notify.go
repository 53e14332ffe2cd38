package ws

import (
	"encoding/json"
	"time"
)

const EventPathsRevalidated = "paths_revalidated"

type PathsRevalidatedEvent struct {
	Type      string   `json:"type"`
	Paths     []string `json:"paths"`
	Timestamp string   `json:"timestamp"`
}

// NotifyPathsRevalidated tells subscribers to refetch paths.
func (h *Hub) NotifyPathsRevalidated(paths []string) {
	if h == nil || len(paths) == 0 {
		return
	}

	b, err := json.Marshal(PathsRevalidatedEvent{
		Type:      EventPathsRevalidated,
		Paths:     paths,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if h.logger != nil {
			h.logger.WithError(err).Error("[WS] encode paths_revalidated")
		}
		return
	}

	if h.logger != nil {
		h.logger.WithField("paths", paths).Debug("[WS] paths_revalidated")
	}
	h.Publish(b)
}
