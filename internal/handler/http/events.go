package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/session"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

// EventSource is the subscription side of the session event hub.
type EventSource interface {
	Subscribe(sessionID string) (<-chan sse.Event, func())
	SubscriberCount(sessionID string) int
}

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	source    EventSource
	keepalive time.Duration
	logger    *slog.Logger
}

func NewEventsHandler(source EventSource, logger *slog.Logger) EventsHandler {
	return &eventsHandlerImpl{
		source:    source,
		keepalive: keepaliveInterval,
		logger:    logger,
	}
}

// Stream implements EventsHandler. It streams the list change events of the
// caller's session until the client goes away or the session is evicted.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.IDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusUnauthorized)
		return
	}

	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.source.Subscribe(sid)
	defer cleanup()
	h.logger.Debug("Event stream opened", "session_id", sid, "streams", h.source.SubscriberCount(sid))

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := event.WriteTo(w); err != nil {
				h.logger.Warn("Failed to write event", "session_id", sid, "event", event.Name, "error", err)
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
