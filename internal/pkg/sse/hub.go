// Package sse fans out change events to the open event streams of a
// session, so other tabs of the same browser can reload their lists.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

const (
	EventEmployeesRefreshed = "employees.refreshed"
	EventLeavesRefreshed    = "leaves.refreshed"
)

// Event is one message on a session's stream.
type Event struct {
	SessionID string `json:"-"`
	Name      string `json:"event"`
	Data      any    `json:"data,omitempty"`
}

// WriteTo writes e in text/event-stream framing.
func (e Event) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return 0, err
	}
	n, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Name, data)
	return int64(n), err
}

type subscriber struct {
	ch   chan Event
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub tracks subscribers per session id.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
	buffer      int
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
		buffer:      10,
	}
}

// Subscribe returns the event channel for a new stream of sessionID and a
// cleanup func. The channel is closed by cleanup or when the session is
// evicted.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.subscribers[sessionID] == nil {
		h.subscribers[sessionID] = make(map[*subscriber]struct{})
	}
	h.subscribers[sessionID][sub] = struct{}{}
	h.mu.Unlock()

	cleanup := func() {
		h.mu.Lock()
		delete(h.subscribers[sessionID], sub)
		if len(h.subscribers[sessionID]) == 0 {
			delete(h.subscribers, sessionID)
		}
		h.mu.Unlock()
		sub.close()
	}

	return sub.ch, cleanup
}

// Publish delivers event to every stream of sessionID. Full streams drop
// the event rather than block the publisher.
func (h *Hub) Publish(sessionID string, event Event) {
	event.SessionID = sessionID

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[sessionID] {
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// Evict closes every stream of sessionID.
func (h *Hub) Evict(sessionID string) {
	h.mu.Lock()
	subs := h.subscribers[sessionID]
	delete(h.subscribers, sessionID)
	h.mu.Unlock()

	for sub := range subs {
		sub.close()
	}
}

func (h *Hub) SubscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[sessionID])
}
