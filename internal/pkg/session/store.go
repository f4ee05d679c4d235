package session

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store keeps one value per session id and evicts values idle for longer
// than the configured timeout.
type Store[T any] struct {
	mu      sync.Mutex
	items   map[string]*entry[T]
	idle    time.Duration
	create  func(id string) T
	onEvict func(id string, value T)
	now     func() time.Time
}

func NewStore[T any](idle time.Duration, create func(id string) T, onEvict func(id string, value T)) *Store[T] {
	return &Store[T]{
		items:   make(map[string]*entry[T]),
		idle:    idle,
		create:  create,
		onEvict: onEvict,
		now:     time.Now,
	}
}

// Get returns the value for id, creating it on first use.
func (s *Store[T]) Get(id string) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		e = &entry[T]{value: s.create(id)}
		s.items[id] = e
	}
	e.lastSeen = s.now()
	return e.value
}

// Sweep evicts every value idle for longer than the timeout. It has the
// signature of a cron job.
func (s *Store[T]) Sweep(ctx context.Context) error {
	cutoff := s.now().Add(-s.idle)

	s.mu.Lock()
	evicted := make(map[string]T)
	for id, e := range s.items {
		if e.lastSeen.Before(cutoff) {
			evicted[id] = e.value
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	if s.onEvict != nil {
		for id, v := range evicted {
			s.onEvict(id, v)
		}
	}
	return ctx.Err()
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close evicts everything.
func (s *Store[T]) Close() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*entry[T])
	s.mu.Unlock()

	for id, e := range items {
		if s.onEvict != nil {
			s.onEvict(id, e.value)
		}
	}
}
