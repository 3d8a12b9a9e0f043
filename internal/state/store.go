// Package state holds the per-entity tri-state containers the console screens
// render from: the fetched collection plus loading/error metadata for the
// in-flight request.
package state

import "sync"

// Entity is anything with a server-assigned id
type Entity interface {
	EntityID() string
}

type eventKind int

const (
	evRequested eventKind = iota
	evListed
	evCreated
	evUpdated
	evDeleted
	evFailed
)

// Event is the closed set of store transitions. Instances are built with the
// constructors below; there is no other way to mutate a store.
type Event[E Entity] struct {
	kind  eventKind
	items []E
	item  E
	id    string
	msg   string
}

// Requested marks a request as issued: loading set, previous error cleared.
func Requested[E Entity]() Event[E] {
	return Event[E]{kind: evRequested}
}

// Listed replaces the collection with a fetched sequence
func Listed[E Entity](items []E) Event[E] {
	return Event[E]{kind: evListed, items: items}
}

// Created appends a server-confirmed entity
func Created[E Entity](item E) Event[E] {
	return Event[E]{kind: evCreated, item: item}
}

// Updated replaces the element with the same id
func Updated[E Entity](item E) Event[E] {
	return Event[E]{kind: evUpdated, item: item}
}

// Deleted splices out the element with the given id
func Deleted[E Entity](id string) Event[E] {
	return Event[E]{kind: evDeleted, id: id}
}

// Failed records the error message and clears loading
func Failed[E Entity](msg string) Event[E] {
	return Event[E]{kind: evFailed, msg: msg}
}

// Snapshot is a point-in-time copy of a store's state
type Snapshot[E Entity] struct {
	Items   []E
	Loading bool
	Err     string
}

// Store holds one entity kind's collection plus request-status metadata.
// Mutations happen only after the backend confirms an operation; there is no
// optimistic update. Two concurrent operations on the same store share one
// loading/error pair and the last to resolve wins.
type Store[E Entity] struct {
	mu      sync.RWMutex
	items   []E
	loading bool
	err     string
}

// NewStore creates an empty store: no items, not loading, no error
func NewStore[E Entity]() *Store[E] {
	return &Store[E]{}
}

// Apply commits one transition. The switch is exhaustive over the event kinds.
func (s *Store[E]) Apply(ev Event[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.kind {
	case evRequested:
		s.loading = true
		s.err = ""
	case evListed:
		s.items = append([]E(nil), ev.items...)
		s.loading = false
	case evCreated:
		s.items = append(s.items, ev.item)
		s.loading = false
	case evUpdated:
		id := ev.item.EntityID()
		for i := range s.items {
			if s.items[i].EntityID() == id {
				s.items[i] = ev.item
			}
		}
		s.loading = false
	case evDeleted:
		kept := s.items[:0]
		for _, item := range s.items {
			if item.EntityID() != ev.id {
				kept = append(kept, item)
			}
		}
		s.items = kept
		s.loading = false
	case evFailed:
		s.loading = false
		s.err = ev.msg
	}
}

// Snapshot returns a copy of the current state
func (s *Store[E]) Snapshot() Snapshot[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[E]{
		Items:   append([]E(nil), s.items...),
		Loading: s.loading,
		Err:     s.err,
	}
}

// Items returns a copy of the collection
func (s *Store[E]) Items() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]E(nil), s.items...)
}

// Loading reports whether a request is in flight
func (s *Store[E]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last failure message, empty when none
func (s *Store[E]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Find returns the element with the given id
func (s *Store[E]) Find(id string) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Len returns the collection size
func (s *Store[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
