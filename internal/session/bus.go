package session

import (
	"sync"

	"gebeya/internal/domain/entity"
)

type EventType string

const EventProfileUpdated EventType = "profile_updated"

// Event is a typed in-process notification about a context's session.
type Event struct {
	Type      EventType      `json:"type"`
	ContextID string         `json:"-"`
	Session   entity.Session `json:"session"`
}

// Bus fans session events out to subscribers of the same browser context.
// Events are not replayed: a view that mounts after the event fired reads
// the store instead.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[int]chan Event
	all  map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]chan Event),
		all:  make(map[int]chan Event),
	}
}

// Subscribe registers a listener for one context. The returned cancel
// function must be called when the view unmounts.
func (b *Bus) Subscribe(contextID string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	b.mu.Lock()
	id := b.next
	b.next++
	if b.subs[contextID] == nil {
		b.subs[contextID] = make(map[int]chan Event)
	}
	b.subs[contextID][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[contextID]; ok {
			if _, ok := set[id]; ok {
				delete(set, id)
				close(ch)
			}
			if len(set) == 0 {
				delete(b.subs, contextID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// SubscribeAll registers a firehose listener across every context. The
// websocket bridge uses this to route events to the right live views.
func (b *Bus) SubscribeAll() (<-chan Event, func()) {
	ch := make(chan Event, 64)

	b.mu.Lock()
	id := b.next
	b.next++
	b.all[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.all[id]; ok {
			delete(b.all, id)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to current subscribers of its context. Slow
// subscribers are skipped rather than blocking the publisher.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[ev.ContextID] {
		select {
		case ch <- ev:
		default:
		}
	}
	for _, ch := range b.all {
		select {
		case ch <- ev:
		default:
		}
	}
}
