// Package event provides a small synchronous pub/sub bus. The editor
// publishes notifications on it so embedders can observe edits,
// marker updates, and popover changes without polling.
package event

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic names an event stream. Topics are hierarchical dotted paths.
type Topic string

// Topics published by the editor.
const (
	TopicEditApplied     Topic = "editor.edit.applied"
	TopicSelectionMoved  Topic = "editor.selection.moved"
	TopicMarkersUpdated  Topic = "editor.markers.updated"
	TopicPopoverChanged  Topic = "editor.popover.changed"
	TopicWrapInvalidated Topic = "editor.wrap.invalidated"
	TopicConfigReloaded  Topic = "config.reloaded"
)

// Event is one published notification. Events are immutable once
// created.
type Event struct {
	Topic     Topic
	Payload   any
	ID        string
	Timestamp time.Time
	Source    string
}

// New creates an event with a fresh ID and timestamp.
func New(topic Topic, payload any, source string) Event {
	return Event{
		Topic:     topic,
		Payload:   payload,
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Source:    source,
	}
}

// Handler receives published events.
type Handler func(Event)

// Subscription identifies one active handler registration.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    uint64
}

// Cancel removes the subscription. Safe to call more than once.
func (s Subscription) Cancel() {
	if s.bus != nil {
		s.bus.unsubscribe(s.topic, s.id)
	}
}

// Bus delivers events to subscribers synchronously, in subscription
// order. Publish returns after every handler has run, so handlers
// must be quick and must not publish recursively to the same topic.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic][]subscriber
}

type subscriber struct {
	id      uint64
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers handler for a topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscriber{id: b.nextID, handler: handler})
	return Subscription{bus: b, topic: topic, id: b.nextID}
}

// Publish delivers an event to the topic's subscribers.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subs[ev.Topic]))
	copy(subs, b.subs[ev.Topic])
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(ev)
	}
}

func (b *Bus) unsubscribe(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
