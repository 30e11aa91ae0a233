// Package input routes keyboard events to scoped subscribers.
//
// A Bus replaces a process-wide key handler: every subscriber holds a
// Subscription that must be released when its owner is torn down. Events
// published after release are not delivered.
package input

import "sync"

// Handler receives a key and reports whether it consumed it.
type Handler func(Key) bool

// Bus fans keys out to subscribers in subscription order.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	h  Handler
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	bus  *Bus
	id   int
	once sync.Once
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns the handle that releases it.
func (b *Bus) Subscribe(h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, h: h})
	return &Subscription{bus: b, id: b.nextID}
}

// Release removes the subscription. Safe to call more than once.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish delivers k to subscribers until one consumes it.
// Returns true if any subscriber consumed the key.
func (b *Bus) Publish(k Key) bool {
	b.mu.Lock()
	handlers := make([]Handler, len(b.subs))
	for i, sub := range b.subs {
		handlers[i] = sub.h
	}
	b.mu.Unlock()

	for _, h := range handlers {
		if h(k) {
			return true
		}
	}
	return false
}
