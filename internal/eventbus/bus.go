// Package eventbus provides a synchronous publish/subscribe registry for
// decoupled communication between scenes, game objects and the host.
//
// Event names follow a "domain:action" convention (e.g. "scene:switch",
// "game:score"). Listeners run inline on the emitting call stack, in
// subscription order.
package eventbus

import (
	"reflect"
	"sync"
)

// Handler is called with the arguments passed to Emit.
type Handler func(args ...any)

// ID identifies a single subscription. Go funcs are not comparable,
// so subscriptions are removed by ID rather than by handler value.
type ID uint64

type listener struct {
	id      ID
	owner   any
	handler Handler
	once    bool
	fired   bool
}

// Bus maps event names to ordered listener lists.
// A Bus is created once per running game and handed to every component
// that needs it.
type Bus struct {
	mu     sync.Mutex
	events map[string][]*listener
	nextID ID
}

// New creates an empty event bus.
func New() *Bus {
	return &Bus{
		events: make(map[string][]*listener),
	}
}

// Subscribe registers handler for event and returns its subscription ID.
func (b *Bus) Subscribe(event string, handler Handler) ID {
	return b.add(event, nil, handler, false)
}

// SubscribeOwned registers handler on behalf of owner. All listeners of an
// owner can later be dropped at once with UnsubscribeOwner. The owner must
// be comparable (a pointer is the usual token); other owners are rejected
// and 0 is returned.
func (b *Bus) SubscribeOwned(event string, owner any, handler Handler) ID {
	if owner != nil && !isComparable(owner) {
		return 0
	}
	return b.add(event, owner, handler, false)
}

// SubscribeOnce registers handler to run at most once; it removes itself
// before its first invocation.
func (b *Bus) SubscribeOnce(event string, handler Handler) ID {
	return b.add(event, nil, handler, true)
}

func (b *Bus) add(event string, owner any, handler Handler, once bool) ID {
	if handler == nil {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.events[event] = append(b.events[event], &listener{
		id:      b.nextID,
		owner:   owner,
		handler: handler,
		once:    once,
	})
	return b.nextID
}

// Unsubscribe removes the subscription with the given ID from event.
// Unknown events or IDs are ignored.
func (b *Bus) Unsubscribe(event string, id ID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.removeLocked(event, func(l *listener) bool { return l.id == id })
}

// UnsubscribeAll removes every listener of event.
func (b *Bus) UnsubscribeAll(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.events, event)
}

// UnsubscribeOwner removes every listener registered by owner, across all
// events. A nil or non-comparable owner is ignored.
func (b *Bus) UnsubscribeOwner(owner any) {
	if owner == nil || !isComparable(owner) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for event := range b.events {
		b.removeLocked(event, func(l *listener) bool { return sameOwner(l.owner, owner) })
	}
}

// isComparable reports whether v can be compared with == without panicking.
// Interface fields are checked by their dynamic values.
func isComparable(v any) bool {
	return reflect.ValueOf(v).Comparable()
}

// sameOwner compares two comparable owners. Owners of different dynamic
// types never match.
func sameOwner(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a == b
}

func (b *Bus) removeLocked(event string, match func(*listener) bool) {
	listeners, ok := b.events[event]
	if !ok {
		return
	}

	kept := listeners[:0:0]
	for _, l := range listeners {
		if !match(l) {
			kept = append(kept, l)
		}
	}

	if len(kept) == 0 {
		delete(b.events, event)
		return
	}
	b.events[event] = kept
}

// Emit calls every listener of event with args, synchronously and in
// subscription order. The listener list is snapshotted first: listeners
// added during the emit are not called by it, and handlers may emit again.
func (b *Bus) Emit(event string, args ...any) {
	b.mu.Lock()
	listeners := b.events[event]
	if len(listeners) == 0 {
		b.mu.Unlock()
		return
	}
	snapshot := make([]*listener, len(listeners))
	copy(snapshot, listeners)
	b.mu.Unlock()

	for _, l := range snapshot {
		if l.once {
			if !b.claimOnce(event, l) {
				continue
			}
		}
		l.handler(args...)
	}
}

// claimOnce marks a once-listener as fired and removes it. It returns false
// when a re-entrant emit already fired it.
func (b *Bus) claimOnce(event string, l *listener) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if l.fired {
		return false
	}
	l.fired = true
	b.removeLocked(event, func(other *listener) bool { return other == l })
	return true
}

// ListenerCount returns the number of listeners currently registered for event.
func (b *Bus) ListenerCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.events[event])
}

// Clear drops every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = make(map[string][]*listener)
}
