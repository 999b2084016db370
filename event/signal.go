// Package event provides the observer lists used to publish simulation
// notifications (stamina changes, cooldown edges, jump transitions) to
// consumers that are registered once and released on teardown.
package event

import "github.com/elliotchance/orderedmap/v2"

// Signal is an ordered list of listeners for values of type T.
// Listeners are notified in subscription order. A Signal is not safe for
// concurrent use; it belongs to the tick loop that owns its emitter.
type Signal[T any] struct {
	nextID uint64
	subs   *orderedmap.OrderedMap[uint64, func(T)]
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id     uint64
	remove func(uint64)
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{subs: orderedmap.NewOrderedMap[uint64, func(T)]()}
}

// Subscribe registers fn. A nil fn yields an inert subscription.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	if s == nil || fn == nil {
		return Subscription{}
	}
	if s.subs == nil {
		s.subs = orderedmap.NewOrderedMap[uint64, func(T)]()
	}
	s.nextID++
	id := s.nextID
	s.subs.Set(id, fn)
	return Subscription{id: id, remove: s.unsubscribe}
}

func (s *Signal[T]) unsubscribe(id uint64) {
	if s == nil || s.subs == nil {
		return
	}
	s.subs.Delete(id)
}

// Emit notifies every listener with v. Listeners removed during the
// emission are skipped if they have not been called yet.
func (s *Signal[T]) Emit(v T) {
	if s == nil || s.subs == nil || s.subs.Len() == 0 {
		return
	}
	for _, id := range s.subs.Keys() {
		fn, ok := s.subs.Get(id)
		if !ok {
			continue
		}
		fn(v)
	}
}

// Len returns the number of live listeners.
func (s *Signal[T]) Len() int {
	if s == nil || s.subs == nil {
		return 0
	}
	return s.subs.Len()
}

// Clear drops every listener.
func (s *Signal[T]) Clear() {
	if s == nil {
		return
	}
	s.subs = orderedmap.NewOrderedMap[uint64, func(T)]()
}

// Close removes the listener. Closing twice is a no-op.
func (sub *Subscription) Close() {
	if sub == nil || sub.remove == nil {
		return
	}
	sub.remove(sub.id)
	sub.remove = nil
}

// Active reports whether the subscription has not been closed.
func (sub Subscription) Active() bool {
	return sub.remove != nil
}
