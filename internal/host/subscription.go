package host

import "sync"

// Subscription is a handler registration that is released exactly once.
// After Close returns the handler is never invoked again.
type Subscription struct {
	mu     sync.Mutex
	host   Host
	event  Event
	id     HandlerID
	closed bool
}

// Subscribe registers fn for event on h. Callers must Close the result,
// typically with defer.
func Subscribe(h Host, event Event, fn Handler) *Subscription {
	s := &Subscription{host: h, event: event}
	s.id = h.OnEvent(event, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		fn()
	})
	return s
}

// Close unregisters the handler. It is safe to call more than once.
func (s *Subscription) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.host.OffEvent(s.event, s.id)
	return nil
}
