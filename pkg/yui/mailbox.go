package yui

import (
	"sync"
	"time"
)

// mailbox holds at most one pending event. A second post before the pump
// drains replaces the first.
type mailbox struct {
	mu      sync.Mutex
	pending *Event
	signal  chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{signal: make(chan struct{}, 1)}
}

// post stores ev and reports whether an undelivered event was replaced.
func (m *mailbox) post(ev *Event) (replaced bool) {
	m.mu.Lock()
	replaced = m.pending != nil
	m.pending = ev
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
	return replaced
}

// take removes and returns the pending event, or nil.
func (m *mailbox) take() *Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev := m.pending
	m.pending = nil
	return ev
}

func (m *mailbox) peek() *Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

func (m *mailbox) len() int {
	if m.peek() != nil {
		return 1
	}
	return 0
}

// wait blocks until a post arrives or the deadline passes. A zero deadline
// waits for a post only. It reports whether an event is pending.
func (m *mailbox) wait(deadline time.Time, wake <-chan struct{}) bool {
	if m.peek() != nil {
		return true
	}
	var timeout <-chan time.Time
	if !deadline.IsZero() {
		d := time.Until(deadline)
		if d <= 0 {
			return false
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case <-m.signal:
	case <-timeout:
	case <-wake:
	}
	return m.peek() != nil
}
