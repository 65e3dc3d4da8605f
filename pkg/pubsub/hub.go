// Package pubsub is an in-process topic hub for change signals.
//
// A signal carries no payload: subscribers re-read the state they care about.
// Signals to a subscriber that has not consumed the previous one are coalesced,
// so a slow subscriber never blocks Publish and never misses the latest state.
package pubsub

import "sync"

type Hub struct {
	mu     sync.Mutex
	topics map[string]map[*Subscription]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*Subscription]struct{})}
}

type Subscription struct {
	hub    *Hub
	topics []string
	ch     chan struct{}
	done   bool
}

// Subscribe registers interest in topics. After Close of the hub the returned
// subscription's channel is already closed.
func (h *Hub) Subscribe(topics ...string) *Subscription {
	s := &Subscription{hub: h, topics: topics, ch: make(chan struct{}, 1)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		s.done = true
		close(s.ch)
		return s
	}
	for _, t := range topics {
		subs, ok := h.topics[t]
		if !ok {
			subs = make(map[*Subscription]struct{})
			h.topics[t] = subs
		}
		subs[s] = struct{}{}
	}
	return s
}

// Publish signals every subscriber of any of topics once.
func (h *Hub) Publish(topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for _, t := range topics {
		for s := range h.topics[t] {
			select {
			case s.ch <- struct{}{}:
			default:
			}
		}
	}
}

// Broadcast signals every subscriber. Used when changes could have been missed,
// e.g. after the upstream notification stream reconnects.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, subs := range h.topics {
		for s := range subs {
			select {
			case s.ch <- struct{}{}:
			default:
			}
		}
	}
}

// Subscribers returns the number of subscriptions on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[topic])
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, subs := range h.topics {
		for s := range subs {
			if !s.done {
				s.done = true
				close(s.ch)
			}
		}
	}
	h.topics = nil
}

func (s *Subscription) C() <-chan struct{} {
	return s.ch
}

func (s *Subscription) Close() {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	if s.done {
		return
	}
	s.done = true
	close(s.ch)
	for _, t := range s.topics {
		subs := h.topics[t]
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.topics, t)
		}
	}
}
