// Package notify carries the payload-free save broadcast: any view holding
// its own read of the persisted store refreshes when a day is saved.
package notify

import "sync"

// Broadcaster fans a fire-and-forget signal out to subscribers. Delivery is
// best-effort: a subscriber that has not drained its channel misses the
// signal rather than blocking the saver.
type Broadcaster struct {
	mu   sync.Mutex
	subs []chan struct{}
}

// New creates an empty Broadcaster.
func New() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a listener and returns its signal channel.
// The channel is buffered with one slot; coalesced signals are fine since
// the payload carries no information.
func (b *Broadcaster) Subscribe() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan struct{}, 1)
	b.subs = append(b.subs, ch)
	return ch
}

// Publish signals all subscribers without blocking.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
