package store

import (
	"context"
	"sync"
)

// Notifier is the broadcast hub behind [ChangeFeed]. Repositories call
// Broadcast after every successful mutation; subscribers receive coalesced
// signals on buffered channels and re-read the store.
type Notifier struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[string]map[chan struct{}]struct{}),
	}
}

// Subscribe implements [ChangeFeed]. The returned channel has capacity one;
// a pending undelivered signal absorbs subsequent broadcasts, which is safe
// because every emission is full-state, not a diff.
func (n *Notifier) Subscribe(ctx context.Context, userID string) <-chan struct{} {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[chan struct{}]struct{})
	}
	n.subs[userID][ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()

		n.mu.Lock()
		delete(n.subs[userID], ch)
		if len(n.subs[userID]) == 0 {
			delete(n.subs, userID)
		}
		n.mu.Unlock()

		close(ch)
	}()

	return ch
}

// Broadcast signals every subscriber of userID without blocking: a signal is
// dropped for subscribers that already have one pending.
func (n *Notifier) Broadcast(userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
