package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_BroadcastReachesSubscriber(t *testing.T) {
	n := NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := n.Subscribe(ctx, "user-1")
	n.Broadcast("user-1")

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}
}

func TestNotifier_ScopedByUser(t *testing.T) {
	n := NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := n.Subscribe(ctx, "user-1")
	n.Broadcast("user-2")

	select {
	case <-ch:
		t.Fatal("signal for another user must not be delivered")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifier_CoalescesBursts(t *testing.T) {
	n := NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := n.Subscribe(ctx, "user-1")
	for i := 0; i < 10; i++ {
		n.Broadcast("user-1")
	}

	// At least one signal, and the burst never blocked Broadcast.
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected at least one coalesced signal")
	}
	assert.LessOrEqual(t, len(ch), 1)
}

func TestNotifier_SubscriptionClosedOnCancel(t *testing.T) {
	n := NewNotifier()
	ctx, cancel := context.WithCancel(context.Background())

	ch := n.Subscribe(ctx, "user-1")
	cancel()

	select {
	case _, open := <-ch:
		require.False(t, open, "channel must be closed after ctx cancel")
	case <-time.After(time.Second):
		t.Fatal("expected channel close after ctx cancel")
	}

	// A broadcast after unsubscribe must not panic.
	n.Broadcast("user-1")
}
