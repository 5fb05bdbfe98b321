package totp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable Clock for deterministic scheduler tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// manualTimer captures armed durations and lets the test trigger ticks by
// hand instead of waiting on real timers.
type manualTimer struct {
	mu      sync.Mutex
	armed   []time.Duration
	pending func()
}

func (m *manualTimer) afterFunc(d time.Duration, f func()) *time.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed = append(m.armed, d)
	m.pending = f
	// a stopped real timer so the scheduler's Stop calls are harmless
	t := time.AfterFunc(time.Hour, func() {})
	t.Stop()
	return t
}

func (m *manualTimer) tick() {
	m.mu.Lock()
	f := m.pending
	m.pending = nil
	m.mu.Unlock()
	if f != nil {
		f()
	}
}

func (m *manualTimer) lastArmed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.armed) == 0 {
		return -1
	}
	return m.armed[len(m.armed)-1]
}

func newManualScheduler(onExpire func([]Entry)) (*ExpirationScheduler, *fakeClock, *manualTimer) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := &manualTimer{}
	s := NewExpirationScheduler(clock, onExpire)
	s.afterFunc = timer.afterFunc
	return s, clock, timer
}

// ── Arming ──

func TestExpirationScheduler_ArmsToMinimalDeadline(t *testing.T) {
	s, _, timer := newManualScheduler(func([]Entry) {})
	defer s.Stop()

	// mixed periods; the 10 s entry expires first
	s.Configure([]Entry{
		{ItemID: "thirty", ExpiresAt: time.Unix(1020, 0), Period: 30},
		{ItemID: "ten", ExpiresAt: time.Unix(1005, 0), Period: 10},
		{ItemID: "fifteen", ExpiresAt: time.Unix(1012, 0), Period: 15},
	})

	assert.Equal(t, 5*time.Second, timer.lastArmed())
}

func TestExpirationScheduler_EmptySetDisarms(t *testing.T) {
	s, _, timer := newManualScheduler(func([]Entry) {})
	defer s.Stop()

	s.Configure([]Entry{{ItemID: "a", ExpiresAt: time.Unix(1005, 0), Period: 30}})
	require.Equal(t, 5*time.Second, timer.lastArmed())

	armedBefore := len(timer.armed)
	s.Configure(nil)
	assert.Len(t, timer.armed, armedBefore, "empty set must not arm a timer")
}

// ── Firing ──

func TestExpirationScheduler_FireAdvancesAndRearms(t *testing.T) {
	var (
		mu    sync.Mutex
		fired [][]Entry
	)
	s, clock, timer := newManualScheduler(func(entries []Entry) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, entries)
	})
	defer s.Stop()

	s.Configure([]Entry{
		{ItemID: "ten", ExpiresAt: time.Unix(1010, 0), Period: 10},
		{ItemID: "thirty", ExpiresAt: time.Unix(1030, 0), Period: 30},
	})
	require.Equal(t, 10*time.Second, timer.lastArmed())

	clock.Set(time.Unix(1010, 0))
	timer.tick()

	mu.Lock()
	require.Len(t, fired, 1)
	got := fired[0]
	mu.Unlock()

	// the callback carries the full tracked set, expired or not
	require.Len(t, got, 2)
	byID := map[string]Entry{got[0].ItemID: got[0], got[1].ItemID: got[1]}
	assert.Equal(t, time.Unix(1020, 0), byID["ten"].ExpiresAt)
	assert.Equal(t, time.Unix(1030, 0), byID["thirty"].ExpiresAt)

	// re-armed to the new minimum: 1020 - 1010
	assert.Equal(t, 10*time.Second, timer.lastArmed())
}

func TestExpirationScheduler_CatchesUpMissedPeriods(t *testing.T) {
	var got []Entry
	s, clock, timer := newManualScheduler(func(entries []Entry) { got = entries })
	defer s.Stop()

	s.Configure([]Entry{{ItemID: "ten", ExpiresAt: time.Unix(1010, 0), Period: 10}})

	// the process slept through three periods
	clock.Set(time.Unix(1041, 0))
	timer.tick()

	require.Len(t, got, 1)
	assert.Equal(t, time.Unix(1050, 0), got[0].ExpiresAt)
}

func TestExpirationScheduler_ConfigureFromCallbackRearms(t *testing.T) {
	var (
		s     *ExpirationScheduler
		clock *fakeClock
		timer *manualTimer
	)
	var fired []Entry
	s, clock, timer = newManualScheduler(func(entries []Entry) {
		// a consumer recomputing codes hands the new deadlines straight back
		s.Configure([]Entry{{ItemID: "a", ExpiresAt: clock.Now().Add(7 * time.Second), Period: 30}})
		fired = entries
	})
	defer s.Stop()

	s.Configure([]Entry{{ItemID: "a", ExpiresAt: time.Unix(1010, 0), Period: 30}})
	require.Equal(t, 10*time.Second, timer.lastArmed())

	clock.Set(time.Unix(1010, 0))
	timer.tick()

	require.Len(t, fired, 1)
	assert.Equal(t, 7*time.Second, timer.lastArmed())
}

// ── Cancellation ──

func TestExpirationScheduler_StopSuppressesCallbacks(t *testing.T) {
	var calls int
	s, clock, timer := newManualScheduler(func([]Entry) { calls++ })

	s.Configure([]Entry{{ItemID: "a", ExpiresAt: time.Unix(1005, 0), Period: 30}})
	s.Stop()

	clock.Set(time.Unix(1005, 0))
	timer.tick()

	assert.Zero(t, calls)

	// Configure after Stop is a no-op as well
	s.Configure([]Entry{{ItemID: "b", ExpiresAt: time.Unix(1010, 0), Period: 30}})
	clock.Set(time.Unix(1010, 0))
	timer.tick()
	assert.Zero(t, calls)
}
