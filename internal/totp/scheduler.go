package totp

import (
	"sync"
	"time"
)

// Entry is one code the scheduler tracks: the item it belongs to, when its
// current code stops being valid, and the period used to advance the
// deadline after each fire.
type Entry struct {
	ItemID    string
	ExpiresAt time.Time
	Period    uint
}

// ExpirationScheduler wakes exactly once per earliest upcoming expiry and
// reports all tracked entries in a single callback. It holds one timer no
// matter how many codes are visible; there is no per-entry or per-second
// polling.
type ExpirationScheduler struct {
	mu       sync.Mutex
	clock    Clock
	onExpire func(entries []Entry)
	entries  []Entry
	timer    *time.Timer
	stopped  bool

	// afterFunc is swapped in tests to observe the armed durations.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewExpirationScheduler constructs a stopped-state scheduler that invokes
// onExpire each time the earliest tracked deadline passes. The callback
// runs on the timer goroutine and must not block.
func NewExpirationScheduler(clock Clock, onExpire func(entries []Entry)) *ExpirationScheduler {
	return &ExpirationScheduler{
		clock:     clock,
		onExpire:  onExpire,
		afterFunc: time.AfterFunc,
	}
}

// Configure replaces the tracked set and re-arms the timer to the minimal
// next deadline. An empty set disarms the timer. Safe to call from any
// goroutine, including from inside the callback.
func (s *ExpirationScheduler) Configure(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	s.rearm()
}

// Stop disarms the timer and drops the tracked set. A stopped scheduler
// never fires again; any tick racing with Stop is discarded.
func (s *ExpirationScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.entries = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// rearm points the single timer at the earliest future deadline. Caller
// holds s.mu.
func (s *ExpirationScheduler) rearm() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	var next time.Time
	for _, e := range s.entries {
		if e.Period == 0 {
			continue
		}
		if next.IsZero() || e.ExpiresAt.Before(next) {
			next = e.ExpiresAt
		}
	}
	if next.IsZero() {
		return
	}

	d := next.Sub(s.clock.Now())
	if d < 0 {
		d = 0
	}
	s.timer = s.afterFunc(d, s.fire)
}

// fire advances every already-expired entry to its next period boundary,
// re-arms for the new minimum, then delivers the full tracked set.
func (s *ExpirationScheduler) fire() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}

	now := s.clock.Now()
	for i := range s.entries {
		if s.entries[i].Period == 0 {
			continue
		}
		step := time.Duration(s.entries[i].Period) * time.Second
		for !s.entries[i].ExpiresAt.After(now) {
			s.entries[i].ExpiresAt = s.entries[i].ExpiresAt.Add(step)
		}
	}

	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	s.rearm()
	s.mu.Unlock()

	if len(snapshot) > 0 {
		s.onExpire(snapshot)
	}
}
