package totp

import "time"

// Clock abstracts wall-clock reads so code generation and expiration
// scheduling can be tested against a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a [Clock] backed by time.Now.
func NewSystemClock() Clock { return systemClock{} }
