package timex

import (
	"errors"
	"sync"
	"time"
)

// ErrSimSleep is returned by SimClock when a failure was injected.
var ErrSimSleep = errors.New("sim: sleep rejected")

// SimClock is a virtual clock. Sleep advances it instantly.
type SimClock struct {
	mu     sync.Mutex
	now    time.Duration
	sleeps []time.Duration
	failAt int // 1-based index of the Sleep call to reject; 0 = never
}

// Now is the virtual time since the clock was created.
func (c *SimClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *SimClock) Sleep(d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	if c.failAt != 0 && len(c.sleeps) == c.failAt {
		return ErrSimSleep
	}
	if d > 0 {
		c.now += d
	}
	return nil
}

// Advance moves the clock without recording a sleep, as the bus time of a
// transaction would.
func (c *SimClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// FailSleep makes the nth Sleep call (1-based) fail.
func (c *SimClock) FailSleep(n int) {
	c.mu.Lock()
	c.failAt = n
	c.mu.Unlock()
}

// Sleeps returns every requested duration in call order.
func (c *SimClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// Reset returns the clock to zero and clears the record and injected failure.
func (c *SimClock) Reset() {
	c.mu.Lock()
	c.now = 0
	c.sleeps = nil
	c.failAt = 0
	c.mu.Unlock()
}
