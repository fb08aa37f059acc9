package timer

import (
	"sync"
	"time"
)

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the engine's source of time.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// NewTicker returns a ticker backed by time.Ticker.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a clock that only moves when Advance is called. Ticks are
// delivered synchronously: Advance blocks until each due tick is received
// or its ticker is stopped.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps the clock to t without firing tickers.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	for _, tk := range c.tickers {
		tk.next = t.Add(tk.period)
	}
	c.mu.Unlock()
}

// NewTicker registers a ticker that fires every d of manual time.
func (c *ManualClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("timer: non-positive interval for ManualClock.NewTicker")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	tk := &manualTicker{
		c:       make(chan time.Time),
		period:  d,
		next:    c.now.Add(d),
		stopped: make(chan struct{}),
	}
	c.tickers = append(c.tickers, tk)
	return tk
}

// Advance moves the clock forward by d, firing every tick that falls due on
// the way in order.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		tk := c.nextDue(target)
		if tk == nil {
			break
		}
		c.now = tk.next
		tk.next = tk.next.Add(tk.period)
		at := c.now
		c.mu.Unlock()

		select {
		case tk.c <- at:
		case <-tk.stopped:
		}

		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// nextDue returns the live ticker with the earliest tick at or before target.
// The caller holds c.mu.
func (c *ManualClock) nextDue(target time.Time) *manualTicker {
	var due *manualTicker
	live := c.tickers[:0]
	for _, tk := range c.tickers {
		if tk.isStopped() {
			continue
		}
		live = append(live, tk)
		if tk.next.After(target) {
			continue
		}
		if due == nil || tk.next.Before(due.next) {
			due = tk
		}
	}
	c.tickers = live
	return due
}

type manualTicker struct {
	c       chan time.Time
	period  time.Duration
	next    time.Time
	stopped chan struct{}
	once    sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

func (t *manualTicker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
