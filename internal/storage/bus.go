package storage

import (
	"sync"

	"github.com/manav03panchal/pomotime/internal/model"
)

// ChangeKind identifies what a Change carries.
type ChangeKind int

const (
	SettingsChanged ChangeKind = iota
	StatsChanged
)

func (k ChangeKind) String() string {
	switch k {
	case SettingsChanged:
		return "settings"
	case StatsChanged:
		return "stats"
	default:
		return "unknown"
	}
}

// Change is a notification that persisted data was written.
type Change struct {
	Kind     ChangeKind
	Settings model.Settings   // for SettingsChanged
	Stats    model.DailyStats // for StatsChanged
}

// Bus broadcasts changes to subscribers within the process. Delivery is
// best effort: a subscriber whose buffer is full misses the change.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Change
	closed bool
}

// NewBus returns a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new observer channel.
func (b *Bus) Subscribe(buffer int) <-chan Change {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Change, buffer)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Publish delivers c to every subscriber without blocking. A nil bus
// drops the change.
func (b *Bus) Publish(c Change) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

// Close closes every subscriber channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
