package state

import (
	"sync"
	"time"

	"github.com/ferux/powerwatch/internal/model"
)

// Change describes a single online/offline transition.
type Change struct {
	Online bool
	At     time.Time
	// Lasted is how long the previous state persisted.
	Lasted time.Duration
}

// Tracker remembers the last observed state of the device. The first
// observation only primes it and never counts as a change.
type Tracker struct {
	mu    sync.RWMutex
	state model.DeviceState
}

func New() *Tracker {
	return &Tracker{}
}

// Observe records online as seen at now and reports whether it differs
// from the previous observation.
func (t *Tracker) Observe(online bool, now time.Time) (Change, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.state.Primed {
		t.state = model.DeviceState{Primed: true, Online: online, ChangedAt: now}
		return Change{}, false
	}

	if t.state.Online == online {
		return Change{}, false
	}

	change := Change{
		Online: online,
		At:     now,
		Lasted: now.Sub(t.state.ChangedAt),
	}

	t.state.Online = online
	t.state.ChangedAt = now

	return change, true
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() model.DeviceState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}
