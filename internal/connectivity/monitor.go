// Package connectivity tracks whether the device can currently reach the
// booking server. Services branch on the reported state, never on individual
// request failures, so every caller sees the same answer at the same moment.
package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Prober answers whether the remote endpoint is reachable right now. The REST
// gateway implements it with a lightweight request.
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor holds the current connectivity state. Construct it with New and
// inject it everywhere a decision between remote and local data is made.
type Monitor struct {
	online atomic.Bool

	mu   sync.Mutex
	subs []func(online bool)
}

// New returns a monitor that starts in the given state. Apps typically start
// optimistic (online) and let the first probe correct it.
func New(online bool) *Monitor {
	m := &Monitor{}
	m.online.Store(online)

	return m
}

// Online reports the last observed connectivity state.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// SetOnline records a state change and notifies subscribers. Notifications
// only fire on actual transitions.
func (m *Monitor) SetOnline(online bool) {
	if m.online.Swap(online) == online {
		return
	}

	log.Info().Bool("online", online).Msg("Connectivity state changed")

	m.mu.Lock()
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers a callback invoked on every connectivity transition.
// Callbacks run synchronously on the goroutine that observed the change and
// must not block.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subs = append(m.subs, fn)
}

// Watch probes the remote on the given interval until ctx is cancelled,
// feeding the results into SetOnline. Run it on its own goroutine.
func (m *Monitor) Watch(ctx context.Context, prober Prober, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		m.SetOnline(prober.Ping(ctx) == nil)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
