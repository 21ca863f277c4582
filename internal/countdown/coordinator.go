// Package countdown derives a displayed "next selection in N seconds" value
// from the server-supplied timestamp and triggers a single refresh when the
// timer elapses. The tick evaluation is separated from the ticker loop so
// the exactly-one-refresh guarantee is testable without real time.
package countdown

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"susie.mx/gokemon-client/internal/errors"
	"susie.mx/gokemon-client/internal/pkg/clock"
)

// DefaultTickInterval is how often the remaining time is recomputed.
const DefaultTickInterval = time.Second

// Config holds the dependencies for the coordinator
type Config struct {
	Clock clock.Clock
	// TickInterval between evaluations (optional, defaults to one second).
	TickInterval time.Duration
	// PendingEmpty probes whether the locally known pending-selection list
	// is still empty. The refresh fires only while it is.
	PendingEmpty func() bool
	// Refresh fetches the newly generated pending items from the remote API.
	Refresh func(ctx context.Context) error
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.PendingEmpty == nil {
		vb.RequiredField("PendingEmpty")
	}
	if c.Refresh == nil {
		vb.RequiredField("Refresh")
	}
	if c.TickInterval < 0 {
		vb.InvalidField("TickInterval", "must not be negative")
	}

	return vb.Build()
}

// Coordinator counts down to a server-supplied timestamp and issues at most
// one refresh per armed timestamp.
type Coordinator struct {
	clock        clock.Clock
	tickInterval time.Duration
	pendingEmpty func() bool
	refresh      func(ctx context.Context) error

	mu       sync.Mutex
	targetAt int64 // ms since epoch; zero means not armed
	fired    bool

	remaining chan int64
	stopOnce  sync.Once
	stop      chan struct{}
}

// New creates a coordinator with the provided dependencies
func New(cfg *Config) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	interval := cfg.TickInterval
	if interval == 0 {
		interval = DefaultTickInterval
	}

	return &Coordinator{
		clock:        cfg.Clock,
		tickInterval: interval,
		pendingEmpty: cfg.PendingEmpty,
		refresh:      cfg.Refresh,
		remaining:    make(chan int64, 1),
		stop:         make(chan struct{}),
	}, nil
}

// Arm points the coordinator at a new target timestamp (ms since epoch) and
// re-enables the one-shot refresh. Arming with zero disarms it.
func (c *Coordinator) Arm(targetAt int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetAt = targetAt
	c.fired = false
}

// Tick performs one evaluation: computes the remaining whole seconds,
// publishes it, and fires the refresh when the countdown has elapsed, the
// pending list is still empty, and this timestamp has not fired before.
// Returns the remaining seconds, or -1 when not armed.
func (c *Coordinator) Tick(ctx context.Context) int64 {
	c.mu.Lock()
	targetAt := c.targetAt
	fired := c.fired
	c.mu.Unlock()

	if targetAt == 0 {
		return -1
	}

	remaining := (targetAt - c.clock.Now().UnixMilli()) / 1000
	if remaining < 0 {
		remaining = 0
	}
	c.publish(remaining)

	if remaining > 0 || fired || !c.pendingEmpty() {
		return remaining
	}

	c.mu.Lock()
	// Re-check under the lock so a concurrent Arm between the snapshot and
	// here cannot be marked as fired.
	if c.targetAt != targetAt || c.fired {
		c.mu.Unlock()
		return remaining
	}
	c.fired = true
	c.mu.Unlock()

	if err := c.refresh(ctx); err != nil {
		// One shot per timestamp even on failure; the UI surfaces the stale
		// state and the next session refresh re-arms with a new timestamp.
		slog.Warn("countdown refresh failed", "target_at", targetAt, "error", err)
	}
	return remaining
}

// Run loops on the tick interval until the context is cancelled or Stop is
// called. It owns the only recurring timer in the client.
func (c *Coordinator) Run(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// Stop halts a running coordinator. Safe to call more than once; the owning
// view must call it on teardown or the ticker leaks against a stale closure.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Remaining exposes the published countdown values for display.
func (c *Coordinator) Remaining() <-chan int64 {
	return c.remaining
}

// publish never blocks; an unread stale value is replaced by the fresh one.
func (c *Coordinator) publish(remaining int64) {
	for {
		select {
		case c.remaining <- remaining:
			return
		default:
			select {
			case <-c.remaining:
			default:
			}
		}
	}
}
