package pacing

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDelay keeps the pullers under the provider's per-minute quota.
const DefaultDelay = 10 * time.Second

// Pacer is waited on before every upstream call a puller makes.
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedDelay sleeps a constant duration on its clock.
type FixedDelay struct {
	clock clockwork.Clock
	delay time.Duration
}

// NewFixedDelay builds a pacer on the real clock
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return NewFixedDelayWithClock(clockwork.NewRealClock(), delay)
}

// NewFixedDelayWithClock is used by tests with a fake clock
func NewFixedDelayWithClock(clock clockwork.Clock, delay time.Duration) *FixedDelay {
	return &FixedDelay{clock: clock, delay: delay}
}

// Wait blocks for the configured delay or until ctx is done.
func (p *FixedDelay) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	timer := p.clock.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// NoDelay never waits
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}
