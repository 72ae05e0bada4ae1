package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDelayWaitsForClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := NewFixedDelayWithClock(clock, 10*time.Second)

	done := make(chan error, 1)
	go func() { done <- p.Wait(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(9 * time.Second)
	select {
	case <-done:
		t.Fatal("returned before the delay elapsed")
	default:
	}

	clock.Advance(time.Second)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("did not return after the delay")
	}
}

func TestFixedDelayHonoursCancel(t *testing.T) {
	p := NewFixedDelayWithClock(clockwork.NewFakeClock(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)
}

func TestNoDelay(t *testing.T) {
	assert.NoError(t, NoDelay{}.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NoDelay{}.Wait(ctx), context.Canceled)
}

func TestZeroDelayDoesNotBlock(t *testing.T) {
	p := NewFixedDelayWithClock(clockwork.NewFakeClock(), 0)
	assert.NoError(t, p.Wait(context.Background()))
}
