// Package clock provides the time source used by the vault services.
// Production code runs on the wall clock; tests drive a mock.
package clock

import (
	"context"
	"time"

	bclock "github.com/benbjohnson/clock"
)

type (
	// Clock is the injectable time source.
	Clock = bclock.Clock
	// Mock is a manually advanced Clock.
	Mock = bclock.Mock
)

// New returns the wall clock.
func New() Clock {
	return bclock.New()
}

// NewMock returns a mock clock set to the Unix epoch.
func NewMock() *Mock {
	return bclock.NewMock()
}

// SleepWithContext waits for the duration on the wall clock or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return SleepOn(ctx, bclock.New(), d)
}

// SleepOn waits for the duration on clk or returns early if the context is canceled.
func SleepOn(ctx context.Context, clk Clock, d time.Duration) error {
	timer := clk.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
