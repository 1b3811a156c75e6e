package clock

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/elolcd/internal/common/clock Clock
type Clock interface {
	Now() time.Time

	// Sleep blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() when interrupted.
	Sleep(ctx context.Context, d time.Duration) error
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Sleep waits on a timer so a cancelled context wakes it immediately
func (c *DefaultClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
