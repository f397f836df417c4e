package impl

import (
	"context"
	"time"
)

// sleepFor blocks for the simulated processing delay, aborting early when
// the request context is canceled.
func sleepFor(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
