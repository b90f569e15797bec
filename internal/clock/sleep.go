// Package clock provides cancelable time helpers.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d, or until ctx is done, in which case ctx.Err is returned.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
