package app

import (
	"context"
	"time"
)

// StartAutoRefresh launches a background goroutine that re-runs the fetch at a
// fixed cadence. A non-positive interval disables it. It returns immediately
// and reports whether the goroutine was started.
func StartAutoRefresh(ctx context.Context, fetcher *Fetcher, interval time.Duration) bool {
	if fetcher == nil || interval <= 0 {
		return false
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// Failures are recorded in the store and logged by the fetcher.
				_ = fetcher.Fetch(ctx)
			}
		}
	}()
	return true
}
