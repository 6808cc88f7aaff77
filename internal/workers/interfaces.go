// Package workers provides the background jobs of the client: currently the
// vault timeout worker, which periodically sweeps all known accounts and
// applies the configured timeout action to sessions that have idled out.
package workers

import (
	"context"
	"time"
)

// Worker is a restartable background job driven by a ticker.
type Worker interface {
	// Start launches the background goroutine. Any previously running
	// instance is stopped before the new one begins. The goroutine exits
	// when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the worker is not running.
	Stop()
}
