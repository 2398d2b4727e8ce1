package session

import (
	"context"
	"fmt"
	"time"

	"github.com/runnerr0/timeliner/internal/config"
)

// InjectFunc pushes a prompt into the host page's input control and submits
// it. Implemented by external glue; an error means the control was not
// available yet.
type InjectFunc func(prompt string) error

// Deliver injects the query's prompt, retrying on a fixed interval because
// the host page's load-completion signal is unreliable. The retry budget is
// the only termination guarantee besides ctx. On success the caller must
// discard the pending query; delivery is never retried past this call.
func Deliver(ctx context.Context, q *PendingQuery, inject InjectFunc, cfg config.SessionConfig) error {
	var lastErr error
	for attempt := 0; attempt < cfg.DeliverMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.DeliverRetry()):
			}
		}
		if lastErr = inject(q.Prompt); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("delivering prompt after %d attempts: %w", cfg.DeliverMaxAttempts, lastErr)
}
