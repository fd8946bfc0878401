package services

import (
	"context"
	"fmt"
	"time"
)

var defaultBackoffs = []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, time.Second}

// retryWithBackoff runs fn once, then once more after each backoff, until it
// succeeds or ctx is done.
func retryWithBackoff(ctx context.Context, backoffs []time.Duration, fn func() error) error {
	attempts := len(backoffs) + 1

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if i == len(backoffs) {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up after %d attempts: %w", i+1, lastErr)
		case <-time.After(backoffs[i]):
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
