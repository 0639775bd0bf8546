package images

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// providerError classifies a failed provider call by HTTP status. Status 0
// means a network-level failure.
type providerError struct {
	provider string
	status   int
	err      error
}

func (e *providerError) Error() string {
	if e.status != 0 {
		return fmt.Sprintf("%s: HTTP %d", e.provider, e.status)
	}
	return fmt.Sprintf("%s: %v", e.provider, e.err)
}

func (e *providerError) Unwrap() error { return e.err }

// isAuthError reports whether the failure is a credentials problem. Retrying
// on bad credentials only burns quota, so the retry loop short-circuits.
func isAuthError(err error) bool {
	var pe *providerError
	if errors.As(err, &pe) {
		return pe.status == http.StatusUnauthorized || pe.status == http.StatusForbidden
	}
	return false
}

// retryPolicy is a bounded retry loop for provider calls: up to Attempts
// tries with a fixed Delay between them, each bounded by Timeout. Only
// transient failures are retried; auth errors stop the loop immediately.
type retryPolicy struct {
	Attempts int
	Delay    time.Duration
	Timeout  time.Duration
}

// do runs fn under the policy. fn returning ("", nil) means the provider
// answered with no result; that is final and never retried.
func (p retryPolicy) do(ctx context.Context, logger *slog.Logger, op string, fn func(ctx context.Context) (string, error)) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
		start := time.Now()
		url, err := fn(callCtx)
		cancel()

		if err == nil {
			return url, nil
		}
		lastErr = err

		logger.Warn("provider call failed",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", p.Attempts),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err))

		if isAuthError(err) {
			return "", err
		}
		if attempt == p.Attempts {
			break
		}

		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
