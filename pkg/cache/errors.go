package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// cacheRetry bounds retries of a single cache round-trip. A cache only
// saves work, so the whole sequence stays well under a fresh render:
// 20ms, 40ms, 80ms between four attempts.
var cacheRetry = retryPolicy{attempts: 4, base: 20 * time.Millisecond, max: 100 * time.Millisecond}

type retryPolicy struct {
	attempts int
	base     time.Duration
	max      time.Duration
}

func (p retryPolicy) delay(attempt int) time.Duration {
	d := p.base << attempt
	if d <= 0 || d > p.max {
		return p.max
	}
	return d
}

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn until it succeeds, fails with an error not
// marked Retryable, or runs out of attempts. On exhaustion the last error is
// returned unwrapped, annotated with the attempt count.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	p := cacheRetry
	var err error
	for attempt := 0; attempt < p.attempts; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == p.attempts-1 {
			break
		}
		t := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	var re *RetryableError
	errors.As(err, &re)
	return fmt.Errorf("cache: giving up after %d attempts: %w", p.attempts, re.Err)
}
