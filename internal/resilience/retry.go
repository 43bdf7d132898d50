// SPDX-License-Identifier: Apache-2.0

// Package resilience is the reference rescan policy for hosts driving the
// engine: extraction against a still-loading page legitimately fails, so
// callers retry with backoff up to a bounded attempt count. The engine's
// calls are side-effect-free and idempotent, which is what makes blind
// retrying safe.
package resilience

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"desklog/internal/record"
)

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxRetries      int                          // Maximum number of retry attempts
	InitialInterval time.Duration                // Initial retry interval
	MaxInterval     time.Duration                // Maximum retry interval
	Multiplier      float64                      // Exponential backoff multiplier (e.g. 2.0 doubles each attempt)
	Jitter          bool                         // Add up to 25% random jitter to spread retries
	OnRetry         func(attempt int, err error) // Optional callback invoked before each retry
}

// DefaultRescanConfig returns the retry behavior tuned for page loads: a
// profile view settles within a few hundred milliseconds, and past a couple
// of seconds the data is simply not coming.
func DefaultRescanConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      5,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2.0,
		Jitter:          true,
	}
}

// IsRetryable reports whether an extraction failure may resolve on a later
// scan. Missing record, identifier or room code usually means the page has
// not finished rendering. "No keys found" is a final answer: the scoped
// search ran against complete text and found nothing for this resident.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, record.ErrRecordNotFound),
		errors.Is(err, record.ErrIdentifierNotFound),
		errors.Is(err, record.ErrRoomCodeNotFound):
		return true
	default:
		return false
	}
}

// RetryableOperation represents an operation that can be retried.
type RetryableOperation func(ctx context.Context) error

// RetryWithBackoff executes an operation with exponential backoff and
// optional jitter. The delay before attempt n is
// InitialInterval * Multiplier^(n-1), capped at MaxInterval. Non-retryable
// errors return immediately.
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation RetryableOperation) error {
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := float64(config.InitialInterval)
			for i := 1; i < attempt; i++ {
				delay *= config.Multiplier
			}
			if config.Jitter {
				delay += delay * 0.25 * rand.Float64()
			}
			capped := min(time.Duration(delay), config.MaxInterval)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(capped):
			}

			if config.OnRetry != nil {
				config.OnRetry(attempt, lastErr)
			}
		}

		err := operation(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return err
		}
	}

	return lastErr
}

// RetryableFunc is a convenience type for retryable functions that return a value.
type RetryableFunc[T any] func(ctx context.Context) (T, error)

// RetryWithResult executes a function that returns a result and error with retry logic.
func RetryWithResult[T any](ctx context.Context, config RetryConfig, fn RetryableFunc[T]) (T, error) {
	var result T
	err := RetryWithBackoff(ctx, config, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}
