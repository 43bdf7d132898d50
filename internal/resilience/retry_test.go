// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"desklog/internal/record"
)

// fastConfig keeps test retries in the microsecond range.
func fastConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Microsecond,
		MaxInterval:     10 * time.Microsecond,
		Multiplier:      2.0,
	}
}

func TestIsRetryable_Classification(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{record.ErrRecordNotFound, true},
		{record.ErrIdentifierNotFound, true},
		{record.ErrRoomCodeNotFound, true},
		{record.ErrNoKeysFound, false},
		{errors.New("something else"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRetryWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), fastConfig(3), func(ctx context.Context) error {
		attempts++
		return nil
	})
	if err != nil || attempts != 1 {
		t.Errorf("err=%v attempts=%d, want nil and 1", err, attempts)
	}
}

func TestRetryWithBackoff_RetriesWhileLoading(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), fastConfig(5), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return record.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetryWithBackoff_NoKeysIsFinal(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), fastConfig(5), func(ctx context.Context) error {
		attempts++
		return record.ErrNoKeysFound
	})
	if !errors.Is(err, record.ErrNoKeysFound) {
		t.Fatalf("err = %v, want ErrNoKeysFound", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no keys is a final answer)", attempts)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), fastConfig(2), func(ctx context.Context) error {
		attempts++
		return record.ErrIdentifierNotFound
	})
	if !errors.Is(err, record.ErrIdentifierNotFound) {
		t.Fatalf("err = %v, want last error after exhaustion", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (initial + 2 retries)", attempts)
	}
}

func TestRetryWithBackoff_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastConfig(3)
	cfg.InitialInterval = time.Minute

	err := RetryWithBackoff(ctx, cfg, func(ctx context.Context) error {
		return record.ErrRecordNotFound
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRetryWithBackoff_OnRetryCallback(t *testing.T) {
	var seen []int
	cfg := fastConfig(2)
	cfg.OnRetry = func(attempt int, err error) {
		seen = append(seen, attempt)
	}

	RetryWithBackoff(context.Background(), cfg, func(ctx context.Context) error {
		return record.ErrRecordNotFound
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", seen)
	}
}

func TestRetryWithResult(t *testing.T) {
	attempts := 0
	got, err := RetryWithResult(context.Background(), fastConfig(3), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 2 {
			return "", record.ErrRoomCodeNotFound
		}
		return "CLVN-349b", nil
	})
	if err != nil || got != "CLVN-349b" {
		t.Errorf("RetryWithResult = (%q, %v)", got, err)
	}
}
