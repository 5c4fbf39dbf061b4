package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// RetryPolicy is the per-endpoint timeout and retry budget.
type RetryPolicy struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

var (
	ProfileRead       = RetryPolicy{Timeout: 9 * time.Second, Retries: 1, RetryDelay: 450 * time.Millisecond}
	ProfileOtp        = RetryPolicy{Timeout: 25 * time.Second, Retries: 2, RetryDelay: 800 * time.Millisecond}
	ProfileHealth     = RetryPolicy{Timeout: 7 * time.Second, Retries: 1, RetryDelay: 350 * time.Millisecond}
	ProfileMutation   = RetryPolicy{Timeout: 12 * time.Second, Retries: 1, RetryDelay: 500 * time.Millisecond}
	ProfileCheckout   = RetryPolicy{Timeout: 18 * time.Second, Retries: 1, RetryDelay: 600 * time.Millisecond}
	ProfileSingleShot = RetryPolicy{Timeout: 15 * time.Second}
)

// TransportError is a request that never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "network request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError is an attempt that hit its per-request deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %s", e.After)
}

var retryMarkers = []string{"network request failed", "request timeout", "timeout", "failed to fetch"}

// IsRetryable classifies by message text so foreign errors with the same wording qualify too.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range retryMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type Retrier struct {
	Policy RetryPolicy
	Sleep  Sleeper
}

// Retry runs fn until it succeeds, fails with a non-retryable error, or the retry budget is
// spent. Attempt n (1-based) that fails is followed by a pause of RetryDelay*n.
func Retry[T any](ctx context.Context, r Retrier, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	sleep := r.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	retries := r.Policy.Retries
	if retries < 0 {
		retries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		v, err := runAttempt(ctx, r.Policy.Timeout, fn)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt == retries || !IsRetryable(err) || ctx.Err() != nil {
			break
		}
		if err := sleep(ctx, r.Policy.RetryDelay*time.Duration(attempt+1)); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

func runAttempt[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	attemptCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	v, err := fn(attemptCtx)
	if err != nil && ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return v, &TimeoutError{After: timeout}
	}
	return v, err
}
