package backend_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return ctx.Err()
}

func TestRetry(t *testing.T) {
	networkErr := &backend.TransportError{Err: stderrors.New("connection refused")}

	tests := []struct {
		name       string
		policy     backend.RetryPolicy
		failures   []error
		wantCalls  int
		wantDelays []time.Duration
		wantErr    bool
	}{
		{
			name:       "two network failures then success",
			policy:     backend.RetryPolicy{Retries: 2, RetryDelay: 100 * time.Millisecond},
			failures:   []error{networkErr, networkErr},
			wantCalls:  3,
			wantDelays: []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
		},
		{
			name:      "status error is not retried",
			policy:    backend.RetryPolicy{Retries: 2, RetryDelay: 100 * time.Millisecond},
			failures:  []error{&errors.APIError{Status: 503, Message: "maintenance"}},
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name:       "budget exhausted",
			policy:     backend.RetryPolicy{Retries: 1, RetryDelay: 450 * time.Millisecond},
			failures:   []error{networkErr, networkErr, networkErr},
			wantCalls:  2,
			wantDelays: []time.Duration{450 * time.Millisecond},
			wantErr:    true,
		},
		{
			name:       "foreign timeout wording is retried",
			policy:     backend.RetryPolicy{Retries: 1, RetryDelay: 10 * time.Millisecond},
			failures:   []error{stderrors.New("Failed to fetch")},
			wantCalls:  2,
			wantDelays: []time.Duration{10 * time.Millisecond},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &sleepRecorder{}
			calls := 0
			got, err := backend.Retry(context.Background(), backend.Retrier{Policy: tt.policy, Sleep: rec.sleep}, func(ctx context.Context) (string, error) {
				calls++
				if calls <= len(tt.failures) {
					return "", tt.failures[calls-1]
				}
				return "ok", nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantDelays, rec.delays)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", got)
		})
	}
}

func TestRetry_AttemptDeadlineBecomesTimeoutError(t *testing.T) {
	rec := &sleepRecorder{}
	calls := 0
	_, err := backend.Retry(context.Background(), backend.Retrier{
		Policy: backend.RetryPolicy{Timeout: 10 * time.Millisecond, Retries: 1, RetryDelay: time.Millisecond},
		Sleep:  rec.sleep,
	}, func(ctx context.Context) (int, error) {
		calls++
		<-ctx.Done()
		return 0, ctx.Err()
	})

	var timeoutErr *backend.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Contains(t, err.Error(), "request timeout")
	assert.Equal(t, 2, calls)
}

func TestRetry_ParentCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := backend.Retry(ctx, backend.Retrier{Policy: backend.RetryPolicy{Retries: 3, RetryDelay: time.Millisecond}}, func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, &backend.TransportError{Err: ctx.Err()}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "transport", err: &backend.TransportError{Err: stderrors.New("dial tcp: refused")}, want: true},
		{name: "timeout", err: &backend.TimeoutError{After: 9 * time.Second}, want: true},
		{name: "mixed case", err: stderrors.New("Request Timeout"), want: true},
		{name: "api error", err: &errors.APIError{Status: 400, Message: "Bitte wähle zuerst eine Klinik"}, want: false},
		{name: "plain", err: stderrors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backend.IsRetryable(tt.err))
		})
	}
}
