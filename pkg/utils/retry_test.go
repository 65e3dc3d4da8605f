package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemp := errors.New("temporary")
	errFatal := errors.New("fatal")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		results   []error
		permanent []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "succeeds first time",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after temporary failure",
			results:   []error{errTemp, nil},
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			results:   []error{errTemp, errTemp, errTemp},
			wantCalls: 3,
			wantErr:   errTemp,
		},
		{
			name:      "permanent error is not retried",
			results:   []error{errors.Join(errFatal, errors.New("details"))},
			permanent: []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), cfg, func() error {
				res := tc.results[calls]
				calls++
				return res
			}, tc.permanent...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("temporary")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
