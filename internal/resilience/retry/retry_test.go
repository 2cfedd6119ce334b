package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, First: time.Millisecond, Cap: 2 * time.Millisecond, Factor: 2}
}

func TestDo_SucceedsFirstTime(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return fmt.Errorf("dial: %w", syscall.ECONNREFUSED)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_Exhausted(t *testing.T) {
	calls := 0
	err := fastPolicy(2).Do(context.Background(), func() error {
		calls++
		return syscall.ECONNRESET
	})

	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.ErrorIs(t, err, syscall.ECONNRESET)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("password authentication failed")
	calls := 0
	err := fastPolicy(5).Do(context.Background(), func() error {
		calls++
		return permanent
	})

	assert.Equal(t, 1, calls)
	assert.Same(t, permanent, err)
}

func TestDo_CustomRetryable(t *testing.T) {
	p := fastPolicy(3)
	p.Retryable = func(error) bool { return true }

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return errors.New("the database system is starting up")
	})

	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestDo_ContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{Attempts: 5, First: time.Hour, Factor: 1}

	calls := 0
	err := p.Do(ctx, func() error {
		calls++
		cancel()
		return syscall.ECONNREFUSED
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithJitter(t *testing.T) {
	p := Policy{Jitter: 0.5}
	for i := 0; i < 50; i++ {
		d := p.withJitter(100 * time.Millisecond)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 150*time.Millisecond)
	}
	assert.Equal(t, time.Second, Policy{}.withJitter(time.Second))
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"refused", syscall.ECONNREFUSED, true},
		{"wrapped reset", fmt.Errorf("read: %w", syscall.ECONNRESET), true},
		{"network timeout", timeoutErr{}, true},
		{"dns not found", &net.DNSError{Err: "no such host", Name: "postgres", IsNotFound: true}, true},
		{"dns permanent", &net.DNSError{Err: "server misbehaving", Name: "postgres"}, false},
		{"deadline", context.DeadlineExceeded, false},
		{"cancelled", fmt.Errorf("ping: %w", context.Canceled), false},
		{"plain", errors.New("syntax error"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestStartup(t *testing.T) {
	p := Startup()
	assert.Equal(t, 6, p.Attempts)
	assert.Nil(t, p.Retryable)
	assert.LessOrEqual(t, p.First, p.Cap)
}
