// Package retry repeats an operation with exponential backoff. The API uses
// it while Postgres and the other containers started alongside it come up.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"syscall"
	"time"
)

// Policy describes how often and how patiently to retry.
type Policy struct {
	Attempts int
	First    time.Duration
	Cap      time.Duration
	Factor   float64
	// Jitter adds up to this fraction of each delay at random.
	Jitter float64
	// Retryable reports whether an error is worth another attempt.
	// nil means IsTransient.
	Retryable func(error) bool
}

// Startup waits roughly 20s in total for a dependency to answer.
func Startup() Policy {
	return Policy{
		Attempts: 6,
		First:    500 * time.Millisecond,
		Cap:      5 * time.Second,
		Factor:   2,
		Jitter:   0.1,
	}
}

// ErrExhausted wraps the last error once every attempt has failed.
var ErrExhausted = errors.New("retry: attempts exhausted")

// Do calls op until it succeeds, returns a non-retryable error, the
// attempts run out or ctx is done.
func (p Policy) Do(ctx context.Context, op func() error) error {
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsTransient
	}
	attempts := max(p.Attempts, 1)

	delay := p.First
	var err error
	for n := 1; ; n++ {
		if err = op(); err == nil {
			if n > 1 {
				slog.Info("operation succeeded after retry", slog.Int("attempt", n))
			}
			return nil
		}
		if !retryable(err) {
			return err
		}
		if n == attempts {
			return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempts, err)
		}

		wait := p.withJitter(delay)
		slog.Warn("operation failed, retrying",
			slog.Int("attempt", n),
			slog.Int("max_attempts", attempts),
			slog.Duration("delay", wait),
			slog.Any("error", err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry: %w (last error: %v)", ctx.Err(), err)
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * p.Factor)
		if p.Cap > 0 && delay > p.Cap {
			delay = p.Cap
		}
	}
}

func (p Policy) withJitter(d time.Duration) time.Duration {
	if p.Jitter <= 0 || d <= 0 {
		return d
	}
	// #nosec G404 -- backoff jitter needs no cryptographic randomness
	return d + time.Duration(rand.Float64()*min(p.Jitter, 1)*float64(d))
}

// IsTransient reports connection-level failures that usually clear on their
// own: refused or reset connections, network timeouts and DNS misses while a
// sibling container registers. Context errors are never transient.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	for _, errno := range []error{syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT, syscall.ENETUNREACH} {
		if errors.Is(err, errno) {
			return true
		}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsNotFound || dnsErr.IsTimeout
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
