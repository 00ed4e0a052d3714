// Package wait implements the resolve retry policy shared by all drivers.
package wait

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/logger"
)

// DefaultInterval is the delay between resolve attempts.
const DefaultInterval = 200 * time.Millisecond

// Until calls op until it succeeds, fails with a non-retryable error, or
// timeout elapses. op always runs at least once.
func Until(timeout, interval time.Duration, op func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return UntilContext(ctx, interval, op)
}

// UntilContext is Until bounded by ctx instead of a timeout.
// On deadline the last error from op is returned unchanged.
func UntilContext(ctx context.Context, interval time.Duration, op func() error) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	var last error
	attempt := func() error {
		err := op()
		if err == nil {
			return nil
		}
		last = err
		if !core.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		logger.Debug("retrying in %s: %v", next, err)
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)
	err := backoff.RetryNotify(attempt, b, notify)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		if last != nil {
			return last
		}
		return core.ErrElementNotFound.WithCause(err)
	}
	return err
}
