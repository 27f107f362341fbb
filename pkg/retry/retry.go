package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/mini-insta/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultConfig waits about seven seconds in total, enough for a postgres container to come up.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

func (c Config) backOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(c.InitialInterval),
		backoff.WithMaxInterval(c.MaxInterval),
		backoff.WithMultiplier(c.Multiplier),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(bo, c.MaxRetries), ctx)
}

// Do runs operation until it succeeds, the retry budget is spent or ctx is done.
// Wrap an error with Permanent to stop immediately.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			return operation()
		},
		cfg.backOff(ctx),
		func(err error, wait time.Duration) {
			log.Warn("Operation failed, retrying",
				"operation", operationName,
				"attempt", attempt,
				"error", err,
				"next_attempt_in", wait.Round(time.Millisecond).String(),
			)
		},
	)
}

func Permanent(err error) error {
	return backoff.Permanent(err)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts database/sql's PingContext to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Ping waits for a database handle to answer with the default budget.
func Ping(ctx context.Context, log logger.Logger, name string, p Pinger) error {
	return Do(ctx, log, name+" ping", func() error {
		return p.Ping(ctx)
	}, DefaultConfig())
}
