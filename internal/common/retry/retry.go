package retry

import (
	"context"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"

	"github.com/cenkalti/backoff/v4"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation, exhaustedCallback func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implements an exponential backoff mechanism.

Example:

Retry(ctx, func() error { return someOperation() }, func() error { return exhaustedOperation() })
*/
func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

/*
Retry will create an ExponentialBackOff instance for every execution.

You need to pass 2 functions. The "operation" func will keep being retried
until a certain condition is met; the "exhaustedCallback" func is called once
the "operation" func has kept failing past the retry ceiling.

This Retry function returns the error from the "exhaustedCallback" func.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation, exhaustedCallback func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		log.Debugf(ctx, "retries exhausted with err: %v\n", err)
		if err := exhaustedCallback(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside the "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
